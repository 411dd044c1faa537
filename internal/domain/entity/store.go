package entity

import "time"

// Store representa una tienda calificable. OwnerID referencia una cuenta con
// rol store_owner y puede ser nulo (tienda sin dueño asignado).
type Store struct {
	ID        string
	Name      string
	Email     string
	Address   string
	OwnerID   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
