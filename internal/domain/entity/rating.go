package entity

import "time"

// Límites del valor de una calificación.
const (
	RatingMin = 1
	RatingMax = 5
)

// Rating calificación de un usuario a una tienda. La clave compuesta
// (UserID, StoreID) es única: a lo sumo una calificación por par.
type Rating struct {
	UserID    string
	StoreID   string
	Value     int // 1..5
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidValue indica si v está dentro del rango permitido [1,5].
func ValidValue(v int) bool {
	return v >= RatingMin && v <= RatingMax
}
