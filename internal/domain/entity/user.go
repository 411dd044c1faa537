package entity

import "time"

// Roles válidos para User.
const (
	RoleUser       = "user"
	RoleStoreOwner = "store_owner"
	RoleAdmin      = "admin"
)

// ValidRole indica si s es uno de los roles del sistema.
func ValidRole(s string) bool {
	return s == RoleUser || s == RoleStoreOwner || s == RoleAdmin
}

// User representa una cuenta del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Address      string // opcional
	Role         string // user, store_owner, admin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
