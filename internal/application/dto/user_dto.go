package dto

import "time"

// RegisterRequest entrada para el registro público. El rol siempre es "user".
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=16"`
	Address  string `json:"address" validate:"omitempty,max=400"`
}

// CreateUserRequest entrada para alta de usuario por un administrador
// (único camino para crear cuentas store_owner o admin).
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=16"`
	Address  string `json:"address" validate:"omitempty,max=400"`
	Role     string `json:"role" validate:"required,oneof=user store_owner admin"`
}

// UpdateUserRequest entrada para edición por administrador. Campos nil no se
// tocan. El rol store_owner no es asignable por esta vía.
type UpdateUserRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=20,max=60"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address" validate:"omitempty,max=400"`
	Role    *string `json:"role" validate:"omitempty,oneof=user admin"`
}

// UserResponse salida de una cuenta (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ChangePasswordRequest entrada para el cambio de contraseña del propio usuario.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=16"`
}
