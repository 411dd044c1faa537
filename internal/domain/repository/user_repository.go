package repository

import (
	"context"

	"github.com/jhoicas/Calificaciones-api/internal/domain/entity"
)

// UserFilter criterios opcionales para el listado de usuarios.
// Campo vacío = criterio no aplicado. Todos se combinan con AND.
type UserFilter struct {
	Name  string // contiene, case-insensitive
	Email string // contiene, case-insensitive
	Role  string // igualdad exacta
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	UpdatePassword(id, passwordHash string) error
	Delete(id string) error
	List(filter UserFilter) ([]*entity.User, error)
	ListStoreOwners() ([]*entity.User, error)
	Count(ctx context.Context) (int64, error)
}
