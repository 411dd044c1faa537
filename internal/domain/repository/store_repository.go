package repository

import (
	"context"

	"github.com/jhoicas/Calificaciones-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// StoreFilter criterios opcionales para el listado de tiendas.
// Search busca en nombre y dirección (vista pública); Name y Email son los
// filtros del panel de administración. Campo vacío = criterio no aplicado.
type StoreFilter struct {
	Search string // contiene en name o address, case-insensitive
	Name   string // contiene, case-insensitive
	Email  string // contiene, case-insensitive
}

// StoreWithRating fila del listado de tiendas con agregados de calificación.
// AverageRating es nil cuando la tienda no tiene calificaciones (nunca 0 falso);
// UserRating es la calificación propia del usuario solicitante (nil si no calificó
// o si no se suministró usuario); OwnerName es nil para tiendas sin dueño.
type StoreWithRating struct {
	ID            string
	Name          string
	Email         string
	Address       string
	OwnerID       *string
	OwnerName     *string
	AverageRating *decimal.Decimal
	UserRating    *int
}

// StoreRepository define el puerto de persistencia para Store.
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	GetByOwner(ownerID string) (*entity.Store, error)
	GetByEmailAndOwner(email, ownerID string) (*entity.Store, error)
	Update(store *entity.Store) error
	Delete(id string) error
	List(ctx context.Context, filter StoreFilter, requestingUserID string) ([]StoreWithRating, error)
	Count(ctx context.Context) (int64, error)
}
