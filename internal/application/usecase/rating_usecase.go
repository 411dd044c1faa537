package usecase

import (
	"context"

	"github.com/jhoicas/Calificaciones-api/internal/domain"
	"github.com/jhoicas/Calificaciones-api/internal/domain/entity"
	"github.com/jhoicas/Calificaciones-api/internal/domain/repository"
)

// RatingUseCase caso de uso de envío de calificaciones.
type RatingUseCase struct {
	ratings repository.RatingRepository
	stores  repository.StoreRepository
}

// NewRatingUseCase construye el caso de uso de calificaciones.
func NewRatingUseCase(ratings repository.RatingRepository, stores repository.StoreRepository) *RatingUseCase {
	return &RatingUseCase{ratings: ratings, stores: stores}
}

// Submit registra o sobreescribe la calificación del usuario para la tienda.
// Valida el rango antes de tocar almacenamiento: un valor fuera de [1,5] falla
// sin alterar estado. El upsert del repositorio es atómico e idempotente, por
// lo que reintentar el mismo envío es seguro.
func (uc *RatingUseCase) Submit(ctx context.Context, userID, storeID string, value int) error {
	if !entity.ValidValue(value) {
		return domain.ErrRatingOutOfRange
	}
	store, err := uc.stores.GetByID(storeID)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrStoreNotFound
	}
	return uc.ratings.Upsert(ctx, userID, storeID, value)
}
