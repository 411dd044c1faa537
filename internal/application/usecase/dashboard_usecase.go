package usecase

import (
	"context"

	"github.com/jhoicas/Calificaciones-api/internal/application/dto"
	"github.com/jhoicas/Calificaciones-api/internal/domain/repository"
)

// DashboardUseCase totales para el panel de administración.
type DashboardUseCase struct {
	users   repository.UserRepository
	stores  repository.StoreRepository
	ratings repository.RatingRepository
}

// NewDashboardUseCase construye el caso de uso del panel de administración.
func NewDashboardUseCase(users repository.UserRepository, stores repository.StoreRepository, ratings repository.RatingRepository) *DashboardUseCase {
	return &DashboardUseCase{users: users, stores: stores, ratings: ratings}
}

// Totals cuenta usuarios, tiendas y calificaciones.
func (uc *DashboardUseCase) Totals(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	users, err := uc.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	stores, err := uc.stores.Count(ctx)
	if err != nil {
		return nil, err
	}
	ratings, err := uc.ratings.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.AdminDashboardResponse{
		TotalUsers:   users,
		TotalStores:  stores,
		TotalRatings: ratings,
	}, nil
}
