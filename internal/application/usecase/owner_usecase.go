package usecase

import (
	"context"

	"github.com/jhoicas/Calificaciones-api/internal/application/dto"
	"github.com/jhoicas/Calificaciones-api/internal/application/ports"
	"github.com/jhoicas/Calificaciones-api/internal/domain"
	"github.com/jhoicas/Calificaciones-api/internal/domain/repository"
)

// OwnerUseCase panel del dueño de tienda: promedio y quién calificó.
type OwnerUseCase struct {
	stores  repository.StoreRepository
	ratings repository.RatingRepository
	pdf     ports.RatingsReportPDFGenerator
}

// NewOwnerUseCase construye el caso de uso del panel del dueño.
func NewOwnerUseCase(stores repository.StoreRepository, ratings repository.RatingRepository, pdf ports.RatingsReportPDFGenerator) *OwnerUseCase {
	return &OwnerUseCase{stores: stores, ratings: ratings, pdf: pdf}
}

// Dashboard arma el panel: tienda del dueño, promedio (nil sin calificaciones)
// y lista de calificadores ordenada por fecha de envío.
// Devuelve ErrStoreNotFound si el dueño no tiene tienda asignada.
func (uc *OwnerUseCase) Dashboard(ctx context.Context, ownerID string) (*dto.OwnerDashboardResponse, error) {
	store, err := uc.stores.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}

	avg, err := uc.ratings.AverageForStore(ctx, store.ID)
	if err != nil {
		return nil, err
	}
	raters, err := uc.ratings.RatersForStore(ctx, store.ID)
	if err != nil {
		return nil, err
	}

	out := &dto.OwnerDashboardResponse{
		StoreID:       store.ID,
		StoreName:     store.Name,
		AverageRating: avg,
		Raters:        make([]dto.RaterResponse, 0, len(raters)),
	}
	for _, r := range raters {
		out.Raters = append(out.Raters, dto.RaterResponse{Name: r.Name, Email: r.Email, Rating: r.Rating})
	}
	return out, nil
}

// DashboardPDF genera el reporte del panel como PDF descargable.
func (uc *OwnerUseCase) DashboardPDF(ctx context.Context, ownerID string) ([]byte, error) {
	store, err := uc.stores.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	avg, err := uc.ratings.AverageForStore(ctx, store.ID)
	if err != nil {
		return nil, err
	}
	raters, err := uc.ratings.RatersForStore(ctx, store.ID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateRatingsReport(ctx, store, avg, raters)
}
