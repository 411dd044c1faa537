package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Calificaciones-api/internal/domain/entity"
	"github.com/jhoicas/Calificaciones-api/internal/domain/repository"
)

// RatingsReportPDFGenerator genera el reporte PDF del panel del dueño.
// average es nil cuando la tienda no tiene calificaciones.
type RatingsReportPDFGenerator interface {
	GenerateRatingsReport(ctx context.Context, store *entity.Store, average *decimal.Decimal, raters []repository.Rater) ([]byte, error)
}
