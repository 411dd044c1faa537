package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Calificaciones-api/internal/application/usecase"
	"github.com/jhoicas/Calificaciones-api/internal/domain"
	"github.com/jhoicas/Calificaciones-api/internal/domain/entity"
	"github.com/jhoicas/Calificaciones-api/internal/domain/repository"
)

// stubPDF registra la llamada y devuelve bytes fijos.
type stubPDF struct {
	called bool
	gotAvg *decimal.Decimal
}

func (s *stubPDF) GenerateRatingsReport(_ context.Context, _ *entity.Store, avg *decimal.Decimal, _ []repository.Rater) ([]byte, error) {
	s.called = true
	s.gotAvg = avg
	return []byte("%PDF-stub"), nil
}

func ownerFixture() (*usecase.OwnerUseCase, *usecase.RatingUseCase, *stubPDF) {
	users := newFakeUserRepo(
		&entity.User{ID: "owner-1", Name: "Propietaria Tienda Centro Uno", Email: "duena@x.com", Role: entity.RoleStoreOwner},
		&entity.User{ID: "u1", Name: "Ana María Quintero López", Email: "ana@x.com", Role: entity.RoleUser},
		&entity.User{ID: "u2", Name: "Bruno Castellanos Riquelme", Email: "bruno@x.com", Role: entity.RoleUser},
	)
	ownerID := "owner-1"
	stores := newFakeStoreRepo(&entity.Store{ID: "s1", Name: "Café Central", Email: "cafe@x.com", OwnerID: &ownerID})
	ratings := newFakeRatingRepo(users)
	pdf := &stubPDF{}
	return usecase.NewOwnerUseCase(stores, ratings, pdf),
		usecase.NewRatingUseCase(ratings, stores),
		pdf
}

// Un dueño sin tienda asignada recibe ErrStoreNotFound.
func TestOwnerDashboard_SinTienda(t *testing.T) {
	ownerUC, _, _ := ownerFixture()

	_, err := ownerUC.Dashboard(context.Background(), "otro-owner")
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

// Panel sin calificaciones: promedio nil y lista vacía (no nula).
func TestOwnerDashboard_SinCalificaciones(t *testing.T) {
	ownerUC, _, _ := ownerFixture()

	out, err := ownerUC.Dashboard(context.Background(), "owner-1")
	require.NoError(t, err)

	assert.Equal(t, "s1", out.StoreID)
	assert.Nil(t, out.AverageRating, "sin calificaciones el promedio es nil")
	assert.NotNil(t, out.Raters)
	assert.Empty(t, out.Raters)
}

// Panel con calificaciones: promedio correcto y calificadores en orden de
// primer envío, con el valor vigente.
func TestOwnerDashboard_PromedioYCalificadores(t *testing.T) {
	ownerUC, ratingUC, _ := ownerFixture()
	ctx := context.Background()

	require.NoError(t, ratingUC.Submit(ctx, "u1", "s1", 3))
	require.NoError(t, ratingUC.Submit(ctx, "u2", "s1", 5))
	// u1 corrige su calificación; conserva su posición en la lista
	require.NoError(t, ratingUC.Submit(ctx, "u1", "s1", 4))

	out, err := ownerUC.Dashboard(ctx, "owner-1")
	require.NoError(t, err)

	require.NotNil(t, out.AverageRating)
	assert.Equal(t, "4.5", out.AverageRating.String())

	require.Len(t, out.Raters, 2)
	assert.Equal(t, "ana@x.com", out.Raters[0].Email)
	assert.Equal(t, 4, out.Raters[0].Rating, "se muestra el valor vigente tras la corrección")
	assert.Equal(t, "bruno@x.com", out.Raters[1].Email)
	assert.Equal(t, 5, out.Raters[1].Rating)
}

// El reporte PDF usa los mismos agregados del panel.
func TestOwnerDashboardPDF(t *testing.T) {
	ownerUC, ratingUC, pdf := ownerFixture()
	ctx := context.Background()

	require.NoError(t, ratingUC.Submit(ctx, "u1", "s1", 5))

	doc, err := ownerUC.DashboardPDF(ctx, "owner-1")
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
	assert.True(t, pdf.called)
	require.NotNil(t, pdf.gotAvg)
	assert.Equal(t, "5", pdf.gotAvg.String())

	_, err = ownerUC.DashboardPDF(ctx, "sin-tienda")
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}
