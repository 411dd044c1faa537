package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Calificaciones-api/internal/domain"
	"github.com/jhoicas/Calificaciones-api/internal/domain/repository"
)

var _ repository.RatingRepository = (*RatingRepo)(nil)

// RatingRepo libro de calificaciones sobre PostgreSQL.
type RatingRepo struct {
	q Querier
}

// NewRatingRepository construye el adaptador del libro de calificaciones.
func NewRatingRepository(q Querier) *RatingRepo {
	return &RatingRepo{q: q}
}

// Upsert inserta o sobreescribe la calificación de (userID, storeID) en una
// sola sentencia atómica. ON CONFLICT sobre la PK compuesta resuelve la
// carrera de dos envíos simultáneos del mismo usuario: queda exactamente una
// fila con el valor del último escritor, sin exponer la violación de unicidad.
// La operación es idempotente: repetir el mismo valor deja el mismo estado.
func (r *RatingRepo) Upsert(ctx context.Context, userID, storeID string, value int) error {
	query := `
		INSERT INTO ratings (user_id, store_id, rating, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (user_id, store_id)
		DO UPDATE SET rating = EXCLUDED.rating, updated_at = now()`
	_, err := r.q.Exec(ctx, query, userID, storeID, value)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrStoreNotFound
		}
		return fmt.Errorf("upsert rating: %w", err)
	}
	return nil
}

// AverageForStore devuelve la media aritmética de las calificaciones de una
// tienda, o nil si no tiene ninguna. AVG sobre cero filas produce NULL en SQL;
// ese NULL se conserva (nunca se reporta 0 como promedio falso).
func (r *RatingRepo) AverageForStore(ctx context.Context, storeID string) (*decimal.Decimal, error) {
	var avg decimal.NullDecimal
	err := r.q.QueryRow(ctx,
		`SELECT AVG(rating) FROM ratings WHERE store_id = $1`, storeID,
	).Scan(&avg)
	if err != nil {
		return nil, fmt.Errorf("average rating: %w", err)
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Decimal, nil
}

// RatersForStore lista quién calificó la tienda, ordenado por fecha de envío.
// Solo lectura, sin efectos secundarios.
func (r *RatingRepo) RatersForStore(ctx context.Context, storeID string) ([]repository.Rater, error) {
	query := `
		SELECT u.name, u.email, r.rating
		FROM ratings r
		JOIN users u ON u.id = r.user_id
		WHERE r.store_id = $1
		ORDER BY r.created_at ASC`
	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("raters for store: %w", err)
	}
	defer rows.Close()

	var list []repository.Rater
	for rows.Next() {
		var rr repository.Rater
		if err := rows.Scan(&rr.Name, &rr.Email, &rr.Rating); err != nil {
			return nil, fmt.Errorf("scan rater: %w", err)
		}
		list = append(list, rr)
	}
	return list, rows.Err()
}

// Count devuelve el total de calificaciones (dashboard de administración).
func (r *RatingRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM ratings`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count ratings: %w", err)
	}
	return n, nil
}
