package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Calificaciones-api/internal/domain"
	"github.com/jhoicas/Calificaciones-api/internal/domain/entity"
	"github.com/jhoicas/Calificaciones-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de persistencia para tiendas.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

const storeColumns = `id, name, email, address, owner_id, created_at, updated_at`

// Create persiste una nueva tienda.
func (r *StoreRepo) Create(store *entity.Store) error {
	query := `
		INSERT INTO stores (id, name, email, address, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		store.ID, store.Name, store.Email, store.Address, store.OwnerID,
		store.CreatedAt, store.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID. Devuelve nil, nil si no existe.
func (r *StoreRepo) GetByID(id string) (*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get store by id")
}

// GetByOwner obtiene la tienda de un dueño. La regla de negocio asume una
// tienda por dueño; ante varias se devuelve la más antigua.
func (r *StoreRepo) GetByOwner(ownerID string) (*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE owner_id = $1 ORDER BY created_at ASC LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, ownerID), "get store by owner")
}

// GetByEmailAndOwner obtiene una tienda por email y dueño (chequeo de duplicados).
func (r *StoreRepo) GetByEmailAndOwner(email, ownerID string) (*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE email = $1 AND owner_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email, ownerID), "get store by email and owner")
}

func (r *StoreRepo) scanOne(row pgx.Row, op string) (*entity.Store, error) {
	var s entity.Store
	err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Address, &s.OwnerID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

// Update actualiza una tienda existente.
func (r *StoreRepo) Update(store *entity.Store) error {
	query := `
		UPDATE stores SET name = $2, email = $3, address = $4, owner_id = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		store.ID, store.Name, store.Email, store.Address, store.OwnerID, store.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update store: %w", err)
	}
	return nil
}

// Delete elimina una tienda por ID. Sus calificaciones caen en cascada.
func (r *StoreRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	return nil
}

// List lista tiendas con sus agregados de calificación:
//   - promedio por tienda (NULL sin calificaciones, nunca 0 falso),
//   - calificación propia del usuario solicitante (NULL si no calificó),
//   - nombre del dueño (NULL para tiendas sin dueño).
//
// Los criterios del filtro se ligan como parámetros vía whereBuilder; el
// user_id del join propio ocupa $1 como argumento semilla. Orden determinista
// por nombre ascendente.
func (r *StoreRepo) List(ctx context.Context, filter repository.StoreFilter, requestingUserID string) ([]repository.StoreWithRating, error) {
	// NULLIF evita que un requestingUserID vacío llegue al cast a uuid.
	b := newWhereBuilder(nullIfEmpty(requestingUserID))
	b.ContainsAny([]string{"s.name", "s.address"}, filter.Search)
	b.Contains("s.name", filter.Name)
	b.Contains("s.email", filter.Email)

	query := `
	SELECT
	    s.id, s.name, s.email, s.address, s.owner_id,
	    u.name                AS owner_name,
	    AVG(r.rating)         AS average_rating,
	    ur.rating             AS user_rating
	FROM stores s
	LEFT JOIN ratings r  ON r.store_id = s.id
	LEFT JOIN users   u  ON u.id = s.owner_id
	LEFT JOIN ratings ur ON ur.store_id = s.id AND ur.user_id = $1` +
		b.Clause() + `
	GROUP BY s.id, s.name, s.email, s.address, s.owner_id, u.name, ur.rating
	ORDER BY s.name ASC`

	rows, err := r.q.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var list []repository.StoreWithRating
	for rows.Next() {
		var (
			row StoreWithRatingRow
		)
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Email, &row.Address, &row.OwnerID,
			&row.OwnerName, &row.AverageRating, &row.UserRating,
		); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, row.toResult())
	}
	return list, rows.Err()
}

// StoreWithRatingRow fila cruda del listado; los NULL llegan en tipos nullable
// y se convierten a punteros en el resultado del puerto.
type StoreWithRatingRow struct {
	ID            string
	Name          string
	Email         string
	Address       string
	OwnerID       *string
	OwnerName     *string
	AverageRating decimal.NullDecimal
	UserRating    *int
}

func (row StoreWithRatingRow) toResult() repository.StoreWithRating {
	out := repository.StoreWithRating{
		ID:         row.ID,
		Name:       row.Name,
		Email:      row.Email,
		Address:    row.Address,
		OwnerID:    row.OwnerID,
		OwnerName:  row.OwnerName,
		UserRating: row.UserRating,
	}
	if row.AverageRating.Valid {
		avg := row.AverageRating.Decimal
		out.AverageRating = &avg
	}
	return out
}

// Count devuelve el total de tiendas (dashboard de administración).
func (r *StoreRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stores`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stores: %w", err)
	}
	return n, nil
}

// nullIfEmpty convierte "" en NULL para columnas uuid.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
