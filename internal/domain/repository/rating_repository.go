package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// Rater un usuario que calificó una tienda, con su calificación.
type Rater struct {
	Name   string
	Email  string
	Rating int
}

// RatingRepository define el puerto del libro de calificaciones.
//
// Upsert debe ser una escritura atómica que resuelve el conflicto de clave
// (user_id, store_id) en una sola sentencia: dos envíos concurrentes del mismo
// usuario nunca producen dos filas ni exponen una violación de constraint.
type RatingRepository interface {
	Upsert(ctx context.Context, userID, storeID string, value int) error
	// AverageForStore devuelve nil cuando no existen calificaciones (nunca 0).
	AverageForStore(ctx context.Context, storeID string) (*decimal.Decimal, error)
	// RatersForStore lista quién calificó, ordenado por fecha de envío.
	RatersForStore(ctx context.Context, storeID string) ([]Rater, error)
	Count(ctx context.Context) (int64, error)
}
