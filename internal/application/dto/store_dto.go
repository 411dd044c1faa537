package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStoreRequest entrada para alta de tienda (solo administradores).
// OwnerID es opcional; cuando viene, debe referir una cuenta con rol store_owner.
type CreateStoreRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=255"`
	Email   string  `json:"email" validate:"required,email"`
	Address string  `json:"address" validate:"omitempty,max=400"`
	OwnerID *string `json:"owner_id" validate:"omitempty,uuid"`
}

// UpdateStoreRequest entrada para edición de tienda. Campos nil no se tocan.
type UpdateStoreRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address" validate:"omitempty,max=400"`
	OwnerID *string `json:"owner_id" validate:"omitempty,uuid"`
}

// StoreResponse salida de una tienda con sus agregados de calificación.
// AverageRating es null cuando no hay calificaciones; UserRating es la
// calificación propia del solicitante (null si no calificó).
type StoreResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Email         string           `json:"email"`
	Address       string           `json:"address"`
	OwnerID       *string          `json:"owner_id,omitempty"`
	OwnerName     *string          `json:"owner_name,omitempty"`
	AverageRating *decimal.Decimal `json:"average_rating"`
	UserRating    *int             `json:"user_rating,omitempty"`
}

// StoreDetailResponse salida de una tienda sin agregados (alta/edición).
type StoreDetailResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	OwnerID   *string   `json:"owner_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
