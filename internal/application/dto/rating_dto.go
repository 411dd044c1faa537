package dto

import "github.com/shopspring/decimal"

// SubmitRatingRequest entrada para calificar una tienda (1..5).
type SubmitRatingRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

// RaterResponse un usuario que calificó la tienda del dueño.
type RaterResponse struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Rating int    `json:"rating"`
}

// OwnerDashboardResponse panel del dueño: promedio + quién calificó.
// AverageRating es null cuando la tienda aún no tiene calificaciones.
type OwnerDashboardResponse struct {
	StoreID       string           `json:"store_id"`
	StoreName     string           `json:"store_name"`
	AverageRating *decimal.Decimal `json:"average_rating"`
	Raters        []RaterResponse  `json:"raters"`
}

// AdminDashboardResponse totales para el panel de administración.
type AdminDashboardResponse struct {
	TotalUsers   int64 `json:"total_users"`
	TotalStores  int64 `json:"total_stores"`
	TotalRatings int64 `json:"total_ratings"`
}
