package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Calificaciones-api/internal/application/dto"
	"github.com/jhoicas/Calificaciones-api/internal/application/usecase"
	"github.com/jhoicas/Calificaciones-api/internal/domain"
	"github.com/jhoicas/Calificaciones-api/internal/domain/repository"
)

// StoreHandler rutas públicas (autenticadas) de tiendas: listado y calificación.
type StoreHandler struct {
	stores  *usecase.StoreUseCase
	ratings *usecase.RatingUseCase
}

// NewStoreHandler construye el handler de tiendas.
func NewStoreHandler(stores *usecase.StoreUseCase, ratings *usecase.RatingUseCase) *StoreHandler {
	return &StoreHandler{stores: stores, ratings: ratings}
}

// List godoc
// @Summary      Listar tiendas con promedio y calificación propia
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Param        search  query  string  false  "Busca en nombre y dirección"
// @Success      200  {array}   dto.StoreResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/stores [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	filter := repository.StoreFilter{Search: c.Query("search")}
	out, err := h.stores.List(c.Context(), filter, GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// SubmitRating godoc
// @Summary      Calificar una tienda (1..5, sobreescribe la calificación previa)
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        storeId  path  string  true  "ID de la tienda"
// @Param        body  body  dto.SubmitRatingRequest  true  "rating"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{storeId}/ratings [post]
func (h *StoreHandler) SubmitRating(c *fiber.Ctx) error {
	storeID := c.Params("storeId")
	if storeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "storeId es requerido"})
	}
	var in dto.SubmitRatingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.ratings.Submit(c.Context(), GetUserID(c), storeID, in.Rating); err != nil {
		if errors.Is(err, domain.ErrRatingOutOfRange) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "OUT_OF_RANGE", Message: "la calificación debe estar entre 1 y 5"})
		}
		if errors.Is(err, domain.ErrStoreNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tienda no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(dto.MessageResponse{Message: "calificación registrada"})
}
