package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Calificaciones-api/internal/application/dto"
	"github.com/jhoicas/Calificaciones-api/internal/application/usecase"
	"github.com/jhoicas/Calificaciones-api/internal/domain"
)

// OwnerHandler panel del dueño de tienda.
type OwnerHandler struct {
	uc *usecase.OwnerUseCase
}

// NewOwnerHandler construye el handler del dueño.
func NewOwnerHandler(uc *usecase.OwnerUseCase) *OwnerHandler {
	return &OwnerHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Panel del dueño: promedio + calificadores de su tienda
// @Tags         owner
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.OwnerDashboardResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/owner/dashboard [get]
func (h *OwnerHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context(), GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_STORE", Message: "este dueño no tiene tienda asignada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// DashboardPDF godoc
// @Summary      Panel del dueño en PDF descargable
// @Tags         owner
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/owner/dashboard/pdf [get]
func (h *OwnerHandler) DashboardPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.DashboardPDF(c.Context(), GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_STORE", Message: "este dueño no tiene tienda asignada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-calificaciones.pdf"`)
	return c.Send(pdfBytes)
}
