package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Calificaciones-api/internal/application/dto"
	"github.com/jhoicas/Calificaciones-api/internal/application/usecase"
	"github.com/jhoicas/Calificaciones-api/internal/domain"
	"github.com/jhoicas/Calificaciones-api/internal/domain/repository"
)

// AdminHandler panel de administración: cuentas y tiendas.
type AdminHandler struct {
	users     *usecase.UserUseCase
	stores    *usecase.StoreUseCase
	dashboard *usecase.DashboardUseCase
}

// NewAdminHandler construye el handler de administración.
func NewAdminHandler(users *usecase.UserUseCase, stores *usecase.StoreUseCase, dashboard *usecase.DashboardUseCase) *AdminHandler {
	return &AdminHandler{users: users, stores: stores, dashboard: dashboard}
}

// Dashboard godoc
// @Summary      Totales de usuarios, tiendas y calificaciones
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AdminDashboardResponse
// @Router       /api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.dashboard.Totals(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// ListUsers godoc
// @Summary      Listar cuentas con filtros opcionales
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        name   query  string  false  "Nombre contiene"
// @Param        email  query  string  false  "Email contiene"
// @Param        role   query  string  false  "Rol exacto"
// @Success      200  {array}  dto.UserResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	filter := repository.UserFilter{
		Name:  c.Query("name"),
		Email: c.Query("email"),
		Role:  c.Query("role"),
	}
	out, err := h.users.List(filter)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// ListStoreOwners godoc
// @Summary      Listar cuentas con rol store_owner (selector de dueño)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.UserResponse
// @Router       /api/admin/store-owners [get]
func (h *AdminHandler) ListStoreOwners(c *fiber.Ctx) error {
	out, err := h.users.ListStoreOwners()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// CreateUser godoc
// @Summary      Alta de cuenta (cualquier rol, incluido store_owner)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateUserRequest  true  "name, email, password, address, role"
// @Success      201  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/users [post]
func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email, password y role son requeridos"})
	}
	out, err := h.users.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateUser godoc
// @Summary      Editar cuenta (el rol store_owner no es asignable por esta vía)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID de la cuenta"
// @Param        body  body  dto.UpdateUserRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.users.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrOwnerRoleImmutable) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ROLE_IMMUTABLE", Message: "no se puede asignar store_owner por edición; cree una cuenta nueva"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// DeleteUser godoc
// @Summary      Baja de cuenta (autoeliminación rechazada)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.users.Delete(c.Params("id"), GetUserID(c)); err != nil {
		if errors.Is(err, domain.ErrSelfDelete) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SELF_DELETE", Message: "no puede eliminar su propia cuenta de administrador"})
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(dto.MessageResponse{Message: "usuario eliminado"})
}

// ListStores godoc
// @Summary      Listar tiendas con promedio y nombre del dueño
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        name   query  string  false  "Nombre contiene"
// @Param        email  query  string  false  "Email contiene"
// @Success      200  {array}  dto.StoreResponse
// @Router       /api/admin/stores [get]
func (h *AdminHandler) ListStores(c *fiber.Ctx) error {
	filter := repository.StoreFilter{
		Name:  c.Query("name"),
		Email: c.Query("email"),
	}
	// Vista de administración: sin calificación propia (sin user id).
	out, err := h.stores.List(c.Context(), filter, "")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// CreateStore godoc
// @Summary      Alta de tienda, con dueño opcional validado
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateStoreRequest  true  "name, email, address, owner_id"
// @Success      201  {object}  dto.StoreDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/stores [post]
func (h *AdminHandler) CreateStore(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y email son requeridos"})
	}
	out, err := h.stores.Create(in)
	if err != nil {
		return h.mapStoreError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateStore godoc
// @Summary      Editar tienda
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID de la tienda"
// @Param        body  body  dto.UpdateStoreRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.StoreDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/stores/{id} [put]
func (h *AdminHandler) UpdateStore(c *fiber.Ctx) error {
	var in dto.UpdateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.stores.Update(c.Params("id"), in)
	if err != nil {
		return h.mapStoreError(c, err)
	}
	return c.JSON(out)
}

// DeleteStore godoc
// @Summary      Baja de tienda (sus calificaciones caen en cascada)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/stores/{id} [delete]
func (h *AdminHandler) DeleteStore(c *fiber.Ctx) error {
	if err := h.stores.Delete(c.Params("id")); err != nil {
		return h.mapStoreError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "tienda eliminada"})
}

// mapStoreError traduce los errores de dominio de tiendas a estados HTTP.
func (h *AdminHandler) mapStoreError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrOwnerRoleRequired):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "OWNER_ROLE_REQUIRED", Message: "el usuario seleccionado no tiene rol store_owner"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "OWNER_NOT_FOUND", Message: "el dueño seleccionado no existe"})
	case errors.Is(err, domain.ErrStoreNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tienda no encontrada"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "este dueño ya tiene una tienda con ese email"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
