package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Calificaciones-api/internal/application/dto"
	"github.com/jhoicas/Calificaciones-api/pkg/jwt"
)

// Locals keys para el principal resuelto en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthMiddleware valida el Bearer Token JWT y carga el principal (user_id, role)
// en c.Locals para las etapas siguientes. Toda falla responde 401; el código
// distingue la causa (token ausente, malformado, firma inválida, expirado)
// para logging y tests, pero el contrato hacia el cliente es siempre 401.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		principal, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: tokenErrorCode(err), Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, principal.UserID)
		c.Locals(LocalRole, principal.Role)
		return c.Next()
	}
}

// tokenErrorCode traduce el error tipado del verificador a un código estable.
func tokenErrorCode(err error) string {
	switch {
	case errors.Is(err, jwt.ErrExpired):
		return "TOKEN_EXPIRED"
	case errors.Is(err, jwt.ErrBadSignature):
		return "INVALID_SIGNATURE"
	case errors.Is(err, jwt.ErrMalformed):
		return "MALFORMED_TOKEN"
	default:
		return "INVALID_TOKEN"
	}
}

// RequireRole devuelve un middleware que exige que el rol del principal esté
// en el conjunto permitido. Debe usarse DESPUÉS de AuthMiddleware (necesita
// LocalRole). Rol ausente → 401; rol presente pero no permitido → 403.
// Componible: se encadena tras AuthMiddleware en las rutas restringidas.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin acceso a este recurso"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
