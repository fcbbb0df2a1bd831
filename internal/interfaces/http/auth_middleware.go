package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/empleolibre/empleo-api/internal/application/dto"
	"github.com/empleolibre/empleo-api/pkg/jwt"
)

// Locals keys para el principal autenticado en Fiber.
const (
	LocalPrincipalID   = "principal_id"
	LocalPrincipalType = "principal_type"
)

// AuthMiddleware valida el Bearer Token JWT y extrae el principal a c.Locals.
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
		principalID, principalType, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalPrincipalID, principalID)
		c.Locals(LocalPrincipalType, principalType)
		return c.Next()
	}
}

// RequirePrincipal devuelve un middleware que exige un tipo de principal concreto
// (jwt.PrincipalEmpresa o jwt.PrincipalPostulante). Debe usarse DESPUÉS de
// AuthMiddleware.
//
// Comportamiento:
//   - 401 → token sin tipo de principal (no debería ocurrir con tokens propios).
//   - 403 → principal autenticado pero del tipo equivocado.
func RequirePrincipal(principalType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		got := GetPrincipalType(c)
		if got == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_PRINCIPAL",
				Message: "tipo de principal no encontrado en el token",
			})
		}
		if got != principalType {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "operación reservada para " + principalType,
			})
		}
		return c.Next()
	}
}

// GetPrincipalID devuelve el ID del principal (después del middleware de auth).
func GetPrincipalID(c *fiber.Ctx) string {
	v := c.Locals(LocalPrincipalID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetPrincipalType devuelve el tipo del principal (después del middleware de auth).
func GetPrincipalType(c *fiber.Ctx) string {
	v := c.Locals(LocalPrincipalType)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
