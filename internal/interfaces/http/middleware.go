package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/melkar/melkar-api/internal/application/dto"
)

// LocalUserRole key del rol en c.Locals.
const LocalUserRole = "user_role"

// RoleHeader cabecera con el rol del usuario autenticado. El frontend la
// envía en cada petición después del login.
const RoleHeader = "X-User-Role"

// RequireRole exige que la petición traiga un rol permitido en X-User-Role.
// Cabecera ausente y rol no listado responden igual: 403 Acceso denegado.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := c.Get(RoleHeader)
		if _, ok := allowed[role]; role == "" || !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "Acceso denegado"})
		}
		c.Locals(LocalUserRole, role)
		return c.Next()
	}
}

// GetUserRole devuelve el rol del contexto (después de RequireRole).
func GetUserRole(c *fiber.Ctx) string {
	v := c.Locals(LocalUserRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
