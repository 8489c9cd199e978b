package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/type/response"
	"github.com/sinaridesa/sinari-api/type/shared"
)

// RequireAdmin allows only principals carrying the ADMIN role. Roles are a
// closed enumeration; anything outside it is rejected, not ignored.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userId, role, ok := GetUserFromContext(c)
		if !ok {
			return response.SendUnauthorized(c, "Unauthorized: Missing or invalid token.")
		}

		switch role {
		case shared.RoleAdmin:
			return c.Next()
		case shared.RoleUser:
			return response.SendForbidden(c, "Forbidden: Admin access required.")
		default:
			slog.Warn("RequireAdmin: token carries unknown role", "user_id", userId, "role", role)
			return response.SendForbidden(c, "Forbidden: Unknown role.")
		}
	}
}
