package middleware

import (
	"crypto/subtle"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/common"
	"github.com/sinaridesa/sinari-api/type/response"
)

// ApiKey guards the certificate surface, including the otherwise-public
// verification endpoint.
func ApiKey() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get("x-api-key")

		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(*common.Config.APIKey)) != 1 {
			slog.Warn("ApiKey: rejected request", "path", c.Path(), "method", c.Method(), "ip", c.IP())
			return response.SendUnauthorized(c, "Unauthorized: Missing or invalid API Key.")
		}

		return c.Next()
	}
}
