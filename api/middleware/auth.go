package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sinaridesa/sinari-api/common"
	"github.com/sinaridesa/sinari-api/type/response"
	"github.com/sinaridesa/sinari-api/type/shared"
)

// Jwt validates bearer tokens minted by the external auth service and stores
// the parsed claims under the "auth" context key.
func Jwt() fiber.Handler {
	conf := jwtware.Config{
		SigningKey:  []byte(*common.Config.JWTSecret),
		TokenLookup: "header:Authorization",
		AuthScheme:  "Bearer",
		ContextKey:  "auth",
		Claims:      new(shared.UserClaims),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return response.SendUnauthorized(c, "Unauthorized: Missing or invalid token.")
		},
	}
	return jwtware.New(conf)
}

// GetUserFromContext extracts the authenticated principal from the request
// context. The second return is false when no valid token was presented.
func GetUserFromContext(c *fiber.Ctx) (int32, shared.Role, bool) {
	token, ok := c.Locals("auth").(*jwt.Token)
	if !ok {
		return 0, "", false
	}

	claims, ok := token.Claims.(*shared.UserClaims)
	if !ok || claims.UserId == nil {
		return 0, "", false
	}

	role := shared.RoleUser
	if claims.Role != nil {
		role = shared.Role(*claims.Role)
	}

	return *claims.UserId, role, true
}
