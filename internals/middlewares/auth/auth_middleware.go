// file: internals/middlewares/auth/auth_middleware.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"suscriptores_backend/internals/configs"
	helper "suscriptores_backend/internals/helpers"
)

// parseToken verifies a Bearer token and returns the subject claim.
// With no configured secret every token is rejected — verifying against an
// empty key would accept tokens signed with an empty key.
func parseToken(c *fiber.Ctx) (string, bool) {
	if configs.JWTSecret == "" {
		return "", false
	}
	header := c.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sub, _ := claims["sub"].(string)
	return sub, sub != ""
}

// Optional attaches the caller identity to the request context when a valid
// token is present, and does nothing otherwise. The ledger handlers treat the
// identity as opaque — nothing in settlement or the store reads it.
func Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sub, ok := parseToken(c); ok {
			c.Locals("user_id", sub)
		}
		return c.Next()
	}
}

// Required rejects requests without a valid token.
func Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sub, ok := parseToken(c)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "missing or invalid token")
		}
		c.Locals("user_id", sub)
		return c.Next()
	}
}
