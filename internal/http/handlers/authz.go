package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "ventapos/internal/log"
	"ventapos/internal/services"
)

func bearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// RequireUser guards the register API: a valid bearer session must resolve to
// an operator. Token and user land in Locals for downstream handlers.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
		}
		u, err := auth.TokenUser(token)
		if err != nil || u == nil {
			applog.Security(c, "auth.token.invalid", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid session"})
		}
		c.Locals("user", u)
		c.Locals("token", token)
		return c.Next()
	}
}
