package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "ventapos/internal/log"
	"ventapos/internal/services"
	"ventapos/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid email"})
	}

	token, u, err := h.Auth.Login(email, req.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid email or password"})
	}
	applog.Audit(c, "auth.login", map[string]any{"user_id": u.ID})
	return c.JSON(fiber.Map{"token": token, "name": u.Name, "role": u.Role})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := bearerToken(c); token != "" {
		if err := h.Auth.Logout(token); err != nil {
			applog.Error(c, "auth.logout.fail", err, nil)
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}
