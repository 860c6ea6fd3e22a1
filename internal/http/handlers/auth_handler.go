package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "garutech/internal/log"
	"garutech/internal/services"
	"garutech/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)

	var body loginBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	email, ok := validate.Email(body.Email)
	if !ok || body.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password required"})
	}

	u, err := h.Auth.Login(sid, email, body.Password)
	if err != nil {
		applog.Security(c, "login.fail", map[string]any{"email": email})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid email or password"})
	}
	applog.Audit(c, "login.ok", map[string]any{"user_id": u.ID})
	return c.JSON(fiber.Map{"name": u.Name, "role": u.Role})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := c.Cookies("sid")
	if sid != "" {
		_ = h.Auth.Logout(sid)
	}
	return c.JSON(fiber.Map{"ok": true})
}
