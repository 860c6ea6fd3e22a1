package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "garutech/internal/log"
	"garutech/internal/services"
)

func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil || u.Role != "ADMIN" {
			applog.Security(c, "access.denied.admin", map[string]any{"sid": sid})
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "access denied"})
		}
		c.Locals("user", u)
		return c.Next()
	}
}
