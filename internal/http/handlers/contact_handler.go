package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"garutech/internal/domain"
	applog "garutech/internal/log"
	"garutech/internal/services"
	"garutech/internal/validate"
)

type ContactHandler struct {
	Contacts *services.ContactService
}

type contactBody struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var body contactBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	name, ok := validate.Name(body.Name)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "name"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name must be 1-60 characters"})
	}
	email, ok := validate.Email(body.Email)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid email"})
	}
	phone := ""
	if body.Phone != "" {
		p, ok := validate.Phone(body.Phone)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "phone"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid phone"})
		}
		phone = p
	}
	msg := strings.TrimSpace(body.Message)
	if msg == "" || len(msg) > 4000 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "message must be 1-4000 characters"})
	}

	id, err := h.Contacts.Submit(domain.ContactMessage{
		Name: name, Email: email, Phone: phone,
		Subject: strings.TrimSpace(body.Subject), Message: msg,
	})
	if err != nil {
		applog.Error(c, "contact.submit", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not submit message"})
	}
	applog.Audit(c, "contact.submit", map[string]any{"contact_id": id})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}
