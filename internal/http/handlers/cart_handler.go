package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "garutech/internal/log"
	"garutech/internal/services"
	"garutech/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // enable behind TLS
		})
	}
	return sid
}

type cartAddBody struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// clampQty mirrors validate.Qty for numeric payloads.
func clampQty(n int) int {
	if n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var body cartAddBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	productID, ok := validate.ID(body.ProductID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	qty := clampQty(body.Qty)

	if err := h.Cart.Add(sid, productID, qty); err != nil {
		if errors.Is(err, services.ErrUnknownProduct) || errors.Is(err, services.ErrOutOfStock) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		applog.Error(c, "cart.add", err, map[string]any{"product": productID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not add to cart"})
	}
	return h.View(c)
}

func (h *CartHandler) SetQty(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var body cartAddBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	productID, ok := validate.ID(body.ProductID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	if err := h.Cart.SetQty(sid, productID, body.Qty); err != nil {
		applog.Error(c, "cart.setqty", err, map[string]any{"product": productID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not update cart"})
	}
	return h.View(c)
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	cv, err := h.Cart.View(sid)
	if err != nil {
		applog.Error(c, "cart.view", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load cart"})
	}
	return c.JSON(cv)
}
