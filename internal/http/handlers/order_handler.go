package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "garutech/internal/log"
	"garutech/internal/repos"
	"garutech/internal/services"
	"garutech/internal/validate"
)

type OrderHandler struct {
	Order *services.OrderService
	Repo  *repos.OrderRepo
}

type placeOrderBody struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

func (h *OrderHandler) Place(c *fiber.Ctx) error {
	sid := ensureSID(c)

	var body placeOrderBody
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

	customer := repos.Customer{
		Name: name, Email: email, Phone: phone,
		Address: body.Address, City: body.City, State: body.State, Zip: body.Zip,
	}

	placed, err := h.Order.Place(sid, customer)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cart empty"})
		}
		applog.Error(c, "order.place", err, map[string]any{"sid": sid})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not place order"})
	}
	applog.Audit(c, "order.place", map[string]any{
		"order_id": placed.OrderID,
		"total":    placed.Total,
	})
	return c.Status(fiber.StatusCreated).JSON(placed)
}

func (h *OrderHandler) View(c *fiber.Ctx) error {
	oid, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	}
	o, items, err := h.Repo.Get(oid)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	}
	// Orders are session-scoped; only the placing browser may read one back.
	if o.SessionID != c.Cookies("sid") {
		applog.Security(c, "order.view.denied", map[string]any{"order_id": oid})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	}
	return c.JSON(fiber.Map{"order": o, "items": items})
}
