package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"garutech/internal/catalog"
	"garutech/internal/domain"
	applog "garutech/internal/log"
	"garutech/internal/repos"
	"garutech/internal/services"
	"garutech/internal/validate"
)

// AdminHandler is the back-office write path: product CRUD against the
// document store, plus the order and contact inboxes. Catalog reads go stale
// after a write until the store refetches, so every mutation here triggers
// a refetch.
type AdminHandler struct {
	Products *repos.ProductRepo
	Store    *catalog.Store
	Orders   *repos.OrderRepo
	Contacts *services.ContactService
}

func (h *AdminHandler) refresh(c *fiber.Ctx) {
	if err := h.Store.Refetch(c.Context()); err != nil {
		applog.Error(c, "catalog.refetch", err, nil)
	}
}

func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(p.Name) == "" || len(p.Category) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name and category required"})
	}
	if p.Price < 0 || p.StockCount < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "price and stockCount must be non-negative"})
	}
	id, err := h.Products.Add(p)
	if err != nil {
		applog.Error(c, "admin.product.create", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not create product"})
	}
	h.refresh(c)
	applog.Audit(c, "admin.product.create", map[string]any{"product_id": id})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	var patch map[string]any
	if err := c.BodyParser(&patch); err != nil || len(patch) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := h.Products.Update(id, patch); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	h.refresh(c)
	applog.Audit(c, "admin.product.update", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{"ok": true})
}

func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	if err := h.Products.SoftDelete(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	h.refresh(c)
	applog.Audit(c, "admin.product.delete", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{"ok": true})
}

func (h *AdminHandler) UpdateStock(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	count, err := strconv.Atoi(strings.TrimSpace(c.FormValue("stockCount", c.Query("stockCount"))))
	if err != nil || count < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "stockCount must be a non-negative integer"})
	}
	if err := h.Products.UpdateStock(id, count); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	h.refresh(c)
	applog.Audit(c, "admin.product.stock", map[string]any{"product_id": id, "stock": count})
	return c.JSON(fiber.Map{"ok": true})
}

// RefreshCatalog forces a fetch cycle, e.g. after out-of-band data fixes.
func (h *AdminHandler) RefreshCatalog(c *fiber.Ctx) error {
	if err := h.Store.Refetch(c.Context()); err != nil {
		applog.Error(c, "catalog.refetch", err, nil)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": h.Store.Err()})
	}
	return c.JSON(fiber.Map{"ok": true, "count": len(h.Store.Products())})
}

func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.Orders.ListLatest(validate.Limit(c.Query("limit"), 50))
	if err != nil {
		applog.Error(c, "admin.orders.list", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not list orders"})
	}
	return c.JSON(fiber.Map{"orders": orders})
}

func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	}
	status := strings.ToUpper(strings.TrimSpace(c.FormValue("status", c.Query("status"))))
	switch status {
	case "PLACED", "CONFIRMED", "SHIPPED", "DELIVERED", "CANCELED":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid status"})
	}
	if err := h.Orders.UpdateStatus(id, status); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	}
	applog.Audit(c, "admin.order.status", map[string]any{"order_id": id, "status": status})
	return c.JSON(fiber.Map{"ok": true})
}

func (h *AdminHandler) ListContacts(c *fiber.Ctx) error {
	status := c.Query("status")
	switch status {
	case "", domain.ContactStatusNew, domain.ContactStatusRead, domain.ContactStatusReplied:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid status"})
	}
	msgs, err := h.Contacts.List(status)
	if err != nil {
		applog.Error(c, "admin.contacts.list", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not list messages"})
	}
	if msgs == nil {
		msgs = []domain.ContactMessage{}
	}
	return c.JSON(fiber.Map{"contacts": msgs})
}

func (h *AdminHandler) UpdateContactStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "message not found"})
	}
	status := strings.TrimSpace(c.FormValue("status", c.Query("status")))
	switch status {
	case domain.ContactStatusNew, domain.ContactStatusRead, domain.ContactStatusReplied:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid status"})
	}
	if err := h.Contacts.UpdateStatus(id, status); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "message not found"})
	}
	return c.JSON(fiber.Map{"ok": true})
}
