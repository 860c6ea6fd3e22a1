package handlers

import (
	"github.com/gofiber/fiber/v2"

	"garutech/internal/catalog"
	"garutech/internal/domain"
	applog "garutech/internal/log"
	"garutech/internal/validate"
)

type SearchHandler struct {
	Catalog *catalog.Engine
}

func (h *SearchHandler) Search(c *fiber.Ctx) error {
	rawQ := c.Query("q")
	if rawQ == "" {
		return c.JSON(fiber.Map{"q": "", "products": []domain.Product{}, "count": 0})
	}
	q, ok := validate.Q(rawQ)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "enter a valid keyword (letters/numbers only)"})
	}

	products := catalog.Search(h.Catalog.All(), q)
	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(fiber.Map{"q": q, "products": products, "count": len(products)})
}
