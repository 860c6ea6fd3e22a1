package handlers

import (
	"github.com/gofiber/fiber/v2"

	"garutech/internal/catalog"
	"garutech/internal/domain"
	applog "garutech/internal/log"
	"garutech/internal/validate"
)

type CatalogHandler struct {
	Catalog *catalog.Engine
}

// listResponse wraps every product listing with the catalog store's
// passthrough state so the storefront can render spinners and fetch errors.
type listResponse struct {
	Products []domain.Product `json:"products"`
	Count    int              `json:"count"`
	Loading  bool             `json:"loading"`
	Error    string           `json:"error,omitempty"`
}

func (h *CatalogHandler) list(products []domain.Product) listResponse {
	if products == nil {
		products = []domain.Product{}
	}
	st := h.Catalog.Store()
	return listResponse{Products: products, Count: len(products), Loading: st.Loading(), Error: st.Err()}
}

// Products lists the catalog, optionally filtered by category and
// sub-category query params.
func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	cat := c.Query("category")
	if cat == "" {
		return c.JSON(h.list(h.Catalog.All()))
	}
	if _, ok := validate.ID(cat); !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "category"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category"})
	}
	sub := c.Query("subCategory")
	if sub != "" {
		if _, ok := validate.ID(sub); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "subCategory"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid subCategory"})
		}
	}
	products := h.Catalog.ByFilter(domain.CategoryFilter{Category: cat, SubCategory: sub})
	return c.JSON(h.list(products))
}

func (h *CatalogHandler) Product(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	p, ok := h.Catalog.ByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(p)
}

func (h *CatalogHandler) Featured(c *fiber.Ctx) error {
	limit := validate.Limit(c.Query("limit"), catalog.DefaultFeaturedLimit)
	return c.JSON(h.list(h.Catalog.Featured(limit)))
}

func (h *CatalogHandler) Related(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	limit := validate.Limit(c.Query("limit"), catalog.DefaultRelatedLimit)
	return c.JSON(h.list(h.Catalog.Related(id, limit)))
}

// Availability summarizes a product's stock for the detail page.
func (h *CatalogHandler) Availability(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Query("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	p, ok := h.Catalog.ByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	a := domain.Availability{Status: "OUT_OF_STOCK"}
	if p.InStock {
		a.Qty = p.StockCount
		switch {
		case p.StockCount >= 5:
			a.Status = "IN_STOCK"
		case p.StockCount > 0:
			a.Status = "LOW_STOCK"
		}
	}
	return c.JSON(a)
}

func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": h.Catalog.Index().Categories()})
}

func (h *CatalogHandler) Category(c *fiber.Ctx) error {
	id := c.Params("id")
	cat, ok := h.Catalog.Index().CategoryByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "category not found"})
	}
	return c.JSON(cat)
}

// SubCategories returns a category's sub-categories; unknown or leaf
// categories yield an empty list, not an error.
func (h *CatalogHandler) SubCategories(c *fiber.Ctx) error {
	subs := h.Catalog.Index().SubCategoriesOf(c.Params("id"))
	if subs == nil {
		subs = []domain.SubCategory{}
	}
	return c.JSON(fiber.Map{"subCategories": subs})
}
