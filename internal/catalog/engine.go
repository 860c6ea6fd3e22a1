package catalog

import (
	"sort"

	"garutech/internal/domain"
)

// Default result sizes for the curated views.
const (
	DefaultFeaturedLimit = 3
	DefaultRelatedLimit  = 4
)

// Engine answers catalog queries over the store's current snapshot. Every
// operation is a pure derivation: it reads the snapshot once, never mutates
// it, and expresses "not found" as absence rather than an error.
type Engine struct {
	store *Store
	index *Index
}

// NewEngine wires the engine to its catalog store and taxonomy. Both are
// required; a nil collaborator is a wiring bug, fatal at startup.
func NewEngine(store *Store, index *Index) *Engine {
	if store == nil || index == nil {
		panic("catalog: NewEngine requires a store and an index")
	}
	return &Engine{store: store, index: index}
}

// Index returns the taxonomy the engine was built with.
func (e *Engine) Index() *Index {
	return e.index
}

// Store returns the backing catalog store.
func (e *Engine) Store() *Store {
	return e.store
}

// All returns the current snapshot.
func (e *Engine) All() []domain.Product {
	return e.store.Products()
}

// ByCategory returns products whose category set contains categoryID,
// preserving snapshot order.
func (e *Engine) ByCategory(categoryID string) []domain.Product {
	var out []domain.Product
	for _, p := range e.store.Products() {
		if p.Category.Contains(categoryID) {
			out = append(out, p)
		}
	}
	return out
}

// BySubCategory narrows ByCategory to products whose sub-category set contains
// subCategoryID. A product without a sub-category never matches.
func (e *Engine) BySubCategory(categoryID, subCategoryID string) []domain.Product {
	var out []domain.Product
	for _, p := range e.store.Products() {
		if p.Category.Contains(categoryID) && p.SubCategory.Contains(subCategoryID) {
			out = append(out, p)
		}
	}
	return out
}

// ByFilter is the single entry point for category browsing: it delegates to
// BySubCategory when the filter names one, else to ByCategory.
func (e *Engine) ByFilter(f domain.CategoryFilter) []domain.Product {
	if f.SubCategory != "" {
		return e.BySubCategory(f.Category, f.SubCategory)
	}
	return e.ByCategory(f.Category)
}

// ByID returns the product with the given id. ok is false when no such
// product is in the snapshot.
func (e *Engine) ByID(id string) (domain.Product, bool) {
	for _, p := range e.store.Products() {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Featured returns up to limit products for the storefront's featured strip.
// Explicitly curated products (Featured flag) win, in snapshot order; only
// when none are curated does it fall back to the top-rated products, via a
// stable sort of a copy so the snapshot itself is never reordered.
func (e *Engine) Featured(limit int) []domain.Product {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	products := e.store.Products()

	var curated []domain.Product
	for _, p := range products {
		if p.Featured {
			curated = append(curated, p)
		}
	}
	if len(curated) > 0 {
		return truncate(curated, limit)
	}

	byRating := make([]domain.Product, len(products))
	copy(byRating, products)
	sort.SliceStable(byRating, func(i, j int) bool {
		return byRating[i].Rating > byRating[j].Rating
	})
	return truncate(byRating, limit)
}

// Related returns up to limit products to show alongside productID. Products
// sharing the anchor's primary category or primary sub-category come first,
// in snapshot order; the set is then topped up from the rest of the catalog.
// An unknown anchor degrades to the first limit other products.
func (e *Engine) Related(productID string, limit int) []domain.Product {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	products := e.store.Products()

	anchor, ok := e.ByID(productID)
	if !ok {
		var out []domain.Product
		for _, p := range products {
			if p.ID != productID {
				out = append(out, p)
			}
		}
		return truncate(out, limit)
	}

	primaryCat, _ := anchor.Category.Primary()
	primarySub, hasSub := anchor.SubCategory.Primary()

	var related []domain.Product
	seen := map[string]bool{anchor.ID: true}
	for _, p := range products {
		if seen[p.ID] {
			continue
		}
		if p.Category.Contains(primaryCat) || (hasSub && p.SubCategory.Contains(primarySub)) {
			related = append(related, p)
			seen[p.ID] = true
		}
	}

	for _, p := range products {
		if len(related) >= limit {
			break
		}
		if seen[p.ID] {
			continue
		}
		related = append(related, p)
		seen[p.ID] = true
	}

	return truncate(related, limit)
}

func truncate(products []domain.Product, limit int) []domain.Product {
	if len(products) > limit {
		return products[:limit]
	}
	return products
}
