package catalog

import (
	"strings"

	"garutech/internal/domain"
)

// Search matches term (case-insensitive) against a product's name,
// description, brand, and category/sub-category ids. It is a snapshot
// derivation like the engine queries; the view layer applies any further
// sorting or price filtering.
func Search(products []domain.Product, term string) []domain.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	var out []domain.Product
	for _, p := range products {
		if matchesTerm(p, term) {
			out = append(out, p)
		}
	}
	return out
}

func matchesTerm(p domain.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Brand), term) {
		return true
	}
	for _, c := range p.Category {
		if strings.Contains(strings.ToLower(c), term) {
			return true
		}
	}
	for _, s := range p.SubCategory {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}
