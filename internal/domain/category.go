package domain

// Category is a node of the static storefront taxonomy. The taxonomy is
// process-wide configuration: loaded once, never mutated.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Icon          string        `json:"icon"`
	SubCategories []SubCategory `json:"subCategories,omitempty"`
}

// SubCategory declares its parent by id. The back-reference is informational,
// not an ownership edge; sub-category ids are globally unique.
type SubCategory struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ParentCategory string `json:"parentCategory"`
	Description    string `json:"description,omitempty"`
}
