package catalog

import "garutech/internal/domain"

// Index is the static category/sub-category taxonomy. It is built once and
// never mutated; lookups for unknown ids return absence, never an error.
type Index struct {
	categories []domain.Category
	subs       []domain.SubCategory
	catByID    map[string]domain.Category
	subByID    map[string]domain.SubCategory
}

// NewIndex builds an Index from category and sub-category definitions. Each
// category's SubCategories field is populated from subs in declared order, so
// callers pass the flat lists only.
func NewIndex(categories []domain.Category, subs []domain.SubCategory) *Index {
	idx := &Index{
		subs:    subs,
		catByID: make(map[string]domain.Category, len(categories)),
		subByID: make(map[string]domain.SubCategory, len(subs)),
	}
	for _, s := range subs {
		idx.subByID[s.ID] = s
	}
	idx.categories = make([]domain.Category, len(categories))
	for i, c := range categories {
		c.SubCategories = subsOf(subs, c.ID)
		idx.categories[i] = c
		idx.catByID[c.ID] = c
	}
	return idx
}

func subsOf(subs []domain.SubCategory, parentID string) []domain.SubCategory {
	var out []domain.SubCategory
	for _, s := range subs {
		if s.ParentCategory == parentID {
			out = append(out, s)
		}
	}
	return out
}

// Categories returns the taxonomy in declared order.
func (idx *Index) Categories() []domain.Category {
	return idx.categories
}

// CategoryByID looks up a category. ok is false for unknown ids.
func (idx *Index) CategoryByID(id string) (domain.Category, bool) {
	c, ok := idx.catByID[id]
	return c, ok
}

// SubCategoryByID looks up a sub-category. ok is false for unknown ids.
func (idx *Index) SubCategoryByID(id string) (domain.SubCategory, bool) {
	s, ok := idx.subByID[id]
	return s, ok
}

// SubCategoriesOf returns the sub-categories whose parent is categoryID, in
// declared order. Unknown and leaf categories yield an empty slice.
func (idx *Index) SubCategoriesOf(categoryID string) []domain.SubCategory {
	return subsOf(idx.subs, categoryID)
}

// CategoryName returns the display name for a category id, degrading to the
// raw id when it is not in the taxonomy. Catalog records may reference ids the
// taxonomy no longer carries; display must not break on them.
func (idx *Index) CategoryName(id string) string {
	if c, ok := idx.catByID[id]; ok {
		return c.Name
	}
	return id
}

// SubCategoryName is CategoryName for sub-category ids.
func (idx *Index) SubCategoryName(id string) string {
	if s, ok := idx.subByID[id]; ok {
		return s.Name
	}
	return id
}
