package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garutech/internal/catalog"
	"garutech/internal/domain"
)

func fabricatedIndex() *catalog.Index {
	return catalog.NewIndex(
		[]domain.Category{
			{ID: "lifts", Name: "Lifts"},
			{ID: "paints", Name: "Paints"},
		},
		[]domain.SubCategory{
			{ID: "two-post", Name: "Two-Post", ParentCategory: "lifts"},
			{ID: "scissor", Name: "Scissor", ParentCategory: "lifts"},
			{ID: "primer", Name: "Primer", ParentCategory: "paints"},
		},
	)
}

func TestSubCategoriesOfPreservesDeclaredOrder(t *testing.T) {
	idx := fabricatedIndex()

	subs := idx.SubCategoriesOf("lifts")
	require.Len(t, subs, 2)
	assert.Equal(t, "two-post", subs[0].ID)
	assert.Equal(t, "scissor", subs[1].ID)

	// unknown and leaf categories yield empty, never an error
	assert.Empty(t, idx.SubCategoriesOf("ghost"))
}

func TestCategoryLookupAbsence(t *testing.T) {
	idx := fabricatedIndex()

	c, ok := idx.CategoryByID("lifts")
	require.True(t, ok)
	assert.Equal(t, "Lifts", c.Name)
	assert.Len(t, c.SubCategories, 2)

	_, ok = idx.CategoryByID("ghost")
	assert.False(t, ok)

	s, ok := idx.SubCategoryByID("primer")
	require.True(t, ok)
	assert.Equal(t, "paints", s.ParentCategory)
}

func TestDisplayNamesDegradeToRawID(t *testing.T) {
	idx := fabricatedIndex()

	assert.Equal(t, "Lifts", idx.CategoryName("lifts"))
	assert.Equal(t, "discontinued-2019", idx.CategoryName("discontinued-2019"))
	assert.Equal(t, "Primer", idx.SubCategoryName("primer"))
	assert.Equal(t, "unknown-sub", idx.SubCategoryName("unknown-sub"))
}

func TestDefaultIndexIsConsistent(t *testing.T) {
	idx := catalog.DefaultIndex()

	catIDs := map[string]bool{}
	for _, c := range idx.Categories() {
		assert.False(t, catIDs[c.ID], "duplicate category id %s", c.ID)
		catIDs[c.ID] = true
	}

	subIDs := map[string]bool{}
	for _, c := range idx.Categories() {
		for _, s := range c.SubCategories {
			assert.False(t, subIDs[s.ID], "duplicate sub-category id %s", s.ID)
			subIDs[s.ID] = true
			// every sub-category's parent resolves
			_, ok := idx.CategoryByID(s.ParentCategory)
			assert.True(t, ok, "sub-category %s has unknown parent %s", s.ID, s.ParentCategory)
		}
	}
}
