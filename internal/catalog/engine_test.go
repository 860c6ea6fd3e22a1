package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garutech/internal/catalog"
	"garutech/internal/domain"
)

func newTestEngine(t *testing.T, products []domain.Product) *catalog.Engine {
	t.Helper()
	store := catalog.NewStore(catalog.FetcherFunc(func(context.Context) ([]domain.Product, error) {
		return products, nil
	}))
	require.NoError(t, store.Refetch(context.Background()))
	return catalog.NewEngine(store, catalog.DefaultIndex())
}

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestByCategoryScalarAndList(t *testing.T) {
	eng := newTestEngine(t, []domain.Product{
		{ID: "a", Category: domain.IDList{"x"}},
		{ID: "b", Category: domain.IDList{"x", "y"}},
		{ID: "c", Category: domain.IDList{"y"}},
	})

	assert.Equal(t, []string{"a", "b"}, ids(eng.ByCategory("x")))
	assert.Equal(t, []string{"b", "c"}, ids(eng.ByCategory("y")))
	assert.Empty(t, eng.ByCategory("zzz"))
}

func TestBySubCategoryNarrowsCategory(t *testing.T) {
	eng := newTestEngine(t, []domain.Product{
		{ID: "a", Category: domain.IDList{"x"}, SubCategory: domain.IDList{"s1"}},
		{ID: "b", Category: domain.IDList{"x"}, SubCategory: domain.IDList{"s2"}},
		{ID: "c", Category: domain.IDList{"x"}}, // no sub-category: never matches
		{ID: "d", Category: domain.IDList{"y"}, SubCategory: domain.IDList{"s1"}},
	})

	got := eng.BySubCategory("x", "s1")
	assert.Equal(t, []string{"a"}, ids(got))

	// sub-category filtering never widens the category filter
	inCat := map[string]bool{}
	for _, p := range eng.ByCategory("x") {
		inCat[p.ID] = true
	}
	for _, p := range got {
		assert.True(t, inCat[p.ID])
	}

	assert.Empty(t, eng.BySubCategory("x", "missing"))
	assert.Empty(t, eng.BySubCategory("zzz", "s1"))
}

func TestByFilterDelegates(t *testing.T) {
	eng := newTestEngine(t, []domain.Product{
		{ID: "a", Category: domain.IDList{"x"}, SubCategory: domain.IDList{"s1"}},
		{ID: "b", Category: domain.IDList{"x"}},
	})

	assert.Equal(t,
		ids(eng.ByCategory("x")),
		ids(eng.ByFilter(domain.CategoryFilter{Category: "x"})))
	assert.Equal(t,
		ids(eng.BySubCategory("x", "s1")),
		ids(eng.ByFilter(domain.CategoryFilter{Category: "x", SubCategory: "s1"})))
}

func TestByID(t *testing.T) {
	eng := newTestEngine(t, []domain.Product{
		{ID: "a", Category: domain.IDList{"x"}},
		{ID: "b", Category: domain.IDList{"y"}},
	})

	p, ok := eng.ByID("b")
	require.True(t, ok)
	assert.Equal(t, "b", p.ID)

	_, ok = eng.ByID("d")
	assert.False(t, ok)
}

func TestFeaturedCurationWinsOverRating(t *testing.T) {
	eng := newTestEngine(t, []domain.Product{
		{ID: "top1", Rating: 5.0},
		{ID: "curated", Rating: 2.0, Featured: true},
		{ID: "top2", Rating: 4.9},
		{ID: "top3", Rating: 4.8},
	})

	got := eng.Featured(3)
	assert.Equal(t, []string{"curated"}, ids(got))
}

func TestFeaturedFallbackSortsByRatingStable(t *testing.T) {
	eng := newTestEngine(t, []domain.Product{
		{ID: "a", Rating: 4.0},
		{ID: "b", Rating: 5.0},
		{ID: "c", Rating: 4.0}, // ties keep original relative order
		{ID: "d"},              // absent rating sorts last
	})

	assert.Equal(t, []string{"b", "a", "c"}, ids(eng.Featured(3)))

	// the snapshot itself is never reordered
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(eng.All()))
}

func TestFeaturedLimitAndNoDuplicates(t *testing.T) {
	eng := newTestEngine(t, []domain.Product{
		{ID: "a", Featured: true},
		{ID: "b", Featured: true},
		{ID: "c", Featured: true},
		{ID: "d", Featured: true},
	})

	got := eng.Featured(0) // zero falls back to the default limit
	assert.Len(t, got, catalog.DefaultFeaturedLimit)
	seen := map[string]bool{}
	for _, p := range got {
		assert.False(t, seen[p.ID])
		seen[p.ID] = true
	}
}

func TestRelatedCategoryFirstThenTopUp(t *testing.T) {
	eng := newTestEngine(t, []domain.Product{
		{ID: "anchor", Category: domain.IDList{"A"}},
		{ID: "u1", Category: domain.IDList{"Z"}},
		{ID: "a1", Category: domain.IDList{"A"}},
		{ID: "u2", Category: domain.IDList{"Z"}},
		{ID: "a2", Category: domain.IDList{"A"}},
		{ID: "u3", Category: domain.IDList{"Z"}},
		{ID: "u4", Category: domain.IDList{"Z"}},
		{ID: "u5", Category: domain.IDList{"Z"}},
	})

	got := eng.Related("anchor", 4)
	// same-category products first in snapshot order, then filler
	assert.Equal(t, []string{"a1", "a2", "u1", "u2"}, ids(got))
	assert.NotContains(t, ids(got), "anchor")
}

func TestRelatedSharedSubCategoryQualifies(t *testing.T) {
	eng := newTestEngine(t, []domain.Product{
		{ID: "anchor", Category: domain.IDList{"A"}, SubCategory: domain.IDList{"s"}},
		{ID: "other", Category: domain.IDList{"B"}, SubCategory: domain.IDList{"s"}},
		{ID: "stranger", Category: domain.IDList{"B"}},
	})

	got := eng.Related("anchor", 1)
	assert.Equal(t, []string{"other"}, ids(got))
}

func TestRelatedUsesPrimaryCategoryOnly(t *testing.T) {
	// anchor's primary category is the FIRST list element; "B" is secondary
	eng := newTestEngine(t, []domain.Product{
		{ID: "anchor", Category: domain.IDList{"A", "B"}},
		{ID: "bOnly", Category: domain.IDList{"B"}},
		{ID: "aOnly", Category: domain.IDList{"A"}},
	})

	got := eng.Related("anchor", 1)
	assert.Equal(t, []string{"aOnly"}, ids(got))
}

func TestRelatedUnknownAnchorFallsBack(t *testing.T) {
	eng := newTestEngine(t, []domain.Product{
		{ID: "a", Category: domain.IDList{"x"}},
		{ID: "b", Category: domain.IDList{"y"}},
		{ID: "c", Category: domain.IDList{"z"}},
	})

	got := eng.Related("ghost", 2)
	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func TestRelatedLengthBound(t *testing.T) {
	eng := newTestEngine(t, []domain.Product{
		{ID: "anchor", Category: domain.IDList{"A"}},
		{ID: "a1", Category: domain.IDList{"A"}},
		{ID: "u1", Category: domain.IDList{"Z"}},
	})

	// min(limit, catalogSize-1)
	assert.Len(t, eng.Related("anchor", 4), 2)
	assert.Len(t, eng.Related("anchor", 1), 1)
}

func TestQueriesAreIdempotent(t *testing.T) {
	eng := newTestEngine(t, []domain.Product{
		{ID: "a", Category: domain.IDList{"x"}, Rating: 3},
		{ID: "b", Category: domain.IDList{"x", "y"}, Rating: 5},
		{ID: "c", Category: domain.IDList{"y"}, SubCategory: domain.IDList{"s"}, Rating: 4},
	})

	assert.Equal(t, ids(eng.ByCategory("x")), ids(eng.ByCategory("x")))
	assert.Equal(t, ids(eng.Featured(2)), ids(eng.Featured(2)))
	assert.Equal(t, ids(eng.Related("a", 2)), ids(eng.Related("a", 2)))
	assert.Equal(t, []string{"a", "b", "c"}, ids(eng.All()))
}

func TestNewEngineRequiresCollaborators(t *testing.T) {
	assert.Panics(t, func() { catalog.NewEngine(nil, catalog.DefaultIndex()) })
	assert.Panics(t, func() { catalog.NewEngine(catalog.NewStore(nil), nil) })
}
