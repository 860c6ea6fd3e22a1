package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garutech/internal/catalog"
	"garutech/internal/domain"
)

// flakyFetcher serves queued results so tests can script fetch cycles.
type flakyFetcher struct {
	results [][]domain.Product
	errs    []error
	calls   int
}

func (f *flakyFetcher) FetchProducts(context.Context) ([]domain.Product, error) {
	i := f.calls
	f.calls++
	return f.results[i], f.errs[i]
}

func TestStoreReplaceOnSuccessPreserveOnFailure(t *testing.T) {
	first := []domain.Product{{ID: "a"}, {ID: "b"}}
	second := []domain.Product{{ID: "c"}}
	fetcher := &flakyFetcher{
		results: [][]domain.Product{first, nil, second},
		errs:    []error{nil, errors.New("connection reset"), nil},
	}
	store := catalog.NewStore(fetcher)

	// before any fetch: empty, no error
	assert.Empty(t, store.Products())
	assert.Empty(t, store.Err())
	assert.False(t, store.Loading())

	// success: snapshot replaced
	require.NoError(t, store.Refetch(context.Background()))
	assert.Equal(t, first, store.Products())
	assert.Empty(t, store.Err())

	// failure: prior snapshot kept, error surfaced, loading cleared
	err := store.Refetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, first, store.Products())
	assert.Equal(t, "failed to fetch products", store.Err())
	assert.False(t, store.Loading())

	// recovery: snapshot replaced wholesale, error cleared
	require.NoError(t, store.Refetch(context.Background()))
	assert.Equal(t, second, store.Products())
	assert.Empty(t, store.Err())
}
