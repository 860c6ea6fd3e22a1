package catalog

import (
	"context"
	"sync"

	"garutech/internal/domain"
)

// Fetcher supplies the full product list. Any data source returning the same
// shape is substitutable; the store does not care how the records are obtained.
type Fetcher interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context) ([]domain.Product, error)

func (f FetcherFunc) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	return f(ctx)
}

// Store caches the last successfully fetched product list. Refetch replaces
// the whole snapshot on success; on failure the prior snapshot is kept and the
// error string is set. It is the only writer of the product list.
type Store struct {
	fetcher Fetcher

	mu       sync.RWMutex
	products []domain.Product
	loading  bool
	err      string
}

func NewStore(f Fetcher) *Store {
	return &Store{fetcher: f}
}

// Refetch performs one fetch cycle. The returned error mirrors the Err field
// so callers may either inspect state or handle the error directly.
func (s *Store) Refetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	products, err := s.fetcher.FetchProducts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = "failed to fetch products"
		return err
	}
	s.products = products
	s.err = ""
	return nil
}

// Products returns the current snapshot. The slice is replaced wholesale on
// refetch and never mutated in place, so readers may hold it across calls.
func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last fetch error message, or "" after a successful fetch.
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}
