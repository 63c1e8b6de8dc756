package products

import (
	"sync/atomic"

	"github.com/nguyentranbao-ct/product-catalog/internal/models"
)

// Store owns the full product collection. It is written once by the loader and read by
// every filter-sort cycle.
type Store struct {
	products atomic.Pointer[[]models.Product]
}

func NewStore() *Store {
	s := &Store{}
	s.Replace(nil)
	return s
}

// Replace swaps the whole collection.
func (s *Store) Replace(products []models.Product) {
	if products == nil {
		products = []models.Product{}
	}
	s.products.Store(&products)
}

// All returns the current collection. Callers must treat it as read-only.
func (s *Store) All() []models.Product {
	return *s.products.Load()
}

func (s *Store) Len() int {
	return len(s.All())
}
