package products

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nguyentranbao-ct/product-catalog/internal/config"
	"github.com/nguyentranbao-ct/product-catalog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	products []models.Product
	err      error
	calls    int
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Fetch(ctx context.Context) ([]models.Product, error) {
	s.calls++
	return s.products, s.err
}

func newTestLoader(t *testing.T, src Source, store *Store) Loader {
	t.Helper()
	cfg := &config.Config{}
	cfg.Catalog.LoadTimeout = time.Second
	l, err := NewLoader(cfg, src, store)
	require.NoError(t, err)
	return l
}

func TestLoaderStoresProducts(t *testing.T) {
	store := NewStore()
	src := &stubSource{products: []models.Product{{Name: "A"}, {Name: "B"}}}

	newTestLoader(t, src, store).Load(context.Background())

	assert.Equal(t, 1, src.calls)
	assert.Equal(t, []string{"A", "B"}, models.Names(store.All()))
}

func TestLoaderFailureLeavesEmptyCollection(t *testing.T) {
	store := NewStore()
	store.Replace([]models.Product{{Name: "stale"}})
	src := &stubSource{err: errors.New("connection refused")}

	assert.NotPanics(t, func() {
		newTestLoader(t, src, store).Load(context.Background())
	})

	assert.Equal(t, 1, src.calls, "no retry")
	assert.Equal(t, 0, store.Len())
	assert.NotNil(t, store.All())
}
