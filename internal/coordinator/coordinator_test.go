package coordinator

import (
	"context"
	"testing"

	"github.com/nguyentranbao-ct/product-catalog/internal/config"
	"github.com/nguyentranbao-ct/product-catalog/internal/models"
	"github.com/nguyentranbao-ct/product-catalog/internal/overlay"
	"github.com/nguyentranbao-ct/product-catalog/internal/render"
	"github.com/nguyentranbao-ct/product-catalog/internal/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeCatalog struct {
	products []models.Product
	loaded   []models.Product
	loads    int
}

func (f *fakeCatalog) Load(ctx context.Context) {
	f.loads++
	f.loaded = f.products
}

func (f *fakeCatalog) Count() int { return len(f.loaded) }

func (f *fakeCatalog) Select(c models.Criteria, tag language.Tag) []models.Product {
	return usecase.SelectWithLocale(f.loaded, c, tag)
}

func newCoordinator(t *testing.T, products []models.Product, opts ...Option) (*Coordinator, *render.Recorder, *fakeCatalog) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Catalog.Locale = "pt-BR"
	cfg.Catalog.CurrencySymbol = "R$"
	cfg.Catalog.OrderPhone = "5500000000000"
	cfg.Catalog.OrderMessage = "Quero {{.Name}}"
	builder, err := render.NewCardBuilder(cfg)
	require.NoError(t, err)

	catalog := &fakeCatalog{products: products}
	rec := &render.Recorder{}
	c := New(catalog, builder, rec, opts...)
	require.NoError(t, c.Start(context.Background()))
	return c, rec, catalog
}

func item(name, desc string, price int64) models.Product {
	return models.Product{Name: name, Description: desc, Price: decimal.NewFromInt(price), ImageURL: "img/" + name}
}

func TestStartRendersFullCollection(t *testing.T) {
	p := []models.Product{item("Vaso", "barro", 30), item("Caneca", "azul", 10), item("Tapete", "sisal", 20)}
	c, rec, catalog := newCoordinator(t, p)

	assert.Equal(t, 1, catalog.loads)
	assert.Equal(t, 1, rec.Renders)
	assert.Equal(t, []string{"Vaso", "Caneca", "Tapete"}, rec.Names())
	assert.Equal(t, overlay.Hidden, c.Overlay())
}

func TestStartWithEmptyCatalog(t *testing.T) {
	c, rec, _ := newCoordinator(t, nil)
	assert.Empty(t, rec.Names())
	assert.Empty(t, c.Cards())
}

func TestPriceSortScenario(t *testing.T) {
	c, rec, _ := newCoordinator(t, []models.Product{item("A", "", 10), item("B", "", 5)})

	require.NoError(t, c.Dispatch(SortChanged{Key: models.SortPriceAsc}))
	assert.Equal(t, []string{"B", "A"}, rec.Names())

	require.NoError(t, c.Dispatch(SortChanged{Key: models.SortPriceDesc}))
	assert.Equal(t, []string{"A", "B"}, rec.Names())
}

func TestSearchAndSortCompose(t *testing.T) {
	p := []models.Product{item("Vaso", "barro azul", 30), item("Caneca", "azul", 10), item("Tapete", "sisal", 20)}
	c, rec, _ := newCoordinator(t, p)

	require.NoError(t, c.Dispatch(SearchChanged{Text: "  AZUL "}))
	assert.Equal(t, "AZUL", c.Criteria().SearchText)
	assert.Equal(t, []string{"Vaso", "Caneca"}, rec.Names())

	require.NoError(t, c.Dispatch(SortChanged{Key: models.SortNameAsc}))
	assert.Equal(t, []string{"Caneca", "Vaso"}, rec.Names())

	require.NoError(t, c.Dispatch(SearchChanged{Text: ""}))
	assert.Equal(t, []string{"Caneca", "Tapete", "Vaso"}, rec.Names())
	assert.Equal(t, models.SortNameAsc, c.Criteria().Sort)

	require.NoError(t, c.Dispatch(SortChanged{Key: "bogus"}))
	assert.Equal(t, []string{"Vaso", "Caneca", "Tapete"}, rec.Names())
}

func TestInitialCriteria(t *testing.T) {
	p := []models.Product{item("A", "", 10), item("B", "", 5)}
	c, rec, _ := newCoordinator(t, p,
		WithCriteria(models.Criteria{Sort: models.SortPriceAsc}),
		WithLocale(language.AmericanEnglish),
	)
	assert.Equal(t, []string{"B", "A"}, rec.Names())
	assert.Equal(t, "R$ 5.00", c.Cards()[0].Price)
	assert.Equal(t, language.AmericanEnglish, c.Locale())
}

func TestOverlayTransitions(t *testing.T) {
	p := []models.Product{item("A", "", 10), item("B", "", 5)}
	c, _, _ := newCoordinator(t, p, WithCriteria(models.Criteria{Sort: models.SortPriceAsc}))

	require.NoError(t, c.Dispatch(ImageClicked{Index: 0}))
	assert.Equal(t, overlay.Visible, c.Overlay())
	preview, ok := c.Preview()
	require.True(t, ok)
	assert.Equal(t, overlay.Preview{ImageURL: "img/B", Name: "B", Price: "R$ 5,00", Index: 0}, preview)
	assert.Equal(t, "B - R$ 5,00", preview.Caption())

	require.NoError(t, c.Dispatch(OverlayClicked{OnBackground: false}))
	assert.Equal(t, overlay.Visible, c.Overlay())

	require.NoError(t, c.Dispatch(OverlayClicked{OnBackground: true}))
	assert.Equal(t, overlay.Hidden, c.Overlay())

	require.NoError(t, c.Dispatch(ImageClicked{Index: 1}))
	preview, _ = c.Preview()
	assert.Equal(t, "A", preview.Name)

	require.NoError(t, c.Dispatch(SearchChanged{Text: "A"}))
	assert.Equal(t, overlay.Visible, c.Overlay())

	require.NoError(t, c.Dispatch(CloseClicked{}))
	assert.Equal(t, overlay.Hidden, c.Overlay())
	_, ok = c.Preview()
	assert.False(t, ok)

	require.NoError(t, c.Dispatch(CloseClicked{}))
	assert.Equal(t, overlay.Hidden, c.Overlay())
}

func TestImageClickedOutOfRange(t *testing.T) {
	c, _, _ := newCoordinator(t, []models.Product{item("A", "", 10)})

	for _, idx := range []int{-1, 1, 5} {
		err := c.Dispatch(ImageClicked{Index: idx})
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrCardNotFound)
		assert.Equal(t, overlay.Hidden, c.Overlay())
	}
}

func TestErrCardNotFoundStatus(t *testing.T) {
	assert.Equal(t, codes.NotFound, status.Code(models.ErrCardNotFound))
}

func TestRenderRoundTrip(t *testing.T) {
	p := []models.Product{item("Vaso", "", 30), item("Caneca", "", 10), item("Tapete", "", 20)}
	c, rec, _ := newCoordinator(t, p)

	for _, key := range models.SortKeys {
		require.NoError(t, c.Dispatch(SortChanged{Key: key}))
		want := models.Names(usecase.SelectWithLocale(p, c.Criteria(), c.Locale()))
		assert.Equal(t, want, rec.Names(), key)
	}
}
