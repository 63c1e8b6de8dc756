package render

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/nguyentranbao-ct/product-catalog/internal/models"
	"github.com/nguyentranbao-ct/product-catalog/internal/overlay"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestPreviewHref(t *testing.T) {
	c := models.Criteria{SearchText: "vaso azul", Sort: models.SortPriceDesc}
	assert.Equal(t, "?preview=2&q=vaso+azul&sort=price-desc", PreviewHref(c, 2))
	assert.Equal(t, "?q=vaso+azul&sort=price-desc", CloseHref(c))
}

func TestSortOptions(t *testing.T) {
	opts := SortOptions(models.SortNameAsc)
	require.Len(t, opts, len(models.SortKeys))
	for _, o := range opts {
		assert.Equal(t, o.Key == models.SortNameAsc, o.Selected, o.Key)
	}
}

func TestHTMLRenderer(t *testing.T) {
	page, err := NewHTMLPage()
	require.NoError(t, err)

	b := newBuilder(t)
	cards, err := b.Build([]models.Product{
		{Name: "Vaso", Description: "Cerâmica", Price: decimal.NewFromInt(10), ImageURL: "img/vaso.jpg"},
		{Name: "Caneca", Description: "Azul", Price: decimal.NewFromInt(5), ImageURL: "img/caneca.jpg"},
	}, language.Und)
	require.NoError(t, err)

	t.Run("overlay hidden", func(t *testing.T) {
		r := page.Renderer()
		require.NoError(t, r.Render(cards))

		var buf bytes.Buffer
		require.NoError(t, r.Write(&buf, View{
			Criteria: models.Criteria{Sort: models.SortPriceAsc},
			Total:    3,
			Locale:   language.BrazilianPortuguese,
		}))
		out := buf.String()

		assert.Contains(t, out, `<html lang="pt-BR">`)
		assert.Contains(t, out, `id="catalog"`)
		assert.Contains(t, out, `id="search"`)
		assert.Contains(t, out, `id="sort"`)
		assert.Contains(t, out, `<option value="price-asc" selected>`)
		assert.Contains(t, out, `id="overlay" class="overlay" hidden`)
		assert.NotContains(t, out, `id="close"`)
		assert.Contains(t, out, "2 de 3 produtos")
		assert.Contains(t, out, `src="img/vaso.jpg"`)
		assert.Contains(t, out, "R$ 10,00")
		assert.Contains(t, out, `href="?preview=1&amp;q=&amp;sort=price-asc"`)
		assert.Less(t, bytes.Index(buf.Bytes(), []byte("Vaso")), bytes.Index(buf.Bytes(), []byte("Caneca")))
	})

	t.Run("overlay visible", func(t *testing.T) {
		r := page.Renderer()
		require.NoError(t, r.Render(cards))

		var buf bytes.Buffer
		require.NoError(t, r.Write(&buf, View{
			Criteria: models.Criteria{SearchText: "a"},
			Preview:  &overlay.Preview{ImageURL: "img/caneca.jpg", Name: "Caneca", Price: "R$ 5,00", Index: 1},
			Total:    2,
		}))
		out := buf.String()

		assert.NotContains(t, out, `class="overlay" hidden`)
		assert.Contains(t, out, `id="close"`)
		assert.Contains(t, out, `id="overlay-image" src="img/caneca.jpg"`)
		assert.Contains(t, out, `<span class="name">Caneca</span> <span class="price">R$ 5,00</span>`)
		assert.Contains(t, out, `href="?q=a&amp;sort="`)
	})

	t.Run("escapes product text", func(t *testing.T) {
		r := page.Renderer()
		require.NoError(t, r.Render([]Card{{Name: "<b>x</b>"}}))

		var buf bytes.Buffer
		require.NoError(t, r.Write(&buf, View{}))
		assert.NotContains(t, buf.String(), "<b>x</b>")
		assert.Contains(t, buf.String(), "&lt;b&gt;x&lt;/b&gt;")
	})
}

func TestHTMLPageMissingControl(t *testing.T) {
	tmpl := template.Must(template.New("catalog.html").Parse(
		`<main id="catalog"></main><input id="search"><select id="sort"></select><div id="overlay"></div>`))
	page := &HTMLPage{tmpl: tmpl}

	err := page.checkControls()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"close"`)
}
