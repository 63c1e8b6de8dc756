package products

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentranbao-ct/product-catalog/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `[
  {"nome": "Vaso de Cerâmica", "descricao": "Vaso artesanal", "preco": 89.9, "imagem": "img/vaso.jpg"},
  {"nome": "Caneca", "descricao": "Caneca esmaltada", "preco": 35, "imagem": "img/caneca.jpg"}
]`

func TestDecodeProducts(t *testing.T) {
	t.Parallel()

	products, err := DecodeProducts([]byte(sampleJSON))
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "Vaso de Cerâmica", products[0].Name)
	assert.Equal(t, "Vaso artesanal", products[0].Description)
	assert.True(t, decimal.RequireFromString("89.9").Equal(products[0].Price))
	assert.Equal(t, "img/vaso.jpg", products[0].ImageURL)
	assert.True(t, decimal.NewFromInt(35).Equal(products[1].Price))
}

func TestDecodeProductsMalformed(t *testing.T) {
	t.Parallel()

	for _, payload := range []string{`{"nome": "x"}`, `[{"nome": }]`, ``, `not json`} {
		_, err := DecodeProducts([]byte(payload))
		assert.Error(t, err, payload)
	}
}

func TestFileSource(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "produtos.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o600))

	products, err := NewFileSource(path).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 2)

	_, err = NewFileSource(filepath.Join(t.TempDir(), "missing.json")).Fetch(context.Background())
	assert.Error(t, err)
}

func TestHTTPSource(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/produtos.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(sampleJSON))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	products, err := NewHTTPSource(srv.URL+"/produtos.json", time.Second).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 2)

	_, err = NewHTTPSource(srv.URL+"/missing.json", time.Second).Fetch(context.Background())
	assert.ErrorContains(t, err, "unexpected status 404")
}

func TestNewSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		location string
		want     string
	}{
		{"data/produtos.json", "file"},
		{"http://cdn.local/produtos.json", "http"},
		{"https://cdn.local/produtos.json", "http"},
		{"mongodb://localhost:27017", "mongodb"},
	}
	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Catalog.Source = tt.location
			cfg.Catalog.LoadTimeout = time.Second
			assert.Equal(t, tt.want, NewSource(cfg).Name())
		})
	}
}

func TestProductDocumentToModel(t *testing.T) {
	t.Parallel()

	p := productDocument{Name: "Caneca", Description: "esmaltada", Price: 35.5, ImageURL: "img/c.jpg"}.toModel()
	assert.Equal(t, "Caneca", p.Name)
	assert.True(t, decimal.RequireFromString("35.5").Equal(p.Price))
}
