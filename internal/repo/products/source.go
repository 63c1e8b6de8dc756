package products

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/nguyentranbao-ct/product-catalog/internal/config"
	"github.com/nguyentranbao-ct/product-catalog/internal/models"
)

// Source reads the raw product collection from wherever it lives.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]models.Product, error)
}

// NewSource picks a source implementation from the configured location.
func NewSource(cfg *config.Config) Source {
	location := cfg.Catalog.Source
	switch {
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTPSource(location, cfg.Catalog.LoadTimeout)
	case strings.HasPrefix(location, "mongodb://"), strings.HasPrefix(location, "mongodb+srv://"):
		return NewMongoSource(location, cfg.Database.Database, cfg.Database.Collection)
	default:
		return NewFileSource(location)
	}
}

// DecodeProducts parses a JSON array of {nome, descricao, preco, imagem} records.
func DecodeProducts(data []byte) ([]models.Product, error) {
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}
