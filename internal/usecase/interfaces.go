package usecase

import (
	"context"

	"github.com/nguyentranbao-ct/product-catalog/internal/models"
	"golang.org/x/text/language"
)

type CatalogUsecase interface {
	// Load performs the one startup read of the product source.
	Load(ctx context.Context)
	// Count is the size of the full collection.
	Count() int
	// Select runs the filter-sort engine over the full collection.
	Select(c models.Criteria, tag language.Tag) []models.Product
}
