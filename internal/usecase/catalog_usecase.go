package usecase

import (
	"context"

	"github.com/nguyentranbao-ct/product-catalog/internal/models"
	"github.com/nguyentranbao-ct/product-catalog/internal/repo/products"
	"golang.org/x/text/language"
)

type catalogUsecase struct {
	store  *products.Store
	loader products.Loader
}

func NewCatalogUsecase(store *products.Store, loader products.Loader) CatalogUsecase {
	return &catalogUsecase{
		store:  store,
		loader: loader,
	}
}

func (u *catalogUsecase) Load(ctx context.Context) {
	u.loader.Load(ctx)
}

func (u *catalogUsecase) Count() int {
	return u.store.Len()
}

func (u *catalogUsecase) Select(c models.Criteria, tag language.Tag) []models.Product {
	return SelectWithLocale(u.store.All(), c, tag)
}
