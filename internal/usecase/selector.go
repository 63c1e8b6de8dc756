package usecase

import (
	"slices"
	"strings"

	"github.com/nguyentranbao-ct/product-catalog/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Select returns the products matching c.SearchText, ordered by c.Sort, using the root
// collation for name ordering. The input slice is never modified.
func Select(products []models.Product, c models.Criteria) []models.Product {
	return SelectWithLocale(products, c, language.Und)
}

// SelectWithLocale is Select with names collated for the given locale.
func SelectWithLocale(products []models.Product, c models.Criteria, tag language.Tag) []models.Product {
	out := filter(products, c.SearchText)

	switch c.Sort {
	case models.SortPriceAsc:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case models.SortPriceDesc:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return b.Price.Cmp(a.Price)
		})
	case models.SortNameAsc:
		col := collate.New(tag)
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return col.CompareString(a.Name, b.Name)
		})
	case models.SortNameDesc:
		col := collate.New(tag)
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return col.CompareString(b.Name, a.Name)
		})
	}
	return out
}

// filter always returns a fresh slice so sorting never touches the caller's backing array.
func filter(products []models.Product, search string) []models.Product {
	out := make([]models.Product, 0, len(products))
	if search == "" {
		return append(out, products...)
	}

	fold := cases.Fold()
	needle := fold.String(search)
	for _, p := range products {
		if strings.Contains(fold.String(p.Name), needle) ||
			strings.Contains(fold.String(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out
}
