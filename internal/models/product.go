package models

import (
	"github.com/shopspring/decimal"
)

// Product is a read-only catalog entry. Products have no key: their identity is their
// position in the loaded collection.
type Product struct {
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	ImageURL    string          `json:"imagem"`
}

// Names projects products onto their names, preserving order.
func Names(products []Product) []string {
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	return names
}
