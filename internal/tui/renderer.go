package tui

import "github.com/nguyentranbao-ct/product-catalog/internal/render"

// ListRenderer holds the cards shown in the terminal list. Each render replaces them.
type ListRenderer struct {
	cards []render.Card
}

func (r *ListRenderer) Render(cards []render.Card) error {
	r.cards = cards
	return nil
}

func (r *ListRenderer) Cards() []render.Card {
	return r.cards
}
