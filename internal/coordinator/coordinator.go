// Package coordinator binds user input events to the filter-sort engine, the card
// renderer and the preview overlay.
package coordinator

import (
	"context"
	"fmt"

	"github.com/nguyentranbao-ct/product-catalog/internal/models"
	"github.com/nguyentranbao-ct/product-catalog/internal/overlay"
	"github.com/nguyentranbao-ct/product-catalog/internal/render"
	"github.com/nguyentranbao-ct/product-catalog/internal/usecase"
	"golang.org/x/text/language"
)

type Coordinator struct {
	catalog  usecase.CatalogUsecase
	cards    *render.CardBuilder
	renderer render.Renderer

	locale    language.Tag
	criteria  models.Criteria
	displayed []render.Card
	overlay   overlay.Controller
}

type Option func(*Coordinator)

// WithCriteria sets the criteria used by the first render.
func WithCriteria(c models.Criteria) Option {
	return func(co *Coordinator) {
		co.criteria = c
	}
}

// WithLocale sets the locale for name collation and price formatting.
func WithLocale(tag language.Tag) Option {
	return func(co *Coordinator) {
		co.locale = tag
	}
}

func New(catalog usecase.CatalogUsecase, cards *render.CardBuilder, renderer render.Renderer, opts ...Option) *Coordinator {
	c := &Coordinator{
		catalog:  catalog,
		cards:    cards,
		renderer: renderer,
		locale:   cards.Locale(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start loads the catalog and renders it once with the current criteria.
func (c *Coordinator) Start(ctx context.Context) error {
	c.catalog.Load(ctx)
	return c.Refresh()
}

// Refresh runs one filter-sort-render cycle.
func (c *Coordinator) Refresh() error {
	products := c.catalog.Select(c.criteria, c.locale)
	cards, err := c.cards.Build(products, c.locale)
	if err != nil {
		return fmt.Errorf("build cards: %w", err)
	}
	if err := c.renderer.Render(cards); err != nil {
		return fmt.Errorf("render cards: %w", err)
	}
	c.displayed = cards
	return nil
}

func (c *Coordinator) Dispatch(ev Event) error {
	switch e := ev.(type) {
	case SearchChanged:
		c.criteria = models.NewCriteria(e.Text, string(c.criteria.Sort))
		return c.Refresh()
	case SortChanged:
		c.criteria = models.NewCriteria(c.criteria.SearchText, string(e.Key))
		return c.Refresh()
	case ImageClicked:
		if e.Index < 0 || e.Index >= len(c.displayed) {
			return fmt.Errorf("%w: index %d of %d", models.ErrCardNotFound, e.Index, len(c.displayed))
		}
		img := c.displayed[e.Index].Image
		c.overlay.Open(overlay.Preview{
			ImageURL: img.Src,
			Name:     img.Name,
			Price:    c.cards.FormatPrice(img.Price, c.locale),
			Index:    e.Index,
		})
		return nil
	case CloseClicked:
		c.overlay.Close()
		return nil
	case OverlayClicked:
		c.overlay.Click(e.OnBackground)
		return nil
	default:
		return fmt.Errorf("unknown event %T", ev)
	}
}

func (c *Coordinator) Criteria() models.Criteria {
	return c.criteria
}

// Cards are the cards of the last render.
func (c *Coordinator) Cards() []render.Card {
	return c.displayed
}

func (c *Coordinator) Overlay() overlay.State {
	return c.overlay.State()
}

func (c *Coordinator) Preview() (overlay.Preview, bool) {
	return c.overlay.Preview()
}

func (c *Coordinator) Locale() language.Tag {
	return c.locale
}
