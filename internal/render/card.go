package render

import (
	"fmt"
	"strings"

	"github.com/nguyentranbao-ct/product-catalog/internal/config"
	"github.com/nguyentranbao-ct/product-catalog/internal/models"
	"github.com/nguyentranbao-ct/product-catalog/pkg/tmplx"
	"github.com/nguyentranbao-ct/product-catalog/pkg/util"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const orderLinkTemplate = `https://api.whatsapp.com/send?{{encodeUrlQuery "phone" .Phone "text" .Text}}`

// Image is a card's picture. Name and Price travel with it so a click on the image is
// enough to open the preview overlay.
type Image struct {
	Src   string          `json:"src"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Card is the display form of one product.
type Card struct {
	Image       Image  `json:"image"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	OrderURL    string `json:"order_url"`
}

// Renderer replaces whatever cards are currently displayed with cards.
type Renderer interface {
	Render(cards []Card) error
}

// CardBuilder turns products into cards.
type CardBuilder struct {
	symbol    string
	phone     string
	message   *tmplx.Template
	orderLink *tmplx.Template
	locale    language.Tag
}

func NewCardBuilder(cfg *config.Config) (*CardBuilder, error) {
	locale, err := language.Parse(cfg.Catalog.Locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", cfg.Catalog.Locale, err)
	}
	msg, err := tmplx.Parse("order-message", cfg.Catalog.OrderMessage,
		tmplx.WithValidate(models.Product{Name: "Produto"}, func(out string) error {
			if out == "" {
				return fmt.Errorf("order message renders empty")
			}
			return nil
		}))
	if err != nil {
		return nil, err
	}
	return &CardBuilder{
		symbol:    cfg.Catalog.CurrencySymbol,
		phone:     cfg.Catalog.OrderPhone,
		message:   msg,
		orderLink: tmplx.MustParse("order-link", orderLinkTemplate),
		locale:    locale,
	}, nil
}

// Locale is the configured default locale.
func (b *CardBuilder) Locale() language.Tag {
	return b.locale
}

// Build returns one card per product, in order.
func (b *CardBuilder) Build(products []models.Product, tag language.Tag) ([]Card, error) {
	return util.ConvertListE(products, func(p models.Product) (Card, error) {
		card, err := b.card(p, tag)
		if err != nil {
			return Card{}, fmt.Errorf("card %q: %w", p.Name, err)
		}
		return card, nil
	})
}

func (b *CardBuilder) card(p models.Product, tag language.Tag) (Card, error) {
	link, err := b.OrderURL(p)
	if err != nil {
		return Card{}, err
	}
	return Card{
		Image: Image{
			Src:   p.ImageURL,
			Name:  p.Name,
			Price: p.Price,
		},
		Name:        p.Name,
		Price:       b.FormatPrice(p.Price, tag),
		Description: p.Description,
		OrderURL:    link,
	}, nil
}

// OrderURL is the outbound messaging link with the order text for p.
func (b *CardBuilder) OrderURL(p models.Product) (string, error) {
	text, err := b.message.RenderString(p)
	if err != nil {
		return "", err
	}
	return b.orderLink.RenderString(map[string]string{
		"Phone": b.phone,
		"Text":  text,
	})
}

// FormatPrice prints price rounded half up to two decimals, without grouping, using the
// locale's decimal separator.
func (b *CardBuilder) FormatPrice(price decimal.Decimal, tag language.Tag) string {
	if tag == language.Und {
		tag = b.locale
	}
	amount := price.StringFixed(2)
	if sep := decimalSeparator(tag); sep != "." {
		amount = strings.Replace(amount, ".", sep, 1)
	}
	if b.symbol == "" {
		return amount
	}
	return b.symbol + " " + amount
}

// decimalSeparator is the separator the locale prints between integer and fraction digits.
func decimalSeparator(tag language.Tag) string {
	sample := message.NewPrinter(tag).Sprintf("%v", number.Decimal(1.5, number.Scale(1)))
	return strings.TrimSuffix(strings.TrimPrefix(sample, "1"), "5")
}
