package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strconv"

	"github.com/nguyentranbao-ct/product-catalog/internal/models"
	"github.com/nguyentranbao-ct/product-catalog/internal/overlay"
	"golang.org/x/text/language"
)

//go:embed templates/catalog.html
var templatesFS embed.FS

// HTMLPage is the parsed catalog page. It is safe for concurrent use.
type HTMLPage struct {
	tmpl *template.Template
}

func NewHTMLPage() (*HTMLPage, error) {
	tmpl, err := template.New("catalog.html").
		Funcs(template.FuncMap{
			"previewHref": PreviewHref,
			"closeHref":   CloseHref,
		}).
		ParseFS(templatesFS, "templates/catalog.html")
	if err != nil {
		return nil, fmt.Errorf("parse catalog page: %w", err)
	}
	page := &HTMLPage{tmpl: tmpl}
	if err := page.checkControls(); err != nil {
		return nil, err
	}
	return page, nil
}

// requiredControls are the element ids the page must declare.
var requiredControls = []string{"catalog", "search", "sort", "overlay", "close"}

func (p *HTMLPage) checkControls() error {
	var buf bytes.Buffer
	err := p.Renderer().Write(&buf, View{Preview: &overlay.Preview{}})
	if err != nil {
		return err
	}
	for _, id := range requiredControls {
		if !bytes.Contains(buf.Bytes(), []byte(`id="`+id+`"`)) {
			return fmt.Errorf("catalog page has no %q control", id)
		}
	}
	return nil
}

// Renderer returns a fresh renderer writing through this page.
func (p *HTMLPage) Renderer() *HTMLRenderer {
	return &HTMLRenderer{page: p}
}

// View is the part of the page that is not the card list.
type View struct {
	Criteria models.Criteria
	Preview  *overlay.Preview
	Total    int
	Locale   language.Tag
}

type SortOption struct {
	Key      models.SortKey
	Label    string
	Selected bool
}

type pageData struct {
	View
	Lang        string
	Cards       []Card
	SortOptions []SortOption
}

// HTMLRenderer keeps the cards of the last render and writes them as a full page.
type HTMLRenderer struct {
	page  *HTMLPage
	cards []Card
}

func (r *HTMLRenderer) Render(cards []Card) error {
	r.cards = cards
	return nil
}

func (r *HTMLRenderer) Write(w io.Writer, v View) error {
	data := pageData{
		View:        v,
		Lang:        v.Locale.String(),
		Cards:       r.cards,
		SortOptions: SortOptions(v.Criteria.Sort),
	}
	if err := r.page.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute catalog page: %w", err)
	}
	return nil
}

// SortOptions lists the selector entries with selected marked.
func SortOptions(selected models.SortKey) []SortOption {
	opts := make([]SortOption, len(models.SortKeys))
	for i, k := range models.SortKeys {
		opts[i] = SortOption{Key: k, Label: k.Label(), Selected: k == selected}
	}
	return opts
}

// PreviewHref links back to the page with the card at index shown in the overlay.
func PreviewHref(c models.Criteria, index int) string {
	q := criteriaQuery(c)
	q.Set("preview", strconv.Itoa(index))
	return "?" + q.Encode()
}

// CloseHref links back to the page with the overlay hidden.
func CloseHref(c models.Criteria) string {
	return "?" + criteriaQuery(c).Encode()
}

func criteriaQuery(c models.Criteria) url.Values {
	q := url.Values{}
	q.Set("q", c.SearchText)
	q.Set("sort", string(c.Sort))
	return q
}
