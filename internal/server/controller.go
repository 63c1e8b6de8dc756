package server

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/product-catalog/internal/coordinator"
	"github.com/nguyentranbao-ct/product-catalog/internal/models"
	"github.com/nguyentranbao-ct/product-catalog/internal/overlay"
	"github.com/nguyentranbao-ct/product-catalog/internal/render"
	"github.com/nguyentranbao-ct/product-catalog/internal/usecase"
	"github.com/nguyentranbao-ct/product-catalog/pkg/logger/logctx"
	"github.com/nguyentranbao-ct/product-catalog/pkg/util"
	"golang.org/x/text/language"
)

type Controller interface {
	Page(c echo.Context) error
	ListProducts(c echo.Context, req CatalogQuery) (*ListProductsResponse, error)
	Preview(c echo.Context, req PreviewQuery) (*PreviewResponse, error)
	Health(c echo.Context) error
}

// CatalogQuery mirrors the page controls.
type CatalogQuery struct {
	Search         string `query:"q"`
	Sort           string `query:"sort" validate:"sortkey"`
	AcceptLanguage string `header:"accept-language"`
}

type PreviewQuery struct {
	CatalogQuery
	Index int `query:"index" validate:"min=0"`
}

type ListProductsResponse struct {
	Cards    []render.Card   `json:"cards"`
	Total    int             `json:"total"`
	Criteria models.Criteria `json:"criteria"`
}

type PreviewResponse struct {
	State   string          `json:"state"`
	Caption string          `json:"caption"`
	Preview overlay.Preview `json:"preview"`
}

type controller struct {
	catalog usecase.CatalogUsecase
	cards   *render.CardBuilder
	page    *render.HTMLPage
}

func NewController(catalog usecase.CatalogUsecase, cards *render.CardBuilder, page *render.HTMLPage) Controller {
	return &controller{
		catalog: catalog,
		cards:   cards,
		page:    page,
	}
}

func (h *controller) locale(acceptLanguage string) language.Tag {
	return render.MatchLocale(acceptLanguage, h.cards.Locale())
}

func (h *controller) coordinator(r render.Renderer, criteria models.Criteria, tag language.Tag) (*coordinator.Coordinator, error) {
	co := coordinator.New(h.catalog, h.cards, r,
		coordinator.WithCriteria(criteria),
		coordinator.WithLocale(tag),
	)
	if err := co.Refresh(); err != nil {
		return nil, err
	}
	return co, nil
}

// Page renders the catalog page. Unknown sort values fall back to source order.
func (h *controller) Page(c echo.Context) error {
	ctx := c.Request().Context()
	criteria := models.NewCriteria(c.QueryParam("q"), c.QueryParam("sort"))
	tag := h.locale(c.Request().Header.Get("Accept-Language"))
	logctx.WithFields(ctx, "q", criteria.SearchText, "sort", criteria.Sort)

	r := h.page.Renderer()
	co, err := h.coordinator(r, criteria, tag)
	if err != nil {
		return err
	}

	if raw := c.QueryParam("preview"); raw != "" {
		index, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "preview must be a card index")
		}
		if err := co.Dispatch(coordinator.ImageClicked{Index: index}); err != nil {
			return err
		}
	}

	view := render.View{
		Criteria: co.Criteria(),
		Total:    h.catalog.Count(),
		Locale:   tag,
	}
	if p, ok := co.Preview(); ok {
		view.Preview = util.Ptr(p)
	}

	var buf bytes.Buffer
	if err := r.Write(&buf, view); err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (h *controller) ListProducts(c echo.Context, req CatalogQuery) (*ListProductsResponse, error) {
	rec := &render.Recorder{}
	co, err := h.coordinator(rec, models.NewCriteria(req.Search, req.Sort), h.locale(req.AcceptLanguage))
	if err != nil {
		return nil, err
	}
	return &ListProductsResponse{
		Cards:    rec.Cards,
		Total:    h.catalog.Count(),
		Criteria: co.Criteria(),
	}, nil
}

func (h *controller) Preview(c echo.Context, req PreviewQuery) (*PreviewResponse, error) {
	co, err := h.coordinator(&render.Recorder{}, models.NewCriteria(req.Search, req.Sort), h.locale(req.AcceptLanguage))
	if err != nil {
		return nil, err
	}
	if err := co.Dispatch(coordinator.ImageClicked{Index: req.Index}); err != nil {
		return nil, err
	}
	p, _ := co.Preview()
	return &PreviewResponse{
		State:   co.Overlay().String(),
		Caption: p.Caption(),
		Preview: p,
	}, nil
}

func (h *controller) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":   "healthy",
		"service":  "product-catalog",
		"products": h.catalog.Count(),
	})
}
