package products

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/nguyentranbao-ct/product-catalog/internal/models"
	"github.com/nguyentranbao-ct/product-catalog/pkg/util"
)

type httpSource struct {
	client *resty.Client
	url    string
}

func NewHTTPSource(url string, timeout time.Duration) Source {
	return &httpSource{
		client: util.NewRestyClient(timeout),
		url:    url,
	}
}

func (s *httpSource) Name() string {
	return "http"
}

func (s *httpSource) Fetch(ctx context.Context) ([]models.Product, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", s.url, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("get %s: unexpected status %d", s.url, resp.StatusCode())
	}
	return DecodeProducts(resp.Body())
}
