package products

import (
	"context"
	"fmt"
	"os"

	"github.com/nguyentranbao-ct/product-catalog/internal/models"
)

type fileSource struct {
	path string
}

func NewFileSource(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Name() string {
	return "file"
}

func (s *fileSource) Fetch(ctx context.Context) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return DecodeProducts(data)
}
