package products

import (
	"context"
	"time"

	"github.com/nguyentranbao-ct/product-catalog/internal/config"
	"github.com/nguyentranbao-ct/product-catalog/pkg/logger"
	"github.com/nguyentranbao-ct/product-catalog/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
)

// Loader reads the source once and publishes the result to the store.
type Loader interface {
	// Load never fails: on error the store is emptied and the error is logged.
	Load(ctx context.Context)
}

type loader struct {
	source  Source
	store   *Store
	timeout time.Duration
	log     *logger.Logger
	fetched *prometheus.HistogramVec
	loaded  prometheus.Gauge
}

func NewLoader(cfg *config.Config, source Source, store *Store) (Loader, error) {
	fetched, err := util.GetHistogramVec(
		"catalog_source_fetch_duration_seconds",
		"Time spent reading the product source",
		"source", "status",
	)
	if err != nil {
		return nil, err
	}
	loaded, err := util.GetGauge("catalog_products_loaded", "Number of products in the store")
	if err != nil {
		return nil, err
	}
	return &loader{
		source:  source,
		store:   store,
		timeout: cfg.Catalog.LoadTimeout,
		log:     logger.MustNamed("loader"),
		fetched: fetched,
		loaded:  loaded,
	}, nil
}

func (l *loader) Load(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	start := time.Now()
	products, err := l.source.Fetch(ctx)
	status := "ok"
	if err != nil {
		status = "error"
	}
	l.fetched.WithLabelValues(l.source.Name(), status).Observe(time.Since(start).Seconds())

	if err != nil {
		l.log.Errorw("failed to load products", "source", l.source.Name(), "error", err)
		l.store.Replace(nil)
		l.loaded.Set(0)
		return
	}

	l.store.Replace(products)
	l.loaded.Set(float64(len(products)))
	l.log.Infow("products loaded", "source", l.source.Name(), "count", len(products))
}
