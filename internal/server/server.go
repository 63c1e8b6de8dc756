package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/product-catalog/internal/config"
	pkgmdw "github.com/nguyentranbao-ct/product-catalog/internal/server/middleware"
	"github.com/nguyentranbao-ct/product-catalog/pkg/logger"
	"github.com/nguyentranbao-ct/product-catalog/pkg/logger/logctx"
	"go.uber.org/fx"
)

// Routes registers the catalog endpoints on e.
func Routes(e *echo.Echo, conf *config.Config, handler Controller) {
	e.GET("/", handler.Page)
	e.GET("/health", handler.Health)
	e.Static("/static", conf.Server.PublicDir)

	api := e.Group("/api/v1")
	api.GET("/products", pkgmdw.WrapHandler(handler.ListProducts))
	api.GET("/products/preview", pkgmdw.WrapHandler(handler.Preview))
}

func NewServer(conf *config.Config, handler Controller) (*echo.Echo, error) {
	e, err := newEcho(conf)
	if err != nil {
		return nil, err
	}
	Routes(e, conf, handler)
	return e, nil
}

func StartServer(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	conf *config.Config,
	handler Controller,
) error {
	e, err := NewServer(conf, handler)
	if err != nil {
		return err
	}

	var closeStatsd func()
	if conf.Server.StatsdAddress != "" {
		profiler, client, err := pkgmdw.ProfilerWithConfig(pkgmdw.ProfilerConfig{
			Log:     logger.MustNamed("statsd"),
			Address: conf.Server.StatsdAddress,
			Skipper: skipProbes,
		})
		if err != nil {
			return err
		}
		e.Use(profiler)
		closeStatsd = client.Close
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			addr := conf.Server.Addr()
			go func() {
				logctx.Infow(ctx, "starting HTTP server", "addr", addr)
				if err := e.Start(addr); !errors.Is(err, http.ErrServerClosed) {
					logctx.Errorw(ctx, "HTTP server stopped", "error", err)
					_ = sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if closeStatsd != nil {
				closeStatsd()
			}
			return e.Shutdown(ctx)
		},
	})
	return nil
}
