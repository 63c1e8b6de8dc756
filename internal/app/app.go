package app

import (
	"context"

	"github.com/nguyentranbao-ct/product-catalog/internal/config"
	"github.com/nguyentranbao-ct/product-catalog/internal/render"
	"github.com/nguyentranbao-ct/product-catalog/internal/repo/products"
	"github.com/nguyentranbao-ct/product-catalog/internal/server"
	"github.com/nguyentranbao-ct/product-catalog/internal/usecase"
	"github.com/nguyentranbao-ct/product-catalog/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"
)

// New builds the container shared by every command.
func New(opts ...fx.Option) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	if err := logger.SetLevel(conf.Log.Level); err != nil {
		log.Warnw("invalid log level, keeping default", "level", conf.Log.Level, "error", err)
	}
	log.Debugw("config loaded", log.Reflect("config", conf))

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			products.NewStore,
			products.NewSource,
			products.NewLoader,

			render.NewCardBuilder,
			render.NewHTMLPage,

			usecase.NewCatalogUsecase,

			server.NewController,
		),
		fx.Supply(conf),
		fx.Options(opts...),
	)
}

func Invoke(funcs ...any) *fx.App {
	return New(fx.Invoke(funcs...))
}

// LoadCatalog reads the product source once when the app starts. Hooks registered after
// it, such as the HTTP listener, start only once the load has finished.
func LoadCatalog(lc fx.Lifecycle, catalog usecase.CatalogUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			catalog.Load(ctx)
			return nil
		},
	})
}
