package server

import (
	"regexp"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nguyentranbao-ct/product-catalog/internal/config"
	pkgmdw "github.com/nguyentranbao-ct/product-catalog/internal/server/middleware"
	"github.com/nguyentranbao-ct/product-catalog/pkg/logger"
	"github.com/nguyentranbao-ct/product-catalog/pkg/logger/logctx"
)

func skipProbes(c echo.Context) bool {
	path := c.Request().URL.Path
	return path == "/health" || path == "/metrics"
}

func logRequestConfig() pkgmdw.LogRequestConfig {
	return pkgmdw.LogRequestConfig{
		Logger: logger.MustNamed("http"),
		Enabled: func(c echo.Context) bool {
			return !skipProbes(c)
		},
		KeyAndValues: func(c echo.Context) []any {
			return []any{"route", c.Path()}
		},
	}
}

func recoverConfig() middleware.RecoverConfig {
	return middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logctx.Errorw(c.Request().Context(), "PANIC RECOVER", "error", err, "stack", string(stack))
			return nil
		},
	}
}

// newEcho builds the echo instance with the full middleware stack, without routes.
func newEcho(conf *config.Config) (*echo.Echo, error) {
	corsPattern, err := regexp.Compile(conf.Server.CORSOriginPattern)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = pkgmdw.NewValidator()
	e.HTTPErrorHandler = pkgmdw.ErrorHandler(logger.MustNamed("http"))

	e.Use(pkgmdw.Metrics())
	e.Use(pkgmdw.RequestID())
	e.Use(pkgmdw.LogRequest(logRequestConfig()))
	e.Use(middleware.RecoverWithConfig(recoverConfig()))
	e.Use(pkgmdw.CORS(corsPattern))

	if conf.Server.Pprof {
		pkgmdw.Pprof(e, "")
	}
	return e, nil
}
