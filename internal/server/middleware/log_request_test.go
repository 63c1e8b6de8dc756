package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogRequest(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := zap.New(core).Sugar()

	e := echo.New()
	e.Use(RequestID())
	e.Use(LogRequest(LogRequestConfig{
		Logger: log,
		Enabled: func(c echo.Context) bool {
			return c.Request().URL.Path != "/health"
		},
		ResponseBody: func(echo.Context) bool { return true },
		KeyAndValues: func(c echo.Context) []any {
			return []any{"route", c.Path()}
		},
	}))
	e.GET("/api", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]int{"total": 2})
	})
	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "nope")
	})
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for _, path := range []string{"/api?q=vaso", "/missing", "/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(XRequestID, "rid")
		e.ServeHTTP(httptest.NewRecorder(), req)
	}

	entries := logs.All()
	require.Len(t, entries, 2)

	ok := entries[0].ContextMap()
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, "rid", ok["request_id"])
	assert.EqualValues(t, http.StatusOK, ok["status"])
	assert.Equal(t, "/api", ok["route"])
	assert.Contains(t, ok, "query")
	assert.Contains(t, ok, "response_body")

	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.EqualValues(t, http.StatusNotFound, entries[1].ContextMap()["status"])
}
