package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Handle(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics, err := NewMetrics(registry)
	require.NoError(t, err)

	e := echo.New()
	e.Use(metrics.Handle)
	e.GET("/products/:id", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for _, target := range []string{"/products/1", "/products/2", "/nowhere"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	assert.InDelta(t, 2, testutil.ToFloat64(metrics.requests.WithLabelValues("/products/:id", http.MethodGet, "200")), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.requests), "one series per route and status")

	_, err = NewMetrics(registry)
	assert.Error(t, err, "collectors register once per registry")
}
