package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectOnce(t *testing.T, path string, handler echo.HandlerFunc) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)

	return NewMetricsMiddleware().Collect(handler)(c)
}

func requestCount(method, path, status string) float64 {
	return testutil.ToFloat64(httpRequestsTotal.WithLabelValues(method, path, status))
}

func TestMetricsMiddleware_Collect_Success(t *testing.T) {
	path := "/metrics-test/ok"

	require.NoError(t, collectOnce(t, path, okHandler))

	assert.Equal(t, 1.0, requestCount(http.MethodGet, path, "200"))
}

func TestMetricsMiddleware_Collect_DomainErrorStatus(t *testing.T) {
	path := "/metrics-test/domain-error"

	err := collectOnce(t, path, func(echo.Context) error {
		return errors.WithStack(domainerrors.ErrProductNotFound)
	})

	require.Error(t, err)
	assert.Equal(t, 1.0, requestCount(http.MethodGet, path, "404"))
	assert.Equal(t, 0.0, requestCount(http.MethodGet, path, "200"))
}

func TestMetricsMiddleware_Collect_EchoErrorStatus(t *testing.T) {
	path := "/metrics-test/echo-error"

	err := collectOnce(t, path, func(echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "bad payload")
	})

	require.Error(t, err)
	assert.Equal(t, 1.0, requestCount(http.MethodGet, path, "400"))
}

func TestMetricsMiddleware_Collect_UnknownErrorIsServerError(t *testing.T) {
	path := "/metrics-test/unknown-error"

	err := collectOnce(t, path, func(echo.Context) error {
		return errors.New("connection reset")
	})

	require.Error(t, err)
	assert.Equal(t, 1.0, requestCount(http.MethodGet, path, "500"))
}
