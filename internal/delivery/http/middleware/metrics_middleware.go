package middleware

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)
)

// MetricsMiddleware collects per-request Prometheus metrics and exposes the
// scrape endpoint.
type MetricsMiddleware struct{}

// NewMetricsMiddleware is the constructor for MetricsMiddleware.
func NewMetricsMiddleware() *MetricsMiddleware {
	return &MetricsMiddleware{}
}

// Collect records the request count and duration, labelled by the matched
// route rather than the raw URL to keep cardinality bounded.
func (m *MetricsMiddleware) Collect(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		path := c.Path()
		if path == "" {
			path = c.Request().URL.Path
		}

		// An errored request has not been through the error handler yet,
		// so the response status still reads 200 here. Derive the status
		// the error handler will write instead.
		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status = statusFromError(err)
		}
		label := strconv.Itoa(status)

		httpRequestsTotal.WithLabelValues(c.Request().Method, path, label).Inc()
		httpRequestDuration.WithLabelValues(c.Request().Method, path, label).Observe(time.Since(start).Seconds())

		return err
	}
}

// statusFromError mirrors the error middleware's status mapping.
func statusFromError(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

// Handler serves the Prometheus scrape endpoint.
func (m *MetricsMiddleware) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
