// Package middleware provides Echo middleware for the upsell engine API.
package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/rental-upsell/internal/metrics"
)

// unmatchedPath labels requests that hit no registered route, so probing
// clients cannot grow the label set.
const unmatchedPath = "unmatched"

// healthGauges maps health check paths to their up/down gauge. These paths, the
// metrics scrape and the API docs are excluded from request metrics.
var healthGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthyGauge,
	"/readyz":  metrics.ReadyGauge,
}

func skipMetrics(path string) bool {
	if _, ok := healthGauges[path]; ok {
		return true
	}
	return path == "/metrics" ||
		strings.HasPrefix(path, "/swagger") ||
		strings.HasPrefix(path, "/openapi") ||
		strings.HasPrefix(path, "/schemas")
}

// Metrics returns Echo middleware that records request duration and status
// by route template. Health check paths only update their health gauges.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "" || path == "/*" {
				path = unmatchedPath
			}

			if skipMetrics(path) {
				err := next(c)
				updateHealthGauge(path, responseStatus(c, err))
				return err
			}

			start := time.Now()

			err := next(c)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(responseStatus(c, err))
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, path, status).
				Observe(duration)
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, status).
				Inc()

			return err
		}
	}
}

// responseStatus returns the status that will be written for the request.
// Errors returned to Echo are only rendered after middleware runs.
func responseStatus(c echo.Context, err error) int {
	if c.Response().Committed || err == nil {
		return c.Response().Status
	}
	if he, ok := err.(*echo.HTTPError); ok { //nolint:errorlint // echo returns the concrete type
		return he.Code
	}
	return 500
}

// updateHealthGauge sets the gauge for a health check path to 1 (success) or 0 (failure).
func updateHealthGauge(path string, status int) {
	gauge, ok := healthGauges[path]
	if !ok {
		return
	}

	if status >= 200 && status < 300 {
		gauge.Set(1)
	} else {
		gauge.Set(0)
	}
}
