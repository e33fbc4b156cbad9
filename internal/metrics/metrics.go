package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stoper_http_requests_total",
			Help: "HTTP requests by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stoper_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// WithdrawalsTotal counts registered withdrawals by reason.
	WithdrawalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stoper_withdrawals_total",
			Help: "Registered withdrawals by reason.",
		},
		[]string{"reason"},
	)

	// StockAlertsTotal counts critical-stock advisories raised by
	// withdrawals and manual recounts.
	StockAlertsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stoper_stock_alerts_total",
			Help: "Critical-stock advisories raised.",
		},
	)

	// ToolsBelowThreshold is maintained by the low-stock sweep worker.
	ToolsBelowThreshold = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "stoper_tools_below_threshold",
			Help: "Tools currently at or below their minimum threshold.",
		},
	)
)

func PrometheusMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			status := strconv.Itoa(c.Response().Status)
			httpRequestsTotal.WithLabelValues(c.Request().Method, path, status).Inc()
			httpRequestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
