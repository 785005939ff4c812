package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreScanErrors counts tabular store scans that degraded to an empty
	// result, labelled by table.
	StoreScanErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_store_scan_errors_total",
		Help: "Number of CSV table scans that failed and returned empty results",
	}, []string{"table"})

	// RedisErrors counts failed Redis commands, labelled by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_redis_errors_total",
		Help: "Number of failed Redis commands",
	}, []string{"command"})

	// PageDefaults counts page aggregations that fell back to the default
	// placeholder because the profile was missing.
	PageDefaults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_page_default_responses_total",
		Help: "Number of page responses served with default placeholder content",
	}, []string{"page"})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware adapts the Prometheus middleware into a fiber handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
