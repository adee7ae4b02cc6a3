// Package metrics exports Prometheus metrics for the dashboard service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all dashboard Prometheus collectors. Each instance owns its
// registry, so construction is repeatable.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	JobsCreated     *prometheus.CounterVec
	JobsParsed      *prometheus.CounterVec
	JobsExpired     prometheus.Counter
	RoutesOptimized prometheus.Counter
	RouteJobCount   prometheus.Histogram
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gigdash_http_requests_total",
			Help: "Total HTTP requests by method, route, and status",
		}, []string{"method", "route", "status"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gigdash_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		}, []string{"method", "route"}),

		JobsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gigdash_jobs_created_total",
			Help: "Jobs added to the board by platform",
		}, []string{"platform"}),

		JobsParsed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gigdash_jobs_parsed_total",
			Help: "Parse requests by platform",
		}, []string{"platform"}),

		JobsExpired: factory.NewCounter(prometheus.CounterOpts{
			Name: "gigdash_jobs_expired_total",
			Help: "Jobs swept to expired by the scheduler",
		}),

		RoutesOptimized: factory.NewCounter(prometheus.CounterOpts{
			Name: "gigdash_routes_optimized_total",
			Help: "Routes built by the optimizer",
		}),

		RouteJobCount: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gigdash_route_job_count",
			Help:    "Number of jobs per optimized route",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		}),
	}
}

// Handler exposes the registry for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request count and latency per route. The route template
// is used rather than the raw path so path parameters do not explode label
// cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(
			c.Request.Method, route, strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.RequestDuration.WithLabelValues(
			c.Request.Method, route,
		).Observe(time.Since(start).Seconds())
	}
}
