package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const unmatchedRoute = "unmatched"

// Metrics holds the HTTP collectors of one server. Each server owns its registry so tests can
// build several servers in one process.
type Metrics struct {
	registry *prometheus.Registry

	inFlight prometheus.Gauge
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}

	m.registry.MustRegister(
		m.inFlight,
		m.requests,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Instrument records every request under its route template, so /elections/1 and
// /elections/2 share a series.
func (m *Metrics) Instrument() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		m.inFlight.Inc()
		start := time.Now()

		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		status := strconv.Itoa(ctx.Writer.Status())

		m.duration.WithLabelValues(ctx.Request.Method, path, status).Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(ctx.Request.Method, path, status).Inc()
		m.inFlight.Dec()
	}
}

func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry}))
}
