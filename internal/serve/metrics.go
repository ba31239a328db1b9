package serve

import (
	"net/http"
	"strconv"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "lally").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "lally",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// serveMetrics holds the Prometheus metrics for the registry server.
type serveMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	rebuildsTotal   prometheus.Counter
	rebuildErrors   prometheus.Counter
	lastBuild       prometheus.Gauge
}

// newServeMetrics initializes the Prometheus metrics.
func newServeMetrics(config MetricsConfig) *serveMetrics {
	factory := promauto.With(config.Registry)

	return &serveMetrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   "registry",
			Name:        "requests_total",
			Help:        "Total number of registry HTTP requests",
			ConstLabels: config.ConstLabels,
		}, []string{"path", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   "registry",
			Name:        "request_duration_seconds",
			Help:        "Registry request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"path"}),

		rebuildsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   "registry",
			Name:        "rebuilds_total",
			Help:        "Total number of registry document rebuilds",
			ConstLabels: config.ConstLabels,
		}),

		rebuildErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   "registry",
			Name:        "rebuild_errors_total",
			Help:        "Total number of failed registry rebuilds",
			ConstLabels: config.ConstLabels,
		}),

		lastBuild: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   "registry",
			Name:        "last_build_timestamp_seconds",
			Help:        "Unix timestamp of the last successful registry build",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// middleware returns an http middleware recording request metrics.
func (m *serveMetrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		path := r.URL.Path
		m.requestsTotal.WithLabelValues(path, strconv.Itoa(ww.Status())).Inc()
		m.requestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	})
}

// recordRebuild records the outcome of a registry document rebuild.
func (m *serveMetrics) recordRebuild(err error) {
	m.rebuildsTotal.Inc()
	if err != nil {
		m.rebuildErrors.Inc()
		return
	}
	m.lastBuild.SetToCurrentTime()
}
