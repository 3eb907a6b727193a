package middlewares

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/torchweb/torch"
)

// DefaultMetricsNamespace prefixes the metric names.
const DefaultMetricsNamespace = "torch"

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	Registerer prometheus.Registerer
	Namespace  string
	Buckets    []float64
}

// MetricsOption configures MetricsConfig.
type MetricsOption func(*MetricsConfig)

// WithMetricsRegisterer sets the registry. Defaults to the global one;
// tests pass prometheus.NewRegistry().
func WithMetricsRegisterer(reg prometheus.Registerer) MetricsOption {
	return func(cfg *MetricsConfig) {
		if reg != nil {
			cfg.Registerer = reg
		}
	}
}

// WithMetricsNamespace sets the metric name prefix.
func WithMetricsNamespace(ns string) MetricsOption {
	return func(cfg *MetricsConfig) {
		if ns != "" {
			cfg.Namespace = ns
		}
	}
}

// WithMetricsBuckets replaces the duration histogram buckets.
func WithMetricsBuckets(buckets []float64) MetricsOption {
	return func(cfg *MetricsConfig) {
		if len(buckets) > 0 {
			cfg.Buckets = buckets
		}
	}
}

// Metrics returns middleware that records a request counter labeled by
// method and status, and a duration histogram labeled by method. Labels
// deliberately exclude the path to keep cardinality bounded.
func Metrics(opts ...MetricsOption) torch.Middleware {
	cfg := &MetricsConfig{
		Registerer: prometheus.DefaultRegisterer,
		Namespace:  DefaultMetricsNamespace,
		Buckets:    prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	factory := promauto.With(cfg.Registerer)
	requests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "requests_total",
		Help:      "Total number of dispatched requests.",
	}, []string{"method", "status"})
	duration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request handling duration in seconds.",
		Buckets:   cfg.Buckets,
	}, []string{"method"})

	return func(next torch.HandlerFunc) torch.HandlerFunc {
		return func(ctx context.Context, r *torch.Request) *torch.Response {
			start := time.Now()
			resp := next(ctx, r)
			duration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
			requests.WithLabelValues(r.Method, strconv.Itoa(resp.StatusCode)).Inc()
			return resp
		}
	}
}
