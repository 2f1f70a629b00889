// Package metrics holds the Prometheus collector shared by the HTTP and gRPC
// transports and the handler serving it.
package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns a private registry with the request metrics of the service
// and the standard Go runtime and process collectors.
type Collector struct {
	registry *prometheus.Registry

	// HTTPRequests counts finished HTTP requests by method, route template
	// and status code.
	HTTPRequests *prometheus.CounterVec

	// HTTPDuration observes HTTP request latency in seconds by method and
	// route template.
	HTTPDuration *prometheus.HistogramVec

	// GRPCRequests counts finished unary RPCs by full method and status code.
	GRPCRequests *prometheus.CounterVec
}

// NewCollector creates the collector. namespace is sanitized into a valid
// Prometheus metric prefix, so a service name such as "go-health-server"
// becomes "go_health_server".
func NewCollector(namespace string) *Collector {
	namespace = sanitizeNamespace(namespace)

	c := &Collector{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		GRPCRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "grpc",
				Name:      "requests_total",
				Help:      "Total number of unary gRPC requests.",
			},
			[]string{"method", "code"},
		),
	}

	c.registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.GRPCRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// Registry returns the registry the collector's metrics are registered on.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func sanitizeNamespace(namespace string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, namespace)
}
