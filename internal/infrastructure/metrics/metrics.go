// Package metrics defines the Prometheus collectors exported by the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Extraction outcomes
const (
	OutcomeProducts   = "products"
	OutcomeNoProducts = "no_products"
	OutcomeInvalid    = "invalid"
)

// DefaultHTTPDurationBuckets are request latency buckets in seconds
var DefaultHTTPDurationBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}

// Metrics holds every collector the service updates
type Metrics struct {
	ExtractionsTotal    *prometheus.CounterVec
	ProductsPerRequest  prometheus.Histogram
	CacheHitsTotal      prometheus.Counter
	CacheMissesTotal    prometheus.Counter
	HistoryErrorsTotal  prometheus.Counter
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
// A nil registerer leaves them unregistered, which suits tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ExtractionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "whispercart",
			Name:      "extractions_total",
			Help:      "Extraction requests by outcome.",
		}, []string{"outcome"}),
		ProductsPerRequest: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "whispercart",
			Name:      "products_per_request",
			Help:      "Number of product entities returned per extraction.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8},
		}),
		CacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "whispercart",
			Name:      "cache_hits_total",
			Help:      "Extraction results served from cache.",
		}),
		CacheMissesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "whispercart",
			Name:      "cache_misses_total",
			Help:      "Extraction results computed after a cache miss.",
		}),
		HistoryErrorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "whispercart",
			Name:      "history_errors_total",
			Help:      "Failures writing query history.",
		}),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "whispercart",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "whispercart",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   DefaultHTTPDurationBuckets,
		}, []string{"route", "method"}),
	}

	if reg != nil {
		reg.MustRegister(
			m.ExtractionsTotal,
			m.ProductsPerRequest,
			m.CacheHitsTotal,
			m.CacheMissesTotal,
			m.HistoryErrorsTotal,
			m.HTTPRequestsTotal,
			m.HTTPRequestDuration,
		)
	}

	return m
}
