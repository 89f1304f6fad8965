// Package metrics exposes Prometheus instrumentation for batch generation.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mimic"

// Metrics holds the collectors on a private registry
type Metrics struct {
	registry *prometheus.Registry

	batches   *prometheus.CounterVec
	records   *prometheus.CounterVec
	failures  *prometheus.CounterVec
	duration  prometheus.Histogram
	batchSize prometheus.Histogram
}

// New creates and registers the generation collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_total",
			Help:      "Generated batches by region and whether the clean values came from cache.",
		}, []string{"region", "cached"}),
		records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Generated records by region.",
		}, []string{"region"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_failures_total",
			Help:      "Failed generation requests by error kind.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Time spent generating one batch.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Requested batch sizes.",
			Buckets:   []float64{1, 5, 10, 20, 50, 100, 250, 500, 1000},
		}),
	}

	m.registry.MustRegister(
		m.batches,
		m.records,
		m.failures,
		m.duration,
		m.batchSize,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveBatch records a successful generation
func (m *Metrics) ObserveBatch(region string, size int, cached bool, elapsed time.Duration) {
	m.batches.WithLabelValues(region, strconv.FormatBool(cached)).Inc()
	m.records.WithLabelValues(region).Add(float64(size))
	m.batchSize.Observe(float64(size))
	m.duration.Observe(elapsed.Seconds())
}

// ObserveFailure records a failed generation by error kind
func (m *Metrics) ObserveFailure(kind string) {
	m.failures.WithLabelValues(kind).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
