// Package metrics exposes Prometheus instrumentation for the cutoff
// explorer: dataset load outcomes per source, snapshot size, and query
// pipeline activity.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	sourceAttempts *prometheus.CounterVec
	datasetRecords prometheus.Gauge
	datasetLoaded  prometheus.Gauge
	queriesTotal   prometheus.Counter
	queryDuration  prometheus.Histogram

	registry *prometheus.Registry
}

// New creates a metrics instance backed by its own registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		sourceAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cutoff_source_attempts_total",
				Help: "Dataset load attempts by source and outcome",
			},
			[]string{"source", "outcome"},
		),

		datasetRecords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "cutoff_dataset_records",
				Help: "Number of records in the current dataset snapshot",
			},
		),

		datasetLoaded: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "cutoff_dataset_loaded_timestamp_seconds",
				Help: "Unix time of the last successful dataset load",
			},
		),

		queriesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "cutoff_queries_total",
				Help: "Total query pipeline runs",
			},
		),

		queryDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cutoff_query_duration_seconds",
				Help:    "Query pipeline latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),

		registry: registry,
	}

	registry.MustRegister(
		m.sourceAttempts,
		m.datasetRecords,
		m.datasetLoaded,
		m.queriesTotal,
		m.queryDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// SourceAttempt records one dataset load attempt. Outcome is "ok" or
// "error".
func (m *Metrics) SourceAttempt(source, outcome string) {
	m.sourceAttempts.WithLabelValues(source, outcome).Inc()
}

// DatasetLoaded records a successful snapshot swap.
func (m *Metrics) DatasetLoaded(records int) {
	m.datasetRecords.Set(float64(records))
	m.datasetLoaded.SetToCurrentTime()
}

// ObserveQuery records one pipeline run and its duration.
func (m *Metrics) ObserveQuery(d time.Duration) {
	m.queriesTotal.Inc()
	m.queryDuration.Observe(d.Seconds())
}

// Handler returns the HTTP handler serving this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
