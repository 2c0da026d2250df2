// Package metrics holds the Prometheus collectors for catalog queries,
// dataset loads, quotes and exports. There is no scrape endpoint; the CLI
// pushes the registry to a Pushgateway when one is configured.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "touristfinder"

// Metrics is safe to use through a nil pointer; every method is then a no-op.
type Metrics struct {
	registry *prometheus.Registry

	queriesTotal  *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
	queryResults  *prometheus.HistogramVec
	sourceLoads   *prometheus.CounterVec
	cacheTotal    *prometheus.CounterVec
	quotesTotal   *prometheus.CounterVec
	exportsTotal  *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		queriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_queries_total",
			Help:      "Catalog queries evaluated",
		}, []string{"kind"}),

		queryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "catalog_query_duration_seconds",
			Help:      "Time spent filtering and sorting one collection",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}, []string{"kind"}),

		queryResults: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "catalog_query_results",
			Help:      "Records returned per query before pagination",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 500},
		}, []string{"kind"}),

		sourceLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_loads_total",
			Help:      "Dataset loads by source and outcome",
		}, []string{"source", "status"}),

		cacheTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_cache_total",
			Help:      "Dataset snapshot cache lookups",
		}, []string{"result"}), // "hit" / "miss" / "error"

		quotesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_quotes_total",
			Help:      "Simulated booking quotes by kind and outcome",
		}, []string{"kind", "status"}),

		exportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "CSV exports by destination and outcome",
		}, []string{"target", "status"}),
	}

	m.registry.MustRegister(
		m.queriesTotal,
		m.queryDuration,
		m.queryResults,
		m.sourceLoads,
		m.cacheTotal,
		m.quotesTotal,
		m.exportsTotal,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveQuery(kind string, took time.Duration, results int) {
	if m == nil {
		return
	}
	m.queriesTotal.WithLabelValues(kind).Inc()
	m.queryDuration.WithLabelValues(kind).Observe(took.Seconds())
	m.queryResults.WithLabelValues(kind).Observe(float64(results))
}

func (m *Metrics) SourceLoaded(source string, err error) {
	if m == nil {
		return
	}
	m.sourceLoads.WithLabelValues(source, status(err)).Inc()
}

func (m *Metrics) CacheLookup(result string) {
	if m == nil {
		return
	}
	m.cacheTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) Quote(kind string, err error) {
	if m == nil {
		return
	}
	m.quotesTotal.WithLabelValues(kind, status(err)).Inc()
}

func (m *Metrics) Export(target string, err error) {
	if m == nil {
		return
	}
	m.exportsTotal.WithLabelValues(target, status(err)).Inc()
}

// Push sends the registry to a Pushgateway under job.
func (m *Metrics) Push(ctx context.Context, gatewayURL, job string) error {
	if m == nil || gatewayURL == "" {
		return nil
	}
	if err := push.New(gatewayURL, job).Gatherer(m.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
