package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	registry   *prometheus.Registry
	outcomes   *prometheus.CounterVec
	storeCalls *prometheus.HistogramVec
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_outcomes_total",
			Help: "Classified results of POS operations.",
		}, []string{"operation", "result_type"}),
		storeCalls: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pos_store_call_duration_seconds",
			Help:    "Duration of store procedure calls.",
			Buckets: prometheus.DefBuckets,
		}, []string{"procedure", "status"}),
	}
	reg.MustRegister(
		m.outcomes,
		m.storeCalls,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveOutcome counts one finished operation.
func (m *Metrics) ObserveOutcome(operation, resultType string) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(operation, resultType).Inc()
}

// ObserveStoreCall records the duration of one procedure call.
func (m *Metrics) ObserveStoreCall(procedure string, took time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "fault"
	}
	m.storeCalls.WithLabelValues(procedure, status).Observe(took.Seconds())
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
