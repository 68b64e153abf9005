package server

import (
	"github.com/lacquerai/calcform/internal/calc"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the server's prometheus collectors
type Metrics struct {
	evaluations      *prometheus.CounterVec
	undefinedResults prometheus.Counter
	liveSessions     prometheus.Gauge
	requestDuration  *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with registerer when
// it is not nil.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "calcform_evaluations_total",
			Help: "Total number of evaluations by operation",
		}, []string{"operation"}),
		undefinedResults: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calcform_undefined_results_total",
			Help: "Total number of evaluations that ended in a division by zero",
		}),
		liveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "calcform_live_sessions_active",
			Help: "Number of currently open live form sessions",
		}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "calcform_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	if registerer != nil {
		registerer.MustRegister(m.evaluations)
		registerer.MustRegister(m.undefinedResults)
		registerer.MustRegister(m.liveSessions)
		registerer.MustRegister(m.requestDuration)
	}

	return m
}

// ObserveEvaluation records one recomputation of a form
func (m *Metrics) ObserveEvaluation(snapshot calc.Snapshot) {
	m.evaluations.WithLabelValues(snapshot.Operation).Inc()
	if snapshot.Undefined {
		m.undefinedResults.Inc()
	}
}
