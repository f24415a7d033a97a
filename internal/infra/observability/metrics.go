// Package observability reports feed diagnostics and evaluation metrics.
package observability

import (
	"time"

	"vitrine/config"
	"vitrine/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultNamespace = "vitrine"

// Metrics holds the feed Prometheus collectors.
type Metrics struct {
	diagnostics *prometheus.CounterVec
	evaluations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	dropped     *prometheus.CounterVec
}

// NewMetrics registers the feed collectors on reg.
func NewMetrics(reg prometheus.Registerer, cfg *config.Config) *Metrics {
	namespace := defaultNamespace
	if cfg.Metrics != nil && cfg.Metrics.Namespace != "" {
		namespace = cfg.Metrics.Namespace
	}

	factory := promauto.With(reg)

	return &Metrics{
		diagnostics: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "feed_diagnostics_total",
				Help:      "Total number of merchant data diagnostics by kind",
			},
			[]string{"kind"},
		),
		evaluations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "feed_evaluations_total",
				Help:      "Total number of feed evaluations by mode",
			},
			[]string{"mode"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "feed_evaluation_duration_seconds",
				Help:      "Duration of feed evaluations in seconds",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
			},
			[]string{"mode"},
		),
		dropped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "feed_candidates_dropped_total",
				Help:      "Total number of candidate merchants dropped by gating, filtering or scoring",
			},
			[]string{"mode"},
		),
	}
}

// ObserveEvaluation records one feed evaluation.
func (m *Metrics) ObserveEvaluation(mode service.FeedMode, duration time.Duration, candidates, results int) {
	m.evaluations.WithLabelValues(string(mode)).Inc()
	m.duration.WithLabelValues(string(mode)).Observe(duration.Seconds())
	if dropped := candidates - results; dropped > 0 {
		m.dropped.WithLabelValues(string(mode)).Add(float64(dropped))
	}
}

func (m *Metrics) countDiagnostic(kind service.DiagnosticKind) {
	m.diagnostics.WithLabelValues(string(kind)).Inc()
}
