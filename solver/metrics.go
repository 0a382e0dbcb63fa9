// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "jacobi"

// Solve outcomes used as label values.
const (
	OutcomeSolved          = "solved"
	OutcomeDegenerate      = "degenerate"
	OutcomeUnderDetermined = "under_determined"
	OutcomeBrokenInvariant = "broken_invariant"
	OutcomeError           = "error"
)

// Metrics instruments the solver and its cache.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
	CacheRefinements prometheus.Counter
	SolvesTotal      *prometheus.CounterVec
	SolveDuration    prometheus.Histogram
	Vectors          prometheus.Histogram
}

// NewMetrics registers the solver metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		CacheHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Cache lookups answered by truncating a stored basis",
		}),
		CacheMisses: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Cache lookups that required a computation",
		}),
		CacheRefinements: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "cache",
			Name:      "refinements_total",
			Help:      "Stored bases replaced by a finer precision",
		}),
		SolvesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "solver",
			Name:      "solves_total",
			Help:      "Reconstructions by outcome",
		}, []string{"outcome"}),
		SolveDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "solver",
			Name:      "solve_duration_seconds",
			Help:      "Time spent in one reconstruction",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		}),
		Vectors: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "solver",
			Name:      "restriction_vectors",
			Help:      "Distinct restriction vectors per reconstruction",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34},
		}),
	}
}

func (m *Metrics) hit() {
	if m != nil {
		m.CacheHits.Inc()
	}
}

func (m *Metrics) miss() {
	if m != nil {
		m.CacheMisses.Inc()
	}
}

func (m *Metrics) refined() {
	if m != nil {
		m.CacheRefinements.Inc()
	}
}

func (m *Metrics) solved(outcome string, seconds float64, vectors int) {
	if m == nil {
		return
	}
	m.SolvesTotal.WithLabelValues(outcome).Inc()
	m.SolveDuration.Observe(seconds)
	if vectors > 0 {
		m.Vectors.Observe(float64(vectors))
	}
}
