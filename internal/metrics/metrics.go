// Package metrics holds the Prometheus collectors for password generation and scoring.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "passgen"

// Metrics groups the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	generated   *prometheus.CounterVec
	failures    *prometheus.CounterVec
	evaluations *prometheus.CounterVec
	length      prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "passwords_generated_total",
			Help:      "Passwords generated, by strength tag.",
		}, []string{"strength"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_failures_total",
			Help:      "Generation requests that produced no password, by reason.",
		}, []string{"reason"}),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "strength_evaluations_total",
			Help:      "Standalone strength evaluations, by strength tag.",
		}, []string{"strength"}),
		length: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "password_length",
			Help:      "Length of generated passwords.",
			Buckets:   []float64{4, 8, 12, 16, 18, 24, 32, 48, 64, 96, 128},
		}),
	}

	reg.MustRegister(m.generated, m.failures, m.evaluations, m.length)
	return m
}

// Generated records a successful generation.
func (m *Metrics) Generated(tag string, length int) {
	if m == nil {
		return
	}
	m.generated.WithLabelValues(tag).Inc()
	m.length.Observe(float64(length))
}

// Failed records a generation that produced no password.
func (m *Metrics) Failed(reason string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(reason).Inc()
}

// Evaluated records a standalone strength evaluation.
func (m *Metrics) Evaluated(tag string) {
	if m == nil {
		return
	}
	m.evaluations.WithLabelValues(tag).Inc()
}
