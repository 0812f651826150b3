// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Result label values for attempt metrics.
const (
	ResultGranted = "granted"
	ResultDenied  = "denied"
)

// Metrics holds the Prometheus collectors for credential checks.
type Metrics struct {
	Attempts *prometheus.CounterVec
}

// NewMetrics creates the credential check collectors and registers them with reg.
// Panics if registration fails (following prometheus convention).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Attempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gatekeeper_auth_attempts_total",
				Help: "Total number of credential checks by result",
			},
			[]string{"result"},
		),
	}
	reg.MustRegister(m.Attempts)
	return m
}

// recordAttempt is a no-op on a nil receiver.
func (m *Metrics) recordAttempt(granted bool) {
	if m == nil {
		return
	}
	result := ResultDenied
	if granted {
		result = ResultGranted
	}
	m.Attempts.WithLabelValues(result).Inc()
}
