// Package metrics holds the Prometheus instruments for the diagram service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Generation outcomes.
const (
	OutcomeRepaired = "repaired"
	OutcomeFallback = "fallback"
	OutcomeOverride = "override"
	OutcomeCached   = "cached"
)

var (
	// Generations counts diagram generations by outcome.
	Generations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "archwize_generations_total",
			Help: "Total diagram generations by outcome",
		},
		[]string{"outcome"},
	)

	// UpstreamErrors counts failed calls to the text-generation service.
	UpstreamErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "archwize_upstream_errors_total",
			Help: "Total failed upstream text-generation calls",
		},
	)
)

// MustRegister installs the instruments on the default registry. Call once,
// from the serving entry point.
func MustRegister() {
	prometheus.MustRegister(Generations, UpstreamErrors)
}
