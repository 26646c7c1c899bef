// Package metrics exposes Prometheus metrics of the warning download
// pipeline. All recording methods are safe to call on a nil *Metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Package results recorded by [Metrics.IncrementPackage].
const (
	PackageMatched            = "matched"
	PackageEmpty              = "empty"
	PackageVerificationFailed = "verification_failed"
	PackageFailed             = "failed"
)

// Metrics provides observability for the download cycle.
type Metrics struct {
	registry *prometheus.Registry

	// Packages processed by region and result
	PackagesProcessed *prometheus.CounterVec

	// Matches persisted (duplicates are not counted)
	MatchesCreated prometheus.Counter

	// Cycle results by outcome ("ordinary", "emptyPackage", ..., "error")
	CycleOutcome *prometheus.CounterVec

	// Duration of a whole download cycle
	CycleDuration prometheus.Histogram
}

// New creates a Metrics instance registered in its own registry together
// with the Go runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		PackagesProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "trace_warnings_packages_total",
			Help: "Total warning packages processed by region and result",
		}, []string{"region", "result"}),

		MatchesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "trace_warnings_matches_created_total",
			Help: "Total trace time interval matches persisted",
		}),

		CycleOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "trace_warnings_cycles_total",
			Help: "Total download cycles by outcome",
		}, []string{"outcome"}),

		CycleDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "trace_warnings_cycle_duration_seconds",
			Help:    "Duration of a full download cycle across all regions",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
	}
}

// IncrementPackage records a processed package.
func (m *Metrics) IncrementPackage(region, result string) {
	if m != nil {
		m.PackagesProcessed.WithLabelValues(region, result).Inc()
	}
}

// IncrementMatches records n persisted matches.
func (m *Metrics) IncrementMatches(n int) {
	if m != nil && n > 0 {
		m.MatchesCreated.Add(float64(n))
	}
}

// ObserveCycle records the outcome and duration of a download cycle.
func (m *Metrics) ObserveCycle(outcome string, d time.Duration) {
	if m != nil {
		m.CycleOutcome.WithLabelValues(outcome).Inc()
		m.CycleDuration.Observe(d.Seconds())
	}
}

// Handler serves the registry in the Prometheus text format. A nil receiver
// serves an empty registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
