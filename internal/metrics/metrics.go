// Package metrics records per-session counters for the drill programs and
// exports them in the Prometheus text format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "termdrills"

// Session holds the metrics of a single program run. Each Session owns its
// registry, so independent sessions (and tests) never share state.
type Session struct {
	registry *prometheus.Registry

	promptsTotal    prometheus.Counter
	rejectionsTotal prometheus.Counter
	computations    prometheus.Counter
	itemsTotal      prometheus.Counter
	computeSeconds  prometheus.Histogram
}

// NewSession creates the metrics for the named program ("fibseq",
// "wordfreq"). The program name is attached as a constant label.
func NewSession(program string) *Session {
	labels := prometheus.Labels{"program": program}
	s := &Session{
		registry: prometheus.NewRegistry(),
		promptsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   Namespace,
			Name:        "prompts_total",
			Help:        "Number of questions shown to the user.",
			ConstLabels: labels,
		}),
		rejectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   Namespace,
			Name:        "input_rejections_total",
			Help:        "Number of answers that failed validation.",
			ConstLabels: labels,
		}),
		computations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   Namespace,
			Name:        "computations_total",
			Help:        "Number of sequences generated or sentences analysed.",
			ConstLabels: labels,
		}),
		itemsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   Namespace,
			Name:        "items_total",
			Help:        "Number of sequence terms generated or words counted.",
			ConstLabels: labels,
		}),
		computeSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   Namespace,
			Name:        "compute_duration_seconds",
			Help:        "Time spent computing a result.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
	}
	s.registry.MustRegister(
		s.promptsTotal,
		s.rejectionsTotal,
		s.computations,
		s.itemsTotal,
		s.computeSeconds,
	)
	return s
}

// Asked records a question being shown.
func (s *Session) Asked(string) {
	s.promptsTotal.Inc()
}

// Rejected records an answer that failed validation.
func (s *Session) Rejected(string, error) {
	s.rejectionsTotal.Inc()
}

// ObserveComputation records one result of the given size.
func (s *Session) ObserveComputation(items int, d time.Duration) {
	s.computations.Inc()
	s.itemsTotal.Add(float64(items))
	s.computeSeconds.Observe(d.Seconds())
}

// Gatherer exposes the session registry.
func (s *Session) Gatherer() prometheus.Gatherer {
	return s.registry
}

// WriteTextfile writes the current values to path in the Prometheus text
// exposition format, suitable for node_exporter's textfile collector.
func (s *Session) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, s.registry)
}
