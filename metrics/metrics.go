// Package metrics exposes Prometheus counters for transition systems.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/atlekbai/transitions"
)

// Recorder holds the collectors shared by every attached machine.
type Recorder struct {
	registry    *prometheus.Registry
	transitions *prometheus.CounterVec
	rejections  *prometheus.CounterVec
	queries     *prometheus.HistogramVec
	paths       *prometheus.CounterVec
}

// NewRecorder creates the collectors under namespace and registers them on
// registry. A nil registry gets a fresh one.
func NewRecorder(registry *prometheus.Registry, namespace string) (*Recorder, error) {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	r := &Recorder{
		registry: registry,
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transitions_total",
				Help:      "Total number of cursor moves",
			},
			[]string{"machine", "kind"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rejections_total",
				Help:      "Total number of refused transition attempts",
			},
			[]string{"machine", "reason"},
		),
		queries: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "path_query_duration_seconds",
				Help:      "Duration of exhaustive path queries",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"machine", "query"},
		),
		paths: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "paths_found_total",
				Help:      "Total number of simple paths returned by path queries",
			},
			[]string{"machine", "query"},
		),
	}
	for _, c := range []prometheus.Collector{r.transitions, r.rejections, r.queries, r.paths} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return r, nil
}

// Registry returns the registry the collectors live in.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Transitions returns the cursor move counter.
func (r *Recorder) Transitions() *prometheus.CounterVec { return r.transitions }

// Rejections returns the refused attempt counter.
func (r *Recorder) Rejections() *prometheus.CounterVec { return r.rejections }

// Paths returns the path counter.
func (r *Recorder) Paths() *prometheus.CounterVec { return r.paths }

// ObserveQuery records the duration of a path query and the number of paths it returned.
func (r *Recorder) ObserveQuery(machine, query string, took time.Duration, found int) {
	r.queries.WithLabelValues(machine, query).Observe(took.Seconds())
	r.paths.WithLabelValues(machine, query).Add(float64(found))
}

// WriteText writes every gathered family in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

// Attach counts the cursor moves and rejections of ts under the machine label.
func Attach[S comparable](r *Recorder, machine string, ts *transitions.TransitionSystem[S]) {
	ts.OnTransitioned(func(t transitions.Transition[S]) {
		r.transitions.WithLabelValues(machine, t.Kind.String()).Inc()
	})
	ts.OnRejected(func(rej transitions.Rejection[S]) {
		r.rejections.WithLabelValues(machine, rej.Reason.String()).Inc()
	})
}
