// Package metrics exposes per-level solver call counts and durations as
// Prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation labels used by the solver.
const (
	OpForward     = "forward"
	OpBackward    = "backward"
	OpPush        = "push"
	OpFilter      = "filter"
	OpCorrection  = "correction"
	OpDivE        = "div_e"
	OpFieldEnergy = "field_energy"
)

// Recorder holds the solver collectors. A nil *Recorder records nothing.
type Recorder struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "psatd",
			Subsystem: "solver",
			Name:      "calls_total",
			Help:      "Counts solver calls by refinement level and operation.",
		}, []string{"level", "op"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "psatd",
			Subsystem: "solver",
			Name:      "phase_seconds",
			Help:      "Wall time of solver calls by refinement level and operation.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"level", "op"}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{r.calls, r.duration} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

// Observe counts one call of op on level and records the time since start.
func (r *Recorder) Observe(level int, op string, start time.Time) {
	if r == nil {
		return
	}
	lv := strconv.Itoa(level)
	r.calls.WithLabelValues(lv, op).Inc()
	r.duration.WithLabelValues(lv, op).Observe(time.Since(start).Seconds())
}

// Calls returns the call counter, for reading back in tests and reports.
func (r *Recorder) Calls() *prometheus.CounterVec { return r.calls }
