// SPDX-License-Identifier: MIT

package solver

import (
	"runtime"

	"github.com/katalvlaran/lvpsatd/metrics"
	"github.com/sirupsen/logrus"
)

// Option configures a Solver.
type Option func(*options)

type options struct {
	log     logrus.FieldLogger
	rec     *metrics.Recorder
	workers int
}

func defaultOptions() options {
	return options{
		log:     logrus.StandardLogger(),
		workers: runtime.GOMAXPROCS(0),
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("solver: WithLogger: nil logger")
	}

	return func(o *options) { o.log = l }
}

// WithMetrics records one observation per public call into r.
func WithMetrics(r *metrics.Recorder) Option {
	return func(o *options) { o.rec = r }
}

// WithWorkers bounds the number of blocks processed concurrently.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}
