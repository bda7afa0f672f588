package psatd

import "github.com/sirupsen/logrus"

// Option configures an Algorithm.
type Option func(*Algorithm)

// WithLogger sets the logger used for construction-time messages.
// Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("psatd: WithLogger: nil logger")
	}

	return func(a *Algorithm) { a.log = l }
}

// WithLevel tags log entries with the refinement level.
func WithLevel(level int) Option {
	return func(a *Algorithm) { a.level = level }
}
