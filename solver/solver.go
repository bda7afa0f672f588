// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/lvpsatd/fields"
	"github.com/katalvlaran/lvpsatd/grid"
	"github.com/katalvlaran/lvpsatd/kspace"
	"github.com/katalvlaran/lvpsatd/psatd"
	"github.com/sirupsen/logrus"
)

// Solver is the spectral solver of one refinement level.
type Solver struct {
	level  int
	layout grid.Layout
	cfg    Config
	opts   options

	space *kspace.Space
	store *fields.Store
	alg   UpdateAlgorithm

	mu        sync.Mutex
	pushed    bool // Push ran since the last forward transform
	corrected bool // a charge correction ran in the current step
}

// New builds the solver of one level: the wavevector space from cfg.Dx and
// the stencil orders, the update algorithm, and a store with every box of
// layout registered and coefficients initialized.
// Errors: ErrUnknownAlgorithm, ErrUnknownCorrection, and the wrapped errors
// of kspace.New, psatd.New, fields.Store.RegisterLayout and
// InitializeCoefficients. No Solver is returned on error.
func New(level int, layout grid.Layout, cfg Config, opts ...Option) (*Solver, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if cfg.Correction < CorrectionNone || cfg.Correction > CorrectionVay {
		return nil, fmt.Errorf("solver.New: %v: %w", cfg.Correction, ErrUnknownCorrection)
	}
	alg, orders, err := newAlgorithm(level, cfg, o.log)
	if err != nil {
		return nil, fmt.Errorf("solver.New: %w", err)
	}
	space, err := kspace.New(cfg.Dx, orders)
	if err != nil {
		return nil, fmt.Errorf("solver.New: %w", err)
	}
	store, err := fields.New(space, alg.RequiredFieldCount(), fields.WithWorkers(o.workers))
	if err != nil {
		return nil, fmt.Errorf("solver.New: %w", err)
	}
	if err = store.RegisterLayout(layout); err != nil {
		return nil, fmt.Errorf("solver.New: %w", err)
	}
	if err = alg.InitializeCoefficients(store); err != nil {
		return nil, fmt.Errorf("solver.New: %w", err)
	}

	o.log.WithFields(logrus.Fields{
		"level":      level,
		"algorithm":  cfg.Algorithm,
		"blocks":     len(layout),
		"slots":      alg.RequiredFieldCount(),
		"dx":         cfg.Dx,
		"orders":     orders,
		"nodal":      cfg.PSATD.Nodal,
		"v_galilean": cfg.PSATD.VGalilean,
		"dt":         cfg.PSATD.Dt,
		"averaged":   cfg.PSATD.TimeAveraging,
		"with_rho":   cfg.PSATD.UpdateWithRho,
		"correction": cfg.Correction,
	}).Info("solver: level initialized")

	return &Solver{
		level:  level,
		layout: layout,
		cfg:    cfg,
		opts:   o,
		space:  space,
		store:  store,
		alg:    alg,
	}, nil
}

// newAlgorithm resolves the configured scheme once.
func newAlgorithm(level int, cfg Config, log logrus.FieldLogger) (UpdateAlgorithm, [grid.NumAxes]int, error) {
	switch cfg.Algorithm {
	case AlgorithmPSATD:
		a, err := psatd.New(cfg.PSATD, psatd.WithLogger(log), psatd.WithLevel(level))
		if err != nil {
			return nil, [grid.NumAxes]int{}, err
		}
		return a, cfg.PSATD.Orders, nil
	default:
		return nil, [grid.NumAxes]int{}, fmt.Errorf("%v: %w", cfg.Algorithm, ErrUnknownAlgorithm)
	}
}

// Level returns the refinement level.
func (s *Solver) Level() int { return s.level }

// Layout returns the blocks of the level.
func (s *Solver) Layout() grid.Layout { return s.layout }

// Config returns the solver configuration.
func (s *Solver) Config() Config { return s.cfg }

// RequiredFieldCount returns the spectral slot count of every block.
func (s *Solver) RequiredFieldCount() int { return s.alg.RequiredFieldCount() }

// observe records a call into the attached recorder, if any.
func (s *Solver) observe(op string, start time.Time) {
	s.opts.rec.Observe(s.level, op, start)
}
