package psatd

import (
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/lvpsatd/fields"
	"github.com/katalvlaran/lvpsatd/grid"
	"github.com/sirupsen/logrus"
)

// Algorithm is the PSATD update of one refinement level.
// The configuration is fixed at construction; coefficients are derived from
// the store's wavevectors by InitializeCoefficients.
type Algorithm struct {
	cfg   Config
	log   logrus.FieldLogger
	level int

	mu   sync.RWMutex
	coef map[grid.BlockID]*Coefficients
}

// New validates cfg and returns an Algorithm without coefficients.
// Errors: see Config.Validate.
func New(cfg Config, opts ...Option) (*Algorithm, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Algorithm{
		cfg:  cfg,
		log:  logrus.StandardLogger(),
		coef: make(map[grid.BlockID]*Coefficients),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Config returns the configuration the algorithm was built with.
func (a *Algorithm) Config() Config { return a.cfg }

// RequiredFieldCount returns the number of slots every block must have:
// NumFieldsAveraged with time averaging, NumFieldsBaseline otherwise.
func (a *Algorithm) RequiredFieldCount() int {
	if a.cfg.TimeAveraging {
		return NumFieldsAveraged
	}

	return NumFieldsBaseline
}

// InitializeCoefficients derives the coefficient set of every block of store,
// replacing any earlier set. Blocks are processed concurrently.
// Errors: ErrTooFewSlots, ErrOrderMismatch, ErrModesUnsupported.
//
// Complexity: O(total spectral points) trigonometric evaluations.
func (a *Algorithm) InitializeCoefficients(store *fields.Store) error {
	start := time.Now()
	if store.NumFields() < a.RequiredFieldCount() {
		return fmt.Errorf("psatd.InitializeCoefficients: %d < %d: %w",
			store.NumFields(), a.RequiredFieldCount(), ErrTooFewSlots)
	}
	if store.Space().Orders() != a.cfg.Orders {
		return fmt.Errorf("psatd.InitializeCoefficients: %v != %v: %w",
			store.Space().Orders(), a.cfg.Orders, ErrOrderMismatch)
	}
	for _, b := range store.Blocks() {
		if b.Shape().Modes != 1 {
			return fmt.Errorf("psatd.InitializeCoefficients: block %d has %d modes: %w",
				b.ID(), b.Shape().Modes, ErrModesUnsupported)
		}
	}

	coef := make(map[grid.BlockID]*Coefficients, len(store.Blocks()))
	var mu sync.Mutex
	store.ForEachBlock(func(b *fields.Block) {
		co := newCoefficients(b.Vectors(), a.cfg)
		mu.Lock()
		coef[b.ID()] = co
		mu.Unlock()
	})

	a.mu.Lock()
	a.coef = coef
	a.mu.Unlock()

	a.log.WithFields(logrus.Fields{
		"level":    a.level,
		"blocks":   len(coef),
		"galilean": a.cfg.Galilean(),
		"averaged": a.cfg.TimeAveraging,
		"elapsed":  time.Since(start),
	}).Debug("psatd: coefficients initialized")

	return nil
}

// Coefficients returns the coefficient set of block id, or nil before
// InitializeCoefficients.
func (a *Algorithm) Coefficients(id grid.BlockID) *Coefficients {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.coef[id]
}

// checkStore panics unless every block of store has coefficients of its
// shape and at least RequiredFieldCount slots.
func (a *Algorithm) checkStore(store *fields.Store) {
	if store.NumFields() < a.RequiredFieldCount() {
		panic(fmt.Sprintf("%s: %d < %d", panicSlots, store.NumFields(), a.RequiredFieldCount()))
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, b := range store.Blocks() {
		co, ok := a.coef[b.ID()]
		if !ok || co.shape != b.Shape() {
			panic(fmt.Sprintf("%s %d", panicNotInitialized, b.ID()))
		}
	}
}
