// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvpsatd/grid"
	"github.com/katalvlaran/lvpsatd/metrics"
	"github.com/katalvlaran/lvpsatd/psatd"
)

// Push advances the spectral E and B of every block by one time step.
func (s *Solver) Push() {
	defer s.observe(metrics.OpPush, time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alg.Push(s.store)
	s.pushed = true
}

// InitFilter builds the k-space filter of every block.
// Errors: fields.ErrInvalidFilter.
func (s *Solver) InitFilter(npass [grid.NumAxes]int, compensation bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.InitFilter(npass, compensation)
}

// ApplyFilter filters slot idx of every block. Only valid after Push.
func (s *Solver) ApplyFilter(idx psatd.Index) {
	defer s.observe(metrics.OpFilter, time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkFilter()
	s.checkSlot(idx)
	s.store.ApplyFilter(int(idx))
}

// ApplyFilterVector filters three slots of every block. Only valid after Push.
func (s *Solver) ApplyFilterVector(idx1, idx2, idx3 psatd.Index) {
	defer s.observe(metrics.OpFilter, time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkFilter()
	s.checkSlot(idx1, idx2, idx3)
	s.store.ApplyFilterVector(int(idx1), int(idx2), int(idx3))
}

func (s *Solver) checkFilter() {
	if !s.pushed {
		panic(panicFilterEarly)
	}
}

// CurrentCorrection transforms J and both charge densities in, makes J
// charge-conserving, and writes the corrected J back into j.
// Panics unless CorrectionCurrent is configured and no correction or Push
// has run in this step.
func (s *Solver) CurrentCorrection(j [grid.NumAxes]grid.MultiReal, rhoOld, rhoNew grid.MultiReal) {
	defer s.observe(metrics.OpCorrection, time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	s.beginCorrection(CorrectionCurrent)
	for a, idx := range psatd.J {
		s.forward(j[a], idx)
	}
	s.forward(rhoOld, psatd.RhoOld)
	s.forward(rhoNew, psatd.RhoNew)
	s.alg.CurrentCorrection(s.store)
	for a, idx := range psatd.J {
		s.backward(j[a], idx)
	}
}

// VayDeposition transforms the Vay-deposited D = −i k J in from j, recovers
// J, and writes it back into j.
// Panics unless CorrectionVay is configured and no correction or Push has
// run in this step.
func (s *Solver) VayDeposition(j [grid.NumAxes]grid.MultiReal) {
	defer s.observe(metrics.OpCorrection, time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	s.beginCorrection(CorrectionVay)
	for a, idx := range psatd.J {
		s.forward(j[a], idx)
	}
	s.alg.VayDeposition(s.store)
	for a, idx := range psatd.J {
		s.backward(j[a], idx)
	}
}

func (s *Solver) beginCorrection(m CorrectionMethod) {
	switch {
	case s.cfg.Correction != m:
		panic(fmt.Sprintf("%s: %v (configured %v)", panicWrongCorrection, m, s.cfg.Correction))
	case s.pushed:
		panic(panicCorrectionLate)
	case s.corrected:
		panic(panicSecondCorrection)
	}
	s.corrected = true
}

// ComputeSpectralDivE writes ∇·E of the physical arrays e into out.
// It mutates only the DivE slot and the transform scratch; E, B, J and rho
// slots and the step state are unchanged.
func (s *Solver) ComputeSpectralDivE(e [grid.NumAxes]grid.MultiReal, out grid.MultiReal) {
	defer s.observe(metrics.OpDivE, time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	for a := range e {
		s.check(e[a], "divE input")
	}
	s.check(out, "divE output")
	s.diagnostics().ComputeSpectralDivE(s.store, e, out)
}

// FieldEnergy returns the electromagnetic energy of the spectral E and B slots.
func (s *Solver) FieldEnergy() float64 {
	defer s.observe(metrics.OpFieldEnergy, time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.diagnostics().FieldEnergy(s.store)
}

func (s *Solver) diagnostics() Diagnostics {
	d, ok := s.alg.(Diagnostics)
	if !ok {
		panic(panicNoDiagnostics)
	}

	return d
}

// StepFields holds the physical arrays of one step. RhoOld/RhoNew are
// required with the rho-aware update or current correction; EAvg/BAvg with
// time averaging. E and B are read, then overwritten with the new fields.
type StepFields struct {
	E, B, J        [grid.NumAxes]grid.MultiReal
	RhoOld, RhoNew grid.MultiReal
	EAvg, BAvg     [grid.NumAxes]grid.MultiReal
	// Filter applies the k-space filter to E and B after the push.
	Filter bool
}

// Step runs forward → correction → push → filter → backward on f.
// The configured correction method, if any, is applied to f.J.
func (s *Solver) Step(f StepFields) {
	for a := range f.E {
		s.ForwardTransformPair(f.E[a], psatd.E[a], f.B[a], psatd.B[a])
	}
	switch s.cfg.Correction {
	case CorrectionCurrent:
		s.CurrentCorrection(f.J, f.RhoOld, f.RhoNew)
	case CorrectionVay:
		s.VayDeposition(f.J)
	default:
		s.forwardJ(f.J)
	}
	if s.cfg.Correction != CorrectionCurrent && s.cfg.PSATD.UpdateWithRho {
		s.ForwardTransformPair(f.RhoOld, psatd.RhoOld, f.RhoNew, psatd.RhoNew)
	}
	s.Push()
	if f.Filter {
		s.ApplyFilterVector(psatd.Ex, psatd.Ey, psatd.Ez)
		s.ApplyFilterVector(psatd.Bx, psatd.By, psatd.Bz)
	}
	for a := range f.E {
		s.BackwardTransformPair(f.E[a], psatd.E[a], f.B[a], psatd.B[a])
	}
	if s.cfg.PSATD.TimeAveraging {
		avgE := [grid.NumAxes]psatd.Index{psatd.ExAvg, psatd.EyAvg, psatd.EzAvg}
		avgB := [grid.NumAxes]psatd.Index{psatd.BxAvg, psatd.ByAvg, psatd.BzAvg}
		for a := range f.EAvg {
			s.BackwardTransformPair(f.EAvg[a], avgE[a], f.BAvg[a], avgB[a])
		}
	}
}

// forwardJ loads J without touching the step state.
func (s *Solver) forwardJ(j [grid.NumAxes]grid.MultiReal) {
	defer s.observe(metrics.OpForward, time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	for a, idx := range psatd.J {
		s.forward(j[a], idx)
	}
}
