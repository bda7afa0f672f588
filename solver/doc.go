// SPDX-License-Identifier: MIT

// Package solver is the per-refinement-level spectral field solver.
//
// A Solver owns one wavevector space, one spectral field store and one
// update algorithm, chosen once at construction from Config. It is the only
// surface other subsystems depend on:
//
//	s, err := solver.New(level, layout, cfg, solver.WithLogger(log))
//	s.ForwardTransformPair(ex, psatd.Ex, bx, psatd.Bx)
//	...
//	s.CurrentCorrection(j, rhoOld, rhoNew) // if configured
//	s.Push()
//	s.ApplyFilterVector(psatd.Ex, psatd.Ey, psatd.Ez) // optional
//	s.BackwardTransformPair(ex, psatd.Ex, bx, psatd.Bx)
//
// Step runs the whole sequence on a StepFields bundle.
//
// Sequencing:
//   - At most one charge correction per step, and only the configured method.
//   - No correction after Push; filters only after Push.
//   - A forward transform after Push starts a new step.
//
// Violations panic. Calls on one Solver are serialized; Solvers of different
// levels share nothing and may run concurrently.
package solver
