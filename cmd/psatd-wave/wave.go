// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvpsatd/config"
	"github.com/katalvlaran/lvpsatd/grid"
	"github.com/katalvlaran/lvpsatd/kspace"
	"github.com/katalvlaran/lvpsatd/metrics"
	"github.com/katalvlaran/lvpsatd/psatd"
	"github.com/katalvlaran/lvpsatd/solver"
	"github.com/sirupsen/logrus"
)

var errInvalidMode = errors.New("psatd-wave: mode must be in [1, nz/2)")

// waveReport summarizes one run.
type waveReport struct {
	Steps   int
	Time    float64
	Omega   float64 // numerical angular frequency in the simulation frame
	Energy0 float64
	Energy  float64
	MaxDivE float64

	// MaxError is max|Ex − cos(k z − Ω t)| over every block at the end.
	MaxError float64
}

// EnergyDrift returns the relative change of the field energy.
func (r *waveReport) EnergyDrift() float64 {
	if r.Energy0 == 0 {
		return 0
	}

	return (r.Energy - r.Energy0) / r.Energy0
}

// staggers returns the E and B component staggering of the configured grid.
func staggers(nodal bool) (e, b [grid.NumAxes]grid.Stagger) {
	if nodal {
		return
	}

	return [grid.NumAxes]grid.Stagger{grid.YeeEx, grid.YeeEy, grid.YeeEz},
		[grid.NumAxes]grid.Stagger{grid.YeeBx, grid.YeeBy, grid.YeeBz}
}

func newVector(l grid.Layout, st [grid.NumAxes]grid.Stagger) ([grid.NumAxes]grid.MultiReal, error) {
	var v [grid.NumAxes]grid.MultiReal
	for a := range v {
		mr, err := grid.NewMultiReal(l, st[a])
		if err != nil {
			return v, err
		}
		v[a] = mr
	}

	return v, nil
}

func newStepFields(l grid.Layout, nodal bool) (solver.StepFields, error) {
	es, bs := staggers(nodal)
	var (
		f   solver.StepFields
		err error
	)
	if f.E, err = newVector(l, es); err != nil {
		return f, err
	}
	if f.B, err = newVector(l, bs); err != nil {
		return f, err
	}
	if f.J, err = newVector(l, es); err != nil {
		return f, err
	}
	if f.EAvg, err = newVector(l, es); err != nil {
		return f, err
	}
	if f.BAvg, err = newVector(l, bs); err != nil {
		return f, err
	}
	if f.RhoOld, err = grid.NewMultiReal(l, grid.Nodal); err != nil {
		return f, err
	}
	f.RhoNew, err = grid.NewMultiReal(l, grid.Nodal)

	return f, err
}

// zAt returns the z coordinate of sample k of a component with stagger st.
func zAt(k int, dz float64, st grid.Stagger) float64 {
	z := float64(k) * dz
	if st[grid.Z] {
		z += dz / 2
	}

	return z
}

// runWave initializes Ex = cos(k z), By = Ex/c on every block and advances
// it o.steps times. The solver is exact for its own dispersion relation
// ω = c|k_mod|, shifted by k_mod·v in a Galilean frame, so the error
// reflects round-off, filtering and averaging only.
func runWave(c *config.Config, o runOptions, log logrus.FieldLogger, rec *metrics.Recorder) (*waveReport, error) {
	sc, err := c.ToSolver()
	if err != nil {
		return nil, err
	}
	layout, err := c.Layout()
	if err != nil {
		return nil, err
	}
	shape := layout[0].Shape
	if o.mode < 1 || 2*o.mode >= shape.Nz {
		return nil, fmt.Errorf("%w: mode=%d nz=%d", errInvalidMode, o.mode, shape.Nz)
	}

	opts := []solver.Option{solver.WithLogger(log), solver.WithMetrics(rec)}
	if c.Workers > 0 {
		opts = append(opts, solver.WithWorkers(c.Workers))
	}
	sv, err := solver.New(c.Level, layout, sc, opts...)
	if err != nil {
		return nil, err
	}
	if c.Filter.Enabled {
		if err = sv.InitFilter(c.FilterPasses(), c.Filter.Compensation); err != nil {
			return nil, err
		}
	}

	space, err := kspace.New(sc.Dx, sc.PSATD.Orders)
	if err != nil {
		return nil, err
	}
	vec, err := space.ForShape(shape)
	if err != nil {
		return nil, err
	}
	dz, dt := sc.Dx[grid.Z], sc.PSATD.Dt
	k := 2 * math.Pi * float64(o.mode) / (float64(shape.Nz) * dz)
	kmod := vec.Modified(grid.Z, sc.PSATD.Centering())[o.mode]
	omega := psatd.C*math.Abs(kmod) - kmod*sc.PSATD.VGalilean[grid.Z]

	f, err := newStepFields(layout, sc.PSATD.Nodal)
	if err != nil {
		return nil, err
	}
	f.Filter = c.Filter.Enabled
	wave := func(st grid.Stagger, amp, t float64) func(m, i, j, kk int) float64 {
		return func(_, _, _, kk int) float64 {
			return amp * math.Cos(k*zAt(kk, dz, st)-omega*t)
		}
	}
	for _, r := range f.E[grid.X] {
		r.Fill(wave(r.Stagger(), 1, 0))
	}
	for _, r := range f.B[grid.Y] {
		r.Fill(wave(r.Stagger(), 1/psatd.C, 0))
	}

	rep := &waveReport{Steps: o.steps, Omega: omega}
	for a := range f.E {
		sv.ForwardTransformPair(f.E[a], psatd.E[a], f.B[a], psatd.B[a])
	}
	rep.Energy0 = sv.FieldEnergy()

	div, err := grid.NewMultiReal(layout, grid.Nodal)
	if err != nil {
		return nil, err
	}
	every := o.every
	if every < 1 {
		every = 1
	}
	for n := 1; n <= o.steps; n++ {
		sv.Step(f)
		if n%every != 0 && n != o.steps {
			continue
		}
		rep.Energy = sv.FieldEnergy()
		sv.ComputeSpectralDivE(f.E, div)
		rep.MaxDivE = math.Max(rep.MaxDivE, div.MaxAbs())
		log.WithFields(logrus.Fields{
			"step":      n,
			"energy":    rep.Energy,
			"max_div_e": div.MaxAbs(),
		}).Debug("wave: step")
	}
	if o.steps == 0 {
		rep.Energy = rep.Energy0
	}

	rep.Time = float64(o.steps) * dt
	for id, r := range f.E[grid.X] {
		want, err := grid.NewReal(r.Shape(), r.Stagger())
		if err != nil {
			return nil, err
		}
		want.Fill(wave(r.Stagger(), 1, rep.Time))
		d, err := r.MaxAbsDiff(want)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", id, err)
		}
		rep.MaxError = math.Max(rep.MaxError, d)
	}

	return rep, nil
}
