package solver_test

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/lvpsatd/grid"
	"github.com/katalvlaran/lvpsatd/kspace"
	"github.com/katalvlaran/lvpsatd/psatd"
	"github.com/katalvlaran/lvpsatd/solver"
	"github.com/sirupsen/logrus"
)

// ExampleSolver_Step propagates a vacuum plane wave for one period.
func ExampleSolver_Step() {
	log := logrus.New()
	log.SetOutput(io.Discard)

	const nz, dz = 16, 1.0
	inf := kspace.InfiniteOrder
	k := 2 * math.Pi / (nz * dz)
	steps := 20
	cfg := solver.Config{
		Dx: [3]float64{dz, dz, dz},
		PSATD: psatd.Config{
			Orders:        [3]int{inf, inf, inf},
			Nodal:         true,
			Dt:            2 * math.Pi / (k * psatd.C) / float64(steps),
			UpdateWithRho: true,
		},
	}
	layout, _ := grid.UniformLayout(1, grid.Shape{Nx: 1, Ny: 1, Nz: nz, Modes: 1})
	s, err := solver.New(0, layout, cfg, solver.WithLogger(log))
	if err != nil {
		fmt.Println(err)
		return
	}

	alloc := func() grid.MultiReal { mr, _ := grid.NewMultiReal(layout, grid.Nodal); return mr }
	vec := func() [3]grid.MultiReal { return [3]grid.MultiReal{alloc(), alloc(), alloc()} }
	f := solver.StepFields{E: vec(), B: vec(), J: vec(), RhoOld: alloc(), RhoNew: alloc()}
	f.E[grid.X][0].Fill(func(_, _, _, kk int) float64 { return math.Cos(k * float64(kk) * dz) })
	f.B[grid.Y][0].Fill(func(_, _, _, kk int) float64 { return math.Cos(k*float64(kk)*dz) / psatd.C })
	start := f.E[grid.X][0].Clone()

	for i := 0; i < steps; i++ {
		s.Step(f)
	}
	d, _ := start.MaxAbsDiff(f.E[grid.X][0])
	fmt.Printf("max |Ex(T) - Ex(0)| < 1e-12: %v\n", d < 1e-12)
	// Output:
	// max |Ex(T) - Ex(0)| < 1e-12: true
}
