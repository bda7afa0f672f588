package solver_test

import (
	"io"
	"testing"

	"github.com/katalvlaran/lvpsatd/grid"
	"github.com/katalvlaran/lvpsatd/kspace"
	"github.com/katalvlaran/lvpsatd/psatd"
	"github.com/katalvlaran/lvpsatd/solver"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// nodalConfig: infinite order, nodal, dt = 0.5·dz/c, rho-aware.
func nodalConfig(dx [3]float64) solver.Config {
	inf := kspace.InfiniteOrder
	return solver.Config{
		Dx:        dx,
		Algorithm: solver.AlgorithmPSATD,
		PSATD: psatd.Config{
			Orders:        [3]int{inf, inf, inf},
			Nodal:         true,
			Dt:            0.5 * dx[2] / psatd.C,
			UpdateWithRho: true,
		},
	}
}

func newSolver(t *testing.T, cfg solver.Config, s grid.Shape, nblocks int, opts ...solver.Option) (*solver.Solver, grid.Layout) {
	t.Helper()
	l, err := grid.UniformLayout(nblocks, s)
	require.NoError(t, err)
	opts = append([]solver.Option{solver.WithLogger(quietLogger()), solver.WithWorkers(2)}, opts...)
	sv, err := solver.New(0, l, cfg, opts...)
	require.NoError(t, err)

	return sv, l
}

func multi(t *testing.T, l grid.Layout) grid.MultiReal {
	t.Helper()
	mr, err := grid.NewMultiReal(l, grid.Nodal)
	require.NoError(t, err)

	return mr
}

func vec(t *testing.T, l grid.Layout) [3]grid.MultiReal {
	t.Helper()
	return [3]grid.MultiReal{multi(t, l), multi(t, l), multi(t, l)}
}

// stepFields allocates zeroed arrays for every field of one step.
func stepFields(t *testing.T, l grid.Layout) solver.StepFields {
	t.Helper()
	return solver.StepFields{
		E: vec(t, l), B: vec(t, l), J: vec(t, l),
		RhoOld: multi(t, l), RhoNew: multi(t, l),
		EAvg: vec(t, l), BAvg: vec(t, l),
	}
}

// fillAll fills every block of mr with f.
func fillAll(mr grid.MultiReal, f func(m, i, j, k int) float64) {
	for _, r := range mr {
		r.Fill(f)
	}
}
