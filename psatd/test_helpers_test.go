package psatd_test

import (
	"io"
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvpsatd/fields"
	"github.com/katalvlaran/lvpsatd/grid"
	"github.com/katalvlaran/lvpsatd/kspace"
	"github.com/katalvlaran/lvpsatd/psatd"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// quietLogger discards construction logs in tests.
func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// baseConfig is a nodal, infinite-order, rho-aware configuration with
// dt = 0.4·dz/c for unit cells.
func baseConfig() psatd.Config {
	return psatd.Config{
		Orders:        [3]int{kspace.InfiniteOrder, kspace.InfiniteOrder, kspace.InfiniteOrder},
		Nodal:         true,
		Dt:            0.4 / psatd.C,
		UpdateWithRho: true,
	}
}

// setup builds an algorithm and a store with nblocks blocks of shape s and
// unit cell size, with coefficients initialized.
func setup(t *testing.T, cfg psatd.Config, s grid.Shape, nblocks int) (*psatd.Algorithm, *fields.Store, grid.Layout) {
	t.Helper()
	alg, err := psatd.New(cfg, psatd.WithLogger(quietLogger()))
	require.NoError(t, err)
	sp, err := kspace.New([3]float64{1, 1, 1}, cfg.Orders)
	require.NoError(t, err)
	st, err := fields.New(sp, alg.RequiredFieldCount(), fields.WithWorkers(2))
	require.NoError(t, err)
	l, err := grid.UniformLayout(nblocks, s)
	require.NoError(t, err)
	require.NoError(t, st.RegisterLayout(l))
	require.NoError(t, alg.InitializeCoefficients(st))

	return alg, st, l
}

func data(b *fields.Block, i psatd.Index) []complex128 { return b.Slot(int(i)).Data() }

// fillRandom fills slot i of b with complex normal values scaled by scale.
func fillRandom(rng *rand.Rand, b *fields.Block, i psatd.Index, scale float64) {
	d := data(b, i)
	for p := range d {
		d[p] = complex(scale*rng.NormFloat64(), scale*rng.NormFloat64())
	}
}

// kAt returns the derivative wavevector components at flat index p.
func kAt(b *fields.Block, cen kspace.Centering, p int) (kx, ky, kz float64) {
	v := b.Vectors()
	d := b.Shape().Dims()
	i, j, k := p/(d[1]*d[2]), (p/d[2])%d[1], p%d[2]

	return v.Modified(grid.X, cen)[i], v.Modified(grid.Y, cen)[j], v.Modified(grid.Z, cen)[k]
}

// closeTo reports |got − want| <= tol·scale.
func closeTo(got, want complex128, tol, scale float64) bool {
	return cmplx.Abs(got-want) <= tol*scale
}

// simpson integrates f over [a, b] with n (even) intervals.
func simpson(f func(float64) complex128, a, b float64, n int) complex128 {
	h := (b - a) / float64(n)
	s := f(a) + f(b)
	for i := 1; i < n; i++ {
		w := 2.0
		if i%2 == 1 {
			w = 4
		}
		s += complex(w, 0) * f(a+float64(i)*h)
	}

	return s * complex(h/3, 0)
}

func maxAbs(z []complex128) float64 {
	var m float64
	for _, v := range z {
		m = math.Max(m, cmplx.Abs(v))
	}

	return m
}
