package transform_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvpsatd/grid"
	"github.com/katalvlaran/lvpsatd/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFFT_RoundTrip checks Backward(Forward(x)) ≈ x on random data, including
// odd extents, collapsed axes and several modes.
func TestFFT_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, s := range []grid.Shape{
		{Nx: 4, Ny: 4, Nz: 4, Modes: 1},
		{Nx: 5, Ny: 1, Nz: 6, Modes: 1},
		{Nx: 3, Ny: 7, Nz: 2, Modes: 3},
		{Nx: 1, Ny: 1, Nz: 1, Modes: 1},
	} {
		c, err := grid.NewComplex(s)
		require.NoError(t, err)
		for p := range c.Data() {
			c.Data()[p] = complex(rng.NormFloat64(), rng.NormFloat64())
		}
		orig := c.Clone()

		transform.FFT{}.Forward(c)
		transform.FFT{}.Backward(c)

		for p, v := range c.Data() {
			require.InDelta(t, 0, cmplx.Abs(v-orig.Data()[p]), 1e-12, "shape %v offset %d", s, p)
		}
	}
}

// TestFFT_SingleMode checks a pure plane wave lands in exactly one bin with weight N.
func TestFFT_SingleMode(t *testing.T) {
	s := grid.Shape{Nx: 4, Ny: 2, Nz: 8, Modes: 1}
	c, err := grid.NewComplex(s)
	require.NoError(t, err)
	// exp(+2πi (1·i/4 + 3·k/8))
	for i := 0; i < s.Nx; i++ {
		for j := 0; j < s.Ny; j++ {
			for k := 0; k < s.Nz; k++ {
				ph := 2 * math.Pi * (float64(i)/4 + 3*float64(k)/8)
				c.Data()[s.Offset(0, i, j, k)] = cmplx.Exp(complex(0, ph))
			}
		}
	}
	transform.FFT{}.Forward(c)

	n := float64(s.Len())
	for i := 0; i < s.Nx; i++ {
		for j := 0; j < s.Ny; j++ {
			for k := 0; k < s.Nz; k++ {
				v := c.Data()[s.Offset(0, i, j, k)]
				if i == 1 && j == 0 && k == 3 {
					assert.InDelta(t, n, real(v), 1e-9)
					assert.InDelta(t, 0, imag(v), 1e-9)
					continue
				}
				assert.InDelta(t, 0, cmplx.Abs(v), 1e-9, "(%d,%d,%d)", i, j, k)
			}
		}
	}
}

// TestFFT_ModesIndependent checks that modes do not mix.
func TestFFT_ModesIndependent(t *testing.T) {
	s := grid.Shape{Nx: 2, Ny: 2, Nz: 2, Modes: 2}
	c, err := grid.NewComplex(s)
	require.NoError(t, err)
	for p := range c.Mode(1) {
		c.Mode(1)[p] = 1
	}
	transform.FFT{}.Forward(c)
	for _, v := range c.Mode(0) {
		assert.Equal(t, complex128(0), v)
	}
	assert.InDelta(t, 8, real(c.Mode(1)[0]), 1e-12)
}
