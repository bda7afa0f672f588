package psatd_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvpsatd/fields"
	"github.com/katalvlaran/lvpsatd/grid"
	"github.com/katalvlaran/lvpsatd/kspace"
	"github.com/katalvlaran/lvpsatd/psatd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfig_Validate covers every configuration error.
func TestConfig_Validate(t *testing.T) {
	mod := func(f func(*psatd.Config)) psatd.Config {
		c := baseConfig()
		f(&c)
		return c
	}
	cases := []struct {
		name string
		cfg  psatd.Config
		want error
	}{
		{"zero dt", mod(func(c *psatd.Config) { c.Dt = 0 }), psatd.ErrInvalidTimeStep},
		{"negative dt", mod(func(c *psatd.Config) { c.Dt = -1 }), psatd.ErrInvalidTimeStep},
		{"NaN dt", mod(func(c *psatd.Config) { c.Dt = math.NaN() }), psatd.ErrInvalidTimeStep},
		{"Inf dt", mod(func(c *psatd.Config) { c.Dt = math.Inf(1) }), psatd.ErrInvalidTimeStep},
		{"odd order", mod(func(c *psatd.Config) { c.Orders[1] = 3 }), kspace.ErrInvalidOrder},
		{"zero order", mod(func(c *psatd.Config) { c.Orders[0] = 0 }), kspace.ErrInvalidOrder},
		{"order too large", mod(func(c *psatd.Config) { c.Orders[2] = kspace.MaxOrder + 2 }), kspace.ErrInvalidOrder},
		{"averaging without rho", mod(func(c *psatd.Config) {
			c.UpdateWithRho, c.TimeAveraging = false, true
		}), psatd.ErrInconsistentFlags},
		{"galilean without rho", mod(func(c *psatd.Config) {
			c.UpdateWithRho, c.VGalilean = false, [3]float64{0, 0, 0.1 * psatd.C}
		}), psatd.ErrInconsistentFlags},
		{"superluminal frame", mod(func(c *psatd.Config) { c.VGalilean = [3]float64{psatd.C, 0, 0} }), psatd.ErrInvalidVelocity},
		{"NaN frame", mod(func(c *psatd.Config) { c.VGalilean = [3]float64{math.NaN(), 0, 0} }), psatd.ErrInvalidVelocity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := psatd.New(tc.cfg)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, a)
		})
	}

	_, err := psatd.New(mod(func(c *psatd.Config) { c.UpdateWithRho = false }))
	require.NoError(t, err)
}

// TestRequiredFieldCount checks the averaged set is strictly larger.
func TestRequiredFieldCount(t *testing.T) {
	base, err := psatd.New(baseConfig())
	require.NoError(t, err)
	cfg := baseConfig()
	cfg.TimeAveraging = true
	cfg.VGalilean = [3]float64{0, 0, 0.5 * psatd.C}
	avg, err := psatd.New(cfg)
	require.NoError(t, err)

	assert.Equal(t, psatd.NumFieldsBaseline, base.RequiredFieldCount())
	assert.Equal(t, psatd.NumFieldsAveraged, avg.RequiredFieldCount())
	assert.Greater(t, avg.RequiredFieldCount(), base.RequiredFieldCount())
	assert.Equal(t, "RhoNew", psatd.RhoNew.String())
	assert.Equal(t, "BzAvg", psatd.BzAvg.String())
	assert.Equal(t, "Index(99)", psatd.Index(99).String())
}

// TestInitializeCoefficients_Errors covers store/algorithm mismatches.
func TestInitializeCoefficients_Errors(t *testing.T) {
	cfg := baseConfig()
	alg, err := psatd.New(cfg, psatd.WithLogger(quietLogger()), psatd.WithLevel(1))
	require.NoError(t, err)
	s := grid.Shape{Nx: 2, Ny: 2, Nz: 2, Modes: 1}

	sp, err := kspace.New([3]float64{1, 1, 1}, cfg.Orders)
	require.NoError(t, err)
	small, err := fields.New(sp, psatd.NumFieldsBaseline-1)
	require.NoError(t, err)
	require.ErrorIs(t, alg.InitializeCoefficients(small), psatd.ErrTooFewSlots)

	sp4, err := kspace.New([3]float64{1, 1, 1}, [3]int{4, 4, 4})
	require.NoError(t, err)
	other, err := fields.New(sp4, psatd.NumFieldsBaseline)
	require.NoError(t, err)
	require.ErrorIs(t, alg.InitializeCoefficients(other), psatd.ErrOrderMismatch)

	modes, err := fields.New(sp, psatd.NumFieldsBaseline)
	require.NoError(t, err)
	require.NoError(t, modes.Register(0, grid.Shape{Nx: 2, Ny: 2, Nz: 2, Modes: 2}))
	require.ErrorIs(t, alg.InitializeCoefficients(modes), psatd.ErrModesUnsupported)

	ok, err := fields.New(sp, psatd.NumFieldsBaseline)
	require.NoError(t, err)
	require.NoError(t, ok.Register(0, s))
	require.NoError(t, alg.InitializeCoefficients(ok))
	require.NotNil(t, alg.Coefficients(0))
	assert.Nil(t, alg.Coefficients(1))
	assert.Equal(t, s, alg.Coefficients(0).Shape())
	assert.Nil(t, alg.Coefficients(0).Avg)
}

// TestPush_Panics checks the fail-fast preconditions.
func TestPush_Panics(t *testing.T) {
	cfg := baseConfig()
	alg, err := psatd.New(cfg, psatd.WithLogger(quietLogger()))
	require.NoError(t, err)
	sp, err := kspace.New([3]float64{1, 1, 1}, cfg.Orders)
	require.NoError(t, err)
	st, err := fields.New(sp, alg.RequiredFieldCount())
	require.NoError(t, err)
	s := grid.Shape{Nx: 2, Ny: 2, Nz: 2, Modes: 1}
	require.NoError(t, st.Register(0, s))

	assert.Panics(t, func() { alg.Push(st) }, "push before InitializeCoefficients")
	assert.Panics(t, func() { alg.CurrentCorrection(st) })
	assert.Panics(t, func() { alg.VayDeposition(st) })

	require.NoError(t, alg.InitializeCoefficients(st))
	assert.NotPanics(t, func() { alg.Push(st) })

	require.NoError(t, st.Register(1, s)) // block without coefficients
	assert.Panics(t, func() { alg.Push(st) })

	small, err := fields.New(sp, 3)
	require.NoError(t, err)
	assert.Panics(t, func() { alg.Push(small) })
	assert.Panics(t, func() { psatd.WithLogger(nil) })
}
