package config_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvpsatd/config"
	"github.com/katalvlaran/lvpsatd/kspace"
	"github.com/katalvlaran/lvpsatd/psatd"
	"github.com/katalvlaran/lvpsatd/solver"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "psatd.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultBlocks, c.Blocks)
	assert.Equal(t, []int{16, 16, 16}, c.Orders)
	assert.True(t, c.UpdateWithRho)
	assert.Equal(t, "none", c.CurrentCorrection)
	assert.InEpsilon(t, config.DefaultCFL*config.DefaultDx/psatd.C, c.TimeStep(), 1e-15)

	sc, err := c.ToSolver()
	require.NoError(t, err)
	assert.Equal(t, solver.CorrectionNone, sc.Correction)
	assert.Equal(t, [3]float64{config.DefaultDx, config.DefaultDx, config.DefaultDx}, sc.Dx)
	assert.Equal(t, config.Default(), c)
}

func TestLoad_YAMLWithEnvOverride(t *testing.T) {
	p := writeYAML(t, `
level: 2
dx: [1.0e-6, 2.0e-6, 5.0e-7]
shape: {nx: 8, ny: 4, nz: 16}
blocks: 3
orders: [4, -1, 8]
nodal: true
v_galilean: [0, 0, 1.0e8]
dt: 1.0e-15
time_averaging: true
current_correction: vay
filter:
  enabled: true
  npass: [1, 2, 0]
  compensation: true
workers: 2
`)
	t.Setenv("PSATD_DT", "2e-16")
	t.Setenv("PSATD_FILTER_COMPENSATION", "false")

	c, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Level)
	assert.Equal(t, 2e-16, c.Dt)
	assert.Equal(t, 2e-16, c.TimeStep())
	assert.False(t, c.Filter.Compensation)
	assert.Equal(t, [3]int{1, 2, 0}, c.FilterPasses())

	l, err := c.Layout()
	require.NoError(t, err)
	require.Len(t, l, 3)
	assert.Equal(t, 16, l[2].Shape.Nz)

	pc := c.ToPSATD()
	assert.Equal(t, [3]int{4, kspace.InfiniteOrder, 8}, pc.Orders)
	assert.Equal(t, 1.0e8, pc.VGalilean[2])
	assert.True(t, pc.TimeAveraging)
	assert.True(t, pc.Galilean())

	sc, err := c.ToSolver()
	require.NoError(t, err)
	assert.Equal(t, solver.CorrectionVay, sc.Correction)

	log := logrus.New()
	log.SetOutput(io.Discard)
	sv, err := solver.New(c.Level, l, sc, solver.WithLogger(log), solver.WithWorkers(c.Workers))
	require.NoError(t, err)
	assert.Equal(t, psatd.NumFieldsAveraged, sv.RequiredFieldCount())
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{"odd order", "orders: [3, 4, 4]\n", kspace.ErrInvalidOrder},
		{"averaging without rho", "time_averaging: true\nupdate_with_rho: false\n", psatd.ErrInconsistentFlags},
		{"galilean without rho", "v_galilean: [0, 0, 1e7]\nupdate_with_rho: false\n", psatd.ErrInconsistentFlags},
		{"unknown correction", "current_correction: both\n", solver.ErrUnknownCorrection},
		{"short dx", "dx: [1e-6, 1e-6]\n", config.ErrInvalidConfig},
		{"no blocks", "blocks: 0\n", config.ErrInvalidConfig},
		{"negative dt", "dt: -1\n", config.ErrInvalidConfig},
		{"zero cells", "shape: {nx: 0, ny: 4, nz: 4}\n", config.ErrInvalidConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := config.Load(writeYAML(t, tc.body))
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Nil(t, c)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, config.ErrRead)
}

func TestMarshal_ReloadsIdentically(t *testing.T) {
	c := config.Default()
	c.Blocks = 4
	c.CurrentCorrection = "current"
	c.Filter.Enabled = true

	out, err := config.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(out), "current_correction: current")

	back, err := config.Load(writeYAML(t, string(out)))
	require.NoError(t, err)
	assert.Equal(t, c, back)
}
