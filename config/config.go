// Package config loads the solver configuration from YAML and the
// environment.
//
// Keys mirror the YAML layout; every key can be overridden by an environment
// variable with the PSATD_ prefix and dots replaced by underscores, e.g.
// PSATD_DT or PSATD_FILTER_ENABLED.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvpsatd/grid"
	"github.com/katalvlaran/lvpsatd/psatd"
	"github.com/katalvlaran/lvpsatd/solver"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "PSATD"

// Defaults.
const (
	DefaultCells  = 32
	DefaultBlocks = 1
	DefaultOrder  = 16
	DefaultDx     = 1e-6
	DefaultCFL    = 0.5
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrRead indicates the configuration file could not be read or decoded.
	ErrRead = errors.New("config: cannot read configuration")
)

// Shape is the cell count of one block.
type Shape struct {
	Nx int `mapstructure:"nx" yaml:"nx"`
	Ny int `mapstructure:"ny" yaml:"ny"`
	Nz int `mapstructure:"nz" yaml:"nz"`
}

// Filter configures the k-space filter.
type Filter struct {
	Enabled      bool  `mapstructure:"enabled" yaml:"enabled"`
	NPass        []int `mapstructure:"npass" yaml:"npass"`
	Compensation bool  `mapstructure:"compensation" yaml:"compensation"`
}

// Config is the file/environment form of one level's solver configuration.
type Config struct {
	Level             int       `mapstructure:"level" yaml:"level"`
	Dx                []float64 `mapstructure:"dx" yaml:"dx"`
	Shape             Shape     `mapstructure:"shape" yaml:"shape"`
	Blocks            int       `mapstructure:"blocks" yaml:"blocks"`
	Orders            []int     `mapstructure:"orders" yaml:"orders"`
	Nodal             bool      `mapstructure:"nodal" yaml:"nodal"`
	VGalilean         []float64 `mapstructure:"v_galilean" yaml:"v_galilean"`
	Dt                float64   `mapstructure:"dt" yaml:"dt"`
	CFL               float64   `mapstructure:"cfl" yaml:"cfl"`
	UpdateWithRho     bool      `mapstructure:"update_with_rho" yaml:"update_with_rho"`
	TimeAveraging     bool      `mapstructure:"time_averaging" yaml:"time_averaging"`
	CurrentCorrection string    `mapstructure:"current_correction" yaml:"current_correction"`
	Filter            Filter    `mapstructure:"filter" yaml:"filter"`
	Workers           int       `mapstructure:"workers" yaml:"workers"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("level", 0)
	v.SetDefault("dx", []float64{DefaultDx, DefaultDx, DefaultDx})
	v.SetDefault("shape.nx", DefaultCells)
	v.SetDefault("shape.ny", DefaultCells)
	v.SetDefault("shape.nz", DefaultCells)
	v.SetDefault("blocks", DefaultBlocks)
	v.SetDefault("orders", []int{DefaultOrder, DefaultOrder, DefaultOrder})
	v.SetDefault("nodal", false)
	v.SetDefault("v_galilean", []float64{0, 0, 0})
	v.SetDefault("dt", 0.0)
	v.SetDefault("cfl", DefaultCFL)
	v.SetDefault("update_with_rho", true)
	v.SetDefault("time_averaging", false)
	v.SetDefault("current_correction", "none")
	v.SetDefault("filter.enabled", false)
	v.SetDefault("filter.npass", []int{1, 1, 1})
	v.SetDefault("filter.compensation", false)
	v.SetDefault("workers", 0)
}

// Default returns the configuration with every default applied.
func Default() *Config {
	c, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: defaults invalid: %v", err))
	}

	return c
}

// Load reads path (YAML; skipped when empty), applies defaults and
// environment overrides, and validates the result.
// Errors: ErrRead, ErrInvalidConfig.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config.Load(%s): %w: %w", path, ErrRead, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config.Load(%s): %w: %w", path, ErrRead, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks lengths and ranges, then the derived solver configuration.
// Errors: ErrInvalidConfig (wrapping the underlying sentinel when there is one).
func (c *Config) Validate() error {
	if len(c.Dx) != grid.NumAxes || len(c.Orders) != grid.NumAxes {
		return fmt.Errorf("%w: dx and orders need %d values", ErrInvalidConfig, grid.NumAxes)
	}
	if len(c.VGalilean) != 0 && len(c.VGalilean) != grid.NumAxes {
		return fmt.Errorf("%w: v_galilean needs %d values", ErrInvalidConfig, grid.NumAxes)
	}
	if c.Filter.Enabled && len(c.Filter.NPass) != grid.NumAxes {
		return fmt.Errorf("%w: filter.npass needs %d values", ErrInvalidConfig, grid.NumAxes)
	}
	if c.Blocks < 1 {
		return fmt.Errorf("%w: blocks=%d", ErrInvalidConfig, c.Blocks)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers=%d", ErrInvalidConfig, c.Workers)
	}
	if c.Dt < 0 || math.IsNaN(c.Dt) || (c.Dt == 0 && !(c.CFL > 0)) {
		return fmt.Errorf("%w: dt=%g cfl=%g", ErrInvalidConfig, c.Dt, c.CFL)
	}
	if _, err := c.Layout(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	sc, err := c.ToSolver()
	if err != nil {
		return err
	}
	if err = sc.PSATD.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// TimeStep returns dt, or cfl·min(dx)/c when dt is 0.
func (c *Config) TimeStep() float64 {
	if c.Dt > 0 {
		return c.Dt
	}
	m := math.Inf(1)
	for _, d := range c.Dx {
		m = math.Min(m, d)
	}

	return c.CFL * m / psatd.C
}

// ToSolver converts c into the immutable solver configuration.
// Errors: ErrInvalidConfig for an unknown correction method.
func (c *Config) ToSolver() (solver.Config, error) {
	corr, err := solver.ParseCorrection(c.CurrentCorrection)
	if err != nil {
		return solver.Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	sc := solver.Config{
		Algorithm:  solver.AlgorithmPSATD,
		Correction: corr,
		PSATD:      c.ToPSATD(),
	}
	copy(sc.Dx[:], c.Dx)

	return sc, nil
}

// ToPSATD converts the update-algorithm part of c.
func (c *Config) ToPSATD() psatd.Config {
	p := psatd.Config{
		Nodal:         c.Nodal,
		Dt:            c.TimeStep(),
		UpdateWithRho: c.UpdateWithRho,
		TimeAveraging: c.TimeAveraging,
	}
	copy(p.Orders[:], c.Orders)
	copy(p.VGalilean[:], c.VGalilean)

	return p
}

// Layout returns Blocks identical boxes of the configured shape.
func (c *Config) Layout() (grid.Layout, error) {
	s, err := grid.NewShape(c.Shape.Nx, c.Shape.Ny, c.Shape.Nz)
	if err != nil {
		return nil, err
	}

	return grid.UniformLayout(c.Blocks, s)
}

// FilterPasses returns the per-axis pass counts.
func (c *Config) FilterPasses() [grid.NumAxes]int {
	var n [grid.NumAxes]int
	copy(n[:], c.Filter.NPass)

	return n
}

// Marshal renders c as YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}
