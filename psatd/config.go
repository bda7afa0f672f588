package psatd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvpsatd/grid"
	"github.com/katalvlaran/lvpsatd/kspace"
)

// Config fixes an Algorithm for its whole lifetime.
type Config struct {
	// Orders is the stencil order per axis (kspace.InfiniteOrder for spectral accuracy).
	Orders [grid.NumAxes]int
	// Nodal selects centred derivatives; otherwise the Yee-staggered modified k is used.
	Nodal bool
	// VGalilean is the frame velocity [m/s]. The zero vector disables the Galilean terms.
	VGalilean [grid.NumAxes]float64
	// Dt is the time step [s].
	Dt float64
	// UpdateWithRho uses RhoOld/RhoNew for the longitudinal part of E.
	UpdateWithRho bool
	// TimeAveraging also computes E and B averaged over the step window.
	TimeAveraging bool
}

// Galilean reports whether a non-zero frame velocity is configured.
func (c Config) Galilean() bool {
	return c.VGalilean != [grid.NumAxes]float64{}
}

// Centering returns the modified-k variant used by every derivative.
func (c Config) Centering() kspace.Centering {
	if c.Nodal {
		return kspace.Centered
	}

	return kspace.Staggered
}

// Validate checks the configuration.
// Errors: kspace.ErrInvalidOrder, ErrInvalidTimeStep, ErrInvalidVelocity,
// ErrInconsistentFlags.
func (c Config) Validate() error {
	for a, o := range c.Orders {
		if err := kspace.ValidateOrder(o); err != nil {
			return fmt.Errorf("psatd.Config: axis %s: %w", grid.Axis(a), err)
		}
	}
	if !(c.Dt > 0) || math.IsInf(c.Dt, 0) {
		return fmt.Errorf("psatd.Config: dt=%g: %w", c.Dt, ErrInvalidTimeStep)
	}
	var v2 float64
	for _, v := range c.VGalilean {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("psatd.Config: v=%v: %w", c.VGalilean, ErrInvalidVelocity)
		}
		v2 += v * v
	}
	if v2 >= c2 {
		return fmt.Errorf("psatd.Config: |v|=%g: %w", math.Sqrt(v2), ErrInvalidVelocity)
	}
	if c.TimeAveraging && !c.UpdateWithRho {
		return fmt.Errorf("psatd.Config: time averaging needs update_with_rho: %w", ErrInconsistentFlags)
	}
	if c.Galilean() && !c.UpdateWithRho {
		return fmt.Errorf("psatd.Config: Galilean frame needs update_with_rho: %w", ErrInconsistentFlags)
	}

	return nil
}
