// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvpsatd/fields"
	"github.com/katalvlaran/lvpsatd/grid"
	"github.com/katalvlaran/lvpsatd/psatd"
)

// UpdateAlgorithm is the capability set a spectral update scheme provides.
type UpdateAlgorithm interface {
	RequiredFieldCount() int
	InitializeCoefficients(store *fields.Store) error
	Push(store *fields.Store)
	CurrentCorrection(store *fields.Store)
	VayDeposition(store *fields.Store)
}

// Diagnostics is implemented by algorithms that can report ∇·E and the
// field energy.
type Diagnostics interface {
	ComputeSpectralDivE(store *fields.Store, e [grid.NumAxes]grid.MultiReal, out grid.MultiReal)
	FieldEnergy(store *fields.Store) float64
}

var (
	_ UpdateAlgorithm = (*psatd.Algorithm)(nil)
	_ Diagnostics     = (*psatd.Algorithm)(nil)
)

// AlgorithmKind selects the update scheme.
type AlgorithmKind int

const (
	// AlgorithmPSATD is the pseudo-spectral analytical time-domain scheme.
	AlgorithmPSATD AlgorithmKind = iota
)

// String returns the scheme name.
func (k AlgorithmKind) String() string {
	if k == AlgorithmPSATD {
		return "psatd"
	}

	return fmt.Sprintf("AlgorithmKind(%d)", int(k))
}

// CorrectionMethod selects the charge-conservation procedure.
type CorrectionMethod int

const (
	// CorrectionNone disables both procedures.
	CorrectionNone CorrectionMethod = iota
	// CorrectionCurrent projects J onto the charge-conserving current.
	CorrectionCurrent
	// CorrectionVay recovers J from Vay-deposited D = −i k J.
	CorrectionVay
)

var correctionNames = [...]string{"none", "current", "vay"}

// String returns "none", "current" or "vay".
func (m CorrectionMethod) String() string {
	if m < 0 || int(m) >= len(correctionNames) {
		return fmt.Sprintf("CorrectionMethod(%d)", int(m))
	}

	return correctionNames[m]
}

// ParseCorrection parses a method name; the empty string is CorrectionNone.
// Errors: ErrUnknownCorrection.
func ParseCorrection(s string) (CorrectionMethod, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CorrectionNone, nil
	}
	for i, n := range correctionNames {
		if s == n {
			return CorrectionMethod(i), nil
		}
	}

	return CorrectionNone, fmt.Errorf("solver.ParseCorrection(%q): %w", s, ErrUnknownCorrection)
}

// Config fixes a Solver for its lifetime.
type Config struct {
	// Dx is the cell size per axis [m].
	Dx [grid.NumAxes]float64
	// Algorithm selects the update scheme.
	Algorithm AlgorithmKind
	// PSATD configures AlgorithmPSATD.
	PSATD psatd.Config
	// Correction selects the charge-conservation procedure.
	Correction CorrectionMethod
}
