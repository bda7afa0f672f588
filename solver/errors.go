// SPDX-License-Identifier: MIT

package solver

import "errors"

var (
	// ErrUnknownAlgorithm indicates an AlgorithmKind with no implementation.
	ErrUnknownAlgorithm = errors.New("solver: unknown update algorithm")

	// ErrUnknownCorrection indicates a CorrectionMethod outside the defined set.
	ErrUnknownCorrection = errors.New("solver: unknown charge correction method")
)

const (
	panicWrongCorrection  = "solver: correction method not configured"
	panicSecondCorrection = "solver: second charge correction in one step"
	panicCorrectionLate   = "solver: charge correction after Push"
	panicFilterEarly      = "solver: filter before Push"
	panicMissingArray     = "solver: physical array missing for block"
	panicShape            = "solver: physical array shape differs from block"
	panicBadSlot          = "solver: slot index out of range"
	panicNoDiagnostics    = "solver: update algorithm has no diagnostics"
)
