// SPDX-License-Identifier: MIT

package psatd

import "errors"

var (
	// ErrInvalidTimeStep indicates a non-finite or non-positive dt.
	ErrInvalidTimeStep = errors.New("psatd: time step must be finite and > 0")

	// ErrInconsistentFlags indicates a flag combination with no defined update,
	// e.g. time averaging or a Galilean frame without the rho-aware update.
	ErrInconsistentFlags = errors.New("psatd: inconsistent update flags")

	// ErrInvalidVelocity indicates a non-finite frame velocity or |v| >= c.
	ErrInvalidVelocity = errors.New("psatd: Galilean velocity must be finite and below c")

	// ErrModesUnsupported indicates a block with more than one azimuthal mode.
	ErrModesUnsupported = errors.New("psatd: only single-mode (Cartesian) blocks are supported")

	// ErrTooFewSlots indicates a store with fewer slots than RequiredFieldCount.
	ErrTooFewSlots = errors.New("psatd: store has fewer slots than required")

	// ErrOrderMismatch indicates a store built with other stencil orders than the algorithm.
	ErrOrderMismatch = errors.New("psatd: store stencil orders differ from configuration")
)

const (
	panicNotInitialized = "psatd: coefficients not initialized for block"
	panicSlots          = "psatd: store has fewer slots than required"
	panicMissingArray   = "psatd: physical array missing for block"
)
