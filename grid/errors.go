// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// All public constructors and accessors return these sentinels, wrapped with
// the method context where useful. Tests match them via errors.Is.

package grid

import "errors"

var (
	// ErrInvalidShape is returned when a requested shape has a non-positive extent
	// or a non-positive mode count.
	ErrInvalidShape = errors.New("grid: invalid shape")

	// ErrOutOfRange indicates that an index (mode, i, j or k) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrShapeMismatch indicates two arrays that must share an index space do not.
	ErrShapeMismatch = errors.New("grid: shape mismatch")

	// ErrNaNInf signals a NaN or ±Inf value passed to a validating setter.
	ErrNaNInf = errors.New("grid: NaN or Inf encountered")

	// ErrNilArray indicates that a nil array was used.
	ErrNilArray = errors.New("grid: nil array")

	// ErrDuplicateBlock indicates a Layout lists the same BlockID twice.
	ErrDuplicateBlock = errors.New("grid: duplicate block id")

	// ErrUnknownBlock indicates a BlockID that is not part of the Layout.
	ErrUnknownBlock = errors.New("grid: unknown block id")
)
