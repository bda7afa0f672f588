// SPDX-License-Identifier: MIT

// Package grid - physical-space storage (mode-major, then row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly flat buffer with the explicit offset formula
//     ((m*Nx+i)*Ny+j)*Nz+k.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Carry the staggering of the stored component so transforms can apply
//     the matching half-cell shift.
//
// Complexity quicksheet:
//   - NewReal: O(size) zero-init; At/Set: O(1); Clone: O(size); MaxAbsDiff: O(size).

package grid

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// arrayErrorf wraps an error with a uniform array context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach type, method and coordinates to a sentinel error for diagnostics.
//
// Returns:
//   - error: "<kind>.<method>(m,i,j,k): <sentinel>", sentinel preserved via %w.
func arrayErrorf(kind, method string, m, i, j, k int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d,%d,%d): %w", kind, method, m, i, j, k, err)
}

// Real is a real-valued array over one block's index space.
//   - shape holds the index space; data has length shape.Size().
//   - stagger records where the component lives inside a cell.
//   - validateNaNInf enables NaN/Inf rejection in Set.
type Real struct {
	shape          Shape
	stagger        Stagger
	data           []float64
	validateNaNInf bool
}

// NewReal creates a zero-filled array.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate shape; else ErrInvalidShape.
//   - Stage 2: allocate zero-filled buffer of shape.Size() values.
//
// Errors:
//   - ErrInvalidShape (shape contract violation).
//
// Complexity:
//   - Time O(size), Space O(size).
func NewReal(shape Shape, stagger Stagger) (*Real, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("NewReal: %w", err)
	}

	return &Real{
		shape:          shape,
		stagger:        stagger,
		data:           make([]float64, shape.Size()),
		validateNaNInf: true,
	}, nil
}

// Shape returns the index space of the array.
func (r *Real) Shape() Shape { return r.shape }

// Stagger returns the staggering of the stored component.
func (r *Real) Stagger() Stagger { return r.stagger }

// Data returns the backing buffer. Mutations are visible in r.
// Kernels use it to skip per-element bounds checks.
func (r *Real) Data() []float64 { return r.data }

// At returns the value at (m, i, j, k).
// Errors: ErrOutOfRange when the index is outside the shape.
func (r *Real) At(m, i, j, k int) (float64, error) {
	if !r.shape.Contains(m, i, j, k) {
		return 0, arrayErrorf("Real", ctxAt, m, i, j, k, ErrOutOfRange)
	}

	return r.data[r.shape.Offset(m, i, j, k)], nil
}

// Set stores v at (m, i, j, k).
// Errors:
//   - ErrOutOfRange when the index is outside the shape.
//   - ErrNaNInf when v is not finite and validation is on.
func (r *Real) Set(m, i, j, k int, v float64) error {
	if !r.shape.Contains(m, i, j, k) {
		return arrayErrorf("Real", ctxSet, m, i, j, k, ErrOutOfRange)
	}
	if r.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return arrayErrorf("Real", ctxSet, m, i, j, k, ErrNaNInf)
	}
	r.data[r.shape.Offset(m, i, j, k)] = v

	return nil
}

// Fill evaluates f at every (m, i, j, k) and stores the result.
// Fixed loop order m→i→j→k.
func (r *Real) Fill(f func(m, i, j, k int) float64) {
	s := r.shape
	p := 0
	for m := 0; m < s.Modes; m++ {
		for i := 0; i < s.Nx; i++ {
			for j := 0; j < s.Ny; j++ {
				for k := 0; k < s.Nz; k++ {
					r.data[p] = f(m, i, j, k)
					p++
				}
			}
		}
	}
}

// Zero resets every value to 0.
func (r *Real) Zero() {
	clear(r.data)
}

// Clone returns a deep copy with its own buffer.
func (r *Real) Clone() *Real {
	buf := make([]float64, len(r.data))
	copy(buf, r.data)

	return &Real{
		shape:          r.shape,
		stagger:        r.stagger,
		data:           buf,
		validateNaNInf: r.validateNaNInf,
	}
}

// MaxAbs returns max |r|.
func (r *Real) MaxAbs() float64 {
	var m float64
	for _, v := range r.data {
		m = math.Max(m, math.Abs(v))
	}

	return m
}

// MaxAbsDiff returns max |r - o| over all values.
// Errors: ErrNilArray, ErrShapeMismatch.
func (r *Real) MaxAbsDiff(o *Real) (float64, error) {
	if o == nil {
		return 0, fmt.Errorf("Real.MaxAbsDiff: %w", ErrNilArray)
	}
	if err := ValidateSameShape(r, o); err != nil {
		return 0, fmt.Errorf("Real.MaxAbsDiff: %w", err)
	}
	var m float64
	for p, v := range r.data {
		m = math.Max(m, math.Abs(v-o.data[p]))
	}

	return m, nil
}
