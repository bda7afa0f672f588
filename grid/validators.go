// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//   - Single source of truth for shape compatibility checks shared by the
//     transform, field-store and update packages.
//   - Return plain sentinel errors so call sites can wrap uniformly.

package grid

import "fmt"

// Shaper is anything that exposes a block index space.
type Shaper interface {
	Shape() Shape
}

// ValidateSameShape ensures a and b share an identical index space (including modes).
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateSameShape(a, b Shaper) error {
	if a.Shape() != b.Shape() {
		return fmt.Errorf("ValidateSameShape %v vs %v: %w", a.Shape(), b.Shape(), ErrShapeMismatch)
	}

	return nil
}

// MultiReal holds one physical-space array per block of a level.
type MultiReal map[BlockID]*Real

// NewMultiReal allocates one zeroed Real per box of the layout.
// Errors: ErrInvalidShape, ErrDuplicateBlock.
func NewMultiReal(l Layout, stagger Stagger) (MultiReal, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("NewMultiReal: %w", err)
	}
	mr := make(MultiReal, len(l))
	for _, b := range l {
		r, err := NewReal(b.Shape, stagger)
		if err != nil {
			return nil, fmt.Errorf("NewMultiReal: block %d: %w", b.ID, err)
		}
		mr[b.ID] = r
	}

	return mr, nil
}

// Get returns the array of block id.
// Errors: ErrUnknownBlock when the block has no array.
func (mr MultiReal) Get(id BlockID) (*Real, error) {
	r, ok := mr[id]
	if !ok || r == nil {
		return nil, fmt.Errorf("MultiReal.Get(%d): %w", id, ErrUnknownBlock)
	}

	return r, nil
}

// Clone deep-copies every array.
func (mr MultiReal) Clone() MultiReal {
	out := make(MultiReal, len(mr))
	for id, r := range mr {
		out[id] = r.Clone()
	}

	return out
}

// MaxAbsDiff returns the largest pointwise difference across all blocks.
// Errors: ErrUnknownBlock, ErrShapeMismatch.
func (mr MultiReal) MaxAbsDiff(o MultiReal) (float64, error) {
	var m float64
	for id, r := range mr {
		q, err := o.Get(id)
		if err != nil {
			return 0, fmt.Errorf("MultiReal.MaxAbsDiff: %w", err)
		}
		d, err := r.MaxAbsDiff(q)
		if err != nil {
			return 0, fmt.Errorf("MultiReal.MaxAbsDiff: block %d: %w", id, err)
		}
		if d > m {
			m = d
		}
	}

	return m, nil
}

// MaxAbs returns the largest absolute value across all blocks.
func (mr MultiReal) MaxAbs() float64 {
	var m float64
	for _, r := range mr {
		if v := r.MaxAbs(); v > m {
			m = v
		}
	}

	return m
}
