// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math/cmplx"
)

// Complex is a complex-valued spectral array over one block's index space.
// It has the same offset formula as Real and is never resized.
type Complex struct {
	shape Shape
	data  []complex128
}

// NewComplex creates a zero-filled spectral array.
// Errors: ErrInvalidShape.
func NewComplex(shape Shape) (*Complex, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("NewComplex: %w", err)
	}

	return &Complex{shape: shape, data: make([]complex128, shape.Size())}, nil
}

// Shape returns the index space of the array.
func (c *Complex) Shape() Shape { return c.shape }

// Data returns the backing buffer. Mutations are visible in c.
func (c *Complex) Data() []complex128 { return c.data }

// Mode returns the sub-slice holding mode m (length Shape().Len()).
func (c *Complex) Mode(m int) []complex128 {
	n := c.shape.Len()
	return c.data[m*n : (m+1)*n]
}

// At returns the value at (m, i, j, k).
// Errors: ErrOutOfRange.
func (c *Complex) At(m, i, j, k int) (complex128, error) {
	if !c.shape.Contains(m, i, j, k) {
		return 0, arrayErrorf("Complex", ctxAt, m, i, j, k, ErrOutOfRange)
	}

	return c.data[c.shape.Offset(m, i, j, k)], nil
}

// Set stores v at (m, i, j, k).
// Errors: ErrOutOfRange, ErrNaNInf.
func (c *Complex) Set(m, i, j, k int, v complex128) error {
	if !c.shape.Contains(m, i, j, k) {
		return arrayErrorf("Complex", ctxSet, m, i, j, k, ErrOutOfRange)
	}
	if cmplx.IsNaN(v) || cmplx.IsInf(v) {
		return arrayErrorf("Complex", ctxSet, m, i, j, k, ErrNaNInf)
	}
	c.data[c.shape.Offset(m, i, j, k)] = v

	return nil
}

// Zero resets every value to 0.
func (c *Complex) Zero() {
	clear(c.data)
}

// CopyFrom copies o into c.
// Errors: ErrNilArray, ErrShapeMismatch.
func (c *Complex) CopyFrom(o *Complex) error {
	if o == nil {
		return fmt.Errorf("Complex.CopyFrom: %w", ErrNilArray)
	}
	if err := ValidateSameShape(c, o); err != nil {
		return fmt.Errorf("Complex.CopyFrom: %w", err)
	}
	copy(c.data, o.data)

	return nil
}

// Clone returns a deep copy with its own buffer.
func (c *Complex) Clone() *Complex {
	buf := make([]complex128, len(c.data))
	copy(buf, c.data)

	return &Complex{shape: c.shape, data: buf}
}
