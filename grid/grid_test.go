// Package grid_test contains unit tests for the grid arrays and layouts.
package grid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvpsatd/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewShapeInvalid ensures non-positive extents are rejected.
func TestNewShapeInvalid(t *testing.T) {
	_, err := grid.NewShape(0, 4, 4)
	require.ErrorIs(t, err, grid.ErrInvalidShape)

	_, err = grid.NewShape(4, -1, 4)
	require.ErrorIs(t, err, grid.ErrInvalidShape)

	err = grid.Shape{Nx: 2, Ny: 2, Nz: 2}.Validate() // Modes == 0
	require.ErrorIs(t, err, grid.ErrInvalidShape)
}

// TestShapeOffsetOrder checks the mode-major, row-major offset formula.
func TestShapeOffsetOrder(t *testing.T) {
	s := grid.Shape{Nx: 2, Ny: 3, Nz: 4, Modes: 2}
	require.Equal(t, 24, s.Len())
	require.Equal(t, 48, s.Size())

	assert.Equal(t, 0, s.Offset(0, 0, 0, 0))
	assert.Equal(t, 1, s.Offset(0, 0, 0, 1))  // k is contiguous
	assert.Equal(t, 4, s.Offset(0, 0, 1, 0))  // j stride Nz
	assert.Equal(t, 12, s.Offset(0, 1, 0, 0)) // i stride Ny*Nz
	assert.Equal(t, 24, s.Offset(1, 0, 0, 0)) // m stride Len
	assert.Equal(t, 47, s.Offset(1, 1, 2, 3))
}

// TestRealAtSetOutOfRange ensures At/Set return ErrOutOfRange on invalid access.
func TestRealAtSetOutOfRange(t *testing.T) {
	s, err := grid.NewShape(2, 2, 2)
	require.NoError(t, err)
	r, err := grid.NewReal(s, grid.Nodal)
	require.NoError(t, err)

	_, err = r.At(0, -1, 0, 0)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = r.At(1, 0, 0, 0)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	err = r.Set(0, 0, 2, 0, 1)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	err = r.Set(0, 0, 0, 0, math.NaN())
	require.ErrorIs(t, err, grid.ErrNaNInf)
}

// TestRealSetGetClone validates Set/At and that Clone does not share storage.
func TestRealSetGetClone(t *testing.T) {
	s, err := grid.NewShape(2, 3, 4)
	require.NoError(t, err)
	r, err := grid.NewReal(s, grid.YeeEx)
	require.NoError(t, err)
	require.Equal(t, grid.YeeEx, r.Stagger())
	require.False(t, r.Stagger().IsNodal())

	require.NoError(t, r.Set(0, 1, 2, 3, 7.5))
	v, err := r.At(0, 1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)

	c := r.Clone()
	require.NoError(t, c.Set(0, 1, 2, 3, -1))
	v, err = r.At(0, 1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v, "original must be untouched")

	d, err := r.MaxAbsDiff(c)
	require.NoError(t, err)
	assert.Equal(t, 8.5, d)
}

// TestRealFillOrder verifies Fill visits the flat buffer in offset order.
func TestRealFillOrder(t *testing.T) {
	s := grid.Shape{Nx: 2, Ny: 2, Nz: 3, Modes: 1}
	r, err := grid.NewReal(s, grid.Nodal)
	require.NoError(t, err)
	r.Fill(func(m, i, j, k int) float64 { return float64(s.Offset(m, i, j, k)) })
	for p, v := range r.Data() {
		require.Equal(t, float64(p), v)
	}
	require.Equal(t, 11.0, r.MaxAbs())

	r.Zero()
	require.Equal(t, 0.0, r.MaxAbs())
}

// TestComplexCopyMismatch ensures CopyFrom refuses a different index space.
func TestComplexCopyMismatch(t *testing.T) {
	a, err := grid.NewComplex(grid.Shape{Nx: 2, Ny: 2, Nz: 2, Modes: 1})
	require.NoError(t, err)
	b, err := grid.NewComplex(grid.Shape{Nx: 2, Ny: 2, Nz: 4, Modes: 1})
	require.NoError(t, err)

	require.ErrorIs(t, a.CopyFrom(b), grid.ErrShapeMismatch)
	require.ErrorIs(t, a.CopyFrom(nil), grid.ErrNilArray)

	require.NoError(t, a.Set(0, 1, 1, 1, 2+3i))
	c := a.Clone()
	require.NoError(t, a.Set(0, 1, 1, 1, 0))
	v, err := c.At(0, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2+3i, v)
	assert.Len(t, c.Mode(0), 8)
}

// TestLayoutValidate rejects duplicate ids and bad shapes.
func TestLayoutValidate(t *testing.T) {
	s, err := grid.NewShape(4, 1, 8)
	require.NoError(t, err)

	l, err := grid.UniformLayout(3, s)
	require.NoError(t, err)
	require.Len(t, l, 3)
	require.NoError(t, l.Validate())

	dup := append(grid.Layout{}, l...)
	dup = append(dup, grid.Box{ID: 1, Shape: s})
	require.ErrorIs(t, dup.Validate(), grid.ErrDuplicateBlock)

	_, err = grid.UniformLayout(0, s)
	require.ErrorIs(t, err, grid.ErrInvalidShape)
}

// TestMultiReal covers allocation, lookup and cross-block diffs.
func TestMultiReal(t *testing.T) {
	s, err := grid.NewShape(2, 2, 2)
	require.NoError(t, err)
	l, err := grid.UniformLayout(2, s)
	require.NoError(t, err)

	mr, err := grid.NewMultiReal(l, grid.YeeBz)
	require.NoError(t, err)
	require.Len(t, mr, 2)

	_, err = mr.Get(5)
	require.ErrorIs(t, err, grid.ErrUnknownBlock)

	cp := mr.Clone()
	r1, err := cp.Get(1)
	require.NoError(t, err)
	require.NoError(t, r1.Set(0, 0, 0, 0, -3))

	d, err := mr.MaxAbsDiff(cp)
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)
	assert.Equal(t, 3.0, cp.MaxAbs())
	assert.Equal(t, 0.0, mr.MaxAbs())
}

// TestAxisString pins the axis names used in log fields.
func TestAxisString(t *testing.T) {
	assert.Equal(t, "x", grid.X.String())
	assert.Equal(t, "z", grid.Z.String())
	assert.Equal(t, "Axis(7)", grid.Axis(7).String())
}
