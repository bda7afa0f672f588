package kspace

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/lvpsatd/grid"
	"gonum.org/v1/gonum/floats"
)

// Space holds the level-wide inputs of the wavevector construction: the cell
// size and the stencil order per axis. It is immutable.
type Space struct {
	dx     [grid.NumAxes]float64
	orders [grid.NumAxes]int
}

// New validates dx and the per-axis orders and returns a Space.
// Errors: ErrInvalidSpacing, ErrInvalidOrder.
func New(dx [grid.NumAxes]float64, orders [grid.NumAxes]int) (*Space, error) {
	for a := grid.X; a <= grid.Z; a++ {
		if !(dx[a] > 0) || math.IsInf(dx[a], 0) {
			return nil, fmt.Errorf("kspace.New: d%s=%g: %w", a, dx[a], ErrInvalidSpacing)
		}
		if err := ValidateOrder(orders[a]); err != nil {
			return nil, fmt.Errorf("kspace.New: axis %s: %w", a, err)
		}
	}

	return &Space{dx: dx, orders: orders}, nil
}

// CellSize returns the cell size per axis.
func (s *Space) CellSize() [grid.NumAxes]float64 { return s.dx }

// Orders returns the stencil order per axis.
func (s *Space) Orders() [grid.NumAxes]int { return s.orders }

// CellVolume returns dx·dy·dz.
func (s *Space) CellVolume() float64 { return s.dx[0] * s.dx[1] * s.dx[2] }

// Vectors are the wavevector tables of one block shape. All slices are
// owned by the Vectors value and must not be modified by callers.
type Vectors struct {
	shape    grid.Shape
	k        [grid.NumAxes][]float64
	modified [2][grid.NumAxes][]float64    // [Centering][Axis]
	shift    [2][grid.NumAxes][]complex128 // [Direction][Axis]
}

// ForShape builds the wavevector tables of a block with the given shape.
// Errors: grid.ErrInvalidShape.
//
// Complexity: O((Nx+Ny+Nz)·order).
func (s *Space) ForShape(shape grid.Shape) (*Vectors, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("kspace.ForShape: %w", err)
	}
	v := &Vectors{shape: shape}
	dims := shape.Dims()
	for a := grid.X; a <= grid.Z; a++ {
		k := frequencies(dims[a], s.dx[a])
		v.k[a] = k
		v.modified[Centered][a] = modifiedK(k, s.dx[a], s.orders[a], Centered)
		v.modified[Staggered][a] = modifiedK(k, s.dx[a], s.orders[a], Staggered)

		fwd := make([]complex128, len(k))
		bwd := make([]complex128, len(k))
		for i, kv := range k {
			fwd[i] = cmplx.Exp(complex(0, -0.5*kv*s.dx[a]))
			bwd[i] = cmplx.Exp(complex(0, 0.5*kv*s.dx[a]))
		}
		v.shift[Forward][a] = fwd
		v.shift[Backward][a] = bwd
	}

	return v, nil
}

// frequencies returns the FFT-ordered wavevector of an n-point periodic axis:
// 2π/(n·dx)·[0, 1, …, ⌈n/2⌉−1, −⌊n/2⌋, …, −1].
func frequencies(n int, dx float64) []float64 {
	k := make([]float64, n)
	if n == 1 {
		return k
	}
	floats.Span(k, 0, float64(n-1))
	for i := (n + 1) / 2; i < n; i++ {
		k[i] -= float64(n)
	}
	floats.Scale(2*math.Pi/(float64(n)*dx), k)

	return k
}

// Shape returns the block shape the tables were built for.
func (v *Vectors) Shape() grid.Shape { return v.shape }

// K returns the standard wavevector along axis a.
func (v *Vectors) K(a grid.Axis) []float64 { return v.k[a] }

// Modified returns the modified wavevector along axis a for centering c.
func (v *Vectors) Modified(a grid.Axis, c Centering) []float64 { return v.modified[c][a] }

// Shift returns the half-cell shift factors along axis a for direction d.
func (v *Vectors) Shift(a grid.Axis, d Direction) []complex128 { return v.shift[d][a] }

// Neg returns the index of −k along axis a (the Hermitian partner of i).
func (v *Vectors) Neg(a grid.Axis, i int) int {
	n := len(v.k[a])
	return (n - i) % n
}
