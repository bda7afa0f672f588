// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Axis enumerates the three Cartesian directions.
type Axis int

const (
	// X is the first (slowest varying) spatial axis.
	X Axis = iota
	// Y is the second spatial axis; collapse it (Ny = 1) for 2-D runs.
	Y
	// Z is the last, contiguous spatial axis.
	Z
)

// NumAxes is the number of spatial axes handled by the solver.
const NumAxes = 3

// String returns "x", "y" or "z".
func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// BlockID identifies one grid block of a level.
type BlockID int

// Shape is the index space of one grid block.
//   - Nx, Ny, Nz are the cell counts per axis (all > 0).
//   - Modes is the number of azimuthal/Fourier modes stored per cell (> 0).
//     Cartesian geometry uses Modes = 1.
type Shape struct {
	Nx, Ny, Nz int
	Modes      int
}

// NewShape returns a single-mode Shape and validates it.
func NewShape(nx, ny, nz int) (Shape, error) {
	s := Shape{Nx: nx, Ny: ny, Nz: nz, Modes: 1}
	if err := s.Validate(); err != nil {
		return Shape{}, err
	}

	return s, nil
}

// Validate reports ErrInvalidShape when any extent or the mode count is non-positive.
func (s Shape) Validate() error {
	if s.Nx <= 0 || s.Ny <= 0 || s.Nz <= 0 || s.Modes <= 0 {
		return fmt.Errorf("Shape%v: %w", s.Dims(), ErrInvalidShape)
	}

	return nil
}

// Dims returns the per-axis cell counts as an array indexed by Axis.
func (s Shape) Dims() [NumAxes]int {
	return [NumAxes]int{s.Nx, s.Ny, s.Nz}
}

// Len is the number of cells of one mode (Nx*Ny*Nz).
func (s Shape) Len() int {
	return s.Nx * s.Ny * s.Nz
}

// Size is the total number of stored values (Len*Modes).
func (s Shape) Size() int {
	return s.Len() * s.Modes
}

// Offset returns the flat offset of (m, i, j, k). No bounds checks.
func (s Shape) Offset(m, i, j, k int) int {
	return ((m*s.Nx+i)*s.Ny+j)*s.Nz + k
}

// Contains reports whether (m, i, j, k) lies inside the index space.
func (s Shape) Contains(m, i, j, k int) bool {
	return m >= 0 && m < s.Modes &&
		i >= 0 && i < s.Nx &&
		j >= 0 && j < s.Ny &&
		k >= 0 && k < s.Nz
}

// Stagger records, per axis, whether a field component sits at the cell
// centre (true) or on the node (false) along that axis.
type Stagger [NumAxes]bool

// Nodal is the fully node-centred layout.
var Nodal = Stagger{}

// Yee staggering of the electromagnetic components.
var (
	YeeEx = Stagger{true, false, false}
	YeeEy = Stagger{false, true, false}
	YeeEz = Stagger{false, false, true}
	YeeBx = Stagger{false, true, true}
	YeeBy = Stagger{true, false, true}
	YeeBz = Stagger{true, true, false}
)

// IsNodal reports whether no axis is cell-centred.
func (st Stagger) IsNodal() bool {
	return st == Nodal
}

// Box is one entry of a Layout: a block id and its index space.
type Box struct {
	ID    BlockID
	Shape Shape
}

// Layout is the ordered block decomposition of one level.
type Layout []Box

// Validate checks every shape and rejects duplicate ids.
func (l Layout) Validate() error {
	seen := make(map[BlockID]struct{}, len(l))
	for _, b := range l {
		if err := b.Shape.Validate(); err != nil {
			return fmt.Errorf("Layout: block %d: %w", b.ID, err)
		}
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("Layout: block %d: %w", b.ID, ErrDuplicateBlock)
		}
		seen[b.ID] = struct{}{}
	}

	return nil
}

// UniformLayout returns n blocks with ids 0..n-1 that all share shape s.
func UniformLayout(n int, s Shape) (Layout, error) {
	if n <= 0 {
		return nil, fmt.Errorf("UniformLayout(%d): %w", n, ErrInvalidShape)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	l := make(Layout, n)
	for b := range l {
		l[b] = Box{ID: BlockID(b), Shape: s}
	}

	return l, nil
}
