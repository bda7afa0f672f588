package kspace

import "fmt"

// InfiniteOrder selects the exact spectral derivative (k_mod == k).
const InfiniteOrder = -1

// MaxOrder is the largest finite stencil order accepted.
const MaxOrder = 64

// Centering selects the stencil family of a modified wavevector.
type Centering int

const (
	// Centered is the nodal stencil: f'(x_j) from f(x_{j±m}).
	Centered Centering = iota
	// Staggered is the Yee stencil: f'(x_j) from f(x_{j±(m-1/2)}).
	Staggered
)

// String returns "centered" or "staggered".
func (c Centering) String() string {
	switch c {
	case Centered:
		return "centered"
	case Staggered:
		return "staggered"
	default:
		return fmt.Sprintf("Centering(%d)", int(c))
	}
}

// Direction selects which half-cell shift factor to return.
type Direction int

const (
	// Forward is the physical→spectral direction: exp(-i k dx/2).
	Forward Direction = iota
	// Backward is the spectral→physical direction: exp(+i k dx/2).
	Backward
)

// ValidateOrder reports ErrInvalidOrder for anything but an even order in
// [2, MaxOrder] or InfiniteOrder.
func ValidateOrder(order int) error {
	if order == InfiniteOrder {
		return nil
	}
	if order < 2 || order > MaxOrder || order%2 != 0 {
		return fmt.Errorf("order %d: %w", order, ErrInvalidOrder)
	}

	return nil
}
