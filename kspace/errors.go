package kspace

import "errors"

var (
	// ErrInvalidOrder indicates a derivative order that is zero, odd, negative
	// (other than InfiniteOrder) or above MaxOrder.
	ErrInvalidOrder = errors.New("kspace: invalid stencil order")

	// ErrInvalidSpacing indicates a cell size that is not finite and positive.
	ErrInvalidSpacing = errors.New("kspace: cell size must be finite and > 0")
)
