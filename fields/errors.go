package fields

import "errors"

var (
	// ErrNoFields indicates a Store was requested with a non-positive slot count.
	ErrNoFields = errors.New("fields: slot count must be > 0")

	// ErrDuplicateBlock indicates Register was called twice for one block id.
	ErrDuplicateBlock = errors.New("fields: block already registered")

	// ErrInvalidFilter indicates a negative number of filter passes.
	ErrInvalidFilter = errors.New("fields: filter passes must be >= 0")
)

// panicf-style messages for programmer errors.
const (
	panicUnknownBlock = "fields: unknown block"
	panicBadSlot      = "fields: slot index out of range"
	panicShape        = "fields: physical array shape differs from block shape"
	panicNoFilter     = "fields: ApplyFilter before InitFilter"
)
