// Package ndview implements strided, multi-dimensional views over flat
// numeric storage. A View never owns pixels exclusively: it borrows a slice
// and describes how to walk it, so sub-slicing, axis picking, and reshaping
// are stride arithmetic with no element copies.
package ndview

import "errors"

// Scalar is the constraint for supported element types: 8-bit and 16-bit
// unsigned channel samples and 32-bit float samples.
type Scalar interface {
	uint8 | uint16 | float32
}

var (
	// ErrInvalidShape is returned when a dimension is not positive.
	ErrInvalidShape = errors.New("ndview: invalid shape")

	// ErrInvalidStride is returned when a stride is not positive.
	ErrInvalidStride = errors.New("ndview: invalid stride")

	// ErrSizeMismatch is returned when storage length does not match the shape.
	ErrSizeMismatch = errors.New("ndview: data size mismatch")

	// ErrOutOfRange is returned when a window reaches outside its storage.
	ErrOutOfRange = errors.New("ndview: window out of range")

	// ErrNonContiguous is returned by operations that need packed storage.
	ErrNonContiguous = errors.New("ndview: non-contiguous view")

	// ErrInvalidStep is returned when a slice step is negative.
	ErrInvalidStep = errors.New("ndview: step must be positive")

	// ErrRankMismatch is returned when an argument count disagrees with the rank.
	ErrRankMismatch = errors.New("ndview: rank mismatch")
)
