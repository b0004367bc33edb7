package ndimage

import "github.com/rust-cv/ndimage/internal/ndview"

// Scalar is the constraint for supported element types: 8-bit and 16-bit
// unsigned channel samples and 32-bit float samples.
type Scalar = ndview.Scalar

// Shape represents the extents of a view, outermost axis first. Image views
// are (height, width) or (height, width, channels).
type Shape = ndview.Shape

// View is a strided window over a flat slice of T. The backing storage is
// borrowed, never copied: every view derived from the same slice aliases
// it, and writes through one view are visible through all of them.
//
// Example:
//
//	v, _ := ndimage.NewView[uint8](64, 64, 3)
//	red, _ := v.Pick(2, 0) // the red plane, zero-copy
//	red.Fill(255)
type View[T Scalar] = ndview.View[T]

// Range selects elements along one axis: Start through End (exclusive) at
// the given Step. Negative Start or End counts from the end of the axis;
// out-of-range bounds are clamped. A zero Step means 1.
type Range = ndview.Range

// ToEnd marks a Range that extends to the end of its axis.
const ToEnd = ndview.ToEnd

// View errors, re-exported for matching with errors.Is.
var (
	// ErrInvalidShape is returned when a dimension is not positive.
	ErrInvalidShape = ndview.ErrInvalidShape

	// ErrInvalidStride is returned when a stride is not positive.
	ErrInvalidStride = ndview.ErrInvalidStride

	// ErrViewSizeMismatch is returned when storage length does not match the shape.
	ErrViewSizeMismatch = ndview.ErrSizeMismatch

	// ErrOutOfRange is returned when a window reaches outside its storage.
	ErrOutOfRange = ndview.ErrOutOfRange

	// ErrNonContiguous is returned by view operations that need packed storage.
	ErrNonContiguous = ndview.ErrNonContiguous

	// ErrInvalidStep is returned when a slice step is negative.
	ErrInvalidStep = ndview.ErrInvalidStep

	// ErrRankMismatch is returned when an argument count disagrees with the rank.
	ErrRankMismatch = ndview.ErrRankMismatch
)

// NewView allocates packed storage for the given shape and returns a view
// of it.
//
// Example:
//
//	v, _ := ndimage.NewView[uint8](480, 640, 3) // H, W, C
func NewView[T Scalar](shape ...int) (*View[T], error) {
	return ndview.New[T](shape...)
}

// WrapView borrows caller storage as a packed row-major view. The slice
// length must equal the element count of the shape exactly.
func WrapView[T Scalar](data []T, shape ...int) (*View[T], error) {
	return ndview.Wrap(data, shape...)
}

// WrapViewStrided borrows caller storage as an arbitrary strided window.
// Strides are in elements and must be positive; the window's furthest
// reachable element must lie inside the slice.
func WrapViewStrided[T Scalar](data []T, shape Shape, strides []int, offset int) (*View[T], error) {
	return ndview.WrapStrided(data, shape, strides, offset)
}

// EqualViews reports whether two views have the same shape and elements.
// Layout is not compared: a strided window equals its compacted copy.
func EqualViews[T Scalar](a, b *View[T]) bool {
	return ndview.EqualData(a, b)
}

// All selects every element of an axis.
func All() Range {
	return ndview.All()
}

// Every selects every step-th element of an axis, starting at the first.
func Every(step int) Range {
	return ndview.Every(step)
}

// Span selects the half-open interval [start, end) of an axis.
func Span(start, end int) Range {
	return ndview.Span(start, end)
}
