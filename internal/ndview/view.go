package ndview

import "fmt"

// View is a strided window over a flat slice of T. The backing storage is
// borrowed, never copied: every view derived from the same slice aliases it,
// and writes through one view are visible through all of them.
type View[T Scalar] struct {
	data    []T
	shape   Shape
	strides []int
	offset  int
}

// New allocates packed storage for the given shape and returns a view of it.
func New[T Scalar](shape ...int) (*View[T], error) {
	s := Shape(shape)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &View[T]{
		data:    make([]T, s.NumElements()),
		shape:   s.Clone(),
		strides: s.ComputeStrides(),
	}, nil
}

// Wrap borrows caller storage as a packed row-major view. The slice length
// must equal the element count of the shape exactly.
func Wrap[T Scalar](data []T, shape ...int) (*View[T], error) {
	s := Shape(shape)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if len(data) != s.NumElements() {
		return nil, fmt.Errorf("%w: %d elements for shape %v (want %d)",
			ErrSizeMismatch, len(data), s, s.NumElements())
	}
	return &View[T]{
		data:    data,
		shape:   s.Clone(),
		strides: s.ComputeStrides(),
	}, nil
}

// WrapStrided borrows caller storage as an arbitrary strided window.
// Strides are in elements and must be positive; the window's furthest
// reachable element must lie inside the slice.
func WrapStrided[T Scalar](data []T, shape Shape, strides []int, offset int) (*View[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(strides) != len(shape) {
		return nil, fmt.Errorf("%w: %d strides for rank %d", ErrRankMismatch, len(strides), len(shape))
	}
	for i, st := range strides {
		if st <= 0 {
			return nil, fmt.Errorf("%w: stride %d at axis %d", ErrInvalidStride, st, i)
		}
	}
	if offset < 0 {
		return nil, fmt.Errorf("%w: negative offset %d", ErrOutOfRange, offset)
	}
	last := offset
	for i, dim := range shape {
		last += (dim - 1) * strides[i]
	}
	if last >= len(data) {
		return nil, fmt.Errorf("%w: window reaches element %d of %d",
			ErrOutOfRange, last, len(data))
	}
	return &View[T]{
		data:    data,
		shape:   shape.Clone(),
		strides: append([]int(nil), strides...),
		offset:  offset,
	}, nil
}

// Shape returns the view's extents. The slice is shared; callers must not
// modify it.
func (v *View[T]) Shape() Shape {
	return v.shape
}

// Strides returns the view's element strides. The slice is shared; callers
// must not modify it.
func (v *View[T]) Strides() []int {
	return v.strides
}

// Offset returns the element offset of the view's origin within its storage.
func (v *View[T]) Offset() int {
	return v.offset
}

// Rank returns the number of axes.
func (v *View[T]) Rank() int {
	return len(v.shape)
}

// NumElements returns the total number of elements addressed by the view.
func (v *View[T]) NumElements() int {
	return v.shape.NumElements()
}

// Data returns the backing storage from the view's origin onward.
// For a non-contiguous view the window's elements are not consecutive in
// the returned slice; check IsContiguous before treating it as packed.
func (v *View[T]) Data() []T {
	return v.data[v.offset:]
}

// IsContiguous reports whether the view addresses one packed row-major run
// of memory. Axes of extent 1 never affect the layout and are ignored.
func (v *View[T]) IsContiguous() bool {
	want := 1
	for i := len(v.shape) - 1; i >= 0; i-- {
		if v.shape[i] != 1 && v.strides[i] != want {
			return false
		}
		want *= v.shape[i]
	}
	return true
}

// At returns the element at the given indices.
// Panics if the index count or any index is out of range.
func (v *View[T]) At(indices ...int) T {
	return v.data[v.elemIndex(indices)]
}

// Set stores value at the given indices.
// Panics if the index count or any index is out of range.
func (v *View[T]) Set(value T, indices ...int) {
	v.data[v.elemIndex(indices)] = value
}

func (v *View[T]) elemIndex(indices []int) int {
	if len(indices) != len(v.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(v.shape), len(indices)))
	}
	idx := v.offset
	for i, ix := range indices {
		if ix < 0 || ix >= v.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for axis %d (size %d)", ix, i, v.shape[i]))
		}
		idx += ix * v.strides[i]
	}
	return idx
}

// Reshape returns a view of the same storage with a new shape. Only
// contiguous views can be reshaped; the element count must not change.
func (v *View[T]) Reshape(shape ...int) (*View[T], error) {
	s := Shape(shape)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.NumElements() != v.NumElements() {
		return nil, fmt.Errorf("%w: cannot reshape %v to %v", ErrSizeMismatch, v.shape, s)
	}
	if !v.IsContiguous() {
		return nil, fmt.Errorf("%w: cannot reshape", ErrNonContiguous)
	}
	return &View[T]{
		data:    v.data,
		shape:   s.Clone(),
		strides: s.ComputeStrides(),
		offset:  v.offset,
	}, nil
}

// Compact copies the view's elements into fresh packed storage in row-major
// order and returns a view of the copy.
func (v *View[T]) Compact() *View[T] {
	out := &View[T]{
		data:    make([]T, v.NumElements()),
		shape:   v.shape.Clone(),
		strides: v.shape.ComputeStrides(),
	}
	if v.IsContiguous() {
		copy(out.data, v.data[v.offset:])
		return out
	}

	idx := make([]int, len(v.shape))
	for i := range out.data {
		src := v.offset
		for d, ix := range idx {
			src += ix * v.strides[d]
		}
		out.data[i] = v.data[src]
		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < v.shape[d] {
				break
			}
			idx[d] = 0
		}
	}
	return out
}

// Fill stores value in every element addressed by the view.
func (v *View[T]) Fill(value T) {
	if v.IsContiguous() {
		window := v.data[v.offset : v.offset+v.NumElements()]
		for i := range window {
			window[i] = value
		}
		return
	}

	n := v.NumElements()
	idx := make([]int, len(v.shape))
	for i := 0; i < n; i++ {
		dst := v.offset
		for d, ix := range idx {
			dst += ix * v.strides[d]
		}
		v.data[dst] = value
		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < v.shape[d] {
				break
			}
			idx[d] = 0
		}
	}
}

// EqualData reports whether two views have the same shape and elements.
// Layout is not compared: a strided window equals its compacted copy.
func EqualData[T Scalar](a, b *View[T]) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	n := a.NumElements()
	idx := make([]int, len(a.shape))
	for i := 0; i < n; i++ {
		ai, bi := a.offset, b.offset
		for d, ix := range idx {
			ai += ix * a.strides[d]
			bi += ix * b.strides[d]
		}
		if a.data[ai] != b.data[bi] {
			return false
		}
		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < a.shape[d] {
				break
			}
			idx[d] = 0
		}
	}
	return true
}
