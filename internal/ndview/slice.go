package ndview

import (
	"fmt"
	"math"
)

// ToEnd marks a Range that extends to the end of its axis.
const ToEnd = math.MaxInt

// Range selects elements along one axis: Start through End (exclusive) at
// the given Step. Negative Start or End counts from the end of the axis;
// out-of-range bounds are clamped. A zero Step means 1.
type Range struct {
	Start int
	End   int
	Step  int
}

// All selects every element of an axis.
func All() Range {
	return Range{0, ToEnd, 1}
}

// Every selects every step-th element of an axis, starting at the first.
func Every(step int) Range {
	return Range{0, ToEnd, step}
}

// Span selects the half-open interval [start, end) of an axis.
func Span(start, end int) Range {
	return Range{start, end, 1}
}

// Slice returns a view of the sub-window selected by one Range per axis.
// Trailing axes without a Range keep their full extent. No elements are
// copied: the result shares storage with v.
func (v *View[T]) Slice(ranges ...Range) (*View[T], error) {
	rank := len(v.shape)
	if len(ranges) > rank {
		return nil, fmt.Errorf("%w: %d ranges for rank %d", ErrRankMismatch, len(ranges), rank)
	}

	shape := make(Shape, rank)
	strides := make([]int, rank)
	offset := v.offset

	for i := 0; i < rank; i++ {
		r := All()
		if i < len(ranges) {
			r = ranges[i]
		}

		step := r.Step
		if step == 0 {
			step = 1
		}
		if step < 0 {
			return nil, fmt.Errorf("%w: step %d at axis %d", ErrInvalidStep, step, i)
		}

		extent := v.shape[i]
		start, end := r.Start, r.End
		if start < 0 {
			start += extent
		}
		if end < 0 {
			end += extent
		}
		if start < 0 {
			start = 0
		}
		if start > extent {
			start = extent
		}
		if end < 0 {
			end = 0
		}
		if end > extent {
			end = extent
		}
		if end <= start {
			return nil, fmt.Errorf("%w: empty range [%d:%d] at axis %d", ErrInvalidShape, start, end, i)
		}

		shape[i] = (end - start + step - 1) / step
		strides[i] = v.strides[i] * step
		offset += start * v.strides[i]
	}

	return &View[T]{
		data:    v.data,
		shape:   shape,
		strides: strides,
		offset:  offset,
	}, nil
}

// Pick returns a view with the given axis removed, fixed at index. A
// negative axis counts from the last; a negative index counts from the end
// of the axis. The result shares storage with v.
func (v *View[T]) Pick(axis, index int) (*View[T], error) {
	rank := len(v.shape)
	if axis < 0 {
		axis += rank
	}
	if axis < 0 || axis >= rank {
		return nil, fmt.Errorf("%w: axis %d for rank %d", ErrRankMismatch, axis, rank)
	}
	extent := v.shape[axis]
	if index < 0 {
		index += extent
	}
	if index < 0 || index >= extent {
		return nil, fmt.Errorf("%w: index %d on axis %d (size %d)", ErrOutOfRange, index, axis, extent)
	}

	shape := make(Shape, 0, rank-1)
	strides := make([]int, 0, rank-1)
	for i := 0; i < rank; i++ {
		if i == axis {
			continue
		}
		shape = append(shape, v.shape[i])
		strides = append(strides, v.strides[i])
	}

	return &View[T]{
		data:    v.data,
		shape:   shape,
		strides: strides,
		offset:  v.offset + index*v.strides[axis],
	}, nil
}
