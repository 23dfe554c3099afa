// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package shapes defines the Shape and Index value types validated by the bounds package.
//
// ## Glossary
//
//   - Rank: number of axes of an array.
//   - Axis: the position of a dimension in a Shape (plural axes).
//   - Dimension: the number of valid positions along one axis.
//   - Index: one candidate position per axis, compared against a Shape of the same rank.
//
// Example: the multi-dimensional array `[][]int32{{0, 1, 2}, {3, 4, 5}}` has shape `[2 3]`:
// rank 2, axis 0 has dimension 2 and axis 1 has dimension 3. The index `[1 2]` points to
// the value 5. This shape could be created with `shapes.Make(2, 3)`.
//
// Shapes and indices are owned by the array engine: the validators only read them.
package shapes

import (
	"fmt"
	"slices"

	"github.com/gomlx/exceptions"
	"golang.org/x/exp/constraints"
)

// HasShape is an interface for objects that have an associated Shape.
type HasShape interface {
	Shape() Shape
}

// Shape is the ordered list of per-axis dimensions of an array.
//
// Use Make to create a new shape.
type Shape struct {
	Dimensions []int
}

// Make returns a Shape with a copy of the given dimensions.
//
// It panics if any of the dimensions is negative. Zero dimensions are valid (an empty array).
func Make(dimensions ...int) Shape {
	s := Shape{Dimensions: slices.Clone(dimensions)}
	for axis, dim := range dimensions {
		if dim < 0 {
			exceptions.Panicf("shapes.Make(%v): axis %d has negative dimension %d", dimensions, axis, dim)
		}
	}
	return s
}

// MakeFrom is like Make, but converts from any integer type.
// Arrays imported from other runtimes frequently carry int64 or uint32 dimensions.
func MakeFrom[T constraints.Integer](dimensions ...T) Shape {
	dims := make([]int, len(dimensions))
	for ii, d := range dimensions {
		dims[ii] = int(d)
	}
	return Make(dims...)
}

// Scalar returns the rank-0 shape.
func Scalar() Shape { return Shape{} }

// Rank of the shape, that is, the number of axes.
func (s Shape) Rank() int { return len(s.Dimensions) }

// IsScalar returns whether the shape has no axes.
func (s Shape) IsScalar() bool { return s.Rank() == 0 }

// IsZeroSize returns whether any of the axes has dimension 0, in which case
// there is no valid index for the shape.
func (s Shape) IsZeroSize() bool {
	return slices.Contains(s.Dimensions, 0)
}

// Dim returns the dimension of the given axis. axis can take negative numbers, in which
// case it counts as starting from the end -- so axis=-1 refers to the last axis.
// Like with a slice indexing, it panics for an out-of-bound axis.
func (s Shape) Dim(axis int) int {
	adjustedAxis := axis
	if adjustedAxis < 0 {
		adjustedAxis += s.Rank()
	}
	if adjustedAxis < 0 || adjustedAxis >= s.Rank() {
		exceptions.Panicf("Shape.Dim(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	return s.Dimensions[adjustedAxis]
}

// Shape returns a shallow copy of itself. It implements the HasShape interface.
func (s Shape) Shape() Shape { return s }

// String implements fmt.Stringer, pretty-prints the shape.
func (s Shape) String() string {
	if s.Rank() == 0 {
		return "[]"
	}
	return fmt.Sprintf("%v", s.Dimensions)
}

// Size returns the number of elements of the shape. It's the product of all dimensions.
func (s Shape) Size() (size int) {
	size = 1
	for _, d := range s.Dimensions {
		size *= d
	}
	return
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	return Shape{Dimensions: slices.Clone(s.Dimensions)}
}

// Equal compares two shapes for exact equality: same rank and same dimension on every axis.
func (s Shape) Equal(s2 Shape) bool {
	return slices.Equal(s.Dimensions, s2.Dimensions)
}

// Strides returns the strides for each axis of the shape, assuming a "row-major" layout.
//
// Notice the strides are **not in bytes**, but in indices.
func (s Shape) Strides() (strides []int) {
	rank := s.Rank()
	if rank == 0 {
		return
	}
	strides = make([]int, rank)
	if s.IsZeroSize() {
		// Some axis is zero-dimension.
		return
	}
	currentStride := 1
	for axis := rank - 1; axis >= 0; axis-- {
		strides[axis] = currentStride
		currentStride *= s.Dimensions[axis]
	}
	return
}

// FlatIndex returns the row-major linear offset of index in an array of shape s.
//
// It doesn't validate the index: use bounds.CheckShape first. It panics if the ranks differ.
func (s Shape) FlatIndex(index Index) int {
	if index.Rank() != s.Rank() {
		exceptions.Panicf("Shape.FlatIndex(%s): index rank %d doesn't match shape %s rank %d",
			index, index.Rank(), s, s.Rank())
	}
	flat := 0
	for axis, stride := range s.Strides() {
		flat += index[axis] * stride
	}
	return flat
}
