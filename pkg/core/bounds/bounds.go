// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package bounds validates indexing and shape preconditions of array operations.
//
// The checks are called by the array engine right before it dereferences an offset,
// writes into a caller supplied output buffer, or applies a boolean mask. Each check
// returns nil if the precondition holds, or one of:
//
//   - *OutOfRangeError: a position is not strictly less than its bound.
//   - *InvalidArgumentError: a shape doesn't exactly match the expected one.
//
// Use KindOf, errors.Is (with ErrOutOfRange / ErrInvalidArgument) or errors.As to inspect
// the result. The Assert* variants panic with the same errors instead.
//
// All functions are pure: they hold no state, only read their arguments, and are safe to
// call concurrently.
//
// Rank agreement between a Shape and an Index (or an axis) is a precondition of the caller.
// It's checked once per call, and a mismatch panics, since it is a programming error and
// not a runtime condition.
package bounds

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/shapecheck/pkg/core/shapes"
)

// inRange is the single bound predicate used by all checks. Negative values are out of range.
func inRange(value, bound int) bool {
	return value >= 0 && value < bound
}

// CheckLinear checks that the flat index i is within [0, size).
func CheckLinear(size, i int) error {
	if inRange(i, size) {
		return nil
	}
	return &OutOfRangeError{Value: i, Bound: size, Axis: NoAxis}
}

// CheckShape checks that index[axis] < shape.Dimensions[axis] for every axis.
//
// Axes are scanned in ascending order and only the first violating axis is reported.
//
// It panics if the ranks of shape and index differ.
func CheckShape(shape shapes.Shape, index shapes.Index) error {
	if index.Rank() != shape.Rank() {
		exceptions.Panicf("bounds.CheckShape(%s, %s): index rank %d doesn't match shape rank %d",
			shape, index, index.Rank(), shape.Rank())
	}
	for axis, dim := range shape.Dimensions {
		if !inRange(index[axis], dim) {
			return &OutOfRangeError{
				Value: index[axis],
				Bound: dim,
				Axis:  axis,
				Index: index.Clone(),
				Shape: shape.Clone(),
			}
		}
	}
	return nil
}

// CheckAxis checks that value < shape.Dimensions[axis].
//
// It panics if axis is not in [0, shape.Rank()).
func CheckAxis(shape shapes.Shape, value, axis int) error {
	if axis < 0 || axis >= shape.Rank() {
		exceptions.Panicf("bounds.CheckAxis(%s, %d, %d): axis out of range for rank %d",
			shape, value, axis, shape.Rank())
	}
	dim := shape.Dimensions[axis]
	if inRange(value, dim) {
		return nil
	}
	return &OutOfRangeError{Value: value, Bound: dim, Axis: axis, Shape: shape.Clone()}
}
