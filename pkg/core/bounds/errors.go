// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package bounds

import (
	"github.com/gomlx/shapecheck/pkg/core/shapes"
	"github.com/pkg/errors"
)

// Kind tags the outcome of a check.
type Kind int

const (
	// KindOK means the precondition holds (nil error).
	KindOK Kind = iota

	// KindOutOfRange means a position is not strictly less than its bound.
	KindOutOfRange

	// KindInvalidArgument means a shape that should match another exactly doesn't.
	KindInvalidArgument

	// KindUnknown is returned by KindOf for errors not created by this package.
	KindUnknown
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindOK:
		return "OK"
	case KindOutOfRange:
		return "OutOfRange"
	case KindInvalidArgument:
		return "InvalidArgument"
	default:
		return "Unknown"
	}
}

var (
	// ErrOutOfRange matches (with errors.Is) any *OutOfRangeError.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidArgument matches (with errors.Is) any *InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")
)

// NoAxis is the OutOfRangeError.Axis of linear checks, which are not tied to a Shape.
const NoAxis = -1

// OutOfRangeError is returned when a position is not strictly below its bound.
//
// For CheckShape, Index and Shape hold the full index and shape, and Axis is the first
// violating axis. For CheckAxis only Shape is set. For CheckLinear, Axis is NoAxis and
// neither Index nor Shape are set.
type OutOfRangeError struct {
	Value, Bound int
	Axis         int

	Index shapes.Index
	Shape shapes.Shape
}

// Error implements the error interface, rendering with PlainFormatter.
func (e *OutOfRangeError) Error() string {
	return PlainFormatter{}.FormatOutOfRange(e)
}

// Is makes errors.Is(err, ErrOutOfRange) work.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Op identifies which shape-match check produced an InvalidArgumentError.
type Op int

const (
	// OpOutput is the output-buffer vs. broadcast shape check.
	OpOutput Op = iota
	// OpMask is the boolean-mask vs. indexed tensor shape check.
	OpMask
)

func (op Op) String() string {
	switch op {
	case OpOutput:
		return "output"
	case OpMask:
		return "mask"
	default:
		return "unknown"
	}
}

// InvalidArgumentError is returned when a shape doesn't exactly match the expected one.
//
// Expected is the already known shape (the broadcast result, or the indexed tensor shape),
// Actual is the one supplied by the caller (the output buffer or the mask).
type InvalidArgumentError struct {
	Op               Op
	Expected, Actual shapes.Shape
}

// Error implements the error interface, rendering with PlainFormatter.
func (e *InvalidArgumentError) Error() string {
	return PlainFormatter{}.FormatInvalidArgument(e)
}

// Is makes errors.Is(err, ErrInvalidArgument) work.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// KindOf returns the Kind of the error returned by one of the checks.
// It unwraps the error, so it also works on errors wrapped with errors.Wrap or fmt.Errorf("%w").
func KindOf(err error) Kind {
	if err == nil {
		return KindOK
	}
	var outOfRange *OutOfRangeError
	if errors.As(err, &outOfRange) {
		return KindOutOfRange
	}
	var invalid *InvalidArgumentError
	if errors.As(err, &invalid) {
		return KindInvalidArgument
	}
	return KindUnknown
}
