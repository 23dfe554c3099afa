// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package bounds

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/shapecheck/pkg/core/shapes"
	"github.com/pkg/errors"
)

// Formatter renders the errors of this package into messages.
//
// The payload fields of the errors are the stable contract, the messages are not.
type Formatter interface {
	FormatOutOfRange(e *OutOfRangeError) string
	FormatInvalidArgument(e *InvalidArgumentError) string
}

// Format renders err with f if it (or something it wraps) is an error of this package.
// Otherwise, it returns err.Error(). A nil err renders as "".
func Format(err error, f Formatter) string {
	if err == nil {
		return ""
	}
	var outOfRange *OutOfRangeError
	if errors.As(err, &outOfRange) {
		return f.FormatOutOfRange(outOfRange)
	}
	var invalid *InvalidArgumentError
	if errors.As(err, &invalid) {
		return f.FormatInvalidArgument(invalid)
	}
	return err.Error()
}

// PlainFormatter renders numbers and shapes with fmt. It's used by the Error() methods.
type PlainFormatter struct{}

var _ Formatter = PlainFormatter{}

// FormatOutOfRange implements Formatter.
func (PlainFormatter) FormatOutOfRange(e *OutOfRangeError) string {
	return formatOutOfRange(e, strconv.Itoa, shapes.Shape.String)
}

// FormatInvalidArgument implements Formatter.
func (PlainFormatter) FormatInvalidArgument(e *InvalidArgumentError) string {
	return formatInvalidArgument(e, shapes.Shape.String)
}

// HumanFormatter renders numbers with thousands separators (e.g.: 1,048,576), which
// makes large dimensions easier to read in logs.
type HumanFormatter struct{}

var _ Formatter = HumanFormatter{}

func humanInt(v int) string { return humanize.Comma(int64(v)) }

func humanShape(s shapes.Shape) string { return formatList(s.Dimensions, humanInt) }

// FormatOutOfRange implements Formatter.
func (HumanFormatter) FormatOutOfRange(e *OutOfRangeError) string {
	return formatOutOfRange(e, humanInt, humanShape)
}

// FormatInvalidArgument implements Formatter.
func (HumanFormatter) FormatInvalidArgument(e *InvalidArgumentError) string {
	return formatInvalidArgument(e, humanShape)
}

func formatOutOfRange(e *OutOfRangeError, num func(int) string, shape func(shapes.Shape) string) string {
	switch {
	case e.Axis == NoAxis:
		return fmt.Sprintf("index %s is out of bounds with size %s", num(e.Value), num(e.Bound))
	case e.Index != nil:
		return fmt.Sprintf("index %s is out of bounds for shape %s: axis %d has index %s, but size %s",
			formatList(e.Index, num), shape(e.Shape), e.Axis, num(e.Value), num(e.Bound))
	default:
		return fmt.Sprintf("index %s is out of bounds for axis %d with size %s",
			num(e.Value), e.Axis, num(e.Bound))
	}
}

func formatList(values []int, num func(int) string) string {
	parts := make([]string, len(values))
	for ii, v := range values {
		parts[ii] = num(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func formatInvalidArgument(e *InvalidArgumentError, shape func(shapes.Shape) string) string {
	switch e.Op {
	case OpMask:
		return fmt.Sprintf("mask shape %s does not match the shape %s of the indexed tensor",
			shape(e.Actual), shape(e.Expected))
	default:
		return fmt.Sprintf("output shape %s does not match the broadcast shape %s",
			shape(e.Actual), shape(e.Expected))
	}
}
