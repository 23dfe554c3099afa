// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package bounds

import (
	"github.com/gomlx/shapecheck/pkg/core/shapes"
	"github.com/pkg/errors"
)

// throw panics with err (with a stack trace attached) if it is not nil.
// The original *OutOfRangeError or *InvalidArgumentError is still reachable with errors.As.
func throw(err error) {
	if err != nil {
		panic(errors.WithStack(err))
	}
}

// AssertLinear is like CheckLinear, but panics with the error instead.
//
// Use exceptions.TryCatch[error] to recover it.
func AssertLinear(size, i int) {
	throw(CheckLinear(size, i))
}

// AssertShape is like CheckShape, but panics with the error instead.
func AssertShape(shape shapes.Shape, index shapes.Index) {
	throw(CheckShape(shape, index))
}

// AssertAxis is like CheckAxis, but panics with the error instead.
func AssertAxis(shape shapes.Shape, value, axis int) {
	throw(CheckAxis(shape, value, axis))
}

// AssertOutputShape is like CheckOutputShape, but panics with the error instead.
func AssertOutputShape(output, expected shapes.Shape) {
	throw(CheckOutputShape(output, expected))
}

// AssertMaskShape is like CheckMaskShape, but panics with the error instead.
func AssertMaskShape(shape, mask shapes.Shape) {
	throw(CheckMaskShape(shape, mask))
}
