// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package bounds

import (
	"github.com/gomlx/shapecheck/pkg/core/shapes"
)

// CheckOutputShape checks that the caller supplied output shape is exactly the expected
// (typically the broadcast) shape. No broadcasting is applied here.
func CheckOutputShape(output, expected shapes.Shape) error {
	if output.Equal(expected) {
		return nil
	}
	return &InvalidArgumentError{Op: OpOutput, Expected: expected.Clone(), Actual: output.Clone()}
}

// CheckMaskShape checks that a boolean mask has exactly the shape of the indexed tensor.
// Masks are never broadcast.
func CheckMaskShape(shape, mask shapes.Shape) error {
	if mask.Equal(shape) {
		return nil
	}
	return &InvalidArgumentError{Op: OpMask, Expected: shape.Clone(), Actual: mask.Clone()}
}
