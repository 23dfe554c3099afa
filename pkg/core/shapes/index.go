// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"fmt"
	"slices"

	"github.com/gomlx/exceptions"
	"golang.org/x/exp/constraints"
)

// Index holds one candidate position per axis.
//
// It's a plain slice so engines can build it without allocations, but MakeIndex validates
// that no position is negative.
type Index []int

// MakeIndex returns a copy of the given positions as an Index.
//
// It panics if any of the positions is negative.
func MakeIndex(positions ...int) Index {
	for axis, p := range positions {
		if p < 0 {
			exceptions.Panicf("shapes.MakeIndex(%v): axis %d has negative position %d", positions, axis, p)
		}
	}
	return Index(slices.Clone(positions))
}

// IndexFrom is like MakeIndex, but converts from any integer type.
func IndexFrom[T constraints.Integer](positions ...T) Index {
	converted := make([]int, len(positions))
	for ii, p := range positions {
		converted[ii] = int(p)
	}
	return MakeIndex(converted...)
}

// Rank of the index, the number of axes it addresses.
func (idx Index) Rank() int { return len(idx) }

// Clone returns a copy of the index.
func (idx Index) Clone() Index { return slices.Clone(idx) }

// String implements fmt.Stringer.
func (idx Index) String() string {
	if len(idx) == 0 {
		return "[]"
	}
	return fmt.Sprintf("%v", []int(idx))
}
