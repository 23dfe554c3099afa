// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"

	"github.com/gomlx/shapecheck/pkg/core/bounds"
	"github.com/gomlx/shapecheck/pkg/core/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest() request {
	return request{axis: -1, size: -1, linear: -1}
}

func TestRun(t *testing.T) {
	req := newRequest()
	req.shape, req.hasShape = shapes.Make(3, 4), true
	req.index, req.hasIndex = shapes.MakeIndex(3, 0), true
	req.axis, req.value = 1, 3
	req.linear = 12
	req.mask, req.hasMask = shapes.Make(3, 4), true
	req.output, req.hasOutput = shapes.Make(4, 3), true

	results, err := req.run()
	require.NoError(t, err)
	require.Len(t, results, 5)

	names := make([]string, len(results))
	kinds := make([]bounds.Kind, len(results))
	for ii, r := range results {
		names[ii] = r.name
		kinds[ii] = bounds.KindOf(r.err)
	}
	assert.Equal(t, []string{"linear", "index", "axis", "output", "mask"}, names)
	assert.Equal(t, []bounds.Kind{bounds.KindOutOfRange, bounds.KindOutOfRange, bounds.KindOK,
		bounds.KindInvalidArgument, bounds.KindOK}, kinds)

	rendered := renderResults(results, bounds.PlainFormatter{})
	assert.Contains(t, rendered, "index 12 is out of bounds with size 12")
	assert.Contains(t, rendered, "InvalidArgument")
}

func TestRunErrors(t *testing.T) {
	req := newRequest()
	_, err := req.run()
	require.ErrorContains(t, err, "nothing to check")

	req = newRequest()
	req.index, req.hasIndex = shapes.MakeIndex(1), true
	_, err = req.run()
	require.ErrorContains(t, err, "-index requires -shape")

	req.shape, req.hasShape = shapes.Make(2, 2), true
	_, err = req.run()
	require.ErrorContains(t, err, "has rank 1")

	req = newRequest()
	req.shape, req.hasShape = shapes.Make(2, 2), true
	req.axis = 2
	_, err = req.run()
	require.ErrorContains(t, err, "out of range")

	req = newRequest()
	req.linear = 1
	_, err = req.run()
	require.ErrorContains(t, err, "-linear requires -size or -shape")

	req.size = 2
	results, err := req.run()
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, results[0].err)
}
