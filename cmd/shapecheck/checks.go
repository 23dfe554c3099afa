// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"strconv"

	"github.com/gomlx/shapecheck/pkg/core/bounds"
	"github.com/gomlx/shapecheck/pkg/core/shapes"
	"github.com/pkg/errors"
)

// request holds the parsed command-line inputs.
type request struct {
	shape, output, mask          shapes.Shape
	hasShape, hasOutput, hasMask bool
	index                        shapes.Index
	hasIndex                     bool
	axis, value, size, linear    int
}

type result struct {
	name, inputs string
	err          error
}

// run executes every check for which inputs were given. The rank preconditions of the
// validators are checked here, since command-line inputs are not trusted.
func (req request) run() ([]result, error) {
	var results []result
	needShape := func(what string) error {
		if !req.hasShape {
			return errors.Errorf("%s requires -shape", what)
		}
		return nil
	}

	if req.linear >= 0 {
		size := req.size
		if size < 0 {
			if !req.hasShape {
				return nil, errors.New("-linear requires -size or -shape")
			}
			size = req.shape.Size()
		}
		results = append(results, result{
			name:   "linear",
			inputs: "size=" + strconv.Itoa(size) + " i=" + strconv.Itoa(req.linear),
			err:    bounds.CheckLinear(size, req.linear),
		})
	}

	if req.hasIndex {
		if err := needShape("-index"); err != nil {
			return nil, err
		}
		if req.index.Rank() != req.shape.Rank() {
			return nil, errors.Errorf("-index %s has rank %d, but -shape %s has rank %d",
				req.index, req.index.Rank(), req.shape, req.shape.Rank())
		}
		results = append(results, result{
			name:   "index",
			inputs: "shape=" + req.shape.String() + " index=" + req.index.String(),
			err:    bounds.CheckShape(req.shape, req.index),
		})
	}

	if req.axis >= 0 {
		if err := needShape("-axis"); err != nil {
			return nil, err
		}
		if req.axis >= req.shape.Rank() {
			return nil, errors.Errorf("-axis=%d is out of range for -shape %s", req.axis, req.shape)
		}
		results = append(results, result{
			name:   "axis",
			inputs: "shape=" + req.shape.String() + " axis=" + strconv.Itoa(req.axis) + " value=" + strconv.Itoa(req.value),
			err:    bounds.CheckAxis(req.shape, req.value, req.axis),
		})
	}

	if req.hasOutput {
		if err := needShape("-output"); err != nil {
			return nil, err
		}
		results = append(results, result{
			name:   "output",
			inputs: "output=" + req.output.String() + " broadcast=" + req.shape.String(),
			err:    bounds.CheckOutputShape(req.output, req.shape),
		})
	}

	if req.hasMask {
		if err := needShape("-mask"); err != nil {
			return nil, err
		}
		results = append(results, result{
			name:   "mask",
			inputs: "shape=" + req.shape.String() + " mask=" + req.mask.String(),
			err:    bounds.CheckMaskShape(req.shape, req.mask),
		})
	}

	if len(results) == 0 {
		return nil, errors.New("nothing to check: give -index, -axis, -linear, -output or -mask")
	}
	return results, nil
}
