// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// shapecheck runs the bounds and shape checks from the command line, for debugging
// error reports of the array engine.
//
// Examples:
//
//	shapecheck -shape=3,4 -index=3,0
//	shapecheck -shape=3,4 -axis=1 -value=4
//	shapecheck -size=1000000 -linear=2500000 -human
//	shapecheck -shape=4,5 -mask=5,4
//	shapecheck -shape=2,3 -output=3,2
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gomlx/shapecheck/pkg/core/bounds"
	"github.com/gomlx/shapecheck/pkg/core/shapes"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	flagShape  = flag.String("shape", "", "Shape of the tensor, e.g.: \"3,4\". Required by all checks but -linear.")
	flagIndex  = flag.String("index", "", "Index to check against -shape, e.g.: \"2,3\".")
	flagAxis   = flag.Int("axis", -1, "Axis of -shape to check -value against.")
	flagValue  = flag.Int("value", 0, "Position to check against the dimension of -axis.")
	flagSize   = flag.Int("size", -1, "Size for the linear check. Defaults to the size of -shape.")
	flagLinear = flag.Int("linear", -1, "Flat index to check against -size.")
	flagOutput = flag.String("output", "", "Output shape that must match -shape (the broadcast shape).")
	flagMask   = flag.String("mask", "", "Boolean mask shape that must match -shape.")
	flagHuman  = flag.Bool("human", false, "Render numbers with thousands separators.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	req := request{
		axis:   *flagAxis,
		value:  *flagValue,
		size:   *flagSize,
		linear: *flagLinear,
	}
	if *flagShape != "" {
		req.shape = must.M1(shapes.Parse(*flagShape))
		req.hasShape = true
	}
	if *flagIndex != "" {
		req.index = must.M1(shapes.ParseIndex(*flagIndex))
		req.hasIndex = true
	}
	if *flagOutput != "" {
		req.output = must.M1(shapes.Parse(*flagOutput))
		req.hasOutput = true
	}
	if *flagMask != "" {
		req.mask = must.M1(shapes.Parse(*flagMask))
		req.hasMask = true
	}

	var formatter bounds.Formatter = bounds.PlainFormatter{}
	if *flagHuman {
		formatter = bounds.HumanFormatter{}
	}

	results, err := req.run()
	if err != nil {
		klog.Errorf("%v. See 'shapecheck -help'.", err)
		os.Exit(1)
	}
	fmt.Println(renderResults(results, formatter))

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			klog.V(1).Infof("%s failed: %+v", r.name, r.err)
		}
	}
	if failed > 0 {
		klog.Warningf("%d of %d checks failed", failed, len(results))
		os.Exit(1)
	}
}
