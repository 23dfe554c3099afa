// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// parseInts parses a comma-separated list of non-negative integers. Brackets and
// spaces are tolerated, so the output of Shape.String ("[3 4]") parses back too.
func parseInts(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' || r == 'x' })
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %q", part)
		}
		if v < 0 {
			return nil, errors.Errorf("negative value %d in %q", v, raw)
		}
		values = append(values, v)
	}
	return values, nil
}

// Parse a shape from a string like "3,4", "3x4" or "[3 4]". An empty string
// (or "[]") is the scalar shape.
func Parse(raw string) (Shape, error) {
	dims, err := parseInts(raw)
	if err != nil {
		return Shape{}, errors.WithMessage(err, "shapes.Parse")
	}
	return Shape{Dimensions: dims}, nil
}

// ParseIndex parses an index from a string, with the same syntax as Parse.
func ParseIndex(raw string) (Index, error) {
	positions, err := parseInts(raw)
	if err != nil {
		return nil, errors.WithMessage(err, "shapes.ParseIndex")
	}
	return Index(positions), nil
}
