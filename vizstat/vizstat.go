// Copyright 2024 The Benchviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vizstat provides table-level statistics for visualizing
// grouped experimental measurements, built on go-gg tables.
//
// The central operation is Speedup, which normalizes the timing
// column of a measurement table against an aggregate over a fixed
// baseline subset of rows, optionally rescaling so the geometric
// mean of the baseline rows' speedups is exactly 1.
//
// All operations here are pure: they return new tables and never
// modify their inputs. This follows the go-gg table model, where
// tables are immutable once built.
package vizstat

import (
	"fmt"
	"reflect"

	"github.com/aclements/go-gg/table"
)

var float64Type = reflect.TypeOf(float64(0))

// floats returns column col of t converted to []float64, or an error
// if the column does not exist or is not numeric.
func floats(t *table.Table, col string) ([]float64, error) {
	c := t.Column(col)
	if c == nil {
		return nil, fmt.Errorf("unknown column %q", col)
	}
	if xs, ok := c.([]float64); ok {
		return xs, nil
	}
	cv := reflect.ValueOf(c)
	if !cv.Type().Elem().ConvertibleTo(float64Type) || cv.Type().Elem().Kind() == reflect.String {
		return nil, fmt.Errorf("column %q (type %s) is not numeric", col, cv.Type().Elem())
	}
	xs := make([]float64, cv.Len())
	for i := range xs {
		xs[i] = cv.Index(i).Convert(float64Type).Float()
	}
	return xs, nil
}
