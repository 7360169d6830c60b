// Copyright 2024 The Benchviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vizstat

import "github.com/aclements/go-gg/table"

// Ratio adds column out holding the elementwise ratio num / den of
// two float64 columns. A row where den is zero produces +Inf, -Inf,
// or NaN following float64 division. Ratio panics if either column is
// missing or not []float64, like other go-gg table operations.
//
// The common use is a speedup between two timing columns measured on
// the same row, e.g. a slow and a fast implementation of the same
// experiment.
func Ratio(g table.Grouping, num, den, out string) table.Grouping {
	return table.MapCols(g, func(num, den, out []float64) {
		for i := range out {
			out[i] = num[i] / den[i]
		}
	}, num, den)(out)
}
