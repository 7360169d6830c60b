// Copyright 2024 The Benchviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vizstat

import (
	"math"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// FilterOutliers drops the rows of each table whose value in column
// Col lies Sigmas or more standard deviations from that table's mean
// of Col. Each table in a grouping is filtered against its own mean
// and standard deviation, so group the input first to filter within
// groups (see FilterOutliersBy).
//
// This is a visualization aid, not a statistical test: it cleans up
// plots dominated by a few wild measurements.
type FilterOutliers struct {
	// Col is the name of the numeric column to filter on.
	Col string

	// Sigmas is the rejection threshold in standard deviations.
	// Zero means the conventional 3.
	Sigmas float64
}

// F returns g with outlier rows removed from each table. Tables with
// fewer than two rows, or whose Col has zero standard deviation, pass
// through unchanged. F panics if Col is missing or not numeric, like
// other go-gg table operations.
func (f FilterOutliers) F(g table.Grouping) table.Grouping {
	sigmas := f.Sigmas
	if sigmas == 0 {
		sigmas = 3
	}
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		if t.Len() < 2 {
			return t
		}
		xs, err := floats(t, f.Col)
		if err != nil {
			panic(err)
		}
		s := stats.Sample{Xs: xs}
		mean, sd := s.Mean(), s.StdDev()
		if sd == 0 || math.IsNaN(sd) {
			return t
		}
		match := make([]int, 0, len(xs))
		for i, x := range xs {
			if math.Abs(x-mean)/sd < sigmas {
				match = append(match, i)
			}
		}
		if len(match) == t.Len() {
			return t
		}
		var nt table.Builder
		for _, col := range t.Columns() {
			nt.Add(col, slice.Select(t.Column(col), match))
		}
		return nt.Done()
	})
}

// FilterOutliersBy filters outliers in col within each group defined
// by the key columns, then restores the input's grouping structure.
// With no keys it behaves like FilterOutliers over g as-is.
func FilterOutliersBy(g table.Grouping, col string, sigmas float64, keys ...string) table.Grouping {
	if len(keys) == 0 {
		return FilterOutliers{Col: col, Sigmas: sigmas}.F(g)
	}
	out := FilterOutliers{Col: col, Sigmas: sigmas}.F(table.GroupBy(g, keys...))
	for range keys {
		out = table.Ungroup(out)
	}
	return out
}
