// Copyright 2024 The Benchviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vizstat

import (
	"fmt"
	"math"
	"reflect"

	"github.com/aclements/go-gg/table"

	"github.com/benchviz/benchviz/vizmath"
)

// A Condition selects the rows of a table whose value in column Col
// equals Val. Equality uses interface comparison, so Val must have
// the column's element type (e.g. a float64 for a numeric column).
type Condition struct {
	Col string
	Val interface{}
}

// Speedup computes per-row speedups of a timing column relative to an
// aggregate of the timings in a fixed baseline subset of rows.
//
// The baseline subset is the intersection of the row sets matched by
// each Baseline condition, taken over the whole input. It does not
// depend on the group key: every group in the GroupBy partition is
// normalized against the same reference value, so callers that need a
// per-group baseline must include the group columns in Baseline.
// Because the reference is shared, it is computed once rather than
// once per group.
//
// The result is a new flat table with the input's rows in their
// original order and two added (or replaced) float64 columns: the
// speedup column, where speedup = reference / time, and the baseline
// column, which holds the reference value in every row.
//
// If Correction is set, every speedup is further divided by the
// geometric mean of the uncorrected speedups at the baseline rows.
// This anchors the baseline subset's own mean reported speedup to
// exactly 1, removing the bias introduced by the choice of Aggregate.
//
// Timing values must be positive; zero or negative timings make the
// division and the geometric mean meaningless and are not validated
// beyond the geometric-mean check below.
type Speedup struct {
	// Time is the name of the timing column. Required.
	Time string

	// GroupBy names the columns whose values partition the rows
	// into groups. Required to be non-empty; the columns must
	// exist even though the shared reference makes the partition
	// itself unobservable in the output.
	GroupBy []string

	// Baseline selects the baseline subset. Required to be
	// non-empty; each condition must match at least one row and
	// the intersection must be non-empty.
	Baseline []Condition

	// SpeedupCol and BaselineCol name the output columns. They
	// default to "speedup" and "baseline_time".
	SpeedupCol, BaselineCol string

	// Aggregate reduces the baseline timings to the reference
	// value. It defaults to vizmath.Median.
	Aggregate func([]float64) float64

	// Correction rescales speedups so the geometric mean over the
	// baseline rows is 1.
	Correction bool
}

// F runs the computation on g. The input grouping is flattened first;
// any existing group structure is independent of the GroupBy columns
// named in s.
func (s Speedup) F(g table.Grouping) (*table.Table, error) {
	if s.Time == "" {
		return nil, fmt.Errorf("no timing column")
	}
	if len(s.GroupBy) == 0 {
		return nil, fmt.Errorf("no group columns")
	}
	if len(s.Baseline) == 0 {
		return nil, fmt.Errorf("no baseline conditions")
	}

	t := table.Flatten(g)
	times, err := floats(t, s.Time)
	if err != nil {
		return nil, err
	}
	for _, col := range s.GroupBy {
		if t.Column(col) == nil {
			return nil, fmt.Errorf("unknown group column %q", col)
		}
	}

	baseRows, err := baselineRows(t, s.Baseline)
	if err != nil {
		return nil, err
	}

	agg := s.Aggregate
	if agg == nil {
		agg = vizmath.Median
	}
	baseTimes := make([]float64, len(baseRows))
	for i, r := range baseRows {
		baseTimes[i] = times[r]
	}
	ref := agg(baseTimes)

	speedups := make([]float64, t.Len())
	baseline := make([]float64, t.Len())
	for i, x := range times {
		speedups[i] = ref / x
		baseline[i] = ref
	}

	if s.Correction {
		baseSpeedups := make([]float64, len(baseRows))
		for i, r := range baseRows {
			baseSpeedups[i] = speedups[r]
		}
		gm := vizmath.GeoMean(baseSpeedups)
		if math.IsNaN(gm) || gm <= 0 {
			return nil, fmt.Errorf("geometric mean of baseline speedups is not positive")
		}
		for i := range speedups {
			speedups[i] /= gm
		}
	}

	speedupCol, baselineCol := s.SpeedupCol, s.BaselineCol
	if speedupCol == "" {
		speedupCol = "speedup"
	}
	if baselineCol == "" {
		baselineCol = "baseline_time"
	}
	return table.NewBuilder(t).Add(speedupCol, speedups).Add(baselineCol, baseline).Done(), nil
}

// baselineRows returns the row indexes of t matched by every
// condition, in ascending order. It fails if a condition names an
// unknown column, matches no rows, or if the intersection is empty.
func baselineRows(t *table.Table, conds []Condition) ([]int, error) {
	sel := make([]bool, t.Len())
	for i := range sel {
		sel[i] = true
	}
	for _, c := range conds {
		col := t.Column(c.Col)
		if col == nil {
			return nil, fmt.Errorf("unknown baseline column %q", c.Col)
		}
		cv := reflect.ValueOf(col)
		any := false
		for i := 0; i < cv.Len(); i++ {
			if cv.Index(i).Interface() == c.Val {
				any = true
			} else {
				sel[i] = false
			}
		}
		if !any {
			return nil, fmt.Errorf("baseline condition %s == %v matches no rows", c.Col, c.Val)
		}
	}
	var rows []int
	for i, ok := range sel {
		if ok {
			rows = append(rows, i)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("baseline conditions have an empty intersection")
	}
	return rows, nil
}
