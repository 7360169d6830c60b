// Copyright 2024 The Benchviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const testCSV = `benchmark,impl,exec_time
sort,cpu,10
sort,cpu,10
sort,gpu,5
scan,cpu,10
scan,gpu,20
`

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "chart.yaml", `
time: exec_time
group_by: [benchmark, impl]
baseline:
  - {col: impl, val: cpu}
correction: true
output:
  dir: out
  formats: [png]
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "exec_time", cfg.Time)
	assert.Equal(t, []string{"benchmark", "impl"}, cfg.GroupBy)
	assert.Equal(t, []BaselineCondition{{Col: "impl", Val: "cpu"}}, cfg.Baseline)
	assert.True(t, cfg.Correction)

	// Defaults.
	assert.Equal(t, "median", cfg.Aggregate)
	assert.Equal(t, 0.95, cfg.Confidence)
	assert.Equal(t, "%.2fx", cfg.LabelFormat)
	assert.Equal(t, 20, cfg.MaxLabelLen)
	assert.Equal(t, "speedup.%[2]s", cfg.Output.Name)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing time",
			yaml:    "group_by: [g]\nbaseline: [{col: c, val: v}]",
			wantErr: "no timing column",
		},
		{
			name:    "missing groups",
			yaml:    "time: t\nbaseline: [{col: c, val: v}]",
			wantErr: "no group columns",
		},
		{
			name:    "missing baseline",
			yaml:    "time: t\ngroup_by: [g]",
			wantErr: "no baseline conditions",
		},
		{
			name:    "bad aggregate",
			yaml:    "time: t\ngroup_by: [g]\nbaseline: [{col: c, val: v}]\naggregate: mode",
			wantErr: "unknown aggregate",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, "bad-"+tc.name+".yaml", tc.yaml)
			_, err := loadConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestReadTable(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "data.csv", testCSV)

	tab, err := readTable(path)
	require.NoError(t, err)
	assert.Equal(t, 5, tab.Len())
	assert.Equal(t, []string{"benchmark", "impl", "exec_time"}, tab.Columns())

	// Numeric columns are detected, text columns stay strings.
	assert.Equal(t, []float64{10, 10, 5, 10, 20}, tab.Column("exec_time"))
	assert.Equal(t, []string{"cpu", "cpu", "gpu", "cpu", "gpu"}, tab.Column("impl"))

	// A second file appends rows.
	path2 := writeFile(t, dir, "data2.csv", "benchmark,impl,exec_time\nsort,cpu,12\n")
	tab, err = readTable(path, path2)
	require.NoError(t, err)
	assert.Equal(t, 6, tab.Len())

	// Mismatched headers are rejected.
	path3 := writeFile(t, dir, "data3.csv", "a,b\n1,2\n")
	_, err = readTable(path, path3)
	require.Error(t, err)
}

func TestCoerceConditions(t *testing.T) {
	dir := t.TempDir()
	tab, err := readTable(writeFile(t, dir, "data.csv", testCSV))
	require.NoError(t, err)

	conds, err := coerceConditions(tab, []BaselineCondition{
		{Col: "impl", Val: "cpu"},
		{Col: "exec_time", Val: "10"},
	})
	require.NoError(t, err)
	assert.Equal(t, "cpu", conds[0].Val)
	assert.Equal(t, 10.0, conds[1].Val)

	_, err = coerceConditions(tab, []BaselineCondition{{Col: "exec_time", Val: "fast"}})
	require.Error(t, err)
	_, err = coerceConditions(tab, []BaselineCondition{{Col: "nope", Val: "x"}})
	require.Error(t, err)
}

func TestRunUnknownTimeColumn(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "data.csv", testCSV)
	cfgPath := writeFile(t, dir, "chart.yaml", `
time: wall_time
group_by: [benchmark, impl]
baseline:
  - {col: impl, val: cpu}
outlier_sigmas: 2
`)

	// A misnamed timing column is an error, not a panic from the
	// outlier filter.
	var buf bytes.Buffer
	err := run(cfgPath, []string{csvPath}, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `timing column "wall_time"`)
}

func TestSummarizeKeyCollision(t *testing.T) {
	// ["a b", "c"] and ["a", "b c"] render to the same display label
	// but must remain distinct groups.
	tab := new(table.Builder).
		Add("x", []string{"a b", "a"}).
		Add("y", []string{"c", "b c"}).
		Add("speedup", []float64{1, 2}).
		Done()

	sums := summarize(tab, []string{"x", "y"}, 0.95)
	require.Len(t, sums, 2)
	assert.Equal(t, "a b c", sums[0].label)
	assert.Equal(t, "a b c", sums[1].label)
	assert.Equal(t, 1.0, sums[0].mean)
	assert.Equal(t, 2.0, sums[1].mean)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "data.csv", testCSV)
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o777))
	cfgPath := writeFile(t, dir, "chart.yaml", `
time: exec_time
group_by: [benchmark, impl]
baseline:
  - {col: impl, val: cpu}
title: sort vs scan
color: c2
output:
  dir: `+outDir+`
  formats: [png]
  width: 5
  height: 4
`)

	var buf bytes.Buffer
	require.NoError(t, run(cfgPath, []string{csvPath}, &buf))

	// Summary table lists each group with its mean speedup: the
	// baseline groups at 1x, sort/gpu at 2x, scan/gpu at 0.5x.
	got := buf.String()
	assert.Contains(t, got, "sort cpu")
	assert.Contains(t, got, "2.000x")
	assert.Contains(t, got, "0.500x")

	fi, err := os.Stat(filepath.Join(outDir, "speedup.png"))
	require.NoError(t, err)
	assert.NotZero(t, fi.Size())
}
