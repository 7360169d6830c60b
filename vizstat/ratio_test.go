// Copyright 2024 The Benchviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vizstat

import (
	"testing"

	"github.com/aclements/go-gg/table"
)

func TestRatio(t *testing.T) {
	tab := new(table.Builder).
		Add("cpu_time", []float64{10, 30, 8}).
		Add("gpu_time", []float64{5, 10, 16}).
		Done()
	out := table.Flatten(Ratio(tab, "cpu_time", "gpu_time", "speedup"))
	want := []float64{2, 3, 0.5}
	got := out.Column("speedup").([]float64)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: speedup %v, want %v", i, got[i], want[i])
		}
	}
	// The input is untouched.
	if tab.Column("speedup") != nil {
		t.Errorf("input table gained a column")
	}
}
