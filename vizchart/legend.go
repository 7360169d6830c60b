// Copyright 2024 The Benchviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vizchart

import "gonum.org/v1/plot"

// A LegendEntry pairs a legend label with the thumbnail of the
// plotter it describes.
type LegendEntry struct {
	Label string
	Thumb plot.Thumbnailer
}

// TransposeLegend reorders legend entries from the column-major order
// a multi-column legend fills by default into row-major reading
// order, so entries read left to right. perRow is capped at maxPerRow
// and chosen so the legend has about defaultPerCol entries in each
// column. It returns a new slice; the input is not modified.
func TransposeLegend(entries []LegendEntry, maxPerRow, defaultPerCol int) []LegendEntry {
	if len(entries) == 0 {
		return nil
	}
	if defaultPerCol < 1 {
		defaultPerCol = 1
	}
	perRow := (len(entries) + defaultPerCol - 1) / defaultPerCol
	if maxPerRow >= 1 && perRow > maxPerRow {
		perRow = maxPerRow
	}
	out := make([]LegendEntry, 0, len(entries))
	for i := 0; i < perRow; i++ {
		for j := i; j < len(entries); j += perRow {
			out = append(out, entries[j])
		}
	}
	return out
}
