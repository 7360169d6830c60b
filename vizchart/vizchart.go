// Copyright 2024 The Benchviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vizchart provides helpers around gonum/plot for the bar
// charts typically used to present speedups: value labels above bars,
// bar regrouping, legend reflow, a named color palette, and saving a
// finished plot in several formats at once.
package vizchart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// BarLabels configures value labels above the bars of a bar chart
// whose bars sit at nominal X positions 0, 1, 2, ....
type BarLabels struct {
	// Format is the fmt verb string applied to each bar height.
	// It defaults to "%.2fx", the conventional speedup form.
	Format string

	// Labels overrides the formatted heights with explicit text,
	// indexed by bar.
	Labels []string

	// Offsets holds per-bar vertical offsets, in data units,
	// between the top of the bar and the label. By default every
	// label sits 5% of ymax above its bar. Useful to clear error
	// bars of varying size.
	Offsets []float64

	// Coords holds absolute per-bar label Y coordinates. When set
	// for a bar it overrides the bar height and offset entirely.
	Coords []float64

	// SkipFirst drops the label of the first bar, which is usually
	// the baseline reading "1.00x".
	SkipFirst bool

	// MaxOnly labels only the tallest bar.
	MaxOnly bool

	// SkipBars and MaxBars bound the half-open bar index range
	// [SkipBars, MaxBars) that receives labels. MaxBars == 0 means
	// no upper bound.
	SkipBars, MaxBars int

	// Color, Size and Rotation set the text style. Color defaults
	// to near-black, Size to 14 points. Rotation is in radians.
	Color    color.Color
	Size     vg.Length
	Rotation float64
}

// Plot builds the label plotter for bars of the given heights, to be
// added to the same plot as the bar chart. ymax is the upper Y axis
// bound, used for the default 5% offset.
func (o BarLabels) Plot(heights []float64, ymax float64) (*plotter.Labels, error) {
	format := o.Format
	if format == "" {
		format = "%.2fx"
	}

	lo, hi := o.SkipBars, len(heights)
	if o.MaxBars > 0 && o.MaxBars < hi {
		hi = o.MaxBars
	}
	if lo > hi {
		lo = hi
	}

	argmax := lo
	for i := lo; i < hi; i++ {
		if heights[i] > heights[argmax] {
			argmax = i
		}
	}

	var xyl plotter.XYLabels
	for i := lo; i < hi; i++ {
		if o.SkipFirst && i == lo {
			continue
		}
		if o.MaxOnly && i != argmax {
			continue
		}
		y := heights[i] + 0.05*ymax
		if i < len(o.Offsets) {
			y = heights[i] + o.Offsets[i]
		}
		if i < len(o.Coords) {
			y = o.Coords[i]
		}
		label := fmt.Sprintf(format, heights[i])
		if i < len(o.Labels) {
			label = o.Labels[i]
		}
		xyl.XYs = append(xyl.XYs, plotter.XY{X: float64(i), Y: y})
		xyl.Labels = append(xyl.Labels, label)
	}

	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, err
	}
	clr := o.Color
	if clr == nil {
		clr = color.RGBA{R: 0x2f, G: 0x2f, B: 0x2f, A: 0xff}
	}
	size := o.Size
	if size == 0 {
		size = vg.Points(14)
	}
	for i := range labels.TextStyle {
		st := &labels.TextStyle[i]
		st.Color = clr
		st.Font.Size = size
		st.Rotation = o.Rotation
		st.XAlign = draw.XCenter
		st.YAlign = draw.YBottom
	}
	return labels, nil
}

// Regroup gives all bars a common width and recenters their offsets
// so the series straddle each nominal X tick, the way grouped bars
// are usually drawn. Bars are laid out left to right in argument
// order.
func Regroup(width vg.Length, bars ...*plotter.BarChart) {
	for i, b := range bars {
		b.Width = width
		b.Offset = vg.Length(float64(i)-float64(len(bars)-1)/2) * width
	}
}
