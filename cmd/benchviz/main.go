// Copyright 2024 The Benchviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchviz renders grouped speedup charts from CSV measurement data.
//
// Usage:
//
//	benchviz -config chart.yaml data.csv [more.csv ...]
//
// Each CSV file holds one measurement per row with a header row
// naming the columns. The YAML config names the timing column, the
// grouping columns, and the baseline rows; benchviz filters outliers,
// normalizes every timing against the baseline aggregate, prints a
// per-group summary table, and saves a bar chart with confidence
// interval error bars in the configured formats.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"k8s.io/klog/v2"

	"github.com/benchviz/benchviz/vizchart"
	"github.com/benchviz/benchviz/vizlabel"
	"github.com/benchviz/benchviz/vizmath"
	"github.com/benchviz/benchviz/vizstat"
)

var configPath = flag.String("config", "", "chart configuration YAML (required)")

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	if *configPath == "" || flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s -config chart.yaml data.csv [more.csv ...]\n", os.Args[0])
		os.Exit(2)
	}
	if err := run(*configPath, flag.Args(), os.Stdout); err != nil {
		klog.Exitf("benchviz: %v", err)
	}
}

func run(configPath string, files []string, w io.Writer) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	tab, err := readTable(files...)
	if err != nil {
		return err
	}
	klog.V(1).Infof("read %d rows from %d files", tab.Len(), len(files))

	// Checked up front so a misnamed column in the config surfaces
	// as an error rather than a panic from the outlier filter.
	if tab.Column(cfg.Time) == nil {
		return fmt.Errorf("unknown timing column %q", cfg.Time)
	}

	if cfg.OutlierSigmas > 0 {
		n := tab.Len()
		tab = table.Flatten(vizstat.FilterOutliersBy(tab, cfg.Time, cfg.OutlierSigmas, cfg.GroupBy...))
		klog.V(1).Infof("outlier filter dropped %d of %d rows", n-tab.Len(), n)
	}

	conds, err := coerceConditions(tab, cfg.Baseline)
	if err != nil {
		return err
	}
	agg, err := cfg.aggregator()
	if err != nil {
		return err
	}
	out, err := vizstat.Speedup{
		Time:       cfg.Time,
		GroupBy:    cfg.GroupBy,
		Baseline:   conds,
		Aggregate:  agg,
		Correction: cfg.Correction,
	}.F(tab)
	if err != nil {
		return err
	}

	sums := summarize(out, cfg.GroupBy, cfg.Confidence)
	printSummary(w, sums)
	return renderChart(cfg, sums)
}

// coerceConditions converts YAML string values to the type of the
// column they filter, so interface equality inside the normalizer
// works.
func coerceConditions(t *table.Table, conds []BaselineCondition) ([]vizstat.Condition, error) {
	out := make([]vizstat.Condition, len(conds))
	for i, c := range conds {
		col := t.Column(c.Col)
		if col == nil {
			return nil, fmt.Errorf("unknown baseline column %q", c.Col)
		}
		if _, ok := col.([]float64); ok {
			x, err := strconv.ParseFloat(c.Val, 64)
			if err != nil {
				return nil, fmt.Errorf("baseline value %q for numeric column %q: %v", c.Val, c.Col, err)
			}
			out[i] = vizstat.Condition{Col: c.Col, Val: x}
			continue
		}
		out[i] = vizstat.Condition{Col: c.Col, Val: c.Val}
	}
	return out, nil
}

// A groupSummary is one bar of the chart: a group of rows reduced to
// its mean speedup and confidence interval.
type groupSummary struct {
	label        string
	n            int
	mean         float64
	upper, lower float64
}

// summarize reduces the normalized table to one summary per group, in
// first-seen row order.
func summarize(t *table.Table, groupBy []string, confidence float64) []groupSummary {
	cols := make([]reflect.Value, len(groupBy))
	for i, col := range groupBy {
		cols[i] = reflect.ValueOf(t.MustColumn(col))
	}
	speedups := t.MustColumn("speedup").([]float64)

	// Keys join the group values with NUL so values containing
	// spaces cannot collide; labels join with a space for display.
	order := []string{}
	labels := make(map[string]string)
	byKey := make(map[string][]float64)
	parts := make([]string, len(groupBy))
	for r := 0; r < t.Len(); r++ {
		for i, cv := range cols {
			parts[i] = fmt.Sprintf("%v", cv.Index(r).Interface())
		}
		key := strings.Join(parts, "\x00")
		if _, ok := byKey[key]; !ok {
			order = append(order, key)
			labels[key] = strings.Join(parts, " ")
		}
		byKey[key] = append(byKey[key], speedups[r])
	}

	sums := make([]groupSummary, len(order))
	for i, key := range order {
		xs := byKey[key]
		if len(xs) < 2 {
			// No interval from a single measurement.
			sums[i] = groupSummary{label: labels[key], n: len(xs), mean: xs[0]}
			continue
		}
		upper, lower, mean := vizmath.CI(xs, confidence)
		sums[i] = groupSummary{label: labels[key], n: len(xs), mean: mean, upper: upper, lower: lower}
	}
	return sums
}

func printSummary(w io.Writer, sums []groupSummary) {
	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	tw.SetHeader([]string{"Group", "N", "Speedup", "CI"})
	for _, s := range sums {
		ci := "-"
		if s.n > 1 {
			ci = fmt.Sprintf("+%.3f/-%.3f", s.upper, s.lower)
		}
		tw.Append([]string{s.label, strconv.Itoa(s.n), fmt.Sprintf("%.3fx", s.mean), ci})
	}
	tw.Render()
}

func renderChart(cfg *Config, sums []groupSummary) error {
	p := plot.New()
	p.Title.Text = cfg.Title
	p.Y.Label.Text = cfg.YLabel
	if p.Y.Label.Text == "" {
		p.Y.Label.Text = "speedup"
	}

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)

	means := make(plotter.Values, len(sums))
	labels := make([]string, len(sums))
	var pts struct {
		plotter.XYs
		plotter.YErrors
	}
	ymax := 0.0
	for i, s := range sums {
		means[i] = s.mean
		labels[i] = s.label
		pts.XYs = append(pts.XYs, plotter.XY{X: float64(i), Y: s.mean})
		pts.YErrors = append(pts.YErrors, struct{ Low, High float64 }{s.lower, s.upper})
		if s.mean+s.upper > ymax {
			ymax = s.mean + s.upper
		}
	}

	bars, err := plotter.NewBarChart(means, vg.Points(30))
	if err != nil {
		return err
	}
	if c, err := barColor(cfg.Color); err != nil {
		return err
	} else if c != nil {
		bars.Color = c
	}
	p.Add(bars)

	errBars, err := plotter.NewYErrorBars(pts)
	if err != nil {
		return err
	}
	p.Add(errBars)

	offsets := make([]float64, len(sums))
	for i, s := range sums {
		offsets[i] = s.upper + 0.02*ymax
	}
	valueLabels, err := vizchart.BarLabels{
		Format:  cfg.LabelFormat,
		Offsets: offsets,
	}.Plot(means, ymax)
	if err != nil {
		return err
	}
	p.Add(valueLabels)
	p.NominalX(vizlabel.Shorten(labels, cfg.MaxLabelLen)...)

	return vizchart.Save(p, vizchart.SaveOptions{
		Dir:        cfg.Output.Dir,
		Name:       cfg.Output.Name,
		Date:       cfg.Output.Date,
		DateDir:    cfg.Output.DateDir,
		Extensions: cfg.Output.Formats,
		DPI:        cfg.Output.DPI,
		Width:      vg.Length(cfg.Output.Width) * vg.Inch,
		Height:     vg.Length(cfg.Output.Height) * vg.Inch,
	})
}

func barColor(name string) (color.Color, error) {
	if name == "" {
		return nil, nil
	}
	if strings.HasPrefix(name, "#") {
		return vizchart.ParseHex(name)
	}
	if c, ok := vizchart.Palette()[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color %q", name)
}
