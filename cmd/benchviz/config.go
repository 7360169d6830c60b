// Copyright 2024 The Benchviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/benchviz/benchviz/vizmath"
)

// Config describes one chart: which column holds timings, how rows
// group, which rows form the baseline, and where the rendered plot
// goes.
type Config struct {
	// Time names the timing column of the input CSV.
	Time string `yaml:"time"`

	// GroupBy names the columns that define chart groups (one bar
	// per group).
	GroupBy []string `yaml:"group_by"`

	// Baseline lists column/value equality conditions selecting
	// the baseline rows. Values are written as strings and coerced
	// to the column type.
	Baseline []BaselineCondition `yaml:"baseline"`

	// Aggregate is the reduction applied to baseline timings:
	// median (default), mean, or geomean.
	Aggregate string `yaml:"aggregate"`

	// Correction anchors the baseline rows' geometric-mean speedup
	// to 1.
	Correction bool `yaml:"correction"`

	// OutlierSigmas, when positive, drops timings that many
	// standard deviations from their group mean before
	// normalizing.
	OutlierSigmas float64 `yaml:"outlier_sigmas"`

	// Confidence is the level for error bars, default 0.95.
	Confidence float64 `yaml:"confidence"`

	Title  string `yaml:"title"`
	YLabel string `yaml:"y_label"`

	// Color is a palette name (see vizchart.Palette) or a
	// "#rrggbb" literal for the bars.
	Color string `yaml:"color"`

	// LabelFormat is the fmt verb for bar value labels, default
	// "%.2fx".
	LabelFormat string `yaml:"label_format"`

	// MaxLabelLen caps group tick labels, default 20 runes.
	MaxLabelLen int `yaml:"max_label_len"`

	Output OutputConfig `yaml:"output"`
}

// A BaselineCondition matches rows whose column equals the value.
type BaselineCondition struct {
	Col string `yaml:"col"`
	Val string `yaml:"val"`
}

// OutputConfig mirrors vizchart.SaveOptions in YAML form, with sizes
// in inches.
type OutputConfig struct {
	Dir     string   `yaml:"dir"`
	Name    string   `yaml:"name"`
	Date    string   `yaml:"date"`
	DateDir bool     `yaml:"date_dir"`
	Formats []string `yaml:"formats"`
	DPI     int      `yaml:"dpi"`
	Width   float64  `yaml:"width"`
	Height  float64  `yaml:"height"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := new(Config)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	cfg.applyDefaults()
	if cfg.Time == "" {
		return nil, fmt.Errorf("%s: no timing column", path)
	}
	if len(cfg.GroupBy) == 0 {
		return nil, fmt.Errorf("%s: no group columns", path)
	}
	if len(cfg.Baseline) == 0 {
		return nil, fmt.Errorf("%s: no baseline conditions", path)
	}
	if _, err := cfg.aggregator(); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Aggregate == "" {
		c.Aggregate = "median"
	}
	if c.Confidence == 0 {
		c.Confidence = 0.95
	}
	if c.LabelFormat == "" {
		c.LabelFormat = "%.2fx"
	}
	if c.MaxLabelLen == 0 {
		c.MaxLabelLen = 20
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
	if c.Output.Name == "" {
		if c.Output.Date != "" {
			c.Output.Name = "speedup_%[1]s.%[2]s"
		} else {
			c.Output.Name = "speedup.%[2]s"
		}
	}
}

func (c *Config) aggregator() (func([]float64) float64, error) {
	switch c.Aggregate {
	case "median":
		return vizmath.Median, nil
	case "mean":
		return vizmath.Mean, nil
	case "geomean":
		return vizmath.GeoMean, nil
	}
	return nil, fmt.Errorf("unknown aggregate %q", c.Aggregate)
}
