// Copyright 2024 The Benchviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// readTable reads one or more CSV files with identical header rows
// into a single go-gg table, concatenating rows in argument order.
// A column whose every value parses as a float becomes []float64;
// everything else stays []string.
func readTable(paths ...string) (*table.Table, error) {
	var header []string
	var cells [][]string

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		recs, err := csv.NewReader(f).ReadAll()
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %v", path, err)
		}
		if len(recs) == 0 {
			return nil, fmt.Errorf("%s: no header row", path)
		}
		if header == nil {
			header = recs[0]
			cells = make([][]string, len(header))
		} else if strings.Join(recs[0], ",") != strings.Join(header, ",") {
			return nil, fmt.Errorf("%s: header %v does not match %v", path, recs[0], header)
		}
		for _, rec := range recs[1:] {
			for i, v := range rec {
				cells[i] = append(cells[i], v)
			}
		}
	}
	if header == nil {
		return nil, fmt.Errorf("no input files")
	}

	b := new(table.Builder)
	for i, name := range header {
		b.Add(name, column(cells[i]))
	}
	return b.Done(), nil
}

func column(vals []string) table.Slice {
	xs := make([]float64, len(vals))
	for i, v := range vals {
		x, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return vals
		}
		xs[i] = x
	}
	return xs
}
