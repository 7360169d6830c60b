// Copyright 2024 The Benchviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vizmath provides small statistical helpers for preparing
// measurement data for visualization: outlier rejection, confidence
// intervals for error bars, and the aggregators used to summarize
// timing distributions.
//
// These helpers favor visualization over statistical rigor. For
// example, the sigma-based outlier filter is a quick way to clean up
// a plot, not a sound basis for inference.
package vizmath

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// FilterOutliers returns the values of xs that lie strictly within
// sigmas standard deviations of the mean of xs. The input is not
// modified.
//
// If the standard deviation of xs is zero or undefined (fewer than
// two values, or all values equal), no value can be an outlier and
// FilterOutliers returns a copy of xs.
func FilterOutliers(xs []float64, sigmas float64) []float64 {
	s := stats.Sample{Xs: xs}
	mean, sd := s.Mean(), s.StdDev()
	if sd == 0 || math.IsNaN(sd) {
		return append([]float64(nil), xs...)
	}
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if math.Abs(x-mean)/sd < sigmas {
			out = append(out, x)
		}
	}
	return out
}

// CI returns the half-widths of the Student-t confidence interval
// around the sample mean of xs, at the given confidence level in
// (0, 1). upper is the distance from the mean to the upper bound and
// lower the distance to the lower bound. These are the sizes needed
// to draw error bars around a bar of height center, or to position
// labels above them.
func CI(xs []float64, confidence float64) (upper, lower, center float64) {
	s := stats.Sample{Xs: xs}
	mean, lo, hi := s.MeanCI(confidence)
	return hi - mean, mean - lo, mean
}

// UpperCI returns only the upper half-width of the confidence
// interval around the mean of xs. See CI.
func UpperCI(xs []float64, confidence float64) float64 {
	upper, _, _ := CI(xs, confidence)
	return upper
}

// Median returns the median of xs, or NaN if xs is empty.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return stats.Sample{Xs: xs}.Quantile(0.5)
}

// Mean returns the arithmetic mean of xs, or NaN if xs is empty.
func Mean(xs []float64) float64 {
	return stats.Mean(xs)
}

// GeoMean returns the geometric mean of xs. It returns NaN if xs is
// empty or contains a non-positive value.
func GeoMean(xs []float64) float64 {
	return stats.GeoMean(xs)
}
