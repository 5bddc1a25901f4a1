// Copyright 2025 The derisi-rotation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package phipstat computes the per-group summary statistics behind
// the comparison figures: sample means and standard deviations,
// boxplot geometry, and the two-sample t-test between the diseased
// and healthy groups.
package phipstat

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Summary summarizes the enrichment values of one sample group.
// Non-finite values are excluded; N counts the values that remain.
type Summary struct {
	N    int
	Mean float64

	// StdDev is the sample (Bessel-corrected) standard deviation.
	// It is NaN when N < 2.
	StdDev float64

	Min, Max       float64
	Q1, Median, Q3 float64
}

// Summarize computes the Summary of xs. xs is not modified.
func Summarize(xs []float64) Summary {
	xs = Finite(xs)
	s := Summary{
		N:      len(xs),
		Mean:   math.NaN(),
		StdDev: math.NaN(),
		Min:    math.NaN(),
		Max:    math.NaN(),
		Q1:     math.NaN(),
		Median: math.NaN(),
		Q3:     math.NaN(),
	}
	if len(xs) == 0 {
		return s
	}
	samp := (&stats.Sample{Xs: append([]float64(nil), xs...)}).Sort()
	s.Mean = samp.Mean()
	if s.N >= 2 {
		s.StdDev = samp.StdDev()
	}
	s.Min, s.Max = samp.Bounds()
	s.Q1 = quantile(samp.Xs, 0.25)
	s.Median = quantile(samp.Xs, 0.5)
	s.Q3 = quantile(samp.Xs, 0.75)
	return s
}

// quantile returns the pth quantile of sorted by linear interpolation
// between closest order statistics. This is the rule the charting
// ecosystem (and hence the boxplot geometry) uses, as opposed to the
// R8 interpolation of stats.Sample.Quantile.
func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	h := p * float64(len(sorted)-1)
	i := int(h)
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (h-float64(i))*(sorted[i+1]-sorted[i])
}

// BoxStats is the geometry of a Tukey boxplot: the quartile box, the
// whiskers at the most extreme data points within 1.5 IQR of the box,
// and the outliers beyond the whiskers.
type BoxStats struct {
	Q1, Median, Q3 float64

	// WhiskerLow and WhiskerHigh are the whisker positions. When
	// no point lies beyond the box, they equal Q1 and Q3.
	WhiskerLow, WhiskerHigh float64

	Outliers []float64
}

// Box computes the BoxStats of xs. Non-finite values are excluded. xs
// is not modified.
func Box(xs []float64) BoxStats {
	xs = Finite(xs)
	b := BoxStats{
		Q1:          math.NaN(),
		Median:      math.NaN(),
		Q3:          math.NaN(),
		WhiskerLow:  math.NaN(),
		WhiskerHigh: math.NaN(),
	}
	if len(xs) == 0 {
		return b
	}
	samp := (&stats.Sample{Xs: append([]float64(nil), xs...)}).Sort()
	b.Q1 = quantile(samp.Xs, 0.25)
	b.Median = quantile(samp.Xs, 0.5)
	b.Q3 = quantile(samp.Xs, 0.75)

	reach := 1.5 * (b.Q3 - b.Q1)
	lo, hi := b.Q1-reach, b.Q3+reach
	b.WhiskerLow, b.WhiskerHigh = b.Q1, b.Q3
	for _, x := range samp.Xs {
		if x < lo || x > hi {
			b.Outliers = append(b.Outliers, x)
			continue
		}
		if x < b.WhiskerLow {
			b.WhiskerLow = x
		}
		if x > b.WhiskerHigh {
			b.WhiskerHigh = x
		}
	}
	return b
}

// Finite returns the values of xs that are neither NaN nor infinite.
// If all values are finite it returns xs itself.
func Finite(xs []float64) []float64 {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			out := make([]float64, i, len(xs))
			copy(out, xs[:i])
			for _, x := range xs[i+1:] {
				if !math.IsNaN(x) && !math.IsInf(x, 0) {
					out = append(out, x)
				}
			}
			return out
		}
	}
	return xs
}
