// Copyright 2025 The derisi-rotation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phipstat

import (
	"github.com/aclements/go-moremath/stats"
)

// Comparison compares the enrichment of one peptide between the
// diseased and healthy sample groups.
type Comparison struct {
	Diseased, Healthy Summary

	// HasP reports whether T, DoF and P are valid. The t-test
	// requires at least two finite observations per group and
	// nonzero variance in at least one group.
	HasP bool

	// T, DoF and P are the statistic, degrees of freedom and
	// two-sided p-value of a pooled-variance two-sample t-test.
	T, DoF, P float64
}

// Compare summarizes the diseased and healthy values of one peptide
// and runs a two-sided pooled-variance two-sample t-test between
// them. The inputs are not modified.
func Compare(diseased, healthy []float64) Comparison {
	c := Comparison{
		Diseased: Summarize(diseased),
		Healthy:  Summarize(healthy),
	}
	if c.Diseased.N < 2 || c.Healthy.N < 2 {
		// A single observation has zero variance rather than
		// undefined variance, so TwoSampleTTest would happily
		// produce a p-value for it.
		return c
	}
	res, err := stats.TwoSampleTTest(
		stats.Sample{Xs: Finite(diseased)},
		stats.Sample{Xs: Finite(healthy)},
		stats.LocationDiffers)
	if err != nil {
		// ErrSampleSize or ErrZeroVariance; the comparison
		// stands without a p-value.
		return c
	}
	c.HasP = true
	c.T, c.DoF, c.P = res.T, res.DoF, res.P
	return c
}
