// Copyright 2025 The derisi-rotation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phipplot

import (
	"fmt"

	"github.com/aclements/go-moremath/scale"
)

// yScale maps enrichment values to vertical pixel positions. Both
// panels of a figure share one yScale so their axes line up.
type yScale struct {
	s      scale.Linear
	lo, hi float64
}

func newYScale(min, max float64) *yScale {
	if min == max {
		// Degenerate domain; give it some width so Map doesn't
		// divide by zero.
		min, max = min-1, max+1
	}
	return &yScale{s: scale.Linear{Min: min, Max: max}}
}

// ranger sets the pixel range. lo is the pixel position of the domain
// minimum; for screen coordinates it is the larger value.
func (y *yScale) ranger(lo, hi float64) {
	y.lo, y.hi = lo, hi
}

// px maps an enrichment value to a pixel position.
func (y *yScale) px(v float64) float64 {
	return y.lo + y.s.Map(v)*(y.hi-y.lo)
}

// ticks returns up to n major tick positions in the domain and their
// labels.
func (y *yScale) ticks(n int) (major []float64, labels []string) {
	if n < 1 {
		n = 1
	}
	major, _ = y.s.Ticks(scale.TickOptions{Max: n})
	labels = make([]string, len(major))
	for i, x := range major {
		labels[i] = fmt.Sprintf("%g", x)
	}
	return
}

// padDomain expands a data domain by 5% on each side so extreme
// points and their gridline ticks stay clear of the panel edges.
func padDomain(min, max float64) (float64, float64) {
	pad := 0.05 * (max - min)
	return min - pad, max + pad
}
