// Copyright 2025 The derisi-rotation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phipplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadDomain(t *testing.T) {
	lo, hi := padDomain(-1, 3)
	assert.InDelta(t, -1.2, lo, 1e-12)
	assert.InDelta(t, 3.2, hi, 1e-12)
}

func TestYScalePx(t *testing.T) {
	ys := newYScale(0, 10)
	ys.ranger(100, 0)
	// Domain endpoints land exactly on the pixel range.
	assert.InDelta(t, 100.0, ys.px(0), 1e-9)
	assert.InDelta(t, 0.0, ys.px(10), 1e-9)
	assert.InDelta(t, 50.0, ys.px(5), 1e-9)
}

func TestYScaleTicks(t *testing.T) {
	ys := newYScale(0, 10)
	major, labels := ys.ticks(6)
	assert.NotEmpty(t, major)
	assert.LessOrEqual(t, len(major), 6)
	assert.Len(t, labels, len(major))
	for i, x := range major {
		assert.GreaterOrEqual(t, x, 0.0)
		assert.LessOrEqual(t, x, 10.0)
		assert.NotEmpty(t, labels[i])
	}
}
