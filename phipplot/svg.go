// Copyright 2025 The derisi-rotation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phipplot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/ajstarks/svgo"
)

// fontSize is the base font size in pixels.
const fontSize float64 = 12

const (
	titleHeight = 28
	outerMargin = 10
	yLabelWidth = 18 // rotated axis title
	yTickWidth  = 46
	xTickHeight = 26
	panelGap    = 28

	xTickSep = 5
	yTickSep = 5

	pointRadius   = 6
	outlierRadius = 3
)

// WriteSVG renders the figure as a width x height SVG document. The
// two panels share one enrichment scale.
func (f *PerPeptide) WriteSVG(w io.Writer, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid figure size %dx%d", width, height)
	}
	d, err := f.data()
	if err != nil {
		return err
	}

	panelW := (float64(width) - 2*outerMargin - 2*(yLabelWidth+yTickWidth) - panelGap) / 2
	panelH := float64(height) - outerMargin - titleHeight - xTickHeight
	if panelW < 50 || panelH < 50 {
		return fmt.Errorf("figure size %dx%d leaves no room for panels", width, height)
	}
	panelY := float64(titleHeight)
	stripX := float64(outerMargin + yLabelWidth + yTickWidth)
	boxX := stripX + panelW + panelGap + yLabelWidth + yTickWidth

	lo, hi := padDomain(d.min, d.max)
	ys := newYScale(lo, hi)
	ys.ranger(panelY+panelH, panelY)

	canvas := svg.New(w)
	canvas.Start(width, height, fmt.Sprintf(`font-size="%.6gpx" font-family="sans-serif"`, fontSize))
	defer canvas.End()

	canvas.Text(width/2, round(titleHeight-fontSize/2), d.title,
		`text-anchor="middle" font-weight="bold"`)

	renderPanelFrame(canvas, d, ys, stripX, panelY, panelW, panelH)
	renderStrip(canvas, d, ys, stripX, panelY, panelW)
	renderPanelFrame(canvas, d, ys, boxX, panelY, panelW, panelH)
	renderBoxes(canvas, d, ys, boxX, panelW)

	return nil
}

// groupX maps a group-unit position (group i at x=i, domain
// [-0.5, 1.5]) to a pixel position within a panel at x0.
func groupX(x0, w, gx float64) float64 {
	return x0 + (gx+0.5)/2*w
}

// renderPanelFrame draws the parts common to both panels: background,
// gridlines, zero line, axes labels and tick labels.
func renderPanelFrame(canvas *svg.SVG, d *figureData, ys *yScale, x0, y0, w, h float64) {
	canvas.Rect(round(x0), round(y0), round(x0+w)-round(x0), round(y0+h)-round(y0), "fill:#eee")

	const tickDistance = 40 // min pixels between ticks
	major, labels := ys.ticks(int(h / tickDistance))
	for i, tick := range major {
		py := round(ys.px(tick))
		canvas.Line(round(x0), py, round(x0+w), py, "stroke:#fff;stroke-width:2")
		canvas.Text(round(x0-yTickSep), py, labels[i],
			`text-anchor="end" dy=".3em" fill="#888"`)
	}

	// Zero reference line.
	zy := round(ys.px(0))
	canvas.Line(round(x0), zy, round(x0+w), zy,
		"stroke:#888;stroke-width:1;stroke-dasharray:6,4")

	// Group names along the X axis.
	for i := range d.groups {
		canvas.Text(round(groupX(x0, w, float64(i))), round(y0+h+xTickSep),
			d.groups[i].label, `text-anchor="middle" dy="1em"`)
	}

	// Rotated Y axis title.
	cx, cy := round(x0-yTickWidth-yLabelWidth/2), round(y0+h/2)
	canvas.Text(cx, cy, d.ylabel,
		fmt.Sprintf(`text-anchor="middle" dy=".3em" font-weight="bold" transform="rotate(-90 %d %d)"`, cx, cy))
}

func renderStrip(canvas *svg.SVG, d *figureData, ys *yScale, x0, y0, w float64) {
	for i := range d.groups {
		g := &d.groups[i]
		fill := cssColor(g.color)
		for j, v := range g.values {
			canvas.Circle(round(groupX(x0, w, float64(i)+g.jitter[j])), round(ys.px(v)),
				pointRadius,
				"fill:"+fill+";fill-opacity:0.6;stroke:#000;stroke-width:0.5")
		}

		// Mean bar with its value alongside.
		my := round(ys.px(g.sum.Mean))
		canvas.Line(round(groupX(x0, w, float64(i)-0.2)), my,
			round(groupX(x0, w, float64(i)+0.2)), my, "stroke:#000;stroke-width:3")
		canvas.Text(round(groupX(x0, w, float64(i)+0.25)), my,
			fmt.Sprintf("%.2f", g.sum.Mean),
			`text-anchor="start" dy=".3em" font-size="9px" font-weight="bold"`)
	}

	// Legend, top right.
	const swatch = 12
	for i := range d.groups {
		g := &d.groups[i]
		ty := round(y0 + 10 + float64(i)*(fontSize+6))
		canvas.Rect(round(x0+w-8-swatch), ty, swatch, swatch,
			"fill:"+cssColor(g.color)+";fill-opacity:0.6;stroke:#000;stroke-width:0.5")
		canvas.Text(round(x0+w-8-swatch-6), ty+swatch/2, g.legend(),
			`text-anchor="end" dy=".3em"`)
	}
}

func renderBoxes(canvas *svg.SVG, d *figureData, ys *yScale, x0, w float64) {
	for i := range d.groups {
		g := &d.groups[i]
		cx := round(groupX(x0, w, float64(i)))
		boxL := round(groupX(x0, w, float64(i)-0.25))
		boxR := round(groupX(x0, w, float64(i)+0.25))
		capL := round(groupX(x0, w, float64(i)-0.125))
		capR := round(groupX(x0, w, float64(i)+0.125))
		q1 := round(ys.px(g.box.Q1))
		q3 := round(ys.px(g.box.Q3))
		med := round(ys.px(g.box.Median))
		wLo := round(ys.px(g.box.WhiskerLow))
		wHi := round(ys.px(g.box.WhiskerHigh))

		// Whiskers and caps.
		canvas.Line(cx, q1, cx, wLo, "stroke:#000;stroke-width:1")
		canvas.Line(cx, q3, cx, wHi, "stroke:#000;stroke-width:1")
		canvas.Line(capL, wLo, capR, wLo, "stroke:#000;stroke-width:1")
		canvas.Line(capL, wHi, capR, wHi, "stroke:#000;stroke-width:1")

		// Quartile box and median.
		canvas.Rect(boxL, q3, boxR-boxL, q1-q3,
			"fill:"+cssColor(g.color)+";fill-opacity:0.6;stroke:#000;stroke-width:1")
		canvas.Line(boxL, med, boxR, med, "stroke:#000;stroke-width:2")

		for _, v := range g.box.Outliers {
			canvas.Circle(cx, round(ys.px(v)), outlierRadius,
				"fill:none;stroke:#000;stroke-width:1")
		}
	}
}

// cssColor returns the CSS fragment for color c. Alpha is handled
// separately via fill-opacity, since SVG 1.1 styles can't carry it in
// the color itself.
func cssColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
