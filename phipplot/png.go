// Copyright 2025 The derisi-rotation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phipplot

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// WritePNG renders the figure as a PNG through gonum/plot. width and
// height are in points. The geometry matches the SVG backend; the
// styling is gonum's.
func (f *PerPeptide) WritePNG(w io.Writer, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid figure size %dx%d", width, height)
	}
	d, err := f.data()
	if err != nil {
		return err
	}

	strip, err := stripPlot(d)
	if err != nil {
		return err
	}
	box, err := boxPlot(d)
	if err != nil {
		return err
	}

	img := vgimg.New(vg.Points(float64(width)), vg.Points(float64(height)))
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 1, Cols: 2, PadX: vg.Points(10)}
	canvases := plot.Align([][]*plot.Plot{{strip, box}}, tiles, dc)
	strip.Draw(canvases[0][0])
	box.Draw(canvases[0][1])

	png := vgimg.PngCanvas{Canvas: img}
	_, err = png.WriteTo(w)
	return err
}

func stripPlot(d *figureData) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = d.title
	p.Y.Label.Text = d.ylabel

	if err := addZeroLine(p); err != nil {
		return nil, err
	}
	for i := range d.groups {
		g := &d.groups[i]
		xys := make(plotter.XYs, len(g.values))
		for j, v := range g.values {
			xys[j].X = float64(i) + g.jitter[j]
			xys[j].Y = v
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle = draw.GlyphStyle{
			Color:  translucent(g.color),
			Radius: vg.Points(4),
			Shape:  draw.CircleGlyph{},
		}
		p.Add(sc)
		p.Legend.Add(g.legend(), sc)

		mean, err := plotter.NewLine(plotter.XYs{
			{X: float64(i) - 0.2, Y: g.sum.Mean},
			{X: float64(i) + 0.2, Y: g.sum.Mean},
		})
		if err != nil {
			return nil, err
		}
		mean.LineStyle.Width = vg.Points(2)
		mean.LineStyle.Color = color.Black
		p.Add(mean)
	}
	p.Legend.Top = true
	p.NominalX(d.groups[0].label, d.groups[1].label)
	p.X.Min, p.X.Max = -0.5, 1.5
	p.Y.Min, p.Y.Max = d.min, d.max
	return p, nil
}

func boxPlot(d *figureData) (*plot.Plot, error) {
	p := plot.New()
	p.Y.Label.Text = d.ylabel

	if err := addZeroLine(p); err != nil {
		return nil, err
	}
	for i := range d.groups {
		g := &d.groups[i]
		b, err := plotter.NewBoxPlot(vg.Points(30), float64(i), plotter.Values(g.values))
		if err != nil {
			return nil, err
		}
		b.FillColor = translucent(g.color)
		p.Add(b)
	}
	p.NominalX(d.groups[0].label, d.groups[1].label)
	p.Y.Min, p.Y.Max = d.min, d.max
	return p, nil
}

func addZeroLine(p *plot.Plot) error {
	zero, err := plotter.NewLine(plotter.XYs{{X: -0.5, Y: 0}, {X: 1.5, Y: 0}})
	if err != nil {
		return err
	}
	zero.LineStyle.Color = color.Gray{Y: 0x88}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(zero)
	return nil
}

// translucent mimics the 0.6 alpha the SVG backend applies to group
// fills.
func translucent(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0x99}
}
