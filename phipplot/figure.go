// Copyright 2025 The derisi-rotation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package phipplot renders per-peptide comparison figures for PhIP-seq
// enrichment tables.
//
// A PerPeptide figure compares the enrichment of a single peptide
// between the diseased and healthy sample groups in two side-by-side
// panels: a jittered strip plot with per-group mean bars, and a
// boxplot. Both panels share one linear enrichment scale. The figure
// can be rendered to SVG (the native backend) or to PNG via
// gonum/plot.
package phipplot

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/sydneysbec/derisi-rotation/phipstat"
	"github.com/sydneysbec/derisi-rotation/table"
)

// Warning is a logger for reporting conditions that don't prevent the
// production of a figure, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[phipplot] ", log.Lshortfile)

// DefaultYLabel is the Y axis label used when PerPeptide.YLabel is
// empty. Enrichment tables in this workflow hold log2 fold changes
// over beads-only controls.
const DefaultYLabel = "Log2 FC (over beads)"

// maxTitleRunes bounds the default title taken from the peptide ID;
// library peptide IDs embed full annotation strings and can run to
// hundreds of characters.
const maxTitleRunes = 80

// Group colors, diseased first.
var (
	DiseasedColor = color.RGBA{0xd6, 0x27, 0x28, 0xff}
	HealthyColor  = color.RGBA{0x1f, 0x77, 0xb4, 0xff}
)

// A Group names a set of sample columns to be compared as one unit.
type Group struct {
	// Label is the display name of the group. It defaults to
	// "Diseased" or "Healthy" according to the group's position
	// in the figure.
	Label string

	// Samples are the table columns belonging to the group. A
	// group with no samples is a configuration error.
	Samples []string
}

// A PerPeptide describes a two-panel comparison figure for one
// peptide row of an enrichment table.
type PerPeptide struct {
	Table   *table.Table
	Peptide string

	Diseased, Healthy Group

	// Title overrides the figure title. If empty, the title is
	// the peptide ID truncated to 80 runes.
	Title string

	// YLabel overrides the Y axis label. If empty, DefaultYLabel
	// is used.
	YLabel string

	// Seed seeds the jitter of the strip plot, so renders are
	// reproducible.
	Seed int64

	// HideTTest suppresses the t-test annotation in the title.
	HideTTest bool
}

type groupData struct {
	label  string
	color  color.RGBA
	values []float64 // finite values, in sample order
	jitter []float64 // one horizontal offset per value, group units
	sum    phipstat.Summary
	box    phipstat.BoxStats
}

type figureData struct {
	groups   [2]groupData
	cmp      phipstat.Comparison
	title    string
	ylabel   string
	min, max float64 // data bounds, zero included
}

// Comparison validates the figure and returns the per-group summaries
// and t-test without rendering anything.
func (f *PerPeptide) Comparison() (phipstat.Comparison, error) {
	d, err := f.data()
	if err != nil {
		return phipstat.Comparison{}, err
	}
	return d.cmp, nil
}

func (f *PerPeptide) data() (*figureData, error) {
	if f.Table == nil {
		return nil, fmt.Errorf("no enrichment table")
	}

	defs := [2]struct {
		g     Group
		label string
		color color.RGBA
	}{
		{f.Diseased, "Diseased", DiseasedColor},
		{f.Healthy, "Healthy", HealthyColor},
	}

	d := &figureData{min: math.NaN(), max: math.NaN()}
	var raw [2][]float64
	for i, def := range defs {
		label := def.g.Label
		if label == "" {
			label = def.label
		}
		if len(def.g.Samples) == 0 {
			return nil, fmt.Errorf("group %q has no sample columns", label)
		}
		vals, err := f.Table.Row(f.Peptide, def.g.Samples)
		if err != nil {
			return nil, err
		}
		raw[i] = vals

		finite := phipstat.Finite(vals)
		if len(finite) < len(vals) {
			Warning.Printf("peptide %q: dropped %d non-finite value(s) from group %s",
				f.Peptide, len(vals)-len(finite), label)
		}
		if len(finite) == 0 {
			return nil, fmt.Errorf("group %q has no finite values for peptide %q", label, f.Peptide)
		}

		d.groups[i] = groupData{
			label:  label,
			color:  def.color,
			values: finite,
			sum:    phipstat.Summarize(finite),
			box:    phipstat.Box(finite),
		}
		for _, v := range finite {
			if v < d.min || math.IsNaN(d.min) {
				d.min = v
			}
			if v > d.max || math.IsNaN(d.max) {
				d.max = v
			}
		}
	}

	// Keep the zero reference line inside the plot area.
	d.min = math.Min(d.min, 0)
	d.max = math.Max(d.max, 0)

	rng := rand.New(rand.NewSource(f.Seed))
	for i := range d.groups {
		g := &d.groups[i]
		g.jitter = make([]float64, len(g.values))
		for j := range g.jitter {
			g.jitter[j] = rng.NormFloat64() * 0.04
		}
	}

	d.cmp = phipstat.Compare(raw[0], raw[1])

	d.title = f.Title
	if d.title == "" {
		d.title = truncate(f.Peptide, maxTitleRunes)
	}
	if !f.HideTTest && d.cmp.HasP {
		d.title += fmt.Sprintf(" (t-test P = %.3g)", d.cmp.P)
	}
	d.ylabel = f.YLabel
	if d.ylabel == "" {
		d.ylabel = DefaultYLabel
	}
	return d, nil
}

func truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n])
}

func (g *groupData) legend() string {
	return fmt.Sprintf("%s (n=%d)", g.label, g.sum.N)
}
