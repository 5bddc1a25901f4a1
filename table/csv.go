// Copyright 2025 The derisi-rotation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

// ReadCSV reads a peptide enrichment matrix from r. The first header
// cell labels the peptide ID column (the label itself is ignored) and
// the remaining header cells name the sample columns. Each subsequent
// record holds one peptide ID followed by one value per sample.
//
// Empty cells and the markers "NA" and "NaN" parse as NaN; the stats
// layer drops non-finite values.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty input: missing header row")
	} else if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("header has no sample columns")
	}
	samples := header[1:]
	seen := make(map[string]bool, len(samples))
	for _, s := range samples {
		if s == "" {
			return nil, fmt.Errorf("empty sample name in header")
		}
		if seen[s] {
			return nil, fmt.Errorf("duplicate sample column %q in header", s)
		}
		seen[s] = true
	}

	var peptides []string
	cols := make([][]float64, len(samples))
	pepSeen := make(map[string]bool)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(peptides)+2, err)
		}
		line := len(peptides) + 2
		if len(rec) != len(header) {
			return nil, fmt.Errorf("row %d has %d fields; expected %d", line, len(rec), len(header))
		}
		if pepSeen[rec[0]] {
			return nil, fmt.Errorf("row %d: duplicate peptide ID %q", line, rec[0])
		}
		pepSeen[rec[0]] = true
		peptides = append(peptides, rec[0])
		for i, field := range rec[1:] {
			v, err := parseValue(field)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", line, samples[i], err)
			}
			cols[i] = append(cols[i], v)
		}
	}

	t := new(Table)
	for i, s := range samples {
		t = t.Add(s, cols[i])
	}
	return t.SetPeptides(peptides), nil
}

func parseValue(field string) (float64, error) {
	switch field {
	case "", "NA", "NaN":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(field, 64)
}

// WriteCSV writes t to w in the format read by ReadCSV. The peptide
// ID column is labeled "peptide".
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	header := append([]string{"peptide"}, t.Samples()...)
	if err := cw.Write(header); err != nil {
		return err
	}
	rec := make([]string, len(header))
	for i, pep := range t.Peptides() {
		rec[0] = pep
		for j, s := range t.Samples() {
			v := t.Column(s)[i]
			if math.IsNaN(v) {
				rec[j+1] = "NA"
			} else {
				rec[j+1] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
