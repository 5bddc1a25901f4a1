// Copyright 2025 The derisi-rotation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table implements the peptide enrichment matrix used
// throughout this repository.
//
// A Table is an ordered relation of peptide rows and sample columns.
// Every column holds one enrichment value per peptide (log2 fold
// change over beads-only controls in the standard PhIP-seq pipeline),
// so columns are homogeneously []float64 and all columns have the
// same number of rows.
//
// A Table's structure is immutable. To construct a Table, start with
// an empty table, add columns to it using Add, and bind the peptide
// row index with SetPeptides.
package table

import (
	"fmt"
	"strconv"
	"strings"
)

// A Table is an ordered two dimensional relation of peptides by
// samples. It consists of a set of named sample columns, where each
// column is a sequence of enrichment values, and an optional peptide
// index naming the rows.
//
// The zero value of Table is an empty table with no rows and no
// columns.
type Table struct {
	cols     map[string][]float64
	colNames []string

	peptides []string
	rowIndex map[string]int

	len int
}

// Add returns a new Table with a new sample column bound to data. If
// Table t already has a column with the same name, it is first
// removed. data must have the same length as any existing columns or
// Add will panic.
//
// The caller must not modify data after this point.
func (t *Table) Add(sample string, data []float64) *Table {
	nt := &Table{
		cols:     make(map[string][]float64),
		colNames: []string{},
		peptides: t.peptides,
		rowIndex: t.rowIndex,
		len:      t.len,
	}
	for _, name2 := range t.colNames {
		if sample != name2 {
			nt.cols[name2] = t.cols[name2]
			nt.colNames = append(nt.colNames, name2)
		}
	}
	if len(nt.cols) == 0 && nt.peptides == nil {
		nt.cols[sample] = data
		nt.colNames = append(nt.colNames, sample)
		nt.len = len(data)
	} else if nt.len != len(data) {
		panic("cannot add column " + sample + " with " + strconv.Itoa(len(data)) + " elements to table with " + strconv.Itoa(nt.len) + " rows")
	} else {
		nt.cols[sample] = data
		nt.colNames = append(nt.colNames, sample)
	}
	return nt
}

// SetPeptides returns a new Table whose rows are named by ids, in
// order. ids must have the same length as the existing columns and
// must not contain duplicates, or SetPeptides will panic.
//
// The caller must not modify ids after this point.
func (t *Table) SetPeptides(ids []string) *Table {
	if len(t.colNames) != 0 && len(ids) != t.len {
		panic("cannot index table of " + strconv.Itoa(t.len) + " rows with " + strconv.Itoa(len(ids)) + " peptide IDs")
	}
	rowIndex := make(map[string]int, len(ids))
	for i, id := range ids {
		if _, ok := rowIndex[id]; ok {
			panic("duplicate peptide ID: " + id)
		}
		rowIndex[id] = i
	}
	nt := &Table{
		cols:     t.cols,
		colNames: t.colNames,
		peptides: ids,
		rowIndex: rowIndex,
		len:      len(ids),
	}
	if nt.cols == nil {
		nt.cols = make(map[string][]float64)
		nt.colNames = []string{}
	}
	return nt
}

// Len returns the number of peptide rows in Table t.
func (t *Table) Len() int {
	return t.len
}

// Samples returns the names of the sample columns in Table t, or nil
// if this Table has no columns.
func (t *Table) Samples() []string {
	return t.colNames
}

// Peptides returns the peptide IDs naming the rows of Table t, in row
// order, or nil if no index has been set.
func (t *Table) Peptides() []string {
	return t.peptides
}

// Column returns the slice of enrichment values in sample column
// name, or nil if there is no such column.
func (t *Table) Column(name string) []float64 {
	return t.cols[name]
}

// MustColumn is like Column, but panics if there is no such column.
func (t *Table) MustColumn(name string) []float64 {
	if c := t.Column(name); c != nil {
		return c
	}
	panic("unknown sample column: " + name)
}

// HasPeptide reports whether peptide names a row of Table t.
func (t *Table) HasPeptide(peptide string) bool {
	_, ok := t.rowIndex[peptide]
	return ok
}

// PeptideIndex returns the row position of peptide, or -1 if there is
// no such row.
func (t *Table) PeptideIndex(peptide string) int {
	if i, ok := t.rowIndex[peptide]; ok {
		return i
	}
	return -1
}

// Row returns the enrichment values of peptide in each of the named
// sample columns, in order. Unlike the panicking accessors, Row
// returns an error naming the missing peptide or columns, since both
// typically flow in from user input rather than program structure.
func (t *Table) Row(peptide string, samples []string) ([]float64, error) {
	i, ok := t.rowIndex[peptide]
	if !ok {
		return nil, fmt.Errorf("peptide %q not found in table", peptide)
	}
	var missing []string
	for _, s := range samples {
		if _, ok := t.cols[s]; !ok {
			missing = append(missing, s)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("sample column(s) not found in table: %s", strings.Join(missing, ", "))
	}
	vals := make([]float64, len(samples))
	for j, s := range samples {
		vals[j] = t.cols[s][i]
	}
	return vals, nil
}
