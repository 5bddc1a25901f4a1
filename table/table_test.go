// Copyright 2025 The derisi-rotation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"reflect"
	"strings"
	"testing"
)

func TestEmptyTable(t *testing.T) {
	var tab Table
	tab.Add("x", []float64{})
	tab.Add("x", []float64{1, 2, 3})
	if v := tab.Len(); v != 0 {
		t.Fatalf("Table{}.Len() should be 0; got %v", v)
	}
	if v := tab.Samples(); v != nil {
		t.Fatalf("Table{}.Samples() should be nil; got %v", v)
	}
	if v := tab.Column("x"); v != nil {
		t.Fatalf("Table{}.Column(\"x\") should be nil; got %v", v)
	}
	if _, err := tab.Row("p1", []string{"x"}); err == nil {
		t.Fatalf("Table{}.Row should fail on an empty table")
	}
}

func TestAdd(t *testing.T) {
	tab := new(Table).Add("s1", []float64{1, 2}).Add("s2", []float64{3, 4})
	if v, w := tab.Samples(), []string{"s1", "s2"}; !reflect.DeepEqual(v, w) {
		t.Fatalf("Samples() should be %v; got %v", w, v)
	}
	if v := tab.Len(); v != 2 {
		t.Fatalf("Len() should be 2; got %v", v)
	}

	// Replacing a column must not affect the original table.
	tab2 := tab.Add("s1", []float64{9, 9})
	if v := tab.MustColumn("s1")[0]; v != 1 {
		t.Fatalf("original table modified by Add; s1[0] = %v", v)
	}
	if v := tab2.MustColumn("s1")[0]; v != 9 {
		t.Fatalf("replaced column not visible; s1[0] = %v", v)
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("Add with mismatched length should panic")
			}
		}()
		tab.Add("s3", []float64{1})
	}()
}

func TestSetPeptides(t *testing.T) {
	tab := new(Table).Add("s1", []float64{1, 2}).SetPeptides([]string{"p1", "p2"})
	if !tab.HasPeptide("p1") || tab.HasPeptide("p3") {
		t.Fatalf("HasPeptide is wrong: p1=%v p3=%v", tab.HasPeptide("p1"), tab.HasPeptide("p3"))
	}
	if v := tab.PeptideIndex("p2"); v != 1 {
		t.Fatalf("PeptideIndex(\"p2\") should be 1; got %v", v)
	}
	if v := tab.PeptideIndex("p3"); v != -1 {
		t.Fatalf("PeptideIndex(\"p3\") should be -1; got %v", v)
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("SetPeptides with duplicate IDs should panic")
			}
		}()
		new(Table).Add("s1", []float64{1, 2}).SetPeptides([]string{"p", "p"})
	}()
}

func TestRow(t *testing.T) {
	tab := new(Table).
		Add("d1", []float64{1, 10}).
		Add("d2", []float64{2, 20}).
		Add("h1", []float64{3, 30}).
		SetPeptides([]string{"p1", "p2"})

	got, err := tab.Row("p2", []string{"d1", "h1"})
	if err != nil {
		t.Fatalf("Row failed: %v", err)
	}
	if w := []float64{10, 30}; !reflect.DeepEqual(got, w) {
		t.Fatalf("Row should be %v; got %v", w, got)
	}

	if _, err := tab.Row("nope", []string{"d1"}); err == nil || !strings.Contains(err.Error(), "nope") {
		t.Fatalf("missing peptide error should name the peptide; got %v", err)
	}
	_, err = tab.Row("p1", []string{"d1", "x1", "x2"})
	if err == nil || !strings.Contains(err.Error(), "x1, x2") {
		t.Fatalf("missing column error should name the columns; got %v", err)
	}
}
