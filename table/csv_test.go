// Copyright 2025 The derisi-rotation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"
)

const sampleCSV = `peptide,d1,d2,h1
pepA,1.5,2.5,0.5
pepB,-0.25,NA,3
`

func TestReadCSV(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if v, w := tab.Samples(), []string{"d1", "d2", "h1"}; !reflect.DeepEqual(v, w) {
		t.Fatalf("Samples() should be %v; got %v", w, v)
	}
	if v, w := tab.Peptides(), []string{"pepA", "pepB"}; !reflect.DeepEqual(v, w) {
		t.Fatalf("Peptides() should be %v; got %v", w, v)
	}
	if v := tab.MustColumn("d1")[1]; v != -0.25 {
		t.Fatalf("d1[1] should be -0.25; got %v", v)
	}
	if v := tab.MustColumn("d2")[1]; !math.IsNaN(v) {
		t.Fatalf("NA should parse as NaN; got %v", v)
	}
}

func TestReadCSVErrors(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"empty", "", "missing header"},
		{"noSamples", "peptide\n", "no sample columns"},
		{"dupSample", "peptide,s1,s1\n", `duplicate sample column "s1"`},
		{"dupPeptide", "peptide,s1\np,1\np,2\n", `duplicate peptide ID "p"`},
		{"badFloat", "peptide,s1\np,zap\n", `column "s1"`},
	}
	for _, c := range cases {
		_, err := ReadCSV(strings.NewReader(c.in))
		if err == nil || !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: error should contain %q; got %v", c.name, c.want, err)
		}
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, tab); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	tab2, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("re-reading written CSV failed: %v", err)
	}
	if !reflect.DeepEqual(tab.Peptides(), tab2.Peptides()) || !reflect.DeepEqual(tab.Samples(), tab2.Samples()) {
		t.Fatalf("round trip changed table shape")
	}
	if v := tab2.MustColumn("h1")[1]; v != 3 {
		t.Fatalf("h1[1] should be 3 after round trip; got %v", v)
	}
}
