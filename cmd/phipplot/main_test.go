// Copyright 2025 The derisi-rotation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sydneysbec/derisi-rotation/phipstat"
	"github.com/sydneysbec/derisi-rotation/table"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadGroups(t *testing.T) {
	path := writeTemp(t, "groups.yaml", "diseased: [d1, d2]\nhealthy:\n  - h1\n")
	diseased, healthy, err := loadGroups(path)
	require.NoError(t, err)
	assert.Equal(t, "Diseased", diseased.Label)
	assert.Equal(t, []string{"d1", "d2"}, diseased.Samples)
	assert.Equal(t, []string{"h1"}, healthy.Samples)
}

func TestLoadGroupsErrors(t *testing.T) {
	_, _, err := loadGroups(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeTemp(t, "groups.yaml", "diseased: [d1]\n")
	_, _, err = loadGroups(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "healthy")

	path = writeTemp(t, "groups.yaml", "diseased: [d1]\nhealthy: [h1]\ncontrol: [c1]\n")
	_, _, err = loadGroups(path)
	assert.Error(t, err, "unknown keys should be rejected")
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "pepA_12", sanitizeFilename("pepA_12"))
	assert.Equal(t, "EBV_gp350_aa_1-60_", sanitizeFilename("EBV gp350 aa 1-60|"))
	assert.Equal(t, "peptide", sanitizeFilename(""))
	long := sanitizeFilename(strings.Repeat("x", 500))
	assert.LessOrEqual(t, len(long), 120)
}

func TestSummaryTable(t *testing.T) {
	cmps := []phipstat.Comparison{
		phipstat.Compare([]float64{4, 5, 6}, []float64{0, 0.5, 1}),
		phipstat.Compare([]float64{1}, []float64{2, 3}),
	}
	tbl := summaryTable([]string{"pepA", "pepB"}, cmps)

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf, tbl))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "peptide,diseased_n,diseased_mean,diseased_sd,healthy_n,healthy_mean,healthy_sd,t_stat,p_value", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "pepA,3,5,"))
	// No t-test for the single-observation group.
	assert.True(t, strings.HasSuffix(lines[2], "NA,NA"))
}
