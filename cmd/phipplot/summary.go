// Copyright 2025 The derisi-rotation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sydneysbec/derisi-rotation/phipplot"
	"github.com/sydneysbec/derisi-rotation/phipstat"
	"github.com/sydneysbec/derisi-rotation/table"
)

var (
	summaryOut string
	summaryAll bool
)

var summaryCmd = &cobra.Command{
	Use:   "summary [flags] PEPTIDE...",
	Short: "Export per-group summary statistics as CSV",
	Long: `Compute per-group n, mean and standard deviation plus the two-sample
t-test for the named peptides and write them as a CSV table. Cells
that cannot be computed (for example the t-test of a single
observation) are written as NA.`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryOut, "out", "", "output file (default stdout)")
	summaryCmd.Flags().BoolVar(&summaryAll, "all", false, "summarize every peptide in the table")
}

func runSummary(cmd *cobra.Command, args []string) error {
	tab, diseased, healthy, err := loadInputs()
	if err != nil {
		return err
	}

	peptides := args
	if summaryAll {
		if len(args) > 0 {
			return fmt.Errorf("--all and explicit peptides are mutually exclusive")
		}
		peptides = tab.Peptides()
	}
	if len(peptides) == 0 {
		return fmt.Errorf("no peptides named (pass peptide IDs or --all)")
	}
	seen := make(map[string]bool, len(peptides))
	for _, pep := range peptides {
		if seen[pep] {
			return fmt.Errorf("peptide %q named more than once", pep)
		}
		seen[pep] = true
	}

	cmps := make([]phipstat.Comparison, len(peptides))
	for i, pep := range peptides {
		f := &phipplot.PerPeptide{
			Table:    tab,
			Peptide:  pep,
			Diseased: diseased,
			Healthy:  healthy,
		}
		cmps[i], err = f.Comparison()
		if err != nil {
			return err
		}
	}

	out := io.Writer(os.Stdout)
	if summaryOut != "" {
		file, err := os.Create(summaryOut)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}
	if err := table.WriteCSV(out, summaryTable(peptides, cmps)); err != nil {
		return err
	}
	if summaryOut != "" {
		logger.Info("wrote summary",
			zap.String("path", summaryOut),
			zap.Int("peptides", len(peptides)))
	}
	return nil
}

// summaryTable lays the comparisons out as a peptide-indexed table so
// the CSV writer can emit them. The t statistic and p-value are NaN
// (written as NA) where the t-test did not apply.
func summaryTable(peptides []string, cmps []phipstat.Comparison) *table.Table {
	col := func(get func(phipstat.Comparison) float64) []float64 {
		vals := make([]float64, len(cmps))
		for i, c := range cmps {
			vals[i] = get(c)
		}
		return vals
	}
	return new(table.Table).
		Add("diseased_n", col(func(c phipstat.Comparison) float64 { return float64(c.Diseased.N) })).
		Add("diseased_mean", col(func(c phipstat.Comparison) float64 { return c.Diseased.Mean })).
		Add("diseased_sd", col(func(c phipstat.Comparison) float64 { return c.Diseased.StdDev })).
		Add("healthy_n", col(func(c phipstat.Comparison) float64 { return float64(c.Healthy.N) })).
		Add("healthy_mean", col(func(c phipstat.Comparison) float64 { return c.Healthy.Mean })).
		Add("healthy_sd", col(func(c phipstat.Comparison) float64 { return c.Healthy.StdDev })).
		Add("t_stat", col(func(c phipstat.Comparison) float64 {
			if !c.HasP {
				return math.NaN()
			}
			return c.T
		})).
		Add("p_value", col(func(c phipstat.Comparison) float64 {
			if !c.HasP {
				return math.NaN()
			}
			return c.P
		})).
		SetPeptides(peptides)
}
