// Copyright 2025 The derisi-rotation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sydneysbec/derisi-rotation/phipplot"
)

var (
	plotOutDir  string
	plotFormat  string
	plotWidth   int
	plotHeight  int
	plotSeed    int64
	plotNoTTest bool
	plotAll     bool
)

var plotCmd = &cobra.Command{
	Use:   "plot [flags] PEPTIDE...",
	Short: "Render per-peptide comparison figures",
	Long: `Render one two-panel comparison figure (strip plot and boxplot) per
named peptide. With --all, every peptide in the table is rendered.`,
	RunE: runPlot,
}

func init() {
	plotCmd.Flags().StringVar(&plotOutDir, "out", ".", "output directory")
	plotCmd.Flags().StringVar(&plotFormat, "format", "svg", "output format: svg or png")
	plotCmd.Flags().IntVar(&plotWidth, "width", 1600, "figure width in pixels")
	plotCmd.Flags().IntVar(&plotHeight, "height", 600, "figure height in pixels")
	plotCmd.Flags().Int64Var(&plotSeed, "seed", 0, "jitter seed")
	plotCmd.Flags().BoolVar(&plotNoTTest, "no-ttest", false, "omit the t-test annotation")
	plotCmd.Flags().BoolVar(&plotAll, "all", false, "render every peptide in the table")
}

func runPlot(cmd *cobra.Command, args []string) error {
	if plotFormat != "svg" && plotFormat != "png" {
		return fmt.Errorf("unknown format %q (want svg or png)", plotFormat)
	}
	tab, diseased, healthy, err := loadInputs()
	if err != nil {
		return err
	}

	peptides := args
	if plotAll {
		if len(args) > 0 {
			return fmt.Errorf("--all and explicit peptides are mutually exclusive")
		}
		peptides = tab.Peptides()
	}
	if len(peptides) == 0 {
		return fmt.Errorf("no peptides named (pass peptide IDs or --all)")
	}

	if err := os.MkdirAll(plotOutDir, 0o755); err != nil {
		return err
	}
	for _, pep := range peptides {
		f := &phipplot.PerPeptide{
			Table:     tab,
			Peptide:   pep,
			Diseased:  diseased,
			Healthy:   healthy,
			Seed:      plotSeed,
			HideTTest: plotNoTTest,
		}
		path := filepath.Join(plotOutDir, sanitizeFilename(pep)+"."+plotFormat)
		if err := writeFigure(f, path); err != nil {
			return fmt.Errorf("peptide %q: %w", pep, err)
		}
		logger.Info("wrote figure",
			zap.String("peptide", pep),
			zap.String("path", path))
	}
	return nil
}

func writeFigure(f *phipplot.PerPeptide, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	switch plotFormat {
	case "svg":
		err = f.WriteSVG(out, plotWidth, plotHeight)
	case "png":
		err = f.WritePNG(out, plotWidth, plotHeight)
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

// sanitizeFilename derives a file name from a peptide ID. Library IDs
// embed annotation strings with characters that are hostile to file
// systems.
func sanitizeFilename(pep string) string {
	var b strings.Builder
	for _, r := range pep {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
		if b.Len() >= 120 {
			break
		}
	}
	if b.Len() == 0 {
		return "peptide"
	}
	return b.String()
}
