// Copyright 2025 The derisi-rotation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command phipplot renders per-peptide comparison figures and group
// summary statistics from a PhIP-seq enrichment matrix.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sydneysbec/derisi-rotation/phipplot"
	"github.com/sydneysbec/derisi-rotation/table"
)

var (
	tablePath  string
	groupsPath string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "phipplot",
	Short: "Per-peptide diseased/healthy comparison plots for PhIP-seq",
	Long: `phipplot compares peptide enrichment (log2 fold change over beads)
between a diseased and a healthy sample group.

The enrichment matrix is a CSV with peptides as rows and samples as
columns; the group membership of the sample columns comes from a YAML
file:

    diseased: [case1, case2, case3]
    healthy: [ctrl1, ctrl2, ctrl3]`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tablePath, "table", "", "enrichment matrix CSV (required)")
	rootCmd.PersistentFlags().StringVar(&groupsPath, "groups", "", "sample group YAML (required)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.MarkPersistentFlagRequired("table")
	_ = rootCmd.MarkPersistentFlagRequired("groups")

	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(summaryCmd)
}

// loadInputs reads the enrichment table and the group definitions
// named by the persistent flags.
func loadInputs() (*table.Table, phipplot.Group, phipplot.Group, error) {
	f, err := os.Open(tablePath)
	if err != nil {
		return nil, phipplot.Group{}, phipplot.Group{}, err
	}
	defer f.Close()
	tab, err := table.ReadCSV(f)
	if err != nil {
		return nil, phipplot.Group{}, phipplot.Group{}, fmt.Errorf("reading %s: %w", tablePath, err)
	}
	diseased, healthy, err := loadGroups(groupsPath)
	if err != nil {
		return nil, phipplot.Group{}, phipplot.Group{}, err
	}
	logger.Debug("loaded enrichment table",
		zap.String("path", tablePath),
		zap.Int("peptides", tab.Len()),
		zap.Int("samples", len(tab.Samples())))
	return tab, diseased, healthy, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
