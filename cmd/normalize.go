package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stream-ops/orders-cli/internal/pipeline"
	"github.com/stream-ops/orders-cli/internal/report"
)

var (
	normalizeInputs []string
	normalizeOutDir string
	normalizeFlat   bool
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Merge order exports into the normalized, zone-grouped report",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		sources := make([]pipeline.Source, 0, len(normalizeInputs))
		for _, path := range normalizeInputs {
			data, err := os.ReadFile(path)
			if err != nil {
				return eris.Wrapf(err, "read input %s", path)
			}
			sources = append(sources, pipeline.Source{
				Name: filepath.Base(path),
				Data: data,
			})
		}

		table, err := pipeline.Run(ctx, pipeline.Options{Archiver: newArchiver()}, sources)
		if err != nil {
			return err
		}

		outDir := normalizeOutDir
		if outDir == "" {
			outDir = cfg.Output.Dir
		}
		now := time.Now()

		normalizedPath := filepath.Join(outDir, report.FileName(cfg.Output.NormalizedLabel, now))
		nf, err := os.Create(normalizedPath)
		if err != nil {
			return eris.Wrap(err, "create normalized output")
		}
		defer nf.Close() //nolint:errcheck
		if err := report.WriteNormalized(nf, table, cfg.Output.NormalizedLabel); err != nil {
			return err
		}

		groups := report.GroupByZone(table.Rows)

		if !normalizeFlat {
			groupedPath := filepath.Join(outDir, report.FileName(cfg.Output.GroupedLabel, now))
			gf, err := os.Create(groupedPath)
			if err != nil {
				return eris.Wrap(err, "create grouped output")
			}
			defer gf.Close() //nolint:errcheck

			sink := &report.XLSXSink{W: gf}
			if err := sink.Write(groups, cfg.Output.GroupLabel, now); err != nil {
				return err
			}
		}

		orders := make(map[string]bool)
		for _, r := range table.Rows {
			orders[r.OrderCode] = true
		}
		zap.L().Info("normalize complete",
			zap.Int("files", len(sources)),
			zap.Int("rows", len(table.Rows)),
			zap.Int("orders", len(orders)),
			zap.Int("zones", len(groups)),
			zap.String("output", normalizedPath),
		)
		return nil
	},
}

func init() {
	normalizeCmd.Flags().StringArrayVar(&normalizeInputs, "in", nil, "input .xlsx file (repeatable, required)")
	normalizeCmd.Flags().StringVar(&normalizeOutDir, "out", "", "output directory (default from config)")
	normalizeCmd.Flags().BoolVar(&normalizeFlat, "flat", false, "skip the zone-grouped workbook")
	_ = normalizeCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(normalizeCmd)
}
