package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stream-ops/orders-cli/internal/pipeline"
	"github.com/stream-ops/orders-cli/internal/report"
	"github.com/stream-ops/orders-cli/internal/schema"
)

var (
	duplicatesInput  string
	duplicatesOutDir string
)

var duplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "Review orders that share a phone number",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		data, err := os.ReadFile(duplicatesInput)
		if err != nil {
			return eris.Wrapf(err, "read input %s", duplicatesInput)
		}
		src := pipeline.Source{Name: filepath.Base(duplicatesInput), Data: data}

		rows, sums, err := pipeline.RunDuplicates(ctx, pipeline.Options{Archiver: newArchiver()}, src)
		if err != nil {
			if eris.Is(err, schema.ErrColumnsNotFound) {
				fmt.Fprintln(cmd.ErrOrStderr(), "مش لاقي عمود كود الأوردر أو رقم التليفون في الملف!")
			}
			return err
		}

		if len(rows) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "مفيش اوردرات مكررة ✅")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "تم العثور على %d تليفون مكرر، إجمالي %d كود ⚠️\n", len(sums), len(rows))

		outDir := duplicatesOutDir
		if outDir == "" {
			outDir = cfg.Output.Dir
		}
		outPath := filepath.Join(outDir, report.FileName(cfg.Output.DuplicatesLabel, time.Now()))

		f, err := os.Create(outPath)
		if err != nil {
			return eris.Wrap(err, "create duplicates output")
		}
		defer f.Close() //nolint:errcheck
		if err := report.WriteDuplicates(f, rows, sums); err != nil {
			return err
		}

		zap.L().Info("duplicate review complete",
			zap.Int("duplicated_phones", len(sums)),
			zap.Int("duplicated_rows", len(rows)),
			zap.String("output", outPath),
		)
		return nil
	},
}

func init() {
	duplicatesCmd.Flags().StringVar(&duplicatesInput, "in", "", "input .xlsx file (required)")
	duplicatesCmd.Flags().StringVar(&duplicatesOutDir, "out", "", "output directory (default from config)")
	_ = duplicatesCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(duplicatesCmd)
}
