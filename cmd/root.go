package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stream-ops/orders-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "orders-cli",
	Short: "Delivery-order normalization and zone reporting",
	Long:  "Merges spreadsheet exports of delivery orders, repairs merged-cell artifacts, buckets customers into delivery zones, and renders zone-grouped dispatch reports and duplicate-phone reviews.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
