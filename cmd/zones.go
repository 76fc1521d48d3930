package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stream-ops/orders-cli/internal/zones"
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List the delivery-zone gazetteer",
	Run: func(cmd *cobra.Command, _ []string) {
		gaz := zones.Default()
		for _, name := range gaz.Names() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", name, gaz.CityCount(name))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t(catch-all)\n", zones.OtherZone)
	},
}

func init() {
	rootCmd.AddCommand(zonesCmd)
}
