package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tayloree/restock/internal/display"
)

var statsCmd = &cobra.Command{
	Use:     "stats",
	Short:   "Summarize the list: counts, total quantity and order readiness",
	Example: `  restock stats --json`,
	Args:    cobra.NoArgs,
	RunE:    runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	stats := a.list.Stats(a.mode())
	if flagJSON {
		return display.PrintStatsJSON(cmd.OutOrStdout(), stats)
	}
	display.PrintStats(cmd.OutOrStdout(), stats)
	return nil
}
