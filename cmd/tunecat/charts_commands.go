package main

import (
	"github.com/spf13/cobra"

	"tunecat/internal/catalog"
	"tunecat/internal/table"
)

func newChartsCommand(ctx *commandContext) *cobra.Command {
	chartsCmd := &cobra.Command{
		Use:   "charts",
		Short: "Clean weekly chart datasets",
	}
	chartsCmd.AddCommand(singleTableCommand(ctx, "clean", "Normalize artist credits and add song ids",
		"charts.clean", "_processed",
		func(t *table.Table) (*table.Table, *catalog.Summary, error) {
			return catalog.CleanCharts(t, ctx.configValue().Charts)
		}))
	chartsCmd.AddCommand(singleTableCommand(ctx, "main-artist", "Reduce credits to the main artist and regenerate song ids",
		"charts.main_artist", "_main_artist",
		func(t *table.Table) (*table.Table, *catalog.Summary, error) {
			return catalog.ChartsMainArtist(t, ctx.configValue().Charts)
		}))
	chartsCmd.AddCommand(singleTableCommand(ctx, "trim", "Rewrite integral floats such as 12.0 as 12",
		"charts.trim", "_trimmed",
		func(t *table.Table) (*table.Table, *catalog.Summary, error) {
			return catalog.TrimCharts(t, ctx.configValue().Charts)
		}))
	return chartsCmd
}
