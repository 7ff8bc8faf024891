package main

import (
	"github.com/spf13/cobra"

	"tunecat/internal/catalog"
	"tunecat/internal/preflight"
	"tunecat/internal/table"
)

func newPopularityCommand(ctx *commandContext) *cobra.Command {
	popCmd := &cobra.Command{
		Use:   "popularity",
		Short: "Combine tracks with a popularity dataset",
	}
	popCmd.AddCommand(twoTableCommand(ctx, "append", "Append popularity rows to tracks through the column map",
		"popularity.append", "_merged",
		func(tracks, pop *table.Table) (*table.Table, *catalog.Summary, error) {
			return catalog.AppendPopularity(tracks, pop, ctx.configValue().Popularity.ColumnMap)
		}))
	popCmd.AddCommand(twoTableCommand(ctx, "enrich", "Attach popularity scores to matching tracks",
		"popularity.enrich", "_with_popularity",
		func(tracks, pop *table.Table) (*table.Table, *catalog.Summary, error) {
			cfg := ctx.configValue()
			return catalog.EnrichPopularity(tracks, pop, cfg.Tracks, cfg.Popularity)
		}))
	return popCmd
}

func twoTableCommand(ctx *commandContext, use, short, operationName, suffix string, fn func(tracks, pop *table.Table) (*table.Table, *catalog.Summary, error)) *cobra.Command {
	var outputFlag string
	cmd := &cobra.Command{
		Use:   use + " <tracks.csv> <popularity.csv>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tracks, pop := args[0], args[1]
			return ctx.runOperation(cmd, operation{
				name: operationName,
				inputs: []preflight.Input{
					{Name: "Tracks", Path: tracks},
					{Name: "Popularity", Path: pop},
				},
				outputs: []string{ctx.outputPath(outputFlag, tracks, suffix)},
				run: func(in []*table.Table) ([]*table.Table, *catalog.Summary, error) {
					out, sum, err := fn(in[0], in[1])
					if err != nil {
						return nil, sum, err
					}
					return []*table.Table{out}, sum, nil
				},
			})
		},
	}
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output CSV path (default derived from the tracks file name)")
	return cmd
}
