package main

import (
	"github.com/spf13/cobra"

	"tunecat/internal/catalog"
	"tunecat/internal/preflight"
	"tunecat/internal/table"
)

func newTracksCommand(ctx *commandContext) *cobra.Command {
	tracksCmd := &cobra.Command{
		Use:   "tracks",
		Short: "Clean and deduplicate track datasets",
	}
	tracksCmd.AddCommand(newTracksCleanCommand(ctx))
	tracksCmd.AddCommand(newTracksDedupCommand(ctx))
	tracksCmd.AddCommand(newTracksDropReleaseDateCommand(ctx))
	return tracksCmd
}

// singleTableCommand builds a command that reads one CSV, applies fn, and
// writes the result next to the input with suffix unless --output is given.
func singleTableCommand(ctx *commandContext, use, short, operationName, suffix string, fn func(*table.Table) (*table.Table, *catalog.Summary, error)) *cobra.Command {
	var outputFlag string
	cmd := &cobra.Command{
		Use:   use + " <input.csv>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			return ctx.runOperation(cmd, operation{
				name:    operationName,
				inputs:  []preflight.Input{{Name: "Input", Path: input}},
				outputs: []string{ctx.outputPath(outputFlag, input, suffix)},
				run: func(in []*table.Table) ([]*table.Table, *catalog.Summary, error) {
					out, sum, err := fn(in[0])
					if err != nil {
						return nil, sum, err
					}
					return []*table.Table{out}, sum, nil
				},
			})
		},
	}
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output CSV path (default derived from the input name)")
	return cmd
}

func newTracksCleanCommand(ctx *commandContext) *cobra.Command {
	return singleTableCommand(ctx, "clean", "Drop identifier columns and keep the main artist",
		"tracks.clean", "_processed",
		func(t *table.Table) (*table.Table, *catalog.Summary, error) {
			return catalog.CleanTracks(t, ctx.configValue().Tracks)
		})
}

func newTracksDedupCommand(ctx *commandContext) *cobra.Command {
	return singleTableCommand(ctx, "dedup", "Add song ids and remove duplicate tracks",
		"tracks.dedup", "_deduplicated",
		func(t *table.Table) (*table.Table, *catalog.Summary, error) {
			return catalog.DedupTracks(t, ctx.configValue().Tracks)
		})
}

func newTracksDropReleaseDateCommand(ctx *commandContext) *cobra.Command {
	return singleTableCommand(ctx, "drop-release-date", "Remove the release date column",
		"tracks.drop_release_date", "_no_release_date",
		func(t *table.Table) (*table.Table, *catalog.Summary, error) {
			return catalog.DropReleaseDate(t, ctx.configValue().Tracks)
		})
}
