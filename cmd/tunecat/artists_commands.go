package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"tunecat/internal/catalog"
	"tunecat/internal/preflight"
	"tunecat/internal/table"
)

func newArtistsCommand(ctx *commandContext) *cobra.Command {
	artistsCmd := &cobra.Command{
		Use:   "artists",
		Short: "Build and enrich the artist table",
	}
	artistsCmd.AddCommand(newArtistsBuildCommand(ctx))
	artistsCmd.AddCommand(newArtistsMergeCommand(ctx))
	artistsCmd.AddCommand(singleTableCommand(ctx, "drop-img", "Remove the artist image column",
		"artists.drop_img", "_no_img",
		func(t *table.Table) (*table.Table, *catalog.Summary, error) {
			return catalog.DropArtistImage(t, ctx.configValue().Artists)
		}))
	return artistsCmd
}

func newArtistsBuildCommand(ctx *commandContext) *cobra.Command {
	var artistsOut string
	cmd := &cobra.Command{
		Use:   "build <tracks.csv> <charts.csv>",
		Short: "Collect artists from tracks and charts and assign artist ids",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			tracksPath, chartsPath := args[0], args[1]
			if artistsOut == "" {
				artistsOut = cfg.OutputPath(filepath.Join(filepath.Dir(tracksPath), "artists_id.csv"), "")
			}
			return ctx.runOperation(cmd, operation{
				name: "artists.build",
				inputs: []preflight.Input{
					{Name: "Tracks", Path: tracksPath},
					{Name: "Charts", Path: chartsPath},
				},
				outputs: []string{
					artistsOut,
					cfg.OutputPath(tracksPath, "_with_artist_id"),
					cfg.OutputPath(chartsPath, "_with_artist_id"),
				},
				run: func(in []*table.Table) ([]*table.Table, *catalog.Summary, error) {
					build, sum, err := catalog.BuildArtists([]catalog.ArtistSource{
						{Table: in[0], Column: cfg.Tracks.ArtistColumn},
						{Table: in[1], Column: cfg.Charts.ArtistColumn},
					}, cfg.Artists)
					if err != nil {
						return nil, sum, err
					}
					return append([]*table.Table{build.Artists}, build.Sources...), sum, nil
				},
			})
		},
	}
	cmd.Flags().StringVar(&artistsOut, "artists-out", "", "Artist table path (default artists_id.csv beside the tracks file)")
	return cmd
}

func newArtistsMergeCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string
	var overlapFlag string
	cmd := &cobra.Command{
		Use:   "merge <artists.csv> <details.csv>",
		Short: "Enrich artists with genre, image, and country details",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, details := args[0], args[1]
			return ctx.runOperation(cmd, operation{
				name: "artists.merge",
				inputs: []preflight.Input{
					{Name: "Artists", Path: base},
					{Name: "Details", Path: details},
				},
				outputs: []string{
					ctx.outputPath(outputFlag, base, "_merged"),
					ctx.outputPath(overlapFlag, base, "_overlap"),
				},
				run: func(in []*table.Table) ([]*table.Table, *catalog.Summary, error) {
					merged, overlap, sum, err := catalog.MergeArtists(in[0], in[1], ctx.configValue().Artists)
					if err != nil {
						return nil, sum, err
					}
					return []*table.Table{merged, overlap}, sum, nil
				},
			})
		},
	}
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Merged artist table path")
	cmd.Flags().StringVar(&overlapFlag, "overlap-out", "", "Overlapping artist names path")
	return cmd
}
