package catalog

import (
	"fmt"
	"maps"
	"slices"

	"tunecat/internal/config"
	"tunecat/internal/merge"
	"tunecat/internal/table"
)

// AppendPopularity appends every popularity row to tracks. Each mapped
// popularity column fills the tracks column it maps to; the other tracks
// columns are null in appended rows. Mapping entries whose column is absent on
// either side are skipped and reported as warnings.
func AppendPopularity(tracks, popularity *table.Table, mapping map[string]string) (*table.Table, *Summary, error) {
	sum := newSummary("popularity.append", tracks.Len()+popularity.Len())

	usable := make(map[string]string, len(mapping))
	for _, from := range slices.Sorted(maps.Keys(mapping)) {
		to := mapping[from]
		switch {
		case !popularity.Schema().Has(from):
			sum.warn(fmt.Sprintf("column %q not present in %s", from, popularity.Name()))
		case !tracks.Schema().Has(to):
			sum.warn(fmt.Sprintf("column %q not present in %s", to, tracks.Name()))
		default:
			usable[from] = to
		}
	}
	if len(usable) == 0 {
		return nil, sum, &table.SchemaError{Table: popularity.Name(), Missing: slices.Sorted(maps.Keys(mapping))}
	}

	merged, err := tracks.Concat(popularity, usable)
	if err != nil {
		return nil, sum, err
	}

	sum.stat("rows_appended", popularity.Len())
	sum.stat("columns_mapped", len(usable))
	sum.stat("null_cells", merged.TotalNulls())
	withNulls := 0
	for _, column := range merged.Columns() {
		if n, _ := merged.NullCount(column); n > 0 {
			withNulls++
		}
	}
	sum.stat("columns_with_nulls", withNulls)
	sum.RowsOut = merged.Len()
	return merged, sum, nil
}

// EnrichPopularity attaches the popularity score to every track whose song key
// matches a popularity row. Tracks keep their order and count.
func EnrichPopularity(tracks, popularity *table.Table, tracksCfg config.Tracks, popCfg config.Popularity) (*table.Table, *Summary, error) {
	sum := newSummary("popularity.enrich", tracks.Len())
	out, rep, err := merge.LeftJoin(tracks, popularity, merge.JoinSpec{
		BaseFields:          []string{tracksCfg.SongColumn, tracksCfg.ArtistColumn},
		SupplementaryFields: []string{popCfg.SongColumn, popCfg.ArtistColumn},
		Columns:             []string{popCfg.ScoreColumn},
	})
	if err != nil {
		return nil, sum, err
	}
	sum.absorb(rep)
	sum.Added = []string{popCfg.ScoreColumn}
	sum.stat("matched", rep.Matched)
	sum.stat("unmatched", rep.Unmatched)
	sum.stat("popularity_rows_skipped", rep.SupplementarySkipped)
	sum.RowsOut = out.Len()
	return out, sum, nil
}
