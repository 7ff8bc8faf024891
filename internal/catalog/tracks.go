package catalog

import (
	"tunecat/internal/canon"
	"tunecat/internal/config"
	"tunecat/internal/merge"
	"tunecat/internal/table"
)

// CleanTracks drops the configured identifier columns that are present and
// reduces the artist column to its first credited artist. List literals such
// as "['Dua Lipa', 'Elton John']" are parsed quote-aware; malformed literals
// fall back to the bracket-stripped first comma field. Credits with no usable
// artist become null.
func CleanTracks(t *table.Table, cfg config.Tracks) (*table.Table, *Summary, error) {
	sum := newSummary("tracks.clean", t.Len())
	if err := t.Require(cfg.ArtistColumn); err != nil {
		return nil, sum, err
	}

	out, dropped := t.Drop(cfg.DropColumns...)
	sum.Dropped = dropped

	resolved, empty := 0, 0
	out, err := out.Map(cfg.ArtistColumn, func(v table.Value) table.Value {
		if v.IsNull() {
			return v
		}
		main, ok := canon.FirstListedArtist(v.String())
		if ok {
			resolved++
		} else {
			empty++
		}
		return table.Cell(main)
	})
	if err != nil {
		return nil, sum, err
	}
	sum.stat("artists_resolved", resolved)
	sum.stat("artists_empty", empty)
	sum.RowsOut = out.Len()
	return out, sum, nil
}

// DedupTracks keeps the first track for each song key over the configured
// song and artist columns, then stores that key as the first column.
func DedupTracks(t *table.Table, cfg config.Tracks) (*table.Table, *Summary, error) {
	sum := newSummary("tracks.dedup", t.Len())
	out, rep, err := dedupWithSongID(t, cfg.SongColumn, cfg.ArtistColumn, cfg.IDColumn)
	if err != nil {
		return nil, sum, err
	}
	sum.absorb(rep)
	sum.Added = []string{cfg.IDColumn}
	sum.stat("duplicates_removed", rep.Duplicates)
	sum.stat("rows_skipped", rep.Skipped)
	sum.RowsOut = out.Len()
	return out, sum, nil
}

// DropReleaseDate removes the release date column, which must exist.
func DropReleaseDate(t *table.Table, cfg config.Tracks) (*table.Table, *Summary, error) {
	out, sum, err := DropColumns(t, []string{cfg.ReleaseDateColumn}, true)
	if sum != nil {
		sum.Operation = "tracks.drop_release_date"
	}
	return out, sum, err
}

func dedupWithSongID(t *table.Table, songCol, artistCol, idCol string) (*table.Table, *merge.Report, error) {
	deduped, rep, err := merge.Dedup(t, songCol, artistCol)
	if err != nil {
		return nil, rep, err
	}
	// Dedup already recorded the anomalies of every surviving row.
	keyed, _, err := merge.WithKey(deduped, idCol, songCol, artistCol)
	if err != nil {
		return nil, rep, err
	}
	out, err := keyed.MoveFirst(idCol)
	if err != nil {
		return nil, rep, err
	}
	return out, rep, nil
}
