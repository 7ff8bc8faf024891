package catalog

import (
	"tunecat/internal/canon"
	"tunecat/internal/config"
	"tunecat/internal/merge"
	"tunecat/internal/table"
)

// CleanCharts drops the configured columns that are present, rewrites artist
// credits to use the " - " separator, and adds the song id as the first
// column.
func CleanCharts(t *table.Table, cfg config.Charts) (*table.Table, *Summary, error) {
	sum := newSummary("charts.clean", t.Len())
	if err := t.Require(cfg.SongColumn, cfg.ArtistColumn); err != nil {
		return nil, sum, err
	}

	out, dropped := t.Drop(cfg.DropColumns...)
	sum.Dropped = dropped

	rewritten := 0
	out, err := out.Map(cfg.ArtistColumn, func(v table.Value) table.Value {
		if v.IsNull() {
			return v
		}
		cleaned := canon.CleanArtistCredit(v.String())
		if cleaned != v.String() {
			rewritten++
		}
		return table.Cell(cleaned)
	})
	if err != nil {
		return nil, sum, err
	}
	sum.stat("credits_rewritten", rewritten)

	out, err = keyCharts(out, cfg, sum)
	if err != nil {
		return nil, sum, err
	}
	sum.RowsOut = out.Len()
	return out, sum, nil
}

// ChartsMainArtist replaces any existing song id, reduces each artist credit
// to its main artist, and derives a fresh song id from the reduced credit.
func ChartsMainArtist(t *table.Table, cfg config.Charts) (*table.Table, *Summary, error) {
	sum := newSummary("charts.main_artist", t.Len())
	if err := t.Require(cfg.SongColumn, cfg.ArtistColumn); err != nil {
		return nil, sum, err
	}

	out, dropped := t.Drop(cfg.IDColumn)
	sum.Dropped = dropped

	reduced := 0
	out, err := out.Map(cfg.ArtistColumn, func(v table.Value) table.Value {
		if v.IsNull() {
			return v
		}
		main := canon.MainArtist(v.String())
		if main != v.String() {
			reduced++
		}
		return table.Cell(main)
	})
	if err != nil {
		return nil, sum, err
	}
	sum.stat("credits_reduced", reduced)

	out, err = keyCharts(out, cfg, sum)
	if err != nil {
		return nil, sum, err
	}
	sum.RowsOut = out.Len()
	return out, sum, nil
}

// TrimCharts applies TrimIntegralFloats to the configured chart columns.
func TrimCharts(t *table.Table, cfg config.Charts) (*table.Table, *Summary, error) {
	out, sum, err := TrimIntegralFloats(t, cfg.TrimColumns)
	if sum != nil {
		sum.Operation = "charts.trim"
	}
	return out, sum, err
}

func keyCharts(t *table.Table, cfg config.Charts, sum *Summary) (*table.Table, error) {
	keyed, rep, err := merge.WithKey(t, cfg.IDColumn, cfg.SongColumn, cfg.ArtistColumn)
	if err != nil {
		return nil, err
	}
	sum.absorb(rep)
	sum.Added = append(sum.Added, cfg.IDColumn)
	return keyed.MoveFirst(cfg.IDColumn)
}
