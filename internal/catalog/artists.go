package catalog

import (
	"strings"

	"tunecat/internal/canon"
	"tunecat/internal/config"
	"tunecat/internal/merge"
	"tunecat/internal/table"
)

// ArtistSource names a table and the column holding its artist credits.
type ArtistSource struct {
	Table  *table.Table
	Column string
}

// ArtistBuild is the result of BuildArtists.
type ArtistBuild struct {
	// Artists has one row per artist key: id and display name.
	Artists *table.Table
	// Sources are the inputs with the comma-joined artist id column added, in
	// the order they were given.
	Sources []*table.Table
	Index   *merge.KeyIndex
}

// BuildArtists collects every artist credited in the sources, splitting each
// credit on the configured delimiter, and builds the artist table and index.
// Each source gains an id column listing the keys of its credited artists.
func BuildArtists(sources []ArtistSource, cfg config.Artists) (*ArtistBuild, *Summary, error) {
	rowsIn := 0
	for _, src := range sources {
		rowsIn += src.Table.Len()
	}
	sum := newSummary("artists.build", rowsIn)

	var names []string
	for _, src := range sources {
		credits, err := src.Table.Column(src.Column)
		if err != nil {
			return nil, sum, err
		}
		for _, credit := range credits {
			if credit.IsNull() {
				continue
			}
			names = append(names, canon.SplitMultiValue(credit.String(), cfg.Delimiter)...)
		}
	}
	index := merge.NewKeyIndex(names)

	artists, err := table.New("artists", cfg.IDColumn, cfg.NameColumn)
	if err != nil {
		return nil, sum, err
	}
	for entry := range index.Entries() {
		if err := artists.Append(table.Text(entry.Key.String()), table.Text(entry.Name)); err != nil {
			return nil, sum, err
		}
	}

	build := &ArtistBuild{Artists: artists, Index: index}
	withoutIDs := 0
	for _, src := range sources {
		out := src.Table.WithColumn(cfg.IDColumn, func(_ int, rec table.Record) table.Value {
			v := rec.Value(src.Column)
			if v.IsNull() {
				return v
			}
			ids := artistIDs(index, v.String(), cfg.Delimiter)
			if len(ids) == 0 {
				withoutIDs++
				return table.Null()
			}
			return table.Text(strings.Join(ids, ","))
		})
		build.Sources = append(build.Sources, out)
	}

	sum.Added = []string{cfg.IDColumn}
	sum.stat("artists", index.Len())
	sum.stat("distinct_names", countDistinct(names))
	sum.stat("credits_without_ids", withoutIDs)
	sum.RowsOut = artists.Len()
	return build, sum, nil
}

// artistIDs resolves each credited artist to its key, skipping repeats within
// the same credit. A credit made only of delimiters and blanks resolves to
// nothing.
func artistIDs(index *merge.KeyIndex, credit, delimiter string) []string {
	var ids []string
	seen := map[canon.Key]struct{}{}
	for _, name := range canon.SplitMultiValue(credit, delimiter) {
		key, ok := index.Lookup(name)
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		ids = append(ids, key.String())
	}
	return ids
}

func countDistinct(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// MergeArtists enriches the base artist table with the configured columns of
// details, matching on the artist key of the name column. The result keeps
// every base row once, with columns id, name, then the enrich columns. The
// second table lists the distinct base names that also appear in details.
func MergeArtists(base, details *table.Table, cfg config.Artists) (*table.Table, *table.Table, *Summary, error) {
	sum := newSummary("artists.merge", base.Len())
	if err := base.Require(cfg.IDColumn, cfg.NameColumn); err != nil {
		return nil, nil, sum, err
	}

	joined, rep, err := merge.LeftJoin(base, details, merge.JoinSpec{
		BaseFields:          []string{cfg.NameColumn},
		SupplementaryFields: []string{cfg.NameColumn},
		Columns:             cfg.EnrichColumns,
	})
	if err != nil {
		return nil, nil, sum, err
	}
	sum.absorb(rep)

	order := append([]string{cfg.IDColumn, cfg.NameColumn}, cfg.EnrichColumns...)
	merged, err := joined.Select(order...)
	if err != nil {
		return nil, nil, sum, err
	}

	both, _, err := merge.SemiJoin(base, details, []string{cfg.NameColumn}, []string{cfg.NameColumn})
	if err != nil {
		return nil, nil, sum, err
	}
	names, err := both.Select(cfg.NameColumn)
	if err != nil {
		return nil, nil, sum, err
	}
	seen := map[string]struct{}{}
	overlap := names.Filter(func(_ int, rec table.Record) bool {
		name := rec.Text(cfg.NameColumn)
		if _, dup := seen[name]; dup {
			return false
		}
		seen[name] = struct{}{}
		return true
	}).WithName("artist_overlap")

	sum.Added = cfg.EnrichColumns
	sum.stat("matched", rep.Matched)
	sum.stat("unmatched", rep.Unmatched)
	sum.stat("overlap", overlap.Len())
	sum.RowsOut = merged.Len()
	return merged, overlap, sum, nil
}

// DropArtistImage removes the configured artist columns when present.
func DropArtistImage(t *table.Table, cfg config.Artists) (*table.Table, *Summary, error) {
	out, sum, err := DropColumns(t, cfg.DropColumns, false)
	if sum != nil {
		sum.Operation = "artists.drop_img"
	}
	return out, sum, err
}
