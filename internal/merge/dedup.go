package merge

import (
	"tunecat/internal/canon"
	"tunecat/internal/table"
)

// Dedup keeps the first row for each canonical key over fields, in original
// order, and drops later rows with the same key. Rows whose key fields are not
// valid UTF-8 are dropped and reported.
func Dedup(t *table.Table, fields ...string) (*table.Table, *Report, error) {
	rep := &Report{Operation: "dedup", RowsIn: t.Len()}
	if err := t.Require(fields...); err != nil {
		return nil, rep, err
	}

	seen := make(map[canon.Key]struct{}, t.Len())
	out := t.Filter(func(i int, rec table.Record) bool {
		key, ok := rowKey(rep, t.Name(), i, rec, fields)
		if !ok {
			rep.Skipped++
			return false
		}
		if _, dup := seen[key]; dup {
			rep.Duplicates++
			return false
		}
		seen[key] = struct{}{}
		return true
	})
	rep.RowsOut = out.Len()
	return out, rep, nil
}

// WithKey returns t with column set to the canonical key over fields. Rows
// whose fields are not valid UTF-8 get a null key and are reported.
func WithKey(t *table.Table, column string, fields ...string) (*table.Table, *Report, error) {
	rep := &Report{Operation: "derive_key", RowsIn: t.Len()}
	if err := t.Require(fields...); err != nil {
		return nil, rep, err
	}
	out := t.WithColumn(column, func(i int, rec table.Record) table.Value {
		key, ok := rowKey(rep, t.Name(), i, rec, fields)
		if !ok {
			return table.Null()
		}
		return table.Text(key.String())
	})
	rep.RowsOut = out.Len()
	return out, rep, nil
}
