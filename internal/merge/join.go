package merge

import (
	"tunecat/internal/canon"
	"tunecat/internal/table"
)

// JoinSpec describes a left-join enrichment.
type JoinSpec struct {
	// BaseFields and SupplementaryFields are the key tuples on each side. They
	// must have the same length and are matched position by position.
	BaseFields          []string
	SupplementaryFields []string
	// Columns are copied from the matching supplementary row. A column the
	// base already has is overwritten in place on matched rows and left as is
	// on unmatched ones; new columns are appended and null when unmatched.
	Columns []string
}

// LeftJoin attaches spec.Columns from supp to every row of base whose key
// matches. Every base row appears exactly once and in order; when several
// supplementary rows share a key the first one wins. Unmatched rows keep
// what they had and get nulls in the new columns.
func LeftJoin(base, supp *table.Table, spec JoinSpec) (*table.Table, *Report, error) {
	rep := &Report{Operation: "left_join", RowsIn: base.Len(), SupplementaryRows: supp.Len()}
	if len(spec.BaseFields) != len(spec.SupplementaryFields) || len(spec.BaseFields) == 0 {
		return nil, rep, errKeyArity(len(spec.BaseFields), len(spec.SupplementaryFields))
	}
	if err := base.Require(spec.BaseFields...); err != nil {
		return nil, rep, err
	}
	required := append(append([]string(nil), spec.SupplementaryFields...), spec.Columns...)
	if err := supp.Require(required...); err != nil {
		return nil, rep, err
	}

	index := make(map[canon.Key]table.Record, supp.Len())
	for i, rec := range supp.All() {
		key, ok := rowKey(rep, supp.Name(), i, rec, spec.SupplementaryFields)
		if !ok {
			rep.SupplementarySkipped++
			continue
		}
		if _, exists := index[key]; !exists {
			index[key] = rec
		}
	}

	matches := make([]table.Record, base.Len())
	found := make([]bool, base.Len())
	for i, rec := range base.All() {
		key, ok := rowKey(rep, base.Name(), i, rec, spec.BaseFields)
		if !ok {
			rep.Unmatched++
			continue
		}
		match, hit := index[key]
		if !hit {
			rep.Unmatched++
			continue
		}
		matches[i] = match
		found[i] = true
		rep.Matched++
	}

	out := base
	for _, column := range spec.Columns {
		out = out.WithColumn(column, func(i int, rec table.Record) table.Value {
			if !found[i] {
				// Unmatched rows keep a value the base already had.
				return rec.Value(column)
			}
			return matches[i].Value(column)
		})
	}
	rep.RowsOut = out.Len()
	return out, rep, nil
}

// SemiJoin returns the rows of base whose key over baseFields matches the key
// of at least one row of supp over suppFields, in base order.
func SemiJoin(base, supp *table.Table, baseFields, suppFields []string) (*table.Table, *Report, error) {
	rep := &Report{Operation: "semi_join", RowsIn: base.Len(), SupplementaryRows: supp.Len()}
	if len(baseFields) != len(suppFields) || len(baseFields) == 0 {
		return nil, rep, errKeyArity(len(baseFields), len(suppFields))
	}
	if err := base.Require(baseFields...); err != nil {
		return nil, rep, err
	}
	if err := supp.Require(suppFields...); err != nil {
		return nil, rep, err
	}

	keys := make(map[canon.Key]struct{}, supp.Len())
	for i, rec := range supp.All() {
		key, ok := rowKey(rep, supp.Name(), i, rec, suppFields)
		if !ok {
			rep.SupplementarySkipped++
			continue
		}
		keys[key] = struct{}{}
	}

	out := base.Filter(func(i int, rec table.Record) bool {
		key, ok := rowKey(rep, base.Name(), i, rec, baseFields)
		if !ok {
			rep.Unmatched++
			return false
		}
		if _, hit := keys[key]; !hit {
			rep.Unmatched++
			return false
		}
		rep.Matched++
		return true
	})
	rep.RowsOut = out.Len()
	return out, rep, nil
}
