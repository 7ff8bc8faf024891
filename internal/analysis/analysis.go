package analysis

import (
	"cmp"
	"slices"

	"tunecat/internal/table"
)

// Grade classifies identifier uniqueness.
type Grade string

const (
	GradeExcellent Grade = "EXCELLENT"
	GradeGood      Grade = "GOOD"
	GradeFair      Grade = "FAIR"
	GradePoor      Grade = "POOR"
)

// GradeFor maps a unique percentage to its grade.
func GradeFor(uniquePct float64) Grade {
	switch {
	case uniquePct >= 95:
		return GradeExcellent
	case uniquePct >= 85:
		return GradeGood
	case uniquePct >= 70:
		return GradeFair
	default:
		return GradePoor
	}
}

// Recommendation returns the follow-up advice for the grade.
func (g Grade) Recommendation() string {
	switch g {
	case GradeExcellent:
		return "Data quality is excellent for unique identification."
	case GradeGood:
		return "Data quality is good, minor duplicates present."
	case GradeFair:
		return "Consider investigating duplicate entries."
	default:
		return "Significant duplicates detected, data cleaning recommended."
	}
}

// DuplicateID is an identifier seen more than once.
type DuplicateID struct {
	ID    string
	Count int
}

// Multiplicity counts how many identifiers occur exactly Occurrences times.
type Multiplicity struct {
	Occurrences int
	IDs         int
}

// Result holds the statistics of one identifier column.
type Result struct {
	Table  string
	Column string

	TotalRows  int
	NonNull    int
	Nulls      int
	Unique     int
	Duplicates int

	UniquePct    float64
	DuplicatePct float64
	NullPct      float64

	// RepeatedIDs is the number of distinct identifiers seen more than once.
	RepeatedIDs   int
	TopDuplicates []DuplicateID
	Distribution  []Multiplicity
	// Sample holds the first distinct identifiers in row order.
	Sample []string
	Grade  Grade
}

// AnalyzeIDs computes identifier statistics for column. topN bounds both the
// duplicate ranking and the sample of distinct identifiers.
func AnalyzeIDs(t *table.Table, column string, topN int) (*Result, error) {
	values, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	if topN <= 0 {
		topN = 10
	}

	res := &Result{Table: t.Name(), Column: column, TotalRows: len(values)}
	counts := make(map[string]int, len(values))
	var order []string
	for _, v := range values {
		if v.IsNull() {
			res.Nulls++
			continue
		}
		id := v.String()
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	}
	res.NonNull = res.TotalRows - res.Nulls
	res.Unique = len(order)
	res.Duplicates = res.NonNull - res.Unique

	res.UniquePct = percent(res.Unique, res.NonNull)
	res.DuplicatePct = percent(res.Duplicates, res.NonNull)
	res.NullPct = percent(res.Nulls, res.TotalRows)
	res.Grade = GradeFor(res.UniquePct)
	res.Sample = order[:min(topN, len(order))]

	var repeated []DuplicateID
	byMultiplicity := map[int]int{}
	for _, id := range order {
		if n := counts[id]; n > 1 {
			repeated = append(repeated, DuplicateID{ID: id, Count: n})
			byMultiplicity[n]++
		}
	}
	slices.SortFunc(repeated, func(a, b DuplicateID) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	res.RepeatedIDs = len(repeated)
	res.TopDuplicates = repeated[:min(topN, len(repeated))]

	for n, ids := range byMultiplicity {
		res.Distribution = append(res.Distribution, Multiplicity{Occurrences: n, IDs: ids})
	}
	slices.SortFunc(res.Distribution, func(a, b Multiplicity) int {
		return cmp.Compare(a.Occurrences, b.Occurrences)
	})
	return res, nil
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
