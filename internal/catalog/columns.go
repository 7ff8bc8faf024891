package catalog

import (
	"fmt"
	"strings"

	"tunecat/internal/table"
)

// DropColumns removes columns. In strict mode every named column must exist;
// otherwise absent names are skipped and noted as warnings.
func DropColumns(t *table.Table, columns []string, strict bool) (*table.Table, *Summary, error) {
	sum := newSummary("drop_columns", t.Len())
	if strict {
		if err := t.Require(columns...); err != nil {
			return nil, sum, err
		}
	}
	out, dropped := t.Drop(columns...)
	sum.Dropped = dropped
	if !strict {
		for _, missing := range t.Schema().Missing(columns...) {
			sum.warn(fmt.Sprintf("column %q not present in %s", missing, t.Name()))
		}
	}
	sum.RowsOut = out.Len()
	return out, sum, nil
}

// TrimIntegralFloats rewrites float text with a zero fraction ("12.0") to its
// integer form ("12") in the named columns. Absent columns are skipped.
func TrimIntegralFloats(t *table.Table, columns []string) (*table.Table, *Summary, error) {
	sum := newSummary("trim_integral_floats", t.Len())
	out := t
	rewritten := 0
	for _, column := range columns {
		if !t.Schema().Has(column) {
			sum.warn(fmt.Sprintf("column %q not present in %s", column, t.Name()))
			continue
		}
		var err error
		out, err = out.Map(column, func(v table.Value) table.Value {
			if v.IsNull() {
				return v
			}
			if trimmed, ok := integralText(v.String()); ok {
				rewritten++
				return table.Text(trimmed)
			}
			return v
		})
		if err != nil {
			return nil, sum, err
		}
	}
	sum.stat("values_trimmed", rewritten)
	sum.RowsOut = out.Len()
	return out, sum, nil
}

// integralText reports whether s is a decimal number with an all-zero
// fraction and returns it without the fraction.
func integralText(s string) (string, bool) {
	intPart, frac, found := strings.Cut(s, ".")
	if !found || frac == "" || strings.Trim(frac, "0") != "" {
		return "", false
	}
	digits := strings.TrimPrefix(intPart, "-")
	if digits == "" {
		return "", false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return "", false
		}
	}
	if digits == strings.Repeat("0", len(digits)) {
		return "0", true
	}
	return intPart, true
}
