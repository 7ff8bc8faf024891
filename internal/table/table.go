package table

import (
	"fmt"
	"iter"
)

// Table is an ordered sequence of rows sharing one schema. Transformations
// return a new Table and never modify the receiver's rows.
type Table struct {
	name   string
	schema *Schema
	rows   [][]Value
}

// New creates an empty table.
func New(name string, columns ...string) (*Table, error) {
	schema, err := NewSchema(columns...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &Table{name: name, schema: schema}, nil
}

// FromRows builds a table from raw cell text using CSV semantics: empty cells
// are null. Short rows are padded with nulls.
func FromRows(name string, columns []string, rows [][]string) (*Table, error) {
	t, err := New(name, columns...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) > len(columns) {
			return nil, fmt.Errorf("%s: row %d has %d cells, schema has %d columns", name, i, len(row), len(columns))
		}
		values := make([]Value, len(columns))
		for j, cell := range row {
			values[j] = Cell(cell)
		}
		t.rows = append(t.rows, values)
	}
	return t, nil
}

// Name identifies the table in errors and logs.
func (t *Table) Name() string { return t.name }

// WithName returns the same rows under a different name.
func (t *Table) WithName(name string) *Table {
	return &Table{name: name, schema: t.schema, rows: t.rows}
}

// Schema returns the table schema.
func (t *Table) Schema() *Schema { return t.schema }

// Columns returns the column names in order.
func (t *Table) Columns() []string { return t.schema.Columns() }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Append adds a row. The number of values must match the schema.
func (t *Table) Append(values ...Value) error {
	if len(values) != t.schema.Len() {
		return fmt.Errorf("%s: row has %d values, schema has %d columns", t.name, len(values), t.schema.Len())
	}
	t.rows = append(t.rows, append([]Value(nil), values...))
	return nil
}

// Record returns row i.
func (t *Table) Record(i int) Record {
	return Record{schema: t.schema, values: t.rows[i]}
}

// All iterates rows in order.
func (t *Table) All() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, row := range t.rows {
			if !yield(i, Record{schema: t.schema, values: row}) {
				return
			}
		}
	}
}

// Require returns a *SchemaError when any column is missing.
func (t *Table) Require(columns ...string) error {
	if missing := t.schema.Missing(columns...); len(missing) > 0 {
		return &SchemaError{Table: t.name, Missing: missing}
	}
	return nil
}

// Column returns the values of one column.
func (t *Table) Column(name string) ([]Value, error) {
	idx, ok := t.schema.Index(name)
	if !ok {
		return nil, &SchemaError{Table: t.name, Missing: []string{name}}
	}
	out := make([]Value, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[idx]
	}
	return out, nil
}

// Drop removes the named columns that exist and reports which ones were
// removed. Unknown names are ignored.
func (t *Table) Drop(columns ...string) (*Table, []string) {
	remove := make(map[string]bool, len(columns))
	var dropped []string
	for _, name := range columns {
		if t.schema.Has(name) && !remove[name] {
			remove[name] = true
			dropped = append(dropped, name)
		}
	}
	if len(dropped) == 0 {
		return t, nil
	}
	keep := make([]string, 0, t.schema.Len()-len(dropped))
	for _, name := range t.schema.columns {
		if !remove[name] {
			keep = append(keep, name)
		}
	}
	out, _ := t.Select(keep...)
	return out, dropped
}

// Select returns the named columns in the given order.
func (t *Table) Select(columns ...string) (*Table, error) {
	if err := t.Require(columns...); err != nil {
		return nil, err
	}
	schema, err := NewSchema(columns...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.name, err)
	}
	positions := make([]int, len(columns))
	for i, name := range columns {
		positions[i], _ = t.schema.Index(name)
	}
	rows := make([][]Value, len(t.rows))
	for i, row := range t.rows {
		values := make([]Value, len(positions))
		for j, pos := range positions {
			values[j] = row[pos]
		}
		rows[i] = values
	}
	return &Table{name: t.name, schema: schema, rows: rows}, nil
}

// MoveFirst reorders the table so column comes first.
func (t *Table) MoveFirst(column string) (*Table, error) {
	if err := t.Require(column); err != nil {
		return nil, err
	}
	order := make([]string, 0, t.schema.Len())
	order = append(order, column)
	for _, name := range t.schema.columns {
		if name != column {
			order = append(order, name)
		}
	}
	return t.Select(order...)
}

// WithColumn sets column to fn(i, row) for every row. An existing column keeps
// its position; a new column is appended.
func (t *Table) WithColumn(column string, fn func(int, Record) Value) *Table {
	idx, exists := t.schema.Index(column)
	schema := t.schema
	if !exists {
		schema, _ = NewSchema(append(t.schema.Columns(), column)...)
		idx = schema.Len() - 1
	}
	rows := make([][]Value, len(t.rows))
	for i, row := range t.rows {
		values := make([]Value, schema.Len())
		copy(values, row)
		values[idx] = fn(i, Record{schema: t.schema, values: row})
		rows[i] = values
	}
	return &Table{name: t.name, schema: schema, rows: rows}
}

// Map rewrites an existing column value by value.
func (t *Table) Map(column string, fn func(Value) Value) (*Table, error) {
	if err := t.Require(column); err != nil {
		return nil, err
	}
	return t.WithColumn(column, func(_ int, r Record) Value { return fn(r.Value(column)) }), nil
}

// Filter keeps the rows for which keep returns true, preserving order.
func (t *Table) Filter(keep func(int, Record) bool) *Table {
	rows := make([][]Value, 0, len(t.rows))
	for i, row := range t.rows {
		if keep(i, Record{schema: t.schema, values: row}) {
			rows = append(rows, row)
		}
	}
	return &Table{name: t.name, schema: t.schema, rows: rows}
}

// Concat appends the rows of other after the rows of t. mapping names, for
// each column of other that should be carried over, the column of t that
// receives it. Columns of t that nothing maps to are null in appended rows.
func (t *Table) Concat(other *Table, mapping map[string]string) (*Table, error) {
	type pair struct{ from, to int }
	pairs := make([]pair, 0, len(mapping))
	for from, to := range mapping {
		fromIdx, ok := other.schema.Index(from)
		if !ok {
			return nil, &SchemaError{Table: other.name, Missing: []string{from}}
		}
		toIdx, ok := t.schema.Index(to)
		if !ok {
			return nil, &SchemaError{Table: t.name, Missing: []string{to}}
		}
		pairs = append(pairs, pair{from: fromIdx, to: toIdx})
	}
	rows := make([][]Value, 0, len(t.rows)+len(other.rows))
	rows = append(rows, t.rows...)
	for _, src := range other.rows {
		values := make([]Value, t.schema.Len())
		for _, p := range pairs {
			values[p.to] = src[p.from]
		}
		rows = append(rows, values)
	}
	return &Table{name: t.name, schema: t.schema, rows: rows}, nil
}

// NullCount returns the number of null cells in column.
func (t *Table) NullCount(column string) (int, error) {
	values, err := t.Column(column)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, v := range values {
		if v.IsNull() {
			n++
		}
	}
	return n, nil
}

// TotalNulls returns the number of null cells across the table.
func (t *Table) TotalNulls() int {
	n := 0
	for _, row := range t.rows {
		for _, v := range row {
			if v.IsNull() {
				n++
			}
		}
	}
	return n
}
