package table

import "fmt"

// Record is a read-only view of one row.
type Record struct {
	schema *Schema
	values []Value
}

// Value returns the cell for field, or null when the column does not exist.
func (r Record) Value(field string) Value {
	i, ok := r.schema.Index(field)
	if !ok {
		return Null()
	}
	return r.values[i]
}

// Text returns the cell text for field, or "" when null or absent.
func (r Record) Text(field string) string {
	return r.Value(field).String()
}

// Field returns the cell text for field. A null or absent cell yields "" and
// an error wrapping ErrMissingField, which callers count rather than abort on.
func (r Record) Field(field string) (string, error) {
	i, ok := r.schema.Index(field)
	if !ok || r.values[i].IsNull() {
		return "", fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	return r.values[i].String(), nil
}

// Values returns a copy of the cells in schema order.
func (r Record) Values() []Value {
	return append([]Value(nil), r.values...)
}

// Schema returns the schema the record belongs to.
func (r Record) Schema() *Schema { return r.schema }
