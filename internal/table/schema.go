package table

import "fmt"

// Schema is an ordered set of column names.
type Schema struct {
	columns []string
	index   map[string]int
}

// NewSchema validates that column names are unique.
func NewSchema(columns ...string) (*Schema, error) {
	s := &Schema{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
	}
	for i, name := range columns {
		if _, dup := s.index[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		s.index[name] = i
	}
	return s, nil
}

// Columns returns a copy of the column names in order.
func (s *Schema) Columns() []string {
	return append([]string(nil), s.columns...)
}

// Len returns the number of columns.
func (s *Schema) Len() int { return len(s.columns) }

// Has reports whether the column exists.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Index returns the position of a column.
func (s *Schema) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Missing returns the requested columns that are not present, in request order.
func (s *Schema) Missing(names ...string) []string {
	var missing []string
	for _, name := range names {
		if !s.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
