package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tunecat/internal/table"
)

// WriteCSV writes lines joined by newlines to path, creating parent
// directories as needed, and returns path.
func WriteCSV(t testing.TB, path string, lines ...string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	body := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ReadCSV loads path as a table and fails the test on error.
func ReadCSV(t testing.TB, path string) *table.Table {
	t.Helper()

	tbl, err := table.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return tbl
}

// Table builds an in-memory table from raw cells. Empty cells are null.
func Table(t testing.TB, name string, columns []string, rows ...[]string) *table.Table {
	t.Helper()

	tbl, err := table.FromRows(name, columns, rows)
	if err != nil {
		t.Fatalf("FromRows %s: %v", name, err)
	}
	return tbl
}

// Column returns the text of one column, rendering nulls as "<null>".
func Column(t testing.TB, tbl *table.Table, name string) []string {
	t.Helper()

	values, err := tbl.Column(name)
	if err != nil {
		t.Fatalf("Column(%q): %v", name, err)
	}
	out := make([]string, len(values))
	for i, v := range values {
		if v.IsNull() {
			out[i] = "<null>"
			continue
		}
		out[i] = v.String()
	}
	return out
}
