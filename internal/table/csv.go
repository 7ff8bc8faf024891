package table

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"tunecat/internal/fileutil"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadOption customizes ReadFile.
type ReadOption func(*readOptions)

type readOptions struct {
	progress func(name string, size int64) io.Writer
}

// WithProgress mirrors every byte read from the file into the writer returned
// by fn. fn receives the table name and the file size.
func WithProgress(fn func(name string, size int64) io.Writer) ReadOption {
	return func(o *readOptions) {
		o.progress = fn
	}
}

// ReadCSV decodes a table whose first row is the header. Rows shorter than the
// header are padded with nulls; longer rows are an error.
func ReadCSV(name string, r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: missing header row", name)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", name, err)
	}
	columns := make([]string, len(header))
	for i, col := range header {
		columns[i] = strings.TrimSpace(col)
	}
	t, err := New(name, columns...)
	if err != nil {
		return nil, err
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if len(row) > len(columns) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%s: line %d has %d cells, header has %d columns", name, line, len(row), len(columns))
		}
		values := make([]Value, len(columns))
		for i, cell := range row {
			values[i] = Cell(cell)
		}
		t.rows = append(t.rows, values)
	}
	return t, nil
}

// WriteCSV encodes the header and rows of t. Null cells are written empty.
func WriteCSV(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.schema.columns); err != nil {
		return err
	}
	record := make([]string, t.schema.Len())
	for _, row := range t.rows {
		for i, v := range row {
			record[i] = v.String()
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ReadFile reads a CSV file into a table named after the file's base name.
func ReadFile(path string, opts ...ReadOption) (*Table, error) {
	var o readOptions
	for _, opt := range opts {
		opt(&o)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var r io.Reader = f
	if o.progress != nil {
		var size int64
		if info, err := f.Stat(); err == nil {
			size = info.Size()
		}
		if sink := o.progress(name, size); sink != nil {
			r = io.TeeReader(f, sink)
		}
	}
	return ReadCSV(name, r)
}

// WriteFile atomically replaces path with the CSV encoding of t.
func WriteFile(path string, t *Table) error {
	return WriteFiles([]string{path}, []*Table{t})
}

// WriteFiles writes tables[i] to paths[i]. No path is replaced unless every
// table was encoded successfully.
func WriteFiles(paths []string, tables []*Table) error {
	if len(paths) != len(tables) {
		return fmt.Errorf("write files: %d paths for %d tables", len(paths), len(tables))
	}
	targets := make([]fileutil.Target, len(paths))
	for i, path := range paths {
		t := tables[i]
		targets[i] = fileutil.Target{Path: path, Fill: func(w io.Writer) error {
			return WriteCSV(w, t)
		}}
	}
	return fileutil.WriteAtomicAll(targets)
}
