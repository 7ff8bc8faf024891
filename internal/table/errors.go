package table

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingField reports a requested field that is null or absent in a row.
	ErrMissingField = errors.New("missing field")
	// ErrSchemaMismatch reports a table that lacks a column an operation needs.
	ErrSchemaMismatch = errors.New("schema mismatch")
)

// SchemaError names the table and the columns it is missing.
type SchemaError struct {
	Table   string
	Missing []string
}

func (e *SchemaError) Error() string {
	name := e.Table
	if name == "" {
		name = "table"
	}
	return fmt.Sprintf("%s: %s is missing required columns: %s",
		ErrSchemaMismatch, name, strings.Join(e.Missing, ", "))
}

func (e *SchemaError) Unwrap() error { return ErrSchemaMismatch }

// ErrorKind classifies the failure for callers that map errors to outcomes.
func (e *SchemaError) ErrorKind() string { return "schema" }
