// Package table holds the in-memory tabular model shared by every catalog
// operation: an ordered, duplicate-free Schema, Records that map field names to
// nullable text Values, and Tables that are only changed by whole-table
// transformations returning a new Table.
//
// The CSV codec follows the conventions of the datasets it was built for: the
// first row is the header, an empty cell reads as null, null writes back as an
// empty cell, and a leading UTF-8 byte order mark is ignored.
//
// Structural problems surface as *SchemaError (wrapping ErrSchemaMismatch) so
// callers can abort a transformation before writing anything. Row-level gaps
// surface as ErrMissingField from Record.Field and are expected to be counted,
// not propagated.
package table
