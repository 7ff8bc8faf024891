// Package merge implements the catalog's row identity rules on top of
// canonical keys: stable deduplication, left-join enrichment, and the
// immutable artist KeyIndex that catalog operations share within a run.
//
// Structural problems (a required column absent from a table) abort the call
// with a *table.SchemaError before any row is touched. Row-level problems never
// abort: a null field contributes "" to the key and is recorded as a
// missing-field anomaly, and text that is not valid UTF-8 is recorded as an
// encoding anomaly and handled per operation (skipped by Dedup and by the
// supplementary side of LeftJoin, kept unenriched on the base side).
// Every call returns a Report with the counts and anomalies it observed.
package merge
