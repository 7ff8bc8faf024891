package merge

import (
	"log/slog"

	"tunecat/internal/canon"
	"tunecat/internal/logging"
	"tunecat/internal/table"
)

// AnomalyKind classifies a row-level problem.
type AnomalyKind string

const (
	// KindMissingField marks a null or absent key field that was read as "".
	KindMissingField AnomalyKind = "missing_field"
	// KindEncoding marks a key field that is not valid UTF-8.
	KindEncoding AnomalyKind = "encoding"
)

// Anomaly records one row-level problem. Row is the zero-based row index in
// Table.
type Anomaly struct {
	Table string
	Row   int
	Field string
	Kind  AnomalyKind
	Err   error
}

// ErrorKind exposes the anomaly kind through the same classifier shape as
// table.SchemaError.
func (a Anomaly) ErrorKind() string { return string(a.Kind) }

// Report summarizes one merge call.
type Report struct {
	Operation string
	RowsIn    int
	RowsOut   int

	// Dedup
	Duplicates int
	Skipped    int

	// LeftJoin
	Matched              int
	Unmatched            int
	SupplementaryRows    int
	SupplementarySkipped int

	MissingFields  int
	EncodingErrors int
	Anomalies      []Anomaly
}

func (r *Report) record(a Anomaly) {
	switch a.Kind {
	case KindMissingField:
		r.MissingFields++
	case KindEncoding:
		r.EncodingErrors++
	}
	r.Anomalies = append(r.Anomalies, a)
}

// Add folds other's counters and anomalies into r. RowsIn and RowsOut are left
// to the caller.
func (r *Report) Add(other *Report) {
	if other == nil {
		return
	}
	r.Duplicates += other.Duplicates
	r.Skipped += other.Skipped
	r.Matched += other.Matched
	r.Unmatched += other.Unmatched
	r.SupplementaryRows += other.SupplementaryRows
	r.SupplementarySkipped += other.SupplementarySkipped
	r.MissingFields += other.MissingFields
	r.EncodingErrors += other.EncodingErrors
	r.Anomalies = append(r.Anomalies, other.Anomalies...)
}

// MaxLoggedAnomalies bounds per-row WARN lines emitted by LogAnomalies.
const MaxLoggedAnomalies = 20

// LogAnomalies writes the first MaxLoggedAnomalies anomalies at WARN and a
// summary line for the rest.
func (r *Report) LogAnomalies(logger *slog.Logger) {
	if logger == nil || len(r.Anomalies) == 0 {
		return
	}
	for i, a := range r.Anomalies {
		if i == MaxLoggedAnomalies {
			logging.WarnWithContext(logger, "further row anomalies suppressed", "row_anomalies_suppressed",
				logging.String("operation", r.Operation),
				logging.Int("suppressed", len(r.Anomalies)-MaxLoggedAnomalies),
				logging.Int("missing_fields", r.MissingFields),
				logging.Int("encoding_errors", r.EncodingErrors),
				logging.String(logging.FieldErrorHint, "run analyze ids on the output to inspect key quality"),
			)
			return
		}
		attrs := []logging.Attr{
			logging.String("operation", r.Operation),
			logging.String("table", a.Table),
			logging.Int("row", a.Row),
			logging.String("field", a.Field),
			logging.String("kind", string(a.Kind)),
		}
		switch a.Kind {
		case KindEncoding:
			attrs = append(attrs,
				logging.String(logging.FieldErrorHint, "re-export the source file as UTF-8"),
				logging.String(logging.FieldImpact, "row excluded from key matching"),
			)
		default:
			attrs = append(attrs,
				logging.String(logging.FieldErrorHint, "fill the empty cell in the source file"),
				logging.String(logging.FieldImpact, "empty value used for the canonical key"),
			)
		}
		if a.Err != nil {
			attrs = append(attrs, logging.Error(a.Err))
		}
		logging.WarnWithContext(logger, "row anomaly", "row_anomaly", attrs...)
	}
}

// rowKey derives the canonical key of fields in rec. Null fields are read as
// "" and recorded; ok is false when a field is not valid UTF-8.
func rowKey(rep *Report, tableName string, row int, rec table.Record, fields []string) (canon.Key, bool) {
	values := make([]string, len(fields))
	for i, field := range fields {
		text, err := rec.Field(field)
		if err != nil {
			rep.record(Anomaly{Table: tableName, Row: row, Field: field, Kind: KindMissingField, Err: err})
		}
		if _, err := canon.NormalizeStrict(text); err != nil {
			rep.record(Anomaly{Table: tableName, Row: row, Field: field, Kind: KindEncoding, Err: err})
			return "", false
		}
		values[i] = text
	}
	return canon.DeriveKey(values...), true
}
