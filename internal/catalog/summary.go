package catalog

import (
	"log/slog"

	"tunecat/internal/logging"
	"tunecat/internal/merge"
)

// Stat is one labelled counter in a Summary.
type Stat struct {
	Label string
	Value int
}

// Summary describes the effect of one operation.
type Summary struct {
	Operation string
	RowsIn    int
	RowsOut   int
	Dropped   []string
	Added     []string
	Stats     []Stat
	Warnings  []string
	Report    merge.Report
}

func newSummary(op string, rowsIn int) *Summary {
	return &Summary{Operation: op, RowsIn: rowsIn, Report: merge.Report{Operation: op}}
}

func (s *Summary) stat(label string, value int) {
	s.Stats = append(s.Stats, Stat{Label: label, Value: value})
}

func (s *Summary) warn(msg string) {
	s.Warnings = append(s.Warnings, msg)
}

func (s *Summary) absorb(rep *merge.Report) {
	s.Report.Add(rep)
}

// Stat returns the value recorded under label.
func (s *Summary) Stat(label string) (int, bool) {
	for _, st := range s.Stats {
		if st.Label == label {
			return st.Value, true
		}
	}
	return 0, false
}

// Log writes the summary at INFO, each warning at WARN, and the row anomalies
// collected by the merge report.
func (s *Summary) Log(logger *slog.Logger) {
	if logger == nil {
		return
	}
	attrs := []logging.Attr{
		logging.Int("rows_in", s.RowsIn),
		logging.Int("rows_out", s.RowsOut),
	}
	if len(s.Dropped) > 0 {
		attrs = append(attrs, logging.Any("dropped_columns", s.Dropped))
	}
	if len(s.Added) > 0 {
		attrs = append(attrs, logging.Any("added_columns", s.Added))
	}
	for _, st := range s.Stats {
		attrs = append(attrs, logging.Int(st.Label, st.Value))
	}
	if s.Report.MissingFields > 0 {
		attrs = append(attrs, logging.Int("missing_fields", s.Report.MissingFields))
	}
	if s.Report.EncodingErrors > 0 {
		attrs = append(attrs, logging.Int("encoding_errors", s.Report.EncodingErrors))
	}
	logger.Info("operation complete", logging.Args(attrs...)...)

	for _, w := range s.Warnings {
		logging.WarnWithContext(logger, w, "operation_warning",
			logging.String(logging.FieldImpact, "output written without this column"),
			logging.String(logging.FieldErrorHint, "check the configured column names against the input header"),
		)
	}
	s.Report.LogAnomalies(logger)
}
