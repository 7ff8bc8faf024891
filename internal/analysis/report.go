package analysis

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"tunecat/internal/fileutil"
)

// ReportPath names the saved report for input, e.g. charts.csv analysed on
// song_id becomes charts_song_id_analysis.txt.
func ReportPath(input, column string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "_" + column + "_analysis.txt"
}

// Render formats the result as text tables. colorize tints the grade.
func Render(r *Result, colorize bool) string {
	var b strings.Builder

	stats := newTable("Statistic", "Value")
	stats.AppendRows([]table.Row{
		{"Total rows", humanize.Comma(int64(r.TotalRows))},
		{"Non-null IDs", humanize.Comma(int64(r.NonNull))},
		{"Null IDs", humanize.Comma(int64(r.Nulls))},
		{"Unique IDs", humanize.Comma(int64(r.Unique))},
		{"Duplicate IDs", humanize.Comma(int64(r.Duplicates))},
		{"Unique", formatPercent(r.UniquePct)},
		{"Duplicate", formatPercent(r.DuplicatePct)},
	})
	if r.Nulls > 0 {
		stats.AppendRow(table.Row{"Null", formatPercent(r.NullPct)})
	}
	fmt.Fprintf(&b, "%s analysis of %s\n", r.Column, r.Table)
	b.WriteString(stats.Render())
	b.WriteString("\n")

	if len(r.TopDuplicates) > 0 {
		fmt.Fprintf(&b, "\n%s IDs appear more than once\n", humanize.Comma(int64(r.RepeatedIDs)))
		top := newTable("#", "ID", "Occurrences")
		for i, d := range r.TopDuplicates {
			top.AppendRow(table.Row{i + 1, d.ID, humanize.Comma(int64(d.Count))})
		}
		b.WriteString(top.Render())
		b.WriteString("\n")

		dist := newTable("Occurrences", "IDs")
		for _, m := range r.Distribution {
			dist.AppendRow(table.Row{m.Occurrences, humanize.Comma(int64(m.IDs))})
		}
		b.WriteString("\n")
		b.WriteString(dist.Render())
		b.WriteString("\n")
	}

	if len(r.Sample) > 0 {
		sample := newTable("#", "Sample ID")
		for i, id := range r.Sample {
			sample.AppendRow(table.Row{i + 1, id})
		}
		b.WriteString("\n")
		b.WriteString(sample.Render())
		b.WriteString("\n")
		if more := r.Unique - len(r.Sample); more > 0 {
			fmt.Fprintf(&b, "... and %s more unique IDs\n", humanize.Comma(int64(more)))
		}
	}

	grade := string(r.Grade)
	if colorize {
		grade = gradeColors(r.Grade).Sprint(grade)
	}
	fmt.Fprintf(&b, "\nQuality: %s\nRecommendation: %s\n", grade, r.Grade.Recommendation())
	return b.String()
}

// WriteReport saves the rendered result to path with a header naming the
// source file and the analysis time.
func WriteReport(path, source string, r *Result, now time.Time) error {
	var b strings.Builder
	b.WriteString("ID ANALYSIS REPORT\n")
	fmt.Fprintf(&b, "Source file: %s\n", source)
	fmt.Fprintf(&b, "Analysis date: %s\n\n", now.Format(time.DateTime))
	b.WriteString(Render(r, false))
	if err := fileutil.WriteFileAtomic(path, []byte(b.String())); err != nil {
		return fmt.Errorf("write analysis report: %w", err)
	}
	return nil
}

func newTable(headers ...string) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	header := make(table.Row, len(headers))
	configs := make([]table.ColumnConfig, len(headers))
	for i, h := range headers {
		header[i] = h
		configs[i] = table.ColumnConfig{Number: i + 1, AlignHeader: text.AlignLeft}
	}
	tw.AppendHeader(header)
	configs[len(configs)-1].Align = text.AlignRight
	tw.SetColumnConfigs(configs)
	return tw
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}

func gradeColors(g Grade) text.Colors {
	switch g {
	case GradeExcellent:
		return text.Colors{text.FgGreen, text.Bold}
	case GradeGood:
		return text.Colors{text.FgYellow}
	case GradeFair:
		return text.Colors{text.FgHiYellow}
	default:
		return text.Colors{text.FgRed, text.Bold}
	}
}
