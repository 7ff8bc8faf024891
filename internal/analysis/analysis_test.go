package analysis_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"tunecat/internal/analysis"
	"tunecat/internal/testsupport"
)

func TestAnalyzeIDs(t *testing.T) {
	ids := testsupport.Table(t, "charts", []string{"song_id"},
		[]string{"a"},
		[]string{"b"},
		[]string{"a"},
		[]string{""},
		[]string{"c"},
		[]string{"b"},
		[]string{"a"},
		[]string{"d"},
	)

	res, err := analysis.AnalyzeIDs(ids, "song_id", 10)
	if err != nil {
		t.Fatalf("AnalyzeIDs: %v", err)
	}
	if res.TotalRows != 8 || res.NonNull != 7 || res.Nulls != 1 {
		t.Fatalf("counts = total %d non-null %d null %d", res.TotalRows, res.NonNull, res.Nulls)
	}
	if res.Unique != 4 || res.Duplicates != 3 {
		t.Fatalf("unique %d duplicates %d", res.Unique, res.Duplicates)
	}
	if res.RepeatedIDs != 2 {
		t.Fatalf("repeated ids = %d", res.RepeatedIDs)
	}
	wantTop := []analysis.DuplicateID{{ID: "a", Count: 3}, {ID: "b", Count: 2}}
	if !slices.Equal(res.TopDuplicates, wantTop) {
		t.Fatalf("top duplicates = %+v", res.TopDuplicates)
	}
	wantDist := []analysis.Multiplicity{{Occurrences: 2, IDs: 1}, {Occurrences: 3, IDs: 1}}
	if !slices.Equal(res.Distribution, wantDist) {
		t.Fatalf("distribution = %+v", res.Distribution)
	}
	if !slices.Equal(res.Sample, []string{"a", "b", "c", "d"}) {
		t.Fatalf("sample = %v", res.Sample)
	}
	if res.Grade != analysis.GradePoor {
		t.Fatalf("grade = %s (unique %.2f%%)", res.Grade, res.UniquePct)
	}
}

func TestAnalyzeIDsTopNBreaksTiesByID(t *testing.T) {
	ids := testsupport.Table(t, "charts", []string{"song_id"},
		[]string{"z"}, []string{"z"},
		[]string{"m"}, []string{"m"},
		[]string{"k"}, []string{"k"},
	)
	res, err := analysis.AnalyzeIDs(ids, "song_id", 2)
	if err != nil {
		t.Fatalf("AnalyzeIDs: %v", err)
	}
	want := []analysis.DuplicateID{{ID: "k", Count: 2}, {ID: "m", Count: 2}}
	if !slices.Equal(res.TopDuplicates, want) {
		t.Fatalf("top duplicates = %+v", res.TopDuplicates)
	}
	if len(res.Sample) != 2 {
		t.Fatalf("sample = %v", res.Sample)
	}
}

func TestAnalyzeIDsMissingColumn(t *testing.T) {
	ids := testsupport.Table(t, "charts", []string{"id"}, []string{"a"})
	if _, err := analysis.AnalyzeIDs(ids, "song_id", 10); err == nil {
		t.Fatal("expected error for missing column")
	}
}

func TestAnalyzeIDsEmptyTable(t *testing.T) {
	ids := testsupport.Table(t, "charts", []string{"song_id"})
	res, err := analysis.AnalyzeIDs(ids, "song_id", 10)
	if err != nil {
		t.Fatalf("AnalyzeIDs: %v", err)
	}
	if res.UniquePct != 0 || res.Grade != analysis.GradePoor {
		t.Fatalf("empty table graded %s at %.2f%%", res.Grade, res.UniquePct)
	}
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		pct  float64
		want analysis.Grade
	}{
		{100, analysis.GradeExcellent},
		{95, analysis.GradeExcellent},
		{94.99, analysis.GradeGood},
		{85, analysis.GradeGood},
		{70, analysis.GradeFair},
		{69.9, analysis.GradePoor},
	}
	for _, tt := range tests {
		if got := analysis.GradeFor(tt.pct); got != tt.want {
			t.Errorf("GradeFor(%v) = %s, want %s", tt.pct, got, tt.want)
		}
	}
}

func TestRenderAndWriteReport(t *testing.T) {
	rows := make([][]string, 0, 1200)
	for i := range 1200 {
		rows = append(rows, []string{strings.Repeat("x", i%7+1) + string(rune('a'+i%26))})
	}
	ids := testsupport.Table(t, "charts", []string{"song_id"}, rows...)
	res, err := analysis.AnalyzeIDs(ids, "song_id", 5)
	if err != nil {
		t.Fatalf("AnalyzeIDs: %v", err)
	}

	out := analysis.Render(res, false)
	for _, want := range []string{"1,200", "Quality: POOR", "Recommendation:", "more unique IDs"} {
		if !strings.Contains(out, want) {
			t.Fatalf("render missing %q:\n%s", want, out)
		}
	}

	input := filepath.Join(t.TempDir(), "charts.csv")
	path := analysis.ReportPath(input, "song_id")
	if filepath.Base(path) != "charts_song_id_analysis.txt" {
		t.Fatalf("report path = %s", path)
	}
	now := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	if err := analysis.WriteReport(path, input, res, now); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "Analysis date: 2024-05-01 12:30:00") || !strings.Contains(text, "Source file: "+input) {
		t.Fatalf("report header unexpected:\n%s", text)
	}
}
