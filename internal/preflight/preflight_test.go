package preflight

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if CheckDirectoryAccess("test", f).Passed {
		t.Fatal("expected failure for file path")
	}
	if CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope")).Passed {
		t.Fatal("expected failure for missing dir")
	}
}

func TestCheckInputFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "tracks.csv")
	if err := os.WriteFile(f, []byte("a\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if r := CheckInputFile("Tracks", f); !r.Passed {
		t.Fatalf("expected pass, got %s", r.Detail)
	}
	if r := CheckInputFile("Tracks", dir); r.Passed || !strings.Contains(r.Detail, "regular file") {
		t.Fatalf("expected directory to fail, got %+v", r)
	}
	if r := CheckInputFile("Tracks", filepath.Join(dir, "missing.csv")); r.Passed || !strings.Contains(r.Detail, "does not exist") {
		t.Fatalf("expected missing file to fail, got %+v", r)
	}
}

func TestCheckOutputTarget(t *testing.T) {
	dir := t.TempDir()
	if r := CheckOutputTarget("out", filepath.Join(dir, "a", "b", "out.csv")); !r.Passed {
		t.Fatalf("expected pass for creatable nested path, got %s", r.Detail)
	}
	if r := CheckOutputTarget("out", dir); r.Passed {
		t.Fatal("expected failure when target is a directory")
	}
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if r := CheckOutputTarget("out", filepath.Join(blocker, "out.csv")); r.Passed {
		t.Fatal("expected failure when parent is a file")
	}
}

func TestRunAndErr(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	if err := os.WriteFile(in, []byte("a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ok := Run(Plan{Inputs: []Input{{Name: "Tracks", Path: in}}, Outputs: []string{filepath.Join(dir, "out.csv")}})
	if len(ok) != 2 {
		t.Fatalf("expected 2 results, got %d", len(ok))
	}
	if err := Err(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := Run(Plan{Inputs: []Input{{Name: "Charts", Path: filepath.Join(dir, "missing.csv")}}})
	err := Err(bad)
	if !errors.Is(err, ErrNotReady) || !strings.Contains(err.Error(), "Charts") {
		t.Fatalf("expected ErrNotReady naming Charts, got %v", err)
	}
}

func TestRunChecksDirectoriesFirst(t *testing.T) {
	dir := t.TempDir()
	results := Run(Plan{
		Directories: []Input{
			{Name: "Output directory", Path: dir},
			{Name: "Log directory", Path: filepath.Join(dir, "absent")},
		},
		Outputs: []string{filepath.Join(dir, "out.csv")},
	})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !results[0].Passed || results[1].Passed {
		t.Fatalf("unexpected directory results: %+v", results[:2])
	}
	if err := Err(results); !strings.Contains(err.Error(), "Log directory") {
		t.Fatalf("expected failure naming the log directory, got %v", err)
	}
}
