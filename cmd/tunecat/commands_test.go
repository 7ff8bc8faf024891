package main

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"tunecat/internal/canon"
	"tunecat/internal/preflight"
	"tunecat/internal/table"
	"tunecat/internal/testsupport"
)

func TestTracksCleanThenDedup(t *testing.T) {
	env := setupCLITestEnv(t)
	input := testsupport.WriteCSV(t, filepath.Join(env.dataDir, "tracks.csv"),
		"id,name,artists,album_id,release_date",
		`1,Shape of You,"['Ed Sheeran']",a,2017`,
		`2,shape of you,"['ED SHEERAN', 'Other']",b,2017`,
		`3,Levitating,"['Dua Lipa']",c,2020`,
	)

	out, stderr, err := runCLI(t, []string{"tracks", "clean", input}, env.configPath)
	if err != nil {
		t.Fatalf("tracks clean: %v\n%s", err, stderr)
	}
	requireContains(t, out, "tracks.clean")
	processed := filepath.Join(env.outputDir, "tracks_processed.csv")
	requireContains(t, out, processed)

	cleaned := testsupport.ReadCSV(t, processed)
	if got := cleaned.Columns(); !slices.Equal(got, []string{"name", "artists", "release_date"}) {
		t.Fatalf("cleaned columns = %v", got)
	}

	out, stderr, err = runCLI(t, []string{"tracks", "dedup", processed}, env.configPath)
	if err != nil {
		t.Fatalf("tracks dedup: %v\n%s", err, stderr)
	}
	requireContains(t, out, "Duplicates removed")

	deduped := testsupport.ReadCSV(t, filepath.Join(env.outputDir, "tracks_processed_deduplicated.csv"))
	if deduped.Len() != 2 {
		t.Fatalf("deduped rows = %d", deduped.Len())
	}
	ids := testsupport.Column(t, deduped, "song_id")
	if ids[0] != canon.SongKey("Shape of You", "Ed Sheeran").String() {
		t.Fatalf("first song id = %s", ids[0])
	}
	requireContains(t, stderr, `"run_id"`)
}

func TestExplicitOutputFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	input := testsupport.WriteCSV(t, filepath.Join(env.dataDir, "charts.csv"),
		"rank,song,artist,last-week",
		"1.0,Stay,The Kid LAROI & Justin Bieber,2.0",
	)
	target := filepath.Join(env.baseDir, "custom", "charts_clean.csv")

	if _, stderr, err := runCLI(t, []string{"charts", "clean", input, "-o", target}, env.configPath); err != nil {
		t.Fatalf("charts clean: %v\n%s", err, stderr)
	}
	charts := testsupport.ReadCSV(t, target)
	if got := testsupport.Column(t, charts, "artist"); got[0] != "The Kid LAROI - Justin Bieber" {
		t.Fatalf("artist = %v", got)
	}
	if _, err := os.Stat(target + ".lock"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("lock file left behind: %v", err)
	}
}

func TestMissingInputFailsPreflight(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"tracks", "clean", filepath.Join(env.dataDir, "missing.csv")}, env.configPath)
	if !errors.Is(err, preflight.ErrNotReady) {
		t.Fatalf("expected preflight failure, got %v", err)
	}
}

func TestDropReleaseDateRequiresColumn(t *testing.T) {
	env := setupCLITestEnv(t)
	input := testsupport.WriteCSV(t, filepath.Join(env.dataDir, "tracks.csv"), "name,artists", "Song,X")
	_, _, err := runCLI(t, []string{"tracks", "drop-release-date", input}, env.configPath)
	if !errors.Is(err, table.ErrSchemaMismatch) {
		t.Fatalf("expected schema mismatch, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(env.outputDir, "tracks_no_release_date.csv")); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("output written despite failure: %v", statErr)
	}
}

func TestArtistsBuildWritesThreeTables(t *testing.T) {
	env := setupCLITestEnv(t)
	tracks := testsupport.WriteCSV(t, filepath.Join(env.dataDir, "tracks.csv"),
		"name,artists",
		`S1,"Dua Lipa, Elton John"`,
	)
	charts := testsupport.WriteCSV(t, filepath.Join(env.dataDir, "charts.csv"),
		"song,artist",
		"C1,Adele",
	)

	if _, stderr, err := runCLI(t, []string{"artists", "build", tracks, charts}, env.configPath); err != nil {
		t.Fatalf("artists build: %v\n%s", err, stderr)
	}
	artists := testsupport.ReadCSV(t, filepath.Join(env.outputDir, "artists_id.csv"))
	if got := testsupport.Column(t, artists, "artist_name"); !slices.Equal(got, []string{"Adele", "Dua Lipa", "Elton John"}) {
		t.Fatalf("artists = %v", got)
	}
	withIDs := testsupport.ReadCSV(t, filepath.Join(env.outputDir, "tracks_with_artist_id.csv"))
	if got := testsupport.Column(t, withIDs, "artist_id")[0]; strings.Count(got, ",") != 1 {
		t.Fatalf("track artist ids = %q", got)
	}
	if _, err := os.Stat(filepath.Join(env.outputDir, "charts_with_artist_id.csv")); err != nil {
		t.Fatalf("charts output: %v", err)
	}
}

func TestPopularityEnrich(t *testing.T) {
	env := setupCLITestEnv(t)
	tracks := testsupport.WriteCSV(t, filepath.Join(env.dataDir, "tracks.csv"),
		"name,artists",
		"Song A,X",
		"Song B,Y",
	)
	pop := testsupport.WriteCSV(t, filepath.Join(env.dataDir, "popularity.csv"),
		"track_name,artist_name,popularity",
		"song a,x,80",
	)
	if _, stderr, err := runCLI(t, []string{"popularity", "enrich", tracks, pop}, env.configPath); err != nil {
		t.Fatalf("popularity enrich: %v\n%s", err, stderr)
	}
	out := testsupport.ReadCSV(t, filepath.Join(env.outputDir, "tracks_with_popularity.csv"))
	if got := testsupport.Column(t, out, "popularity"); !slices.Equal(got, []string{"80", "<null>"}) {
		t.Fatalf("popularity = %v", got)
	}
}

func TestAnalyzeIDsCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	input := testsupport.WriteCSV(t, filepath.Join(env.dataDir, "charts.csv"),
		"song_id,song",
		"a,One",
		"a,One again",
		"b,Two",
	)
	out, stderr, err := runCLI(t, []string{"analyze", "ids", input}, env.configPath)
	if err != nil {
		t.Fatalf("analyze ids: %v\n%s", err, stderr)
	}
	requireContains(t, out, "Quality: POOR")
	report := filepath.Join(env.dataDir, "charts_song_id_analysis.txt")
	requireContains(t, out, report)
	if _, err := os.Stat(report); err != nil {
		t.Fatalf("report not written: %v", err)
	}

	if _, _, err := runCLI(t, []string{"analyze", "ids", input, "--column", "song", "--no-report"}, env.configPath); err != nil {
		t.Fatalf("analyze ids --no-report: %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.dataDir, "charts_song_analysis.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("report written despite --no-report: %v", err)
	}
}

func TestKeyCommand(t *testing.T) {
	out, _, err := runCLI(t, []string{"key", "Shape of You", "Ed Sheeran"}, "")
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	want := canon.DeriveKey("Shape of You", "Ed Sheeran").String()
	if strings.TrimSpace(out) != want {
		t.Fatalf("key output = %q, want %q", out, want)
	}

	out, _, err = runCLI(t, []string{"key", "-v", "Beyoncé"}, "")
	if err != nil {
		t.Fatalf("key -v: %v", err)
	}
	requireContains(t, out, "beyonce")

	if _, _, err := runCLI(t, []string{"key", "--strict", "bad\xffbyte"}, ""); !errors.Is(err, canon.ErrEncoding) {
		t.Fatalf("expected encoding error, got %v", err)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, env.outputDir)

	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected error when config already exists")
	}
}

func TestStatLabel(t *testing.T) {
	if got := statLabel("duplicates_removed"); got != "Duplicates removed" {
		t.Fatalf("statLabel = %q", got)
	}
	if got := statLabel(""); got != "" {
		t.Fatalf("statLabel(\"\") = %q", got)
	}
}
