package config_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"tunecat/internal/config"
)

func TestLoadDefaultConfigWhenNoFileExists(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	want := filepath.Join(tempHome, ".config", "tunecat", "config.toml")
	if resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if cfg.Paths.OutputDir != "" || cfg.Paths.LogDir != "" {
		t.Fatalf("expected empty paths by default, got %+v", cfg.Paths)
	}
	if cfg.Tracks.SongColumn != "name" || cfg.Tracks.ArtistColumn != "artists" {
		t.Fatalf("unexpected tracks columns: %+v", cfg.Tracks)
	}
	if !slices.Equal(cfg.Tracks.DropColumns, []string{"id", "album_id", "artist_ids", "track_number", "disc_number"}) {
		t.Fatalf("unexpected tracks drop columns: %v", cfg.Tracks.DropColumns)
	}
	if cfg.Popularity.ColumnMap["track_name"] != "name" || cfg.Popularity.ColumnMap["valence"] != "valence" {
		t.Fatalf("unexpected popularity mapping: %v", cfg.Popularity.ColumnMap)
	}
	if cfg.Analysis.TopN != 10 {
		t.Fatalf("unexpected top_n: %d", cfg.Analysis.TopN)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	configPath := filepath.Join(t.TempDir(), "tunecat.toml")
	content := `
[paths]
output_dir = "~/out"
log_dir = "~/logs"

[logging]
format = " JSON "
level = "Debug"

[charts]
song_column = " title "
drop_columns = ["last-week", "", "last-week", "peak"]

[popularity.column_map]
track_id = "id"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Paths.OutputDir != filepath.Join(tempHome, "out") {
		t.Fatalf("unexpected output dir: %q", cfg.Paths.OutputDir)
	}
	if cfg.LogFile() != filepath.Join(tempHome, "logs", "tunecat.log") {
		t.Fatalf("unexpected log file: %q", cfg.LogFile())
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}
	if cfg.Charts.SongColumn != "title" {
		t.Fatalf("unexpected song column: %q", cfg.Charts.SongColumn)
	}
	if !slices.Equal(cfg.Charts.DropColumns, []string{"last-week", "peak"}) {
		t.Fatalf("unexpected drop columns: %v", cfg.Charts.DropColumns)
	}
	if len(cfg.Popularity.ColumnMap) != 1 || cfg.Popularity.ColumnMap["track_id"] != "id" {
		t.Fatalf("file mapping should replace defaults, got %v", cfg.Popularity.ColumnMap)
	}
	if cfg.Charts.ArtistColumn != "artist" {
		t.Fatalf("unset keys should keep defaults, got %q", cfg.Charts.ArtistColumn)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "tunecat.toml")
	if err := os.WriteFile(configPath, []byte("[tracks]\nsong_colum = \"x\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, _, err := config.Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "song_colum") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	outDir := t.TempDir()
	t.Setenv("TUNECAT_OUTPUT_DIR", outDir)
	t.Setenv("TUNECAT_LOG_LEVEL", "WARN")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.OutputDir != outDir {
		t.Fatalf("expected output dir from env, got %q", cfg.Paths.OutputDir)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected level from env, got %q", cfg.Logging.Level)
	}
}

func TestOutputPath(t *testing.T) {
	cfg := config.Default()
	if got := cfg.OutputPath("/data/tracks.csv", "_processed"); got != "/data/tracks_processed.csv" {
		t.Fatalf("unexpected path without output dir: %q", got)
	}
	cfg.Paths.OutputDir = "/out"
	if got := cfg.OutputPath("/data/tracks.csv", "_processed"); got != "/out/tracks_processed.csv" {
		t.Fatalf("unexpected path with output dir: %q", got)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(base, "out")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{cfg.Paths.OutputDir, cfg.Paths.LogDir} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", dir, err)
		}
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	def := config.Default()
	if !slices.Equal(cfg.Tracks.DropColumns, def.Tracks.DropColumns) {
		t.Fatalf("sample drop columns drift from defaults: %v", cfg.Tracks.DropColumns)
	}
	if len(cfg.Popularity.ColumnMap) != len(def.Popularity.ColumnMap) {
		t.Fatalf("sample mapping has %d entries, defaults have %d", len(cfg.Popularity.ColumnMap), len(def.Popularity.ColumnMap))
	}
	if cfg.Analysis.TopN != def.Analysis.TopN {
		t.Fatalf("sample top_n drift: %d", cfg.Analysis.TopN)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	cfg = config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for log format")
	}

	cfg = config.Default()
	cfg.Logging.Level = "trace"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for log level")
	}

	cfg = config.Default()
	cfg.Analysis.TopN = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive top_n")
	}

	cfg = config.Default()
	cfg.Popularity.ColumnMap = map[string]string{"a": "name", "b": "name"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for duplicate mapping target")
	}

	cfg = config.Default()
	cfg.Artists.Delimiter = " "
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for blank delimiter")
	}
}

func TestValidateDetectsColumnConflicts(t *testing.T) {
	cases := map[string]struct {
		mutate func(*config.Config)
		want   string
	}{
		"tracks id equals song": {
			mutate: func(c *config.Config) { c.Tracks.IDColumn = c.Tracks.SongColumn },
			want:   "tracks.song_column and tracks.id_column",
		},
		"charts artist equals song": {
			mutate: func(c *config.Config) { c.Charts.ArtistColumn = c.Charts.SongColumn },
			want:   "charts.song_column and charts.artist_column",
		},
		"artists id equals name": {
			mutate: func(c *config.Config) { c.Artists.IDColumn = c.Artists.NameColumn },
			want:   "artists.name_column and artists.id_column",
		},
		"popularity score equals artist": {
			mutate: func(c *config.Config) { c.Popularity.ScoreColumn = c.Popularity.ArtistColumn },
			want:   "popularity.artist_column and popularity.score_column",
		},
		"blank charts song": {
			mutate: func(c *config.Config) { c.Charts.SongColumn = "  " },
			want:   "charts.song_column must not be blank",
		},
		"blank analysis id": {
			mutate: func(c *config.Config) { c.Analysis.IDColumn = "" },
			want:   "analysis.id_column must not be blank",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}

	cfg := config.Default()
	cfg.Charts.IDColumn = cfg.Tracks.SongColumn
	if err := cfg.Validate(); err != nil {
		t.Fatalf("names may repeat across sections: %v", err)
	}
}
