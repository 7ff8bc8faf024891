package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"tunecat/internal/fileutil"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains output and log locations.
type Paths struct {
	// OutputDir receives derived files. Empty writes next to the input file.
	OutputDir string `toml:"output_dir"`
	// LogDir receives tunecat.log in JSON format. Empty disables file logging.
	LogDir string `toml:"log_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Tracks describes the tracks dataset.
type Tracks struct {
	SongColumn        string   `toml:"song_column"`
	ArtistColumn      string   `toml:"artist_column"`
	IDColumn          string   `toml:"id_column"`
	DropColumns       []string `toml:"drop_columns"`
	ReleaseDateColumn string   `toml:"release_date_column"`
}

// Charts describes the weekly charts dataset.
type Charts struct {
	SongColumn   string   `toml:"song_column"`
	ArtistColumn string   `toml:"artist_column"`
	IDColumn     string   `toml:"id_column"`
	DropColumns  []string `toml:"drop_columns"`
	TrimColumns  []string `toml:"trim_columns"`
}

// Artists describes the artist dimension tables.
type Artists struct {
	NameColumn    string   `toml:"name_column"`
	IDColumn      string   `toml:"id_column"`
	Delimiter     string   `toml:"delimiter"`
	EnrichColumns []string `toml:"enrich_columns"`
	DropColumns   []string `toml:"drop_columns"`
}

// Popularity describes the popularity dataset and how it maps onto tracks.
type Popularity struct {
	SongColumn   string `toml:"song_column"`
	ArtistColumn string `toml:"artist_column"`
	ScoreColumn  string `toml:"score_column"`
	// ColumnMap maps popularity columns to tracks columns for append.
	ColumnMap map[string]string `toml:"column_map"`
}

// Analysis contains settings for key quality reports.
type Analysis struct {
	IDColumn    string `toml:"id_column"`
	TopN        int    `toml:"top_n"`
	WriteReport bool   `toml:"write_report"`
}

// Config encapsulates all configuration values for tunecat.
//
// Configuration sections:
//   - Paths: output and log directories
//   - Logging: log format and level
//   - Tracks, Charts, Artists, Popularity: dataset column layouts
//   - Analysis: song id quality reports
type Config struct {
	Paths      Paths      `toml:"paths"`
	Logging    Logging    `toml:"logging"`
	Tracks     Tracks     `toml:"tracks"`
	Charts     Charts     `toml:"charts"`
	Artists    Artists    `toml:"artists"`
	Popularity Popularity `toml:"popularity"`
	Analysis   Analysis   `toml:"analysis"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		// A column_map in the file replaces the default mapping rather than merging into it.
		cfg.Popularity.ColumnMap = nil
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				return nil, "", false, fmt.Errorf("parse config: %s", strict.String())
			}
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the configured output and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// OutputPath returns where a derived file for input should be written: the
// input path with suffix inserted before the extension, relocated into
// OutputDir when one is configured.
func (c *Config) OutputPath(input, suffix string) string {
	derived := fileutil.DerivedPath(input, suffix)
	if c.Paths.OutputDir == "" {
		return derived
	}
	return filepath.Join(c.Paths.OutputDir, filepath.Base(derived))
}

// LogFile returns the JSON log file path, or "" when file logging is off.
func (c *Config) LogFile() string {
	if c.Paths.LogDir == "" {
		return ""
	}
	return filepath.Join(c.Paths.LogDir, "tunecat.log")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if err := fileutil.WriteFileAtomic(path, []byte(sampleConfig)); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
