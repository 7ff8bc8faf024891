package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateColumns(); err != nil {
		return err
	}
	if err := c.validateArtists(); err != nil {
		return err
	}
	if err := c.validatePopularity(); err != nil {
		return err
	}
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (want debug, info, warn, or error)", c.Logging.Level)
	}
	return nil
}

// namedColumn is a configured column name and the key it is set under.
type namedColumn struct {
	key  string
	name string
}

func (c *Config) validateColumns() error {
	sections := [][]namedColumn{
		{
			{"tracks.song_column", c.Tracks.SongColumn},
			{"tracks.artist_column", c.Tracks.ArtistColumn},
			{"tracks.id_column", c.Tracks.IDColumn},
			{"tracks.release_date_column", c.Tracks.ReleaseDateColumn},
		},
		{
			{"charts.song_column", c.Charts.SongColumn},
			{"charts.artist_column", c.Charts.ArtistColumn},
			{"charts.id_column", c.Charts.IDColumn},
		},
		{
			{"artists.name_column", c.Artists.NameColumn},
			{"artists.id_column", c.Artists.IDColumn},
		},
		{
			{"popularity.song_column", c.Popularity.SongColumn},
			{"popularity.artist_column", c.Popularity.ArtistColumn},
			{"popularity.score_column", c.Popularity.ScoreColumn},
		},
		{
			{"analysis.id_column", c.Analysis.IDColumn},
		},
	}
	for _, columns := range sections {
		if err := distinctColumns(columns); err != nil {
			return err
		}
	}
	return nil
}

// distinctColumns rejects blank names and names shared by two keys of the
// same section.
func distinctColumns(columns []namedColumn) error {
	seen := make(map[string]string, len(columns))
	for _, col := range columns {
		if strings.TrimSpace(col.name) == "" {
			return fmt.Errorf("%s must not be blank", col.key)
		}
		if prev, dup := seen[col.name]; dup {
			return fmt.Errorf("%s and %s both name column %q", prev, col.key, col.name)
		}
		seen[col.name] = col.key
	}
	return nil
}

func (c *Config) validateArtists() error {
	if strings.TrimSpace(c.Artists.Delimiter) == "" {
		return errors.New("artists.delimiter must not be blank")
	}
	if len(c.Artists.EnrichColumns) == 0 {
		return errors.New("artists.enrich_columns must name at least one column")
	}
	return nil
}

func (c *Config) validatePopularity() error {
	if len(c.Popularity.ColumnMap) == 0 {
		return errors.New("popularity.column_map must map at least one column")
	}
	targets := make(map[string]string, len(c.Popularity.ColumnMap))
	for from, to := range c.Popularity.ColumnMap {
		if prev, dup := targets[to]; dup {
			return fmt.Errorf("popularity.column_map: %q and %q both map to %q", prev, from, to)
		}
		targets[to] = from
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.TopN <= 0 {
		return errors.New("analysis.top_n must be positive")
	}
	return nil
}
