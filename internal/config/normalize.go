package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.normalizeColumns()
	return nil
}

func (c *Config) normalizePaths() error {
	if c.Paths.OutputDir == "" {
		if value, ok := os.LookupEnv("TUNECAT_OUTPUT_DIR"); ok {
			c.Paths.OutputDir = strings.TrimSpace(value)
		}
	}
	var err error
	if c.Paths.OutputDir, err = expandPath(strings.TrimSpace(c.Paths.OutputDir)); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv("TUNECAT_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeColumns() {
	trim := func(s *string, fallback string) {
		*s = strings.TrimSpace(*s)
		if *s == "" {
			*s = fallback
		}
	}
	trim(&c.Tracks.SongColumn, "name")
	trim(&c.Tracks.ArtistColumn, "artists")
	trim(&c.Tracks.IDColumn, defaultIDColumn)
	trim(&c.Tracks.ReleaseDateColumn, "release_date")
	c.Tracks.DropColumns = normalizeList(c.Tracks.DropColumns)

	trim(&c.Charts.SongColumn, "song")
	trim(&c.Charts.ArtistColumn, "artist")
	trim(&c.Charts.IDColumn, defaultIDColumn)
	c.Charts.DropColumns = normalizeList(c.Charts.DropColumns)
	c.Charts.TrimColumns = normalizeList(c.Charts.TrimColumns)

	trim(&c.Artists.NameColumn, "artist_name")
	trim(&c.Artists.IDColumn, defaultArtistIDCol)
	if c.Artists.Delimiter == "" {
		c.Artists.Delimiter = defaultDelimiter
	}
	c.Artists.EnrichColumns = normalizeList(c.Artists.EnrichColumns)
	c.Artists.DropColumns = normalizeList(c.Artists.DropColumns)

	trim(&c.Popularity.SongColumn, "track_name")
	trim(&c.Popularity.ArtistColumn, "artist_name")
	trim(&c.Popularity.ScoreColumn, "popularity")
	if len(c.Popularity.ColumnMap) == 0 {
		c.Popularity.ColumnMap = defaultPopularityMap()
	} else {
		cleaned := make(map[string]string, len(c.Popularity.ColumnMap))
		for from, to := range c.Popularity.ColumnMap {
			from, to = strings.TrimSpace(from), strings.TrimSpace(to)
			if from == "" || to == "" {
				continue
			}
			cleaned[from] = to
		}
		c.Popularity.ColumnMap = cleaned
	}

	trim(&c.Analysis.IDColumn, defaultIDColumn)
}

func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, exists := seen[value]; exists {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
