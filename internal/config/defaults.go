package config

const (
	defaultConfigPath  = "~/.config/tunecat/config.toml"
	projectConfigName  = "tunecat.toml"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultDelimiter   = ","
	defaultTopN        = 10
	defaultIDColumn    = "song_id"
	defaultArtistIDCol = "artist_id"
)

var (
	defaultTrackDropColumns  = []string{"id", "album_id", "artist_ids", "track_number", "disc_number"}
	defaultChartDropColumns  = []string{"last-week"}
	defaultChartTrimColumns  = []string{"rank", "peak-rank", "weeks-on-board"}
	defaultArtistEnrich      = []string{"artist_genre", "artist_img", "country"}
	defaultArtistDropColumns = []string{"artist_img"}
)

func defaultPopularityMap() map[string]string {
	m := map[string]string{
		"track_id":    "id",
		"track_name":  "name",
		"artist_name": "artists",
	}
	for _, feature := range []string{
		"acousticness", "danceability", "duration_ms", "energy", "instrumentalness",
		"key", "liveness", "loudness", "mode", "speechiness", "tempo",
		"time_signature", "valence", "year",
	} {
		m[feature] = feature
	}
	return m
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Tracks: Tracks{
			SongColumn:        "name",
			ArtistColumn:      "artists",
			IDColumn:          defaultIDColumn,
			DropColumns:       append([]string(nil), defaultTrackDropColumns...),
			ReleaseDateColumn: "release_date",
		},
		Charts: Charts{
			SongColumn:   "song",
			ArtistColumn: "artist",
			IDColumn:     defaultIDColumn,
			DropColumns:  append([]string(nil), defaultChartDropColumns...),
			TrimColumns:  append([]string(nil), defaultChartTrimColumns...),
		},
		Artists: Artists{
			NameColumn:    "artist_name",
			IDColumn:      defaultArtistIDCol,
			Delimiter:     defaultDelimiter,
			EnrichColumns: append([]string(nil), defaultArtistEnrich...),
			DropColumns:   append([]string(nil), defaultArtistDropColumns...),
		},
		Popularity: Popularity{
			SongColumn:   "track_name",
			ArtistColumn: "artist_name",
			ScoreColumn:  "popularity",
			ColumnMap:    defaultPopularityMap(),
		},
		Analysis: Analysis{
			IDColumn:    defaultIDColumn,
			TopN:        defaultTopN,
			WriteReport: true,
		},
	}
}
