// Package config loads, normalizes, and validates tunecat configuration data.
//
// It supplies defaults that match the column layouts of the public tracks,
// charts, artists, and popularity datasets, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the TUNECAT_LOG_LEVEL and
// TUNECAT_OUTPUT_DIR environment fallbacks.
//
// Always obtain settings through this package so commands receive trimmed
// column names, canonical log formats, and clear validation errors.
package config
