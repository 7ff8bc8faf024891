// Package catalog implements the dataset operations of the music catalog
// pipeline: cleaning and deduplicating tracks, cleaning weekly charts,
// building and enriching the artist dimension, and folding popularity data
// into tracks.
//
// Each operation takes fully loaded tables and the relevant configuration
// section, validates the columns it needs (a missing one aborts with a
// *table.SchemaError before anything is produced), and returns new tables with
// a Summary describing what changed. Inputs are never modified.
package catalog
