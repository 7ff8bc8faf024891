// Package logging assembles structured slog loggers and formatting helpers used
// across tunecat commands.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so every line of one CLI invocation
// carries the same run_id and operation. Console output goes to stderr so
// that stdout stays free for command results; when a log file is configured a
// JSON copy of every record is fanned out to it.
//
// Prefer these constructors over hand-rolled slog setup so all components
// emit data with the same shape.
package logging
