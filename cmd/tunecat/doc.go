// Package main hosts the tunecat CLI entrypoint and command graph.
//
// Each dataset command follows the same path: preflight checks on its inputs
// and outputs, CSV reads with a progress bar on interactive terminals, one
// internal/catalog operation, atomic locked writes, and a summary table.
// Configuration and logging are resolved once per invocation so subcommands
// only describe their files and the operation to run.
package main
