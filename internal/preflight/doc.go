// Package preflight checks filesystem readiness before a catalog operation
// starts, so that a missing input or an unwritable output directory is
// reported up front instead of after a full pass over the data.
//
// Each check returns a Result; Run evaluates a Plan and Err folds failed
// results into a single error for the CLI.
package preflight
