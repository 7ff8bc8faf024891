package preflight

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotReady reports that at least one preflight check failed.
var ErrNotReady = errors.New("preflight failed")

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Input names a file an operation reads.
type Input struct {
	Name string
	Path string
}

// Plan lists the files an operation reads and writes, plus the configured
// directories it depends on.
type Plan struct {
	Inputs      []Input
	Outputs     []string
	Directories []Input
}

// Run executes every check in the plan: directories, inputs, then outputs.
func Run(plan Plan) []Result {
	results := make([]Result, 0, len(plan.Directories)+len(plan.Inputs)+len(plan.Outputs))
	for _, dir := range plan.Directories {
		results = append(results, CheckDirectoryAccess(dir.Name, dir.Path))
	}
	for _, in := range plan.Inputs {
		results = append(results, CheckInputFile(in.Name, in.Path))
	}
	for _, out := range plan.Outputs {
		results = append(results, CheckOutputTarget("Output "+out, out))
	}
	return results
}

// Err returns nil when every result passed, otherwise an error wrapping
// ErrNotReady that lists each failure.
func Err(results []Result) error {
	var failed []string
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, fmt.Sprintf("%s: %s", r.Name, r.Detail))
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNotReady, strings.Join(failed, "; "))
}
