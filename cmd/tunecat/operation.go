package main

import (
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"tunecat/internal/catalog"
	"tunecat/internal/logging"
	"tunecat/internal/preflight"
	"tunecat/internal/table"
)

// operation describes one dataset command: the files it reads, the files it
// writes, and the transformation between them. run must return one table per
// output, in order.
type operation struct {
	name    string
	inputs  []preflight.Input
	outputs []string
	run     func(inputs []*table.Table) ([]*table.Table, *catalog.Summary, error)
}

func (c *commandContext) runOperation(cmd *cobra.Command, op operation) error {
	parent, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, logger, closeLog, err := c.logger(parent, cmd.ErrOrStderr(), op.name)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	start := time.Now()
	plan := preflight.Plan{Inputs: op.inputs, Outputs: op.outputs, Directories: c.configuredDirectories()}
	if err := preflight.Err(preflight.Run(plan)); err != nil {
		logging.ErrorWithContext(logger, "preflight failed", "preflight_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check that inputs exist and the output directory is writable"),
		)
		return err
	}

	tables := make([]*table.Table, 0, len(op.inputs))
	for _, in := range op.inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		t, err := table.ReadFile(in.Path, table.WithProgress(progressSink(cmd.ErrOrStderr())))
		if err != nil {
			return fmt.Errorf("read %s: %w", in.Name, err)
		}
		logger.Debug("input loaded",
			logging.String("path", in.Path),
			logging.Int("rows", t.Len()),
			logging.Int("columns", len(t.Columns())),
		)
		tables = append(tables, t)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	results, sum, err := op.run(tables)
	if err != nil {
		return fmt.Errorf("%s: %w", op.name, err)
	}
	if len(results) != len(op.outputs) {
		return fmt.Errorf("%s: produced %d tables for %d outputs", op.name, len(results), len(op.outputs))
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := table.WriteFiles(op.outputs, results); err != nil {
		return fmt.Errorf("write outputs: %w", err)
	}
	for i, path := range op.outputs {
		logger.Info("output written", logging.String("path", path), logging.Int("rows", results[i].Len()))
	}

	sum.Log(logger)
	logger.Debug("operation finished", logging.Duration("elapsed", time.Since(start)))
	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(sum, op.outputs))
	return nil
}

// progressSink returns a per-file byte progress bar factory when stderr is a
// terminal, and nil otherwise.
func progressSink(stderr io.Writer) func(name string, size int64) io.Writer {
	if !isTerminal(stderr) {
		return nil
	}
	return func(name string, size int64) io.Writer {
		return progressbar.NewOptions64(size,
			progressbar.OptionSetWriter(stderr),
			progressbar.OptionSetDescription("reading "+name),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetTheme(progressbar.ThemeASCII),
			progressbar.OptionClearOnFinish(),
		)
	}
}

func renderSummary(sum *catalog.Summary, outputs []string) string {
	rows := [][]string{
		{"Operation", sum.Operation},
		{"Rows in", humanize.Comma(int64(sum.RowsIn))},
		{"Rows out", humanize.Comma(int64(sum.RowsOut))},
	}
	if len(sum.Dropped) > 0 {
		rows = append(rows, []string{"Dropped columns", strings.Join(sum.Dropped, ", ")})
	}
	if len(sum.Added) > 0 {
		rows = append(rows, []string{"Added columns", strings.Join(sum.Added, ", ")})
	}
	for _, st := range sum.Stats {
		rows = append(rows, []string{statLabel(st.Label), humanize.Comma(int64(st.Value))})
	}
	if n := sum.Report.MissingFields; n > 0 {
		rows = append(rows, []string{"Missing fields", humanize.Comma(int64(n))})
	}
	if n := sum.Report.EncodingErrors; n > 0 {
		rows = append(rows, []string{"Encoding errors", humanize.Comma(int64(n))})
	}
	if n := len(sum.Warnings); n > 0 {
		rows = append(rows, []string{"Warnings", humanize.Comma(int64(n))})
	}
	for _, path := range outputs {
		rows = append(rows, []string{"Output", path})
	}
	return renderTable([]string{"Field", "Value"}, rows)
}

// statLabel turns a stat key such as duplicates_removed into "Duplicates removed".
func statLabel(key string) string {
	label := strings.ReplaceAll(key, "_", " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

// configuredDirectories lists the output and log directories set in the
// config so preflight can confirm they are usable.
func (c *commandContext) configuredDirectories() []preflight.Input {
	cfg := c.configValue()
	var dirs []preflight.Input
	if cfg.Paths.OutputDir != "" {
		dirs = append(dirs, preflight.Input{Name: "Output directory", Path: cfg.Paths.OutputDir})
	}
	if cfg.Paths.LogDir != "" {
		dirs = append(dirs, preflight.Input{Name: "Log directory", Path: cfg.Paths.LogDir})
	}
	return dirs
}

// outputPath returns the explicit output flag when set, otherwise the derived
// path for input.
func (c *commandContext) outputPath(flag, input, suffix string) string {
	if explicit := strings.TrimSpace(flag); explicit != "" {
		return explicit
	}
	return c.configValue().OutputPath(input, suffix)
}
