package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tunecat/internal/analysis"
	"tunecat/internal/logging"
	"tunecat/internal/preflight"
	"tunecat/internal/table"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Inspect dataset quality",
	}
	analyzeCmd.AddCommand(newAnalyzeIDsCommand(ctx))
	return analyzeCmd
}

func newAnalyzeIDsCommand(ctx *commandContext) *cobra.Command {
	var column string
	var topN int
	var noReport bool

	cmd := &cobra.Command{
		Use:   "ids <input.csv>",
		Short: "Report uniqueness and duplicates of an id column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			input := args[0]
			if strings.TrimSpace(column) == "" {
				column = cfg.Analysis.IDColumn
			}
			if topN <= 0 {
				topN = cfg.Analysis.TopN
			}
			writeReport := cfg.Analysis.WriteReport && !noReport

			parent, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			runCtx, logger, closeLog, err := ctx.logger(parent, cmd.ErrOrStderr(), "analyze.ids")
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			plan := preflight.Plan{
				Inputs:      []preflight.Input{{Name: "Input", Path: input}},
				Directories: ctx.configuredDirectories(),
			}
			reportPath := analysis.ReportPath(input, column)
			if writeReport {
				plan.Outputs = []string{reportPath}
			}
			if err := preflight.Err(preflight.Run(plan)); err != nil {
				return err
			}

			t, err := table.ReadFile(input, table.WithProgress(progressSink(cmd.ErrOrStderr())))
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			if err := runCtx.Err(); err != nil {
				return err
			}

			res, err := analysis.AnalyzeIDs(t, column, topN)
			if err != nil {
				return err
			}
			logger.Info("id analysis complete",
				logging.String("column", column),
				logging.Int("rows", res.TotalRows),
				logging.Int("unique", res.Unique),
				logging.Int("duplicates", res.Duplicates),
				logging.Float64("unique_pct", res.UniquePct),
				logging.String("grade", string(res.Grade)),
				logging.Bool("report", writeReport),
			)

			stdout := cmd.OutOrStdout()
			fmt.Fprint(stdout, analysis.Render(res, isTerminal(stdout)))
			if writeReport {
				if err := analysis.WriteReport(reportPath, input, res, time.Now()); err != nil {
					return err
				}
				fmt.Fprintf(stdout, "Report saved to %s\n", reportPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&column, "column", "", "Id column to analyse (default from config)")
	cmd.Flags().IntVar(&topN, "top", 0, "Number of duplicated ids and samples to list (default from config)")
	cmd.Flags().BoolVar(&noReport, "no-report", false, "Do not save the report file")
	return cmd
}
