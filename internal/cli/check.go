package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ShivMunagala/pydoccheck/internal/checker"
	"github.com/ShivMunagala/pydoccheck/internal/report"
	"github.com/ShivMunagala/pydoccheck/internal/runner"
	"github.com/ShivMunagala/pydoccheck/internal/storage"
)

type checkOptions struct {
	format           string
	workers          int
	noCache          bool
	requireDocstring bool
	checkOrder       bool
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Check Python files for docstring type-hint drift",
		Long: `Check compares each function's signature against its docstring Args section
and prints a finding for every discrepancy. Targets may be files or
directories; directories are walked recursively for .py files.

The exit status is 1 when any finding is reported, 0 on a clean run.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: text, json, or sarif")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "number of concurrent workers (0 uses the CPU count)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "re-check all files ignoring cached results")
	cmd.Flags().BoolVar(&opts.requireDocstring, "require-docstring", false, "report functions with parameters but no docstring")
	cmd.Flags().BoolVar(&opts.checkOrder, "check-order", false, "report documented parameters listed out of signature order")

	return cmd
}

func runCheck(cmd *cobra.Command, targets []string, opts *checkOptions) error {
	cfg := appConfig

	format := report.Format(cfg.Format)
	if opts.format != "" {
		format = report.Format(opts.format)
	}
	reporter, err := report.NewReporter(format)
	if err != nil {
		return err
	}

	workers := cfg.Workers
	if opts.workers > 0 {
		workers = opts.workers
	}

	chk := checker.New(checker.Config{
		CheckOrder:       cfg.Checks.CheckOrder || opts.checkOrder,
		RequireDocstring: cfg.Checks.RequireDocstring || opts.requireDocstring,
	})

	var store storage.Storage
	if cfg.Cache.Enabled {
		if err := os.MkdirAll(filepath.Dir(cfg.Cache.Path), 0755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
		st, err := storage.NewSQLiteStorage(cfg.Cache.Path)
		if err != nil {
			// A broken cache degrades to an uncached run
			logger.Warn("failed to open result cache", "path", cfg.Cache.Path, "error", err)
		} else {
			store = st
			defer func() { _ = st.Close() }()
		}
	}

	r := runner.New(chk, store, logger)
	results, stats, err := r.Run(cmd.Context(), targets, &runner.Config{
		Workers: workers,
		NoCache: opts.noCache,
		Exclude: cfg.Exclude,
	})
	if err != nil {
		return err
	}

	if err := reporter.Write(cmd.OutOrStdout(), results); err != nil {
		return err
	}

	for _, msg := range stats.ErrorMessages {
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", msg)
	}

	logger.Debug("check complete",
		"files_checked", stats.FilesChecked,
		"files_cached", stats.FilesCached,
		"findings", stats.FindingsTotal,
		"duration", stats.Duration)

	// Returning the status instead of exiting here lets the deferred cache
	// close run first
	if code := report.ExitCode(results); code != 0 {
		return &exitCodeError{code: code}
	}
	if stats.FilesFailed > 0 {
		return &exitCodeError{code: 2}
	}
	return nil
}

// exitCodeError carries a process exit status back through the command's
// error return without producing an error banner
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}
