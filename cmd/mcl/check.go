package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mcl/internal/diag"
	"mcl/internal/driver"
	"mcl/internal/source"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] <file.mcl|directory>",
		Short: "Check MCL documents for errors",
		Long:  `Check parses a document or every *.mcl file within a directory and reports diagnostics`,
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}
	cmd.Flags().String("format", "", "diagnostics format (pretty|json|short); default from mcl.toml")
	cmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	cmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
	addParseFlags(cmd)
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := s.applyParseFlags(cmd); err != nil {
		return err
	}
	if format == "" {
		format = s.cfg.Diagnostics.Format
	}
	opts, err := s.driverOptions()
	if err != nil {
		return err
	}

	st, err := os.Stat(args[0])
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if !st.IsDir() {
		return checkFile(cmd, args[0], opts, s, format)
	}
	return checkDir(cmd, args[0], opts, s, format, jobs, mode)
}

func checkFile(cmd *cobra.Command, path string, opts driver.Options, s *settings, format string) error {
	result, err := driver.Parse(path, opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if err := printDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet, s, format); err != nil {
		return err
	}
	if s.timings {
		fmt.Fprint(cmd.ErrOrStderr(), result.Timer.Summary())
	}
	if result.Err != nil {
		return errDocumentFailed
	}
	if !s.quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
	}
	return nil
}

func checkDir(cmd *cobra.Command, dir string, opts driver.Options, s *settings, format string, jobs int, mode uiMode) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		fileSet *source.FileSet
		results []driver.ParseDirResult
		err     error
	)
	if shouldUseTUI(mode, cmd.OutOrStdout()) && !s.quiet {
		files, listErr := driver.ListFiles(dir, opts.Extensions)
		if listErr != nil {
			return listErr
		}
		fileSet, results, err = runCheckWithUI(ctx, cmd.OutOrStdout(), "mcl check "+dir, files, dir, opts, jobs)
	} else {
		fileSet, results, err = driver.ParseDir(ctx, dir, opts, jobs, nil)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	bag := diag.NewBag(s.cfg.Diagnostics.Max)
	dropped := 0
	for i := range results {
		dropped += bag.Merge(results[i].Bag)
	}
	if err := printDiagnostics(cmd.ErrOrStderr(), bag, fileSet, s, format); err != nil {
		return err
	}
	if dropped > 0 && !s.quiet && format != "json" {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d more diagnostics not shown (--max-diagnostics %d)\n", dropped, s.cfg.Diagnostics.Max)
	}
	if s.timings {
		printDirTimings(cmd.ErrOrStderr(), results)
	}

	failed := driver.CountFailed(results)
	if !s.quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "checked %d files, %d failed\n", len(results), failed)
	}
	if failed > 0 {
		return errDocumentFailed
	}
	return nil
}
