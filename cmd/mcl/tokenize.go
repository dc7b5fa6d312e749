package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mcl/internal/diagfmt"
	"mcl/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <file.mcl|->",
		Short: "Tokenize an MCL document",
		Long:  `Tokenize breaks an MCL document down into its tokens; "-" reads standard input`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	var result *driver.TokenizeResult
	if args[0] == "-" {
		data, err := readStdin(cmd)
		if err != nil {
			return err
		}
		result = driver.TokenizeBytes(stdinName, data, s.cfg.Diagnostics.Max)
	} else {
		result, err = driver.Tokenize(args[0], s.cfg.Diagnostics.Max)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}

	// Выводим диагностику в stderr, если есть
	if err := printDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet, s, s.cfg.Diagnostics.Format); err != nil {
		return err
	}
	if result.Err != nil {
		return errDocumentFailed
	}

	switch format {
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	}
}
