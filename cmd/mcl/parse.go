package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mcl/internal/diagfmt"
	"mcl/internal/driver"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <file.mcl|->",
		Short: "Parse an MCL document and print its value tree",
		Long:  `Parse builds the value tree of an MCL document; "-" reads standard input`,
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	addParseFlags(cmd)
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := s.applyParseFlags(cmd); err != nil {
		return err
	}
	opts, err := s.driverOptions()
	if err != nil {
		return err
	}

	var result *driver.ParseResult
	if args[0] == "-" {
		data, err := readStdin(cmd)
		if err != nil {
			return err
		}
		result = driver.ParseBytes(stdinName, data, opts)
	} else {
		result, err = driver.Parse(args[0], opts)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
	}

	if err := printDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet, s, s.cfg.Diagnostics.Format); err != nil {
		return err
	}
	if s.timings {
		fmt.Fprint(cmd.ErrOrStderr(), result.Timer.Summary())
	}
	if result.Err != nil {
		return errDocumentFailed
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return diagfmt.FormatValueJSON(out, result.Value)
	case "msgpack":
		return diagfmt.FormatValueMsgpack(out, result.Value)
	default:
		return diagfmt.FormatValuePretty(out, result.Value, diagfmt.ValueOpts{Color: resolveColor(s.cfg.Diagnostics.Color, out)})
	}
}
