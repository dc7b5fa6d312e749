package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"mcl/internal/prof"
	"mcl/internal/version"
)

// profSession живёт от PersistentPreRunE до выхода из main.
var profSession *prof.Session

// errDocumentFailed сигнализирует, что диагностики уже напечатаны и нужен только код выхода.
var errDocumentFailed = errors.New("document has errors")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mcl",
		Short:         "MCL configuration language toolchain",
		Long:          `mcl tokenizes, parses and checks documents written in the MCL configuration language`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newCacheCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("config", "", "path to mcl.toml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().String("cpuprofile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("memprofile", "", "write a heap profile to file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to file")

	rootCmd.PersistentPreRunE = startProfiling
	return rootCmd
}

// main builds the command tree and executes it. Any error, including
// documents that failed to parse, exits with status 1.
func main() {
	err := newRootCmd().Execute()
	if stopErr := profSession.Stop(); stopErr != nil {
		fmt.Fprintln(os.Stderr, "error: profiling:", stopErr)
	}
	if err != nil {
		if !errors.Is(err, errDocumentFailed) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли writer терминалом
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- fd fits int
}

func startProfiling(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()
	var opts prof.Options
	var err error
	if opts.CPU, err = flags.GetString("cpuprofile"); err != nil {
		return err
	}
	if opts.Mem, err = flags.GetString("memprofile"); err != nil {
		return err
	}
	if opts.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return err
	}
	if !opts.Enabled() {
		return nil
	}
	profSession, err = prof.Start(opts)
	if err != nil {
		return fmt.Errorf("failed to start profiling: %w", err)
	}
	return nil
}
