package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mcl/internal/driver"
	"mcl/internal/project"
)

// settings — mcl.toml с наложенными поверх флагами командной строки.
type settings struct {
	cfg        project.Config
	configPath string
	color      bool
	quiet      bool
	timings    bool
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Root().PersistentFlags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	var cfg project.Config
	if configPath != "" {
		cfg, err = project.LoadConfig(configPath)
	} else {
		cfg, configPath, err = project.Load(".")
	}
	if err != nil {
		return nil, err
	}

	if flags.Changed("max-diagnostics") {
		if cfg.Diagnostics.Max, err = flags.GetInt("max-diagnostics"); err != nil {
			return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if flags.Changed("color") {
		if cfg.Diagnostics.Color, err = flags.GetString("color"); err != nil {
			return nil, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &settings{cfg: cfg, configPath: configPath}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	s.color = resolveColor(cfg.Diagnostics.Color, cmd.ErrOrStderr())
	return s, nil
}

func resolveColor(mode string, w any) bool {
	switch strings.ToLower(mode) {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(w)
	}
}

// applyParseFlags накладывает флаги разбора на [parse] из конфига.
func (s *settings) applyParseFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("allow-unclosed") {
		if s.cfg.Parse.AllowUnclosed, err = flags.GetBool("allow-unclosed"); err != nil {
			return err
		}
	}
	if flags.Changed("nfc") {
		if s.cfg.Parse.NormalizeNFC, err = flags.GetBool("nfc"); err != nil {
			return err
		}
	}
	if flags.Changed("max-depth") {
		if s.cfg.Parse.MaxDepth, err = flags.GetInt("max-depth"); err != nil {
			return err
		}
	}
	if flags.Changed("cache") {
		if s.cfg.Cache.Enabled, err = flags.GetBool("cache"); err != nil {
			return err
		}
	}
	return s.cfg.Validate()
}

func addParseFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("allow-unclosed", false, "accept documents whose containers are closed by end of input")
	cmd.Flags().Bool("nfc", false, "normalize string values to Unicode NFC")
	cmd.Flags().Int("max-depth", 0, "maximum container nesting depth (0 = default)")
	cmd.Flags().Bool("cache", false, "reuse parsed trees from the on-disk cache")
}

func (s *settings) driverOptions() (driver.Options, error) {
	opts := driver.Options{
		MaxDiagnostics: s.cfg.Diagnostics.Max,
		Parser:         s.cfg.ParserOptions(),
		Extensions:     s.cfg.Parse.Extensions,
	}
	if !s.cfg.Cache.Enabled {
		return opts, nil
	}
	var (
		cache *driver.DiskCache
		err   error
	)
	if s.cfg.Cache.Dir != "" {
		cache, err = driver.NewDiskCache(s.cfg.Cache.Dir)
	} else {
		cache, err = driver.OpenDiskCache("mcl")
	}
	if err != nil {
		return opts, fmt.Errorf("failed to open cache: %w", err)
	}
	opts.Cache = cache
	return opts, nil
}
