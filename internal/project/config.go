package project

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"mcl/internal/parser"
)

// Config mirrors mcl.toml. Missing keys keep DefaultConfig values.
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Parse       ParseConfig       `toml:"parse"`
	Cache       CacheConfig       `toml:"cache"`
}

type DiagnosticsConfig struct {
	Max    int    `toml:"max"`
	Color  string `toml:"color"`  // auto|on|off
	Format string `toml:"format"` // pretty|json|short
}

type ParseConfig struct {
	AllowUnclosed bool     `toml:"allow_unclosed"`
	NormalizeNFC  bool     `toml:"normalize_nfc"`
	MaxDepth      int      `toml:"max_depth"`
	Extensions    []string `toml:"extensions"`
}

type CacheConfig struct {
	Enabled bool `toml:"enabled"`
	// Dir пустой — каталог по XDG; относительный считается от mcl.toml.
	Dir string `toml:"dir"`
}

var (
	colorModes    = []string{"auto", "on", "off"}
	diagFormats   = []string{"pretty", "json", "short"}
	defaultMaxErr = 100
)

// DefaultConfig returns the settings used when no mcl.toml is found.
func DefaultConfig() Config {
	return Config{
		Diagnostics: DiagnosticsConfig{
			Max:    defaultMaxErr,
			Color:  "auto",
			Format: "pretty",
		},
		Parse: ParseConfig{
			MaxDepth:   parser.DefaultMaxDepth,
			Extensions: []string{".mcl"},
		},
	}
}

// LoadConfig parses path on top of DefaultConfig. Unknown keys are an error
// so that typos do not silently fall back to defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Cache.Dir != "" && !filepath.IsAbs(cfg.Cache.Dir) {
		cfg.Cache.Dir = filepath.Join(filepath.Dir(path), cfg.Cache.Dir)
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.Diagnostics.Max < 0 {
		return fmt.Errorf("[diagnostics].max must be >= 0, got %d", c.Diagnostics.Max)
	}
	if !slices.Contains(colorModes, c.Diagnostics.Color) {
		return fmt.Errorf("[diagnostics].color must be one of %s, got %q", strings.Join(colorModes, "|"), c.Diagnostics.Color)
	}
	if !slices.Contains(diagFormats, c.Diagnostics.Format) {
		return fmt.Errorf("[diagnostics].format must be one of %s, got %q", strings.Join(diagFormats, "|"), c.Diagnostics.Format)
	}
	if c.Parse.MaxDepth < 0 {
		return fmt.Errorf("[parse].max_depth must be >= 0, got %d", c.Parse.MaxDepth)
	}
	for _, ext := range c.Parse.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("[parse].extensions: %q must look like \".mcl\"", ext)
		}
	}
	return nil
}

// ParserOptions converts the [parse] section; Reporter is left for the caller.
func (c Config) ParserOptions() parser.Options {
	return parser.Options{
		AllowUnclosed: c.Parse.AllowUnclosed,
		NormalizeNFC:  c.Parse.NormalizeNFC,
		MaxDepth:      c.Parse.MaxDepth,
	}
}

// Load finds mcl.toml starting at startDir. Without one it returns
// DefaultConfig and an empty path.
func Load(startDir string) (Config, string, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return DefaultConfig(), "", nil
	}
	cfg, err := LoadConfig(path)
	return cfg, path, err
}
