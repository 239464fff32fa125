// Package config loads kaleidoc settings from TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "KALEIDO_CONFIG"

// Output formats for AST dumps.
const (
	FormatText  = "text"  // indented tree
	FormatSexpr = "sexpr" // one s-expression per declaration
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultMaxDepth is the expression nesting limit used when none is set.
const DefaultMaxDepth = 512

// Config holds the complete kaleidoc configuration
type Config struct {
	Output OutputConfig `toml:"output"`
	Parser ParserConfig `toml:"parser"`
	REPL   REPLConfig   `toml:"repl"`
}

// OutputConfig controls how results are rendered
type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

// ParserConfig holds parser limits
type ParserConfig struct {
	// MaxDepth bounds expression nesting. Negative values remove the limit.
	MaxDepth int `toml:"max_depth"`
}

// REPLConfig holds interactive session settings
type REPLConfig struct {
	Prompt             string `toml:"prompt"`
	ContinuationPrompt string `toml:"continuation_prompt"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadDefault loads the first config file found in the default locations:
// $KALEIDO_CONFIG, ./kaleido.toml, then ~/.config/kaleido/config.toml.
// It returns the path it used, or "" when it fell back to defaults.
func LoadDefault() (*Config, string, error) {
	if path := os.Getenv(EnvVar); path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}

	for _, p := range searchPaths() {
		if _, err := os.Stat(p); err == nil {
			cfg, err := Load(p)
			return cfg, p, err
		}
	}

	return Default(), "", nil
}

func searchPaths() []string {
	paths := []string{"./kaleido.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "kaleido", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if c.Output.Color == "" {
		c.Output.Color = ColorAuto
	}

	if c.Parser.MaxDepth == 0 {
		c.Parser.MaxDepth = DefaultMaxDepth
	}

	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "ready> "
	}
	if c.REPL.ContinuationPrompt == "" {
		c.REPL.ContinuationPrompt = "...> "
	}
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	var errs []error
	if !IsFormat(c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format: unknown format %q (want text, sexpr, json or yaml)", c.Output.Format))
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("output.color: unknown mode %q (want auto, always or never)", c.Output.Color))
	}
	return errors.Join(errs...)
}

// IsFormat reports whether s names a supported output format.
func IsFormat(s string) bool {
	switch s {
	case FormatText, FormatSexpr, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// DepthLimit converts MaxDepth to the parser's convention, where 0 means
// unlimited.
func (c *Config) DepthLimit() int {
	if c.Parser.MaxDepth < 0 {
		return 0
	}
	return c.Parser.MaxDepth
}
