package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "kaleido.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	})
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Output.Format != FormatText {
		t.Errorf("Output.Format = %v, want %v", cfg.Output.Format, FormatText)
	}
	if cfg.Output.Color != ColorAuto {
		t.Errorf("Output.Color = %v, want %v", cfg.Output.Color, ColorAuto)
	}
	if cfg.Parser.MaxDepth != DefaultMaxDepth {
		t.Errorf("Parser.MaxDepth = %v, want %v", cfg.Parser.MaxDepth, DefaultMaxDepth)
	}
	if cfg.REPL.Prompt != "ready> " {
		t.Errorf("REPL.Prompt = %q, want %q", cfg.REPL.Prompt, "ready> ")
	}
	if cfg.REPL.ContinuationPrompt != "...> " {
		t.Errorf("REPL.ContinuationPrompt = %q, want %q", cfg.REPL.ContinuationPrompt, "...> ")
	}
}

func TestConfig_applyDefaultsKeepsValues(t *testing.T) {
	cfg := &Config{
		Output: OutputConfig{Format: FormatJSON, Color: ColorNever},
		Parser: ParserConfig{MaxDepth: -1},
		REPL:   REPLConfig{Prompt: "> "},
	}
	cfg.applyDefaults()

	if cfg.Output.Format != FormatJSON || cfg.Output.Color != ColorNever {
		t.Errorf("Output = %+v, want json/never", cfg.Output)
	}
	if cfg.Parser.MaxDepth != -1 {
		t.Errorf("Parser.MaxDepth = %v, want -1", cfg.Parser.MaxDepth)
	}
	if cfg.REPL.Prompt != "> " {
		t.Errorf("REPL.Prompt = %q, want %q", cfg.REPL.Prompt, "> ")
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[output]
format = "yaml"
color = "always"

[parser]
max_depth = 64

[repl]
prompt = "kal> "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output.Format != FormatYAML {
		t.Errorf("Output.Format = %v, want yaml", cfg.Output.Format)
	}
	if cfg.Output.Color != ColorAlways {
		t.Errorf("Output.Color = %v, want always", cfg.Output.Color)
	}
	if cfg.Parser.MaxDepth != 64 {
		t.Errorf("Parser.MaxDepth = %v, want 64", cfg.Parser.MaxDepth)
	}
	if cfg.REPL.Prompt != "kal> " {
		t.Errorf("REPL.Prompt = %q, want %q", cfg.REPL.Prompt, "kal> ")
	}
	// Unset keys still get defaults.
	if cfg.REPL.ContinuationPrompt != "...> " {
		t.Errorf("REPL.ContinuationPrompt = %q, want default", cfg.REPL.ContinuationPrompt)
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[output]\nformat = \"json\"\n")
	t.Setenv("KALEIDO_TEST_DIR", dir)

	cfg, err := Load("$KALEIDO_TEST_DIR/kaleido.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != FormatJSON {
		t.Errorf("Output.Format = %v, want json", cfg.Output.Format)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax", "[output\nformat = 1", "failed to parse config"},
		{"wrong_type", "[parser]\nmax_depth = \"deep\"", "failed to parse config"},
		{"unknown_key", "[output]\nformatt = \"json\"", "unknown config keys"},
		{"unknown_section", "[codegen]\nopt = 2", "unknown config keys"},
		{"bad_format", "[output]\nformat = \"xml\"", `unknown format "xml"`},
		{"bad_color", "[output]\ncolor = \"sometimes\"", `unknown mode "sometimes"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("Load() error = %v, want not found", err)
	}
}

func TestLoadDefault_EnvVar(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[output]\nformat = \"sexpr\"\n")
	t.Setenv(EnvVar, path)

	cfg, used, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	if used != path {
		t.Errorf("LoadDefault() path = %q, want %q", used, path)
	}
	if cfg.Output.Format != FormatSexpr {
		t.Errorf("Output.Format = %v, want sexpr", cfg.Output.Format)
	}
}

func TestLoadDefault_Fallback(t *testing.T) {
	t.Setenv(EnvVar, "")
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, used, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	if used != "" {
		t.Errorf("LoadDefault() path = %q, want none", used)
	}
	if cfg.Output.Format != FormatText {
		t.Errorf("Output.Format = %v, want text", cfg.Output.Format)
	}
}

func TestLoadDefault_WorkingDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[parser]\nmax_depth = -1\n")
	t.Setenv(EnvVar, "")
	chdir(t, dir)

	cfg, used, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	if used != "./kaleido.toml" {
		t.Errorf("LoadDefault() path = %q, want ./kaleido.toml", used)
	}
	if cfg.DepthLimit() != 0 {
		t.Errorf("DepthLimit() = %d, want 0 (unlimited)", cfg.DepthLimit())
	}
}

func TestDepthLimit(t *testing.T) {
	tests := []struct {
		maxDepth int
		want     int
	}{
		{DefaultMaxDepth, DefaultMaxDepth},
		{10, 10},
		{-1, 0},
	}
	for _, tt := range tests {
		cfg := &Config{Parser: ParserConfig{MaxDepth: tt.maxDepth}}
		if got := cfg.DepthLimit(); got != tt.want {
			t.Errorf("DepthLimit() with MaxDepth %d = %d, want %d", tt.maxDepth, got, tt.want)
		}
	}
}

func TestIsFormat(t *testing.T) {
	for _, f := range []string{"text", "sexpr", "json", "yaml"} {
		if !IsFormat(f) {
			t.Errorf("IsFormat(%q) = false", f)
		}
	}
	for _, f := range []string{"", "xml", "JSON"} {
		if IsFormat(f) {
			t.Errorf("IsFormat(%q) = true", f)
		}
	}
}
