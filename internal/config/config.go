package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/titanous/json5"
)

// Config holds everything the basiclog command needs.
type Config struct {
	Output      OutputConfig
	Diagnostics DiagnosticsConfig
}

// OutputConfig selects the record destination and threshold.
type OutputConfig struct {
	Kind  string // "console", "text", "csv", "html"
	Path  string // destination without extension
	Level string // "error", "warn", "info", "debug"
}

// DiagnosticsConfig controls the command's own stderr logging.
type DiagnosticsConfig struct {
	Level string
}

// fileConfig mirrors the optional config file.
type fileConfig struct {
	Kind      string `toml:"kind" json:"kind"`
	Path      string `toml:"path" json:"path"`
	Level     string `toml:"level" json:"level"`
	DiagLevel string `toml:"diag_level" json:"diag_level"`
}

// Load reads configuration from the file named by BASICLOG_CONFIG (if set)
// and then from environment variables, which take precedence.
func Load() (Config, error) {
	cfg := defaults()
	if path := os.Getenv("BASICLOG_CONFIG"); path != "" {
		fc, err := readFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg.apply(fc)
	}
	cfg.Output.Kind = getenv("BASICLOG_KIND", cfg.Output.Kind)
	cfg.Output.Path = getenv("BASICLOG_PATH", cfg.Output.Path)
	cfg.Output.Level = getenv("BASICLOG_LEVEL", cfg.Output.Level)
	cfg.Diagnostics.Level = getenv("BASICLOG_DIAG_LEVEL", cfg.Diagnostics.Level)
	return cfg, nil
}

func defaults() Config {
	return Config{
		Output: OutputConfig{
			Kind:  "console",
			Path:  "logs/basic_log",
			Level: "warn",
		},
		Diagnostics: DiagnosticsConfig{Level: "warn"},
	}
}

func (c *Config) apply(fc fileConfig) {
	if fc.Kind != "" {
		c.Output.Kind = fc.Kind
	}
	if fc.Path != "" {
		c.Output.Path = fc.Path
	}
	if fc.Level != "" {
		c.Output.Level = fc.Level
	}
	if fc.DiagLevel != "" {
		c.Diagnostics.Level = fc.DiagLevel
	}
}

// readFile decodes a .toml, .json or .json5 config file.
func readFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, errors.Wrapf(err, "config: read %s", path)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &fc)
	case ".json", ".json5":
		err = json5.Unmarshal(data, &fc)
	default:
		return fc, errors.Errorf("config: %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return fc, errors.Wrapf(err, "config: parse %s", path)
	}
	return fc, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
