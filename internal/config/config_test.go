package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BASICLOG_CONFIG", "BASICLOG_KIND", "BASICLOG_PATH",
		"BASICLOG_LEVEL", "BASICLOG_DIAG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Output.Kind != "console" {
		t.Errorf("Kind = %q, want console", cfg.Output.Kind)
	}
	if cfg.Output.Path != "logs/basic_log" {
		t.Errorf("Path = %q, want logs/basic_log", cfg.Output.Path)
	}
	if cfg.Output.Level != "warn" {
		t.Errorf("Level = %q, want warn", cfg.Output.Level)
	}
	if cfg.Diagnostics.Level != "warn" {
		t.Errorf("Diagnostics.Level = %q, want warn", cfg.Diagnostics.Level)
	}
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASICLOG_KIND", "html")
	t.Setenv("BASICLOG_PATH", "tmp/logs/loginfo")
	t.Setenv("BASICLOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Output.Kind != "html" || cfg.Output.Path != "tmp/logs/loginfo" || cfg.Output.Level != "debug" {
		t.Errorf("Output = %+v", cfg.Output)
	}
}

func TestLoad_TOMLFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "basiclog.toml")
	os.WriteFile(path, []byte("kind = \"csv\"\npath = \"var/app\"\nlevel = \"info\"\ndiag_level = \"debug\"\n"), 0644)
	t.Setenv("BASICLOG_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Output.Kind != "csv" || cfg.Output.Path != "var/app" || cfg.Output.Level != "info" {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Diagnostics.Level != "debug" {
		t.Errorf("Diagnostics.Level = %q, want debug", cfg.Diagnostics.Level)
	}
}

func TestLoad_JSON5FileWithEnvOverride(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "basiclog.json5")
	os.WriteFile(path, []byte("{\n  // comments are allowed\n  kind: 'text',\n  level: 'error',\n}\n"), 0644)
	t.Setenv("BASICLOG_CONFIG", path)
	t.Setenv("BASICLOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Output.Kind != "text" {
		t.Errorf("Kind = %q, want text", cfg.Output.Kind)
	}
	if cfg.Output.Level != "debug" {
		t.Errorf("Level = %q, env should override file", cfg.Output.Level)
	}
	if cfg.Output.Path != "logs/basic_log" {
		t.Errorf("Path = %q, want default", cfg.Output.Path)
	}
}

func TestLoad_FileErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	os.WriteFile(bad, []byte("kind = = \n"), 0644)
	yaml := filepath.Join(dir, "conf.yaml")
	os.WriteFile(yaml, []byte("kind: csv\n"), 0644)

	tests := []struct {
		path string
		want string
	}{
		{filepath.Join(dir, "missing.toml"), "read"},
		{bad, "parse"},
		{yaml, "unsupported extension"},
	}
	for _, tt := range tests {
		clearEnv(t)
		t.Setenv("BASICLOG_CONFIG", tt.path)
		_, err := Load()
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("Load(%s) error = %v, want mention of %q", tt.path, err, tt.want)
		}
	}
}

func TestLoad_MissingFileKeepsCause(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASICLOG_CONFIG", filepath.Join(t.TempDir(), "absent.json5"))

	_, err := Load()
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load error = %v, want it to wrap fs.ErrNotExist", err)
	}
}
