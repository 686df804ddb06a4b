package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFile_MissingReturnsDefaults(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvBackend, "")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvBackend, "")
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := DefaultConfig()
	cfg.General.DataDir = "/srv/tips"
	cfg.General.Backend = "json"
	cfg.Features.Hours = false
	cfg.Appearance.Theme = "tokyo-night"

	if err := SaveFile(path, cfg); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("perm = %o, want 600", perm)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got != cfg {
		t.Fatalf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvBackend, "")
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[features]\nexpenses = false\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Features.Expenses {
		t.Error("expenses should be off")
	}
	if !cfg.Features.Hours || !cfg.Features.Import {
		t.Errorf("unset features should keep defaults: %+v", cfg.Features)
	}
	if cfg.General.Backend != "sqlite" {
		t.Errorf("Backend = %q, want sqlite", cfg.General.Backend)
	}
}

func TestLoadFile_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[general\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Fatalf("err = %v, want parsing config error", err)
	}
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	t.Setenv(EnvDataDir, "/tmp/override")
	t.Setenv(EnvBackend, "json")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.General.DataDir != "/tmp/override" || cfg.General.Backend != "json" {
		t.Fatalf("overrides not applied: %+v", cfg.General)
	}
	if cfg.DataDir() != "/tmp/override" {
		t.Fatalf("DataDir = %q", cfg.DataDir())
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("TIPTRACK_TEST_VALUE=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TIPTRACK_TEST_VALUE", "")
	os.Unsetenv("TIPTRACK_TEST_VALUE")

	if err := LoadEnv(filepath.Join(dir, "absent.env"), envFile); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if got := os.Getenv("TIPTRACK_TEST_VALUE"); got != "from-file" {
		t.Fatalf("TIPTRACK_TEST_VALUE = %q, want from-file", got)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := ConfigPath(); got != filepath.Join("/xdg", "tiptrack", "config.toml") {
		t.Fatalf("ConfigPath = %q", got)
	}
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultDataDir(); got != filepath.Join("/data", "tiptrack") {
		t.Fatalf("DefaultDataDir = %q", got)
	}
}

func TestExportFileName(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name, ext, want string
	}{
		{"", ".csv", "tips.csv"},
		{"  ", ".csv", "tips.csv"},
		{"june", ".csv", "june.csv"},
		{"june.csv", ".csv", "june.csv"},
		{"JUNE.CSV", ".csv", "JUNE.CSV"},
		{"june", ".xlsx", "june.xlsx"},
	}
	for _, tt := range tests {
		if got := cfg.ExportFileName(tt.name, tt.ext); got != tt.want {
			t.Errorf("ExportFileName(%q, %q) = %q, want %q", tt.name, tt.ext, got, tt.want)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "json backend", mutate: func(c *Config) { c.General.Backend = "json" }},
		{
			name:        "unknown backend",
			mutate:      func(c *Config) { c.General.Backend = "postgres" },
			wantErr:     true,
			errorString: "invalid backend 'postgres': must be one of [sqlite json]",
		},
		{
			name:        "file name with path",
			mutate:      func(c *Config) { c.General.DefaultFileName = "a/b" },
			wantErr:     true,
			errorString: "must not contain a path separator",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("error %q does not contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
