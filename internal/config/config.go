// Package config loads and saves tiptrack's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment overrides applied after the file is read.
const (
	EnvDataDir = "TIPTRACK_DATA_DIR"
	EnvBackend = "TIPTRACK_BACKEND"
)

// Config holds all tiptrack configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Features   FeatureConfig    `toml:"features"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds storage and export preferences.
type GeneralConfig struct {
	DataDir         string `toml:"data_dir,omitempty"`
	Backend         string `toml:"backend"`
	DefaultFileName string `toml:"default_file_name"`
}

// FeatureConfig switches optional parts of the tracker on or off. With
// everything off the tracker keeps only date, made, tip-out, restaurant
// and notes.
type FeatureConfig struct {
	Hours    bool `toml:"hours"`
	Expenses bool `toml:"expenses"`
	Import   bool `toml:"import"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Backend:         "sqlite",
			DefaultFileName: "tips",
		},
		Features: FeatureConfig{
			Hours:    true,
			Expenses: true,
			Import:   true,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tiptrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tiptrack")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DefaultDataDir returns the XDG data directory used when none is configured.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "tiptrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "tiptrack")
}

// LoadEnv reads KEY=value pairs from the given .env files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// Load reads the default config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFile(ConfigPath())
}

// LoadFile reads the config at path, then applies environment overrides.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.General.DataDir = v
	}
	if v := os.Getenv(EnvBackend); v != "" {
		cfg.General.Backend = v
	}
}

// Save writes the config to the default path.
func Save(cfg Config) error {
	return SaveFile(ConfigPath(), cfg)
}

// SaveFile writes the config to path with owner-only permissions.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// DataDir returns the configured data directory or the XDG default.
func (c Config) DataDir() string {
	if c.General.DataDir != "" {
		return c.General.DataDir
	}
	return DefaultDataDir()
}

// ExportFileName returns name, or the configured default, with ext
// appended when it is missing.
func (c Config) ExportFileName(name, ext string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = c.General.DefaultFileName
	}
	if name == "" {
		name = "tips"
	}
	if !strings.HasSuffix(strings.ToLower(name), ext) {
		name += ext
	}
	return name
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []string

	switch c.General.Backend {
	case "sqlite", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid backend '%s': must be one of [sqlite json]", c.General.Backend))
	}

	if strings.ContainsAny(c.General.DefaultFileName, `/\`) {
		problems = append(problems, fmt.Sprintf("invalid default file name '%s': must not contain a path separator", c.General.DefaultFileName))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
