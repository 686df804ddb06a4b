package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/theirongolddev/tiptrack/internal/config"
	"github.com/theirongolddev/tiptrack/internal/ledger"
	"github.com/theirongolddev/tiptrack/internal/log"
	"github.com/theirongolddev/tiptrack/internal/registry"
	"github.com/theirongolddev/tiptrack/internal/store"
	"github.com/theirongolddev/tiptrack/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagBackend string
	flagConfig  string
	flagQuiet   bool
	flagVerbose bool
)

// cfg is the effective configuration, resolved before any command runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "tiptrack",
	Short: "Track tips, tip-outs and work expenses",
	Long:  "Record shifts and work expenses, then see what you actually took home.",
	// Bare invocation opens the dashboard.
	RunE:              runTUI,
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default $XDG_DATA_HOME/tiptrack)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Storage backend: sqlite or json")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default $XDG_CONFIG_HOME/tiptrack/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log debug output to stderr")
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.ConfigPath()
}

// loadConfig resolves defaults, the config file, .env, environment and
// flags, in that order of precedence from lowest to highest.
func loadConfig(_ *cobra.Command, _ []string) error {
	setLogOutput(os.Stderr)

	if err := config.LoadEnv(); err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}

	loaded, err := config.LoadFile(configPath())
	if err != nil {
		return err
	}
	if flagDataDir != "" {
		loaded.General.DataDir = flagDataDir
	}
	if flagBackend != "" {
		loaded.General.Backend = flagBackend
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded
	if !theme.Known(cfg.Appearance.Theme) {
		log.For(log.ComponentConfig).Warn("unknown theme, using default", log.FieldTheme, cfg.Appearance.Theme)
	}

	log.For(log.ComponentConfig).Debug("configuration loaded",
		log.FieldPath, configPath(),
		log.FieldBackend, cfg.General.Backend,
	)
	return nil
}

func logLevel() slog.Level {
	if flagVerbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

func setLogOutput(w io.Writer) {
	log.SetDefault(log.New(log.Config{Level: logLevel(), Component: log.ComponentApp, Output: w}))
}

// openStore opens the configured backend. Tests replace it.
var openStore = func() (store.KV, error) {
	return store.OpenBackend(cfg.General.Backend, cfg.DataDir())
}

// openLedger opens the configured backend and returns the ledger and the
// restaurant registry over it. The registry is seeded from stored shifts.
func openLedger() (*ledger.Ledger, *registry.Registry, func(), error) {
	kv, err := openStore()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening %s store: %w", cfg.General.Backend, err)
	}

	l := ledger.Open(kv)
	reg := registry.Open(kv)
	if err := reg.Seed(l.Shifts()); err != nil {
		log.For(log.ComponentRegistry).Warn("seeding restaurants", log.FieldError, err)
	}

	closer := func() {
		if err := kv.Close(); err != nil {
			log.For(log.ComponentStorage).Warn("closing store", log.FieldError, err)
		}
	}
	return l, reg, closer, nil
}

// info writes progress text unless --quiet is set.
func info(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(stderr, format, args...)
}

var stderr io.Writer = os.Stderr
