// Package cmd implements the tiptrack CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/tiptrack/internal/config"
	"github.com/theirongolddev/tiptrack/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", configPath())
	if _, err := os.Stat(configPath()); err == nil {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory:    %s\n", cfg.DataDir())
	fmt.Printf("    Backend:           %s\n", cfg.General.Backend)
	fmt.Printf("    Default file name: %s\n", cfg.General.DefaultFileName)
	if v := os.Getenv(config.EnvDataDir); v != "" {
		fmt.Printf("    (%s=%s)\n", config.EnvDataDir, v)
	}
	if v := os.Getenv(config.EnvBackend); v != "" {
		fmt.Printf("    (%s=%s)\n", config.EnvBackend, v)
	}
	fmt.Println()

	printStorage()

	fmt.Println("  [Features]")
	fmt.Printf("    Hours:    %s\n", onOff(cfg.Features.Hours))
	fmt.Printf("    Expenses: %s\n", onOff(cfg.Features.Expenses))
	fmt.Printf("    Import:   %s\n", onOff(cfg.Features.Import))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `tiptrack setup` to reconfigure.")
	return nil
}

func printStorage() {
	kv, err := store.OpenBackend(cfg.General.Backend, cfg.DataDir())
	if err != nil {
		fmt.Printf("  [Storage]\n    unavailable: %v\n\n", err)
		return
	}
	defer func() { _ = kv.Close() }()

	db, ok := kv.(*store.SQLite)
	if !ok {
		return
	}
	fmt.Println("  [Storage]")
	fmt.Printf("    Database: %s\n", db.Path())
	keys, err := db.Keys()
	if err != nil {
		fmt.Printf("    Keys:     unreadable (%v)\n", err)
	} else {
		fmt.Printf("    Keys:     %d stored\n", len(keys))
		for _, k := range keys {
			fmt.Printf("      %s\n", k)
		}
	}
	fmt.Println()
}
