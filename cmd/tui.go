package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/theirongolddev/tiptrack/internal/config"
	"github.com/theirongolddev/tiptrack/internal/log"
	"github.com/theirongolddev/tiptrack/internal/tui"
	"github.com/theirongolddev/tiptrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	l, reg, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	app := tui.NewApp(l, reg, cfg)
	if flagConfig == "" && !config.Exists() {
		app = app.WithSetup()
	}
	restoreLog := logToFile(cfg.DataDir())
	defer restoreLog()
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// logFileName receives log output while the dashboard owns the terminal.
const logFileName = "tiptrack.log"

// logToFile moves logging into dir/tiptrack.log, or discards it when the
// file cannot be opened. The returned func restores stderr logging.
func logToFile(dir string) func() {
	var out io.Writer = io.Discard
	var f *os.File
	if err := os.MkdirAll(dir, 0o700); err == nil {
		f, err = os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err == nil {
			out = f
		}
	}
	setLogOutput(out)

	return func() {
		setLogOutput(os.Stderr)
		if f != nil {
			if err := f.Close(); err != nil {
				log.For(log.ComponentApp).Warn("closing log file", log.FieldError, err)
			}
		}
	}
}
