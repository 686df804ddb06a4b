package tui

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/tiptrack/internal/config"
	"github.com/theirongolddev/tiptrack/internal/tui/theme"
)

// SetupValues holds the first-run wizard answers.
type SetupValues struct {
	DataDir  string
	Backend  string
	Theme    string
	Hours    bool
	Expenses bool
	Import   bool
}

// SetupValuesFrom pre-fills the wizard from cfg.
func SetupValuesFrom(cfg config.Config) *SetupValues {
	return &SetupValues{
		DataDir:  cfg.General.DataDir,
		Backend:  cfg.General.Backend,
		Theme:    cfg.Appearance.Theme,
		Hours:    cfg.Features.Hours,
		Expenses: cfg.Features.Expenses,
		Import:   cfg.Features.Import,
	}
}

// Apply copies the answers onto cfg.
func (v SetupValues) Apply(cfg config.Config) config.Config {
	cfg.General.DataDir = strings.TrimSpace(v.DataDir)
	cfg.General.Backend = v.Backend
	cfg.Appearance.Theme = v.Theme
	cfg.Features.Hours = v.Hours
	cfg.Features.Expenses = v.Expenses
	cfg.Features.Import = v.Import
	return cfg
}

// NewSetupForm builds the first-run wizard.
func NewSetupForm(v *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to tiptrack").
				Description("Track tips, tip-outs and work expenses.\nThese settings can be changed later with `tiptrack setup`."),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Storage backend").
				Options(
					huh.NewOption("SQLite database (recommended)", "sqlite"),
					huh.NewOption("JSON files", "json"),
				).
				Value(&v.Backend),
			huh.NewInput().
				Title("Data directory").
				Placeholder(config.DefaultDataDir()).
				Value(&v.DataDir),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Record hours worked?").Value(&v.Hours),
			huh.NewConfirm().Title("Track work expenses?").Value(&v.Expenses),
			huh.NewConfirm().Title("Enable CSV import?").Value(&v.Import),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.Theme),
		),
	).WithShowHelp(true)
}

func (a *App) saveSetupConfig() error {
	a.cfg = a.setupVals.Apply(a.cfg)
	theme.SetActive(a.cfg.Appearance.Theme)
	a.tabs = tabsFor(a.cfg.Features)
	a.clampTab()
	return config.Save(a.cfg)
}
