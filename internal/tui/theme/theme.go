// Package theme defines color themes for the tiptrack dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds the colors the dashboard draws with. Gain and Loss color
// signed money; Warn and Notice grade how much of the take is given away.
type Theme struct {
	Name         string
	Background   lipgloss.Color
	Surface      lipgloss.Color // cards and panels
	SurfaceHover lipgloss.Color // active tab, selected row
	Border       lipgloss.Color
	BorderAccent lipgloss.Color // focused overlays
	TextDim      lipgloss.Color
	TextMuted    lipgloss.Color
	TextPrimary  lipgloss.Color
	Accent       lipgloss.Color
	AccentBright lipgloss.Color
	Gain         lipgloss.Color
	Loss         lipgloss.Color
	Warn         lipgloss.Color
	Notice       lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	SurfaceHover: lipgloss.Color("#282726"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#5BC8BE"),
	Gain:         lipgloss.Color("#879A39"),
	Loss:         lipgloss.Color("#D14D41"),
	Warn:         lipgloss.Color("#DA702C"),
	Notice:       lipgloss.Color("#D0A215"),
}

var CatppuccinMocha = Theme{
	Name:         "catppuccin-mocha",
	Background:   lipgloss.Color("#1E1E2E"),
	Surface:      lipgloss.Color("#313244"),
	SurfaceHover: lipgloss.Color("#45475A"),
	Border:       lipgloss.Color("#585B70"),
	BorderAccent: lipgloss.Color("#89B4FA"),
	TextDim:      lipgloss.Color("#6C7086"),
	TextMuted:    lipgloss.Color("#A6ADC8"),
	TextPrimary:  lipgloss.Color("#CDD6F4"),
	Accent:       lipgloss.Color("#89B4FA"),
	AccentBright: lipgloss.Color("#B4D0FB"),
	Gain:         lipgloss.Color("#A6E3A1"),
	Loss:         lipgloss.Color("#F38BA8"),
	Warn:         lipgloss.Color("#FAB387"),
	Notice:       lipgloss.Color("#F9E2AF"),
}

var TokyoNight = Theme{
	Name:         "tokyo-night",
	Background:   lipgloss.Color("#1A1B26"),
	Surface:      lipgloss.Color("#24283B"),
	SurfaceHover: lipgloss.Color("#343A52"),
	Border:       lipgloss.Color("#565F89"),
	BorderAccent: lipgloss.Color("#7AA2F7"),
	TextDim:      lipgloss.Color("#565F89"),
	TextMuted:    lipgloss.Color("#A9B1D6"),
	TextPrimary:  lipgloss.Color("#C0CAF5"),
	Accent:       lipgloss.Color("#7AA2F7"),
	AccentBright: lipgloss.Color("#A9C1FF"),
	Gain:         lipgloss.Color("#9ECE6A"),
	Loss:         lipgloss.Color("#F7768E"),
	Warn:         lipgloss.Color("#FF9E64"),
	Notice:       lipgloss.Color("#E0AF68"),
}

// Terminal sticks to the 16 ANSI colors.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("6"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	AccentBright: lipgloss.Color("14"),
	Gain:         lipgloss.Color("2"),
	Loss:         lipgloss.Color("1"),
	Warn:         lipgloss.Color("3"),
	Notice:       lipgloss.Color("11"),
}

// All lists the themes in the order the setup wizard offers them.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// ByName returns the named theme, or FlexokiDark when none matches.
func ByName(name string) Theme {
	if t, ok := lookup(name); ok {
		return t
	}
	return FlexokiDark
}

func lookup(name string) (Theme, bool) {
	for _, t := range All {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// Known reports whether name matches a defined theme.
func Known(name string) bool {
	_, ok := lookup(name)
	return ok
}

// Signed picks Loss for a negative amount and Gain otherwise.
func (t Theme) Signed(negative bool) lipgloss.Color {
	if negative {
		return t.Loss
	}
	return t.Gain
}

// Share grades the part of earnings given away: Gain below 15%, then
// Notice, Warn from 30% and Loss from half.
func (t Theme) Share(pct float64) lipgloss.Color {
	switch {
	case pct >= 0.5:
		return t.Loss
	case pct >= 0.3:
		return t.Warn
	case pct >= 0.15:
		return t.Notice
	default:
		return t.Gain
	}
}
