package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tiptrack/internal/cli"
	"github.com/theirongolddev/tiptrack/internal/ledger"
	"github.com/theirongolddev/tiptrack/internal/report"
	"github.com/theirongolddev/tiptrack/internal/tui/components"
	"github.com/theirongolddev/tiptrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type shiftColumn struct {
	key   ledger.SortKey
	title string
	width int // 0 takes the remaining space
	left  bool
}

// shiftColumns returns the visible columns. Number keys 1..n sort by the
// column at that position.
func (a App) shiftColumns() []shiftColumn {
	cols := []shiftColumn{
		{ledger.SortDate, "Date", 14, true},
		{ledger.SortRestaurant, "Restaurant", 16, true},
		{ledger.SortMade, "Made", 11, false},
		{ledger.SortTipOut, "Tip-out", 11, false},
		{ledger.SortNet, "Net", 11, false},
	}
	if a.cfg.Features.Hours {
		cols = append(cols, shiftColumn{ledger.SortHours, "Hours", 6, false})
	}
	return append(cols, shiftColumn{ledger.SortNotes, "Notes", 0, true})
}

func (a App) updateShifts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Down):
		a.shiftCur = clamp(a.shiftCur+1, len(a.shifts))
	case key.Matches(msg, a.keys.Up):
		a.shiftCur = clamp(a.shiftCur-1, len(a.shifts))
	case key.Matches(msg, a.keys.Top):
		a.shiftCur = 0
	case key.Matches(msg, a.keys.Bottom):
		a.shiftCur = clamp(len(a.shifts)-1, len(a.shifts))
	case key.Matches(msg, a.keys.Add):
		return a, a.openShiftForm(NewShiftValues(a.reg.LastUsed()), "")
	case key.Matches(msg, a.keys.Edit):
		if len(a.shifts) == 0 {
			return a, nil
		}
		sel := a.shifts[a.shiftCur]
		return a, a.openShiftForm(ShiftValuesFrom(sel), sel.ID)
	case key.Matches(msg, a.keys.Delete):
		if len(a.shifts) > 0 {
			a.confirmID = a.shifts[a.shiftCur].ID
		}
	case key.Matches(msg, a.keys.Sort):
		idx := int(msg.String()[0] - '1')
		cols := a.shiftColumns()
		if idx >= 0 && idx < len(cols) {
			a.toggleSort(cols[idx].key)
		}
	}
	return a, nil
}

// toggleSort applies a header selection and keeps the cursor on the same entry.
func (a *App) toggleSort(k ledger.SortKey) {
	selected := ""
	if len(a.shifts) > 0 {
		selected = a.shifts[a.shiftCur].ID
	}
	a.sort = a.sort.Toggle(k)
	a.refresh()
	for i, e := range a.shifts {
		if e.ID == selected {
			a.shiftCur = i
			break
		}
	}
}

func cell(s string, w int, left bool) string {
	s = cli.Truncate(s, w)
	gap := w - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if left {
		return s + strings.Repeat(" ", gap)
	}
	return strings.Repeat(" ", gap) + s
}

func (a App) renderShiftsTab(cw, h int) string {
	t := theme.Active
	inner := components.CardInnerWidth(cw)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	if len(a.shifts) == 0 {
		body := mutedStyle.Render("No shifts yet. Press a to add one.")
		return components.ContentCard("Shifts", body, cw)
	}

	cols := a.shiftColumns()
	fixed := 0
	for _, c := range cols {
		fixed += c.width + 1
	}
	flexW := inner - fixed
	if flexW < 8 {
		flexW = 8
	}

	var hdr []string
	for i, c := range cols {
		w := c.width
		if w == 0 {
			w = flexW
		}
		title := fmt.Sprintf("%d %s", i+1, c.title)
		if a.sort.Key == c.key {
			if a.sort.Desc {
				title += " ▼"
			} else {
				title += " ▲"
			}
		}
		hdr = append(hdr, cell(title, w, c.left))
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(strings.Join(hdr, " ")))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", inner)))
	b.WriteString("\n")

	visible := h - 7 // card border, title, header, rule, total rule, total row
	start, end := visibleWindow(a.shiftCur, visible, len(a.shifts))

	for i := start; i < end; i++ {
		e := a.shifts[i]
		values := map[ledger.SortKey]string{
			ledger.SortDate:       cli.FormatDate(e.Date),
			ledger.SortRestaurant: e.Restaurant,
			ledger.SortMade:       cli.FormatMoney(e.Made),
			ledger.SortTipOut:     cli.FormatMoney(e.TipOut),
			ledger.SortNet:        cli.FormatMoney(e.Net()),
			ledger.SortHours:      cli.FormatHours(e.Hours),
			ledger.SortNotes:      e.Notes,
		}
		var parts []string
		for _, c := range cols {
			w := c.width
			if w == 0 {
				w = flexW
			}
			parts = append(parts, cell(values[c.key], w, c.left))
		}
		line := strings.Join(parts, " ")
		if i == a.shiftCur {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	totals := report.ComputeTotals(a.shifts)
	b.WriteString(mutedStyle.Render(strings.Repeat("─", inner)))
	b.WriteString("\n")
	summary := fmt.Sprintf("Total  made %s  tip-out %s  net %s  avg %s",
		cli.FormatMoney(totals.Made), cli.FormatMoney(totals.TipOut),
		cli.FormatMoney(totals.Net), cli.FormatMoney(totals.Average))
	b.WriteString(headerStyle.Render(summary))

	title := fmt.Sprintf("Shifts [%d]", len(a.shifts))
	return components.ContentCard(title, b.String(), cw)
}
