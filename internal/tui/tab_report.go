package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tiptrack/internal/cli"
	"github.com/theirongolddev/tiptrack/internal/report"
	"github.com/theirongolddev/tiptrack/internal/tui/components"
	"github.com/theirongolddev/tiptrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updateReport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.ThisMonth):
		a.lastMonth = false
	case key.Matches(msg, a.keys.LastMonth):
		a.lastMonth = true
	}
	return a, nil
}

func (a App) reportWindow() report.Window {
	if a.lastMonth {
		return report.LastMonth(a.now())
	}
	return report.ThisMonth(a.now())
}

func (a App) reportTitle() string {
	if a.lastMonth {
		return "Last month"
	}
	return "This month"
}

func (a App) renderReportTab(cw int) string {
	t := theme.Active
	w := a.reportWindow()
	sum := report.Summarize(a.ledger.Shifts(), a.ledger.Expenses(), w)
	tot := sum.Totals

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var b strings.Builder

	// Row 1: headline numbers
	metrics := []components.Metric{
		{Label: "Made", Value: cli.FormatMoney(tot.Made)},
		{Label: "Tip-out", Value: cli.FormatMoney(tot.TipOut)},
		{Label: "Net", Value: cli.FormatMoney(tot.Net), Color: t.Signed(tot.Net.IsNegative())},
		{Label: "Avg / shift", Value: cli.FormatMoney(tot.Average), Delta: fmt.Sprintf("%d shifts", tot.Count)},
	}
	if a.cfg.Features.Hours {
		metrics = append(metrics, components.Metric{
			Label: "Per hour",
			Value: cli.FormatMoney(tot.PerHour),
			Delta: tot.Hours.String() + "h",
		})
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Row 2: net by day
	chartInner := components.CardInnerWidth(cw)
	var chart string
	if len(sum.PerDay) == 0 {
		chart = mutedStyle.Render("No shifts in this period.")
	} else {
		values := make([]float64, len(sum.PerDay))
		dates := make([]string, len(sum.PerDay))
		for i, d := range sum.PerDay {
			values[i] = d.Net.InexactFloat64()
			dates[i] = d.Date
		}
		chart = components.BarChart(values, components.DayLabels(dates), t.Gain, chartInner, 8)
	}
	b.WriteString(components.ContentCard(fmt.Sprintf("Net by Day · %s (%s)", a.reportTitle(), w), chart, cw))
	b.WriteString("\n")

	// Row 3: restaurants and shares side by side
	halves := components.LayoutRow(cw, 2)

	var rest strings.Builder
	if len(sum.Restaurants) == 0 {
		rest.WriteString(mutedStyle.Render("Nothing recorded."))
	}
	nameW := components.CardInnerWidth(halves[0]) - 24
	if nameW < 8 {
		nameW = 8
	}
	for i, r := range sum.Restaurants {
		name := r.Restaurant
		if name == "" {
			name = "(none)"
		}
		rest.WriteString(valueStyle.Render(cell(name, nameW, true)))
		rest.WriteString(mutedStyle.Render(fmt.Sprintf(" %3d ", r.Shifts)))
		rest.WriteString(valueStyle.Render(cell(cli.FormatMoney(r.Net), 12, false)))
		if i < len(sum.Restaurants)-1 {
			rest.WriteString("\n")
		}
	}

	var shares strings.Builder
	barW := components.CardInnerWidth(halves[1]) - 18
	if barW < 6 {
		barW = 6
	}
	shares.WriteString(components.ShareBar("Tip-out", tot.TipOut.InexactFloat64(), tot.Made.InexactFloat64(), 11, barW))
	if a.cfg.Features.Expenses {
		shares.WriteString("\n")
		shares.WriteString(components.ShareBar("Expenses", sum.ExpenseTotal.Amount.InexactFloat64(), tot.Net.InexactFloat64(), 11, barW))
		shares.WriteString("\n\n")
		shares.WriteString(mutedStyle.Render(fmt.Sprintf("%d expenses totalling ", sum.ExpenseTotal.Count)))
		shares.WriteString(valueStyle.Render(cli.FormatMoney(sum.ExpenseTotal.Amount)))
		shares.WriteString("\n")
		shares.WriteString(mutedStyle.Render("Net after expenses "))
		shares.WriteString(lipgloss.NewStyle().
			Foreground(t.Signed(sum.NetAfterExpenses.IsNegative())).
			Background(t.Surface).Bold(true).
			Render(cli.FormatMoney(sum.NetAfterExpenses)))
	}

	b.WriteString(components.CardRow([]string{
		components.ContentCard("By Restaurant", rest.String(), halves[0]),
		components.ContentCard("Shares", shares.String(), halves[1]),
	}))

	return b.String()
}
