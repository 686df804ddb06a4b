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

func (a App) updateExpenses(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Down):
		a.expCur = clamp(a.expCur+1, len(a.expenses))
	case key.Matches(msg, a.keys.Up):
		a.expCur = clamp(a.expCur-1, len(a.expenses))
	case key.Matches(msg, a.keys.Top):
		a.expCur = 0
	case key.Matches(msg, a.keys.Bottom):
		a.expCur = clamp(len(a.expenses)-1, len(a.expenses))
	case key.Matches(msg, a.keys.Add):
		return a, a.openExpenseForm(NewExpenseValues(), "")
	case key.Matches(msg, a.keys.Edit):
		if len(a.expenses) == 0 {
			return a, nil
		}
		sel := a.expenses[a.expCur]
		return a, a.openExpenseForm(ExpenseValuesFrom(sel), sel.ID)
	case key.Matches(msg, a.keys.Delete):
		if len(a.expenses) > 0 {
			a.confirmID = a.expenses[a.expCur].ID
		}
	}
	return a, nil
}

func (a App) renderExpensesTab(cw, h int) string {
	t := theme.Active
	inner := components.CardInnerWidth(cw)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	if len(a.expenses) == 0 {
		return components.ContentCard("Expenses", mutedStyle.Render("No expenses yet. Press a to add one."), cw)
	}

	const dateW, amountW = 14, 12
	descW := inner - dateW - amountW - 2
	if descW < 10 {
		descW = 10
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(cell("Date", dateW, true) + " " + cell("Amount", amountW, false) + " " + cell("Description", descW, true)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", inner)))
	b.WriteString("\n")

	start, end := visibleWindow(a.expCur, h-7, len(a.expenses))
	for i := start; i < end; i++ {
		e := a.expenses[i]
		line := cell(cli.FormatDate(e.Date), dateW, true) + " " +
			cell(cli.FormatMoney(e.Amount), amountW, false) + " " +
			cell(e.Description, descW, true)
		if i == a.expCur {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	total := report.ComputeExpenseTotals(a.expenses)
	b.WriteString(mutedStyle.Render(strings.Repeat("─", inner)))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("Total %s across %d expenses", cli.FormatMoney(total.Amount), total.Count)))

	return components.ContentCard(fmt.Sprintf("Expenses [%d]", len(a.expenses)), b.String(), cw)
}
