// Package tui provides the interactive Bubble Tea dashboard for tiptrack.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/tiptrack/internal/config"
	"github.com/theirongolddev/tiptrack/internal/ledger"
	"github.com/theirongolddev/tiptrack/internal/log"
	"github.com/theirongolddev/tiptrack/internal/model"
	"github.com/theirongolddev/tiptrack/internal/registry"
	"github.com/theirongolddev/tiptrack/internal/tui/components"
	"github.com/theirongolddev/tiptrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type formKind int

const (
	formNone formKind = iota
	formShift
	formExpense
)

// App is the root Bubble Tea model.
type App struct {
	ledger *ledger.Ledger
	reg    *registry.Registry
	cfg    config.Config
	now    func() time.Time
	log    *log.Logger

	// UI state
	width     int
	height    int
	tabs      []components.Tab
	activeTab int
	showHelp  bool
	keys      keyMap
	help      help.Model
	flash     string

	// Shifts tab
	sort      ledger.SortState
	shifts    []model.ShiftEntry // sorted for display
	shiftCur  int
	confirmID string // entry awaiting delete confirmation

	// Expenses tab
	expenses []model.ExpenseEntry
	expCur   int

	// Report tab
	lastMonth bool

	// Entry forms
	form        *huh.Form
	formKind    formKind
	editID      string // empty when adding
	shiftVals   *ShiftFormValues
	expenseVals *ExpenseFormValues

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool
}

const (
	minTerminalWidth = 80
	maxContentWidth  = 160
	minContentHeight = 5
)

// NewApp creates a new TUI app model over an opened ledger and registry.
func NewApp(l *ledger.Ledger, reg *registry.Registry, cfg config.Config) App {
	a := App{
		ledger: l,
		reg:    reg,
		cfg:    cfg,
		now:    time.Now,
		log:    log.For(log.ComponentTUI),
		tabs:   tabsFor(cfg.Features),
		keys:   newKeyMap(),
		help:   help.New(),
		sort:   ledger.DefaultSort(),
	}
	a.refresh()
	return a
}

// WithSetup makes the dashboard open on the first-run wizard.
func (a App) WithSetup() App {
	a.needSetup = true
	a.setupVals = SetupValuesFrom(a.cfg)
	a.setupForm = NewSetupForm(a.setupVals)
	return a
}

func tabsFor(f config.FeatureConfig) []components.Tab {
	tabs := []components.Tab{components.TabShifts}
	if f.Expenses {
		tabs = append(tabs, components.TabExpenses)
	}
	return append(tabs, components.TabReport)
}

func (a *App) clampTab() {
	if a.activeTab >= len(a.tabs) {
		a.activeTab = len(a.tabs) - 1
	}
}

func (a App) currentTab() components.Tab {
	return a.tabs[a.activeTab]
}

// refresh rebuilds the sorted views from the ledger and clamps cursors.
func (a *App) refresh() {
	a.shifts = ledger.SortShifts(a.ledger.Shifts(), a.sort)
	a.expenses = ledger.SortExpenses(a.ledger.Expenses())
	a.shiftCur = clamp(a.shiftCur, len(a.shifts))
	a.expCur = clamp(a.expCur, len(a.expenses))
}

func clamp(cur, n int) int {
	if cur >= n {
		cur = n - 1
	}
	if cur < 0 {
		cur = 0
	}
	return cur
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.needSetup && a.setupForm != nil {
		return tea.Batch(tea.EnableMouseCellMotion, a.setupForm.Init())
	}
	return tea.EnableMouseCellMotion
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidth())
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.form != nil || a.setupForm != nil {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if a.form != nil {
			if msg.String() == "esc" {
				a.closeForm()
				a.flash = "Cancelled"
				return a, nil
			}
			return a.updateForm(msg)
		}

		if a.confirmID != "" {
			return a.updateConfirmDelete(msg)
		}

		if key.Matches(msg, a.keys.Help) {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		a.flash = ""

		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}

		// Tab navigation
		switch {
		case key.Matches(msg, a.keys.NextTab):
			a.activeTab = (a.activeTab + 1) % len(a.tabs)
			return a, nil
		case key.Matches(msg, a.keys.PrevTab):
			a.activeTab = (a.activeTab - 1 + len(a.tabs)) % len(a.tabs)
			return a, nil
		}
		if runes := msg.Runes; len(runes) == 1 {
			if idx := components.TabIdxByKey(a.tabs, runes[0]); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}

		switch a.currentTab() {
		case components.TabShifts:
			return a.updateShifts(msg)
		case components.TabExpenses:
			return a.updateExpenses(msg)
		case components.TabReport:
			return a.updateReport(msg)
		}
		return a, nil
	}

	// Forward unhandled messages (cursor blinks, etc.) to the active form
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		switch a.currentTab() {
		case components.TabShifts:
			a.shiftCur = clamp(a.shiftCur-1, len(a.shifts))
		case components.TabExpenses:
			a.expCur = clamp(a.expCur-1, len(a.expenses))
		}
	case tea.MouseButtonWheelDown:
		switch a.currentTab() {
		case components.TabShifts:
			a.shiftCur = clamp(a.shiftCur+1, len(a.shifts))
		case components.TabExpenses:
			a.expCur = clamp(a.expCur+1, len(a.expenses))
		}
	case tea.MouseButtonLeft:
		if msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

func (a App) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := a.confirmID
	a.confirmID = ""
	if msg.String() != "y" && msg.String() != "Y" {
		a.flash = "Delete cancelled"
		return a, nil
	}

	var err error
	switch a.currentTab() {
	case components.TabShifts:
		_, err = a.ledger.RemoveShift(id)
	case components.TabExpenses:
		_, err = a.ledger.RemoveExpense(id)
	}
	a.refresh()
	if err != nil {
		a.log.Error("delete failed", log.FieldEntryID, id, log.FieldError, err)
		a.flash = "Delete not saved: " + err.Error()
		return a, nil
	}
	a.flash = "Deleted"
	return a, nil
}

func (a App) formWidth() int {
	w := a.contentWidth() - 4
	if w > 70 {
		w = 70
	}
	return w
}

func (a *App) openShiftForm(vals *ShiftFormValues, editID string) tea.Cmd {
	a.shiftVals = vals
	a.editID = editID
	a.formKind = formShift
	names := a.reg.AllKnownNames(a.ledger.Shifts())
	a.form = NewShiftForm(vals, names, a.cfg.Features.Hours).WithWidth(a.formWidth())
	return a.form.Init()
}

func (a *App) openExpenseForm(vals *ExpenseFormValues, editID string) tea.Cmd {
	a.expenseVals = vals
	a.editID = editID
	a.formKind = formExpense
	a.form = NewExpenseForm(vals).WithWidth(a.formWidth())
	return a.form.Init()
}

func (a *App) closeForm() {
	a.form = nil
	a.formKind = formNone
	a.editID = ""
	a.shiftVals = nil
	a.expenseVals = nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		a.flash = a.submitForm()
		a.closeForm()
		a.refresh()
		return a, nil
	case huh.StateAborted:
		a.closeForm()
		a.flash = "Cancelled"
		return a, nil
	}
	return a, cmd
}

// submitForm stores the completed form and returns the flash message.
func (a *App) submitForm() string {
	switch a.formKind {
	case formShift:
		e, err := a.shiftVals.Entry()
		if err != nil {
			return "Not saved: " + err.Error()
		}
		if a.editID != "" {
			_, err = a.ledger.UpdateShift(a.editID, e)
		} else {
			_, err = a.ledger.AddShift(e)
		}
		if err != nil {
			a.log.Error("saving shift", log.FieldError, err)
			return "Not saved: " + err.Error()
		}
		if e.Restaurant != "" {
			if err := a.reg.Register(e.Restaurant); err != nil {
				a.log.Warn("registering restaurant", log.FieldError, err)
			}
			if err := a.reg.SetLastUsed(e.Restaurant); err != nil {
				a.log.Warn("saving last restaurant", log.FieldError, err)
			}
		}
		if a.editID != "" {
			return "Updated shift " + e.Date
		}
		return "Added shift " + e.Date

	case formExpense:
		e, err := a.expenseVals.Entry()
		if err != nil {
			return "Not saved: " + err.Error()
		}
		if a.editID != "" {
			_, err = a.ledger.UpdateExpense(a.editID, e)
		} else {
			_, err = a.ledger.AddExpense(e)
		}
		if err != nil {
			a.log.Error("saving expense", log.FieldError, err)
			return "Not saved: " + err.Error()
		}
		return "Saved expense " + e.Description
	}
	return ""
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		if err := a.saveSetupConfig(); err != nil {
			a.flash = "Could not save config: " + err.Error()
		} else {
			a.flash = "Saved " + config.ConfigPath()
		}
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  tiptrack needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(a.help.FullHelpView(a.keys.FullHelp()))
	b.WriteString("\n\n")

	tabKeys := make([]string, len(a.tabs))
	for i, tab := range a.tabs {
		tabKeys[i] = fmt.Sprintf("%c %s", tab.Key, tab.Name)
	}
	b.WriteString(dimStyle.Render("Tabs: " + strings.Join(tabKeys, "  ·  ")))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.tabs, a.activeTab, w)

	hints := a.help.ShortHelpView(a.keys.ShortHelp())
	flash := a.flash
	if a.confirmID != "" {
		flash = "Delete this entry? y/n"
	}
	statusBar := components.RenderStatusBar(w, hints, a.statusInfo(), flash)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch {
	case a.form != nil:
		content = a.viewForm(cw)
	case a.currentTab() == components.TabShifts:
		content = a.renderShiftsTab(cw, contentH)
	case a.currentTab() == components.TabExpenses:
		content = a.renderExpensesTab(cw, contentH)
	case a.currentTab() == components.TabReport:
		content = a.renderReportTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewForm(cw int) string {
	title := "Add shift"
	switch {
	case a.formKind == formShift && a.editID != "":
		title = "Edit shift"
	case a.formKind == formExpense && a.editID != "":
		title = "Edit expense"
	case a.formKind == formExpense:
		title = "Add expense"
	}
	return components.ContentCard(title+"  (esc to cancel)", a.form.View(), cw)
}

func (a App) statusInfo() string {
	switch a.currentTab() {
	case components.TabShifts:
		return fmt.Sprintf("%d shifts · sort %s", len(a.shifts), a.sort)
	case components.TabExpenses:
		return fmt.Sprintf("%d expenses", len(a.expenses))
	default:
		return a.reportWindow().String()
	}
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range a.tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW
		if i < len(a.tabs)-1 {
			pos++ // separator
		}
	}
	return -1
}

// visibleWindow returns the slice bounds of a rows-high window that keeps
// cursor on screen, scrolling only once the cursor passes the last row.
func visibleWindow(cursor, rows, total int) (start, end int) {
	if rows < 1 {
		rows = 1
	}
	offset := 0
	if cursor >= rows {
		offset = cursor - rows + 1
	}
	end = offset + rows
	if end > total {
		end = total
	}
	return offset, end
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
