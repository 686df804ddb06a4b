package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/tiptrack/internal/model"
)

// ShiftFormValues holds the raw text of a shift form.
type ShiftFormValues struct {
	Date       string
	Made       string
	TipOut     string
	Hours      string
	Restaurant string
	Notes      string
}

// NewShiftValues returns form defaults for a new shift on today's date.
func NewShiftValues(lastRestaurant string) *ShiftFormValues {
	return &ShiftFormValues{Date: model.Today(), Restaurant: lastRestaurant}
}

// ShiftValuesFrom pre-fills a form from an existing entry.
func ShiftValuesFrom(e model.ShiftEntry) *ShiftFormValues {
	v := &ShiftFormValues{
		Date:       e.Date,
		Made:       e.Made.String(),
		TipOut:     e.TipOut.String(),
		Restaurant: e.Restaurant,
		Notes:      e.Notes,
	}
	if e.Hours != nil {
		v.Hours = e.Hours.String()
	}
	return v
}

// Entry parses and validates the form into a shift without an ID.
func (v ShiftFormValues) Entry() (model.ShiftEntry, error) {
	made, err := model.ParseAmount(v.Made)
	if err != nil {
		return model.ShiftEntry{}, fmt.Errorf("made: %w", err)
	}
	tipOut, err := model.ParseAmount(v.TipOut)
	if err != nil {
		return model.ShiftEntry{}, fmt.Errorf("tip-out: %w", err)
	}
	hours, err := model.ParseAmount(v.Hours)
	if err != nil {
		return model.ShiftEntry{}, fmt.Errorf("hours: %w", err)
	}

	e := model.ShiftEntry{
		Date:       strings.TrimSpace(v.Date),
		Made:       made,
		TipOut:     tipOut,
		Hours:      model.OptionalHours(hours),
		Restaurant: strings.TrimSpace(v.Restaurant),
		Notes:      strings.TrimSpace(v.Notes),
	}
	if err := model.ValidateShift(e); err != nil {
		return model.ShiftEntry{}, err
	}
	return e, nil
}

// ExpenseFormValues holds the raw text of an expense form.
type ExpenseFormValues struct {
	Date        string
	Amount      string
	Description string
}

// NewExpenseValues returns form defaults for a new expense on today's date.
func NewExpenseValues() *ExpenseFormValues {
	return &ExpenseFormValues{Date: model.Today()}
}

// ExpenseValuesFrom pre-fills a form from an existing expense.
func ExpenseValuesFrom(e model.ExpenseEntry) *ExpenseFormValues {
	return &ExpenseFormValues{Date: e.Date, Amount: e.Amount.String(), Description: e.Description}
}

// Entry parses and validates the form into an expense without an ID.
func (v ExpenseFormValues) Entry() (model.ExpenseEntry, error) {
	amount, err := model.ParseAmount(v.Amount)
	if err != nil {
		return model.ExpenseEntry{}, fmt.Errorf("amount: %w", err)
	}
	e := model.ExpenseEntry{
		Date:        strings.TrimSpace(v.Date),
		Amount:      amount,
		Description: strings.TrimSpace(v.Description),
	}
	if err := model.ValidateExpense(e); err != nil {
		return model.ExpenseEntry{}, err
	}
	return e, nil
}

func validateDate(s string) error {
	if !model.ValidDate(strings.TrimSpace(s)) {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

func validateNonNegative(s string) error {
	d, err := model.ParseAmount(s)
	if err != nil {
		return errors.New("not a number")
	}
	if d.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
}

func validateAmount(s string) error {
	if _, err := model.ParseAmount(s); err != nil {
		return errors.New("not a number")
	}
	return nil
}

func validateDescription(s string) error {
	if strings.TrimSpace(s) == "" {
		return model.ErrEmptyDescription
	}
	return nil
}

// NewShiftForm builds the shift entry form. restaurants feeds the
// restaurant field's autocomplete.
func NewShiftForm(v *ShiftFormValues, restaurants []string, withHours bool) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().Title("Date").Placeholder("YYYY-MM-DD").Value(&v.Date).Validate(validateDate),
		huh.NewInput().Title("Made").Placeholder("0").Value(&v.Made).Validate(validateNonNegative),
		huh.NewInput().Title("Tip-out").Placeholder("0").Value(&v.TipOut).Validate(validateNonNegative),
	}
	if withHours {
		fields = append(fields,
			huh.NewInput().Title("Hours").Placeholder("optional").Value(&v.Hours).Validate(validateNonNegative))
	}
	fields = append(fields,
		huh.NewInput().Title("Restaurant").Placeholder("optional").Suggestions(restaurants).Value(&v.Restaurant),
		huh.NewInput().Title("Notes").Placeholder("optional").Value(&v.Notes),
	)
	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(true)
}

// NewExpenseForm builds the expense entry form.
func NewExpenseForm(v *ExpenseFormValues) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Date").Placeholder("YYYY-MM-DD").Value(&v.Date).Validate(validateDate),
		huh.NewInput().Title("Amount").Placeholder("0").Value(&v.Amount).Validate(validateAmount),
		huh.NewInput().Title("Description").Value(&v.Description).Validate(validateDescription),
	)).WithShowHelp(true)
}
