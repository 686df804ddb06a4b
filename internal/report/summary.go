package report

import (
	"github.com/theirongolddev/tiptrack/internal/model"

	"github.com/shopspring/decimal"
)

// ExpenseTotals holds the sum and count of a set of expenses.
type ExpenseTotals struct {
	Amount decimal.Decimal
	Count  int
}

// Summary is everything the report view shows for one window.
type Summary struct {
	Window       Window
	Shifts       []model.ShiftEntry
	Totals       Totals
	PerDay       []DayNet
	Restaurants  []RestaurantNet
	Expenses     []model.ExpenseEntry
	ExpenseTotal ExpenseTotals
	// NetAfterExpenses is shift net minus expense total.
	NetAfterExpenses decimal.Decimal
}

// ComputeExpenseTotals sums expense amounts.
func ComputeExpenseTotals(expenses []model.ExpenseEntry) ExpenseTotals {
	var t ExpenseTotals
	for _, e := range expenses {
		t.Amount = t.Amount.Add(e.Amount)
		t.Count++
	}
	return t
}

// FilterExpensesByRange returns expenses dated within [start, end].
func FilterExpensesByRange(expenses []model.ExpenseEntry, start, end string) []model.ExpenseEntry {
	result := make([]model.ExpenseEntry, 0, len(expenses))
	for _, e := range expenses {
		if InRange(e.Date, start, end) {
			result = append(result, e)
		}
	}
	return result
}

// Summarize builds the report for w.
func Summarize(shifts []model.ShiftEntry, expenses []model.ExpenseEntry, w Window) Summary {
	filtered := FilterByRange(shifts, w.Start, w.End)
	filteredExp := FilterExpensesByRange(expenses, w.Start, w.End)

	s := Summary{
		Window:       w,
		Shifts:       filtered,
		Totals:       ComputeTotals(filtered),
		PerDay:       GroupNetByDay(filtered),
		Restaurants:  GroupByRestaurant(filtered),
		Expenses:     filteredExp,
		ExpenseTotal: ComputeExpenseTotals(filteredExp),
	}
	s.NetAfterExpenses = s.Totals.Net.Sub(s.ExpenseTotal.Amount)
	return s
}
