// Package ledger is the in-memory record store for shifts and expenses.
// Every mutation is written through to the persistence port before the
// call returns.
package ledger

import (
	"fmt"

	"github.com/theirongolddev/tiptrack/internal/log"
	"github.com/theirongolddev/tiptrack/internal/model"
	"github.com/theirongolddev/tiptrack/internal/store"
)

// Ledger owns the live shift and expense sequences, most recent first.
type Ledger struct {
	kv       store.KV
	shifts   []model.ShiftEntry
	expenses []model.ExpenseEntry
	log      *log.Logger
}

// Open hydrates a ledger from kv. Unreadable data loads as empty and
// undecodable records are dropped.
func Open(kv store.KV) *Ledger {
	l := &Ledger{
		kv:       kv,
		shifts:   store.Load[model.ShiftEntry](kv, store.KeyShifts),
		expenses: store.Load[model.ExpenseEntry](kv, store.KeyExpenses),
		log:      log.For(log.ComponentLedger),
	}
	// Records stored without an identifier get one so they can be edited.
	for i := range l.shifts {
		if l.shifts[i].ID == "" {
			l.shifts[i].ID = model.NewID()
		}
	}
	for i := range l.expenses {
		if l.expenses[i].ID == "" {
			l.expenses[i].ID = model.NewID()
		}
	}
	l.log.Debug("ledger loaded", "shifts", len(l.shifts), "expenses", len(l.expenses))
	return l
}

func cloneShift(e model.ShiftEntry) model.ShiftEntry {
	if e.Hours != nil {
		h := *e.Hours
		e.Hours = &h
	}
	return e
}

// Shifts returns a copy of the shift sequence in stored order.
func (l *Ledger) Shifts() []model.ShiftEntry {
	out := make([]model.ShiftEntry, len(l.shifts))
	for i, e := range l.shifts {
		out[i] = cloneShift(e)
	}
	return out
}

// Shift returns the entry with id.
func (l *Ledger) Shift(id string) (model.ShiftEntry, bool) {
	for _, e := range l.shifts {
		if e.ID == id {
			return cloneShift(e), true
		}
	}
	return model.ShiftEntry{}, false
}

// AddShift prepends e. An empty ID is filled with a fresh one.
func (l *Ledger) AddShift(e model.ShiftEntry) (model.ShiftEntry, error) {
	if e.ID == "" {
		e.ID = model.NewID()
	}
	e = cloneShift(e)
	l.shifts = append([]model.ShiftEntry{e}, l.shifts...)
	l.log.Debug("shift added", log.FieldEntryID, e.ID)
	return e, l.persistShifts()
}

// ImportShifts prepends a batch, keeping the batch's own order.
func (l *Ledger) ImportShifts(batch []model.ShiftEntry) error {
	if len(batch) == 0 {
		return nil
	}
	merged := make([]model.ShiftEntry, 0, len(batch)+len(l.shifts))
	for _, e := range batch {
		if e.ID == "" {
			e.ID = model.NewID()
		}
		merged = append(merged, cloneShift(e))
	}
	l.shifts = append(merged, l.shifts...)
	l.log.Debug("shifts imported", log.FieldCount, len(batch))
	return l.persistShifts()
}

// UpdateShift replaces the entry with id by e, keeping id. It reports
// whether an entry was found; a miss changes nothing.
func (l *Ledger) UpdateShift(id string, e model.ShiftEntry) (bool, error) {
	for i := range l.shifts {
		if l.shifts[i].ID == id {
			e.ID = id
			l.shifts[i] = cloneShift(e)
			return true, l.persistShifts()
		}
	}
	return false, nil
}

// RemoveShift deletes the first entry with id. A miss changes nothing.
func (l *Ledger) RemoveShift(id string) (bool, error) {
	for i := range l.shifts {
		if l.shifts[i].ID == id {
			l.shifts = append(l.shifts[:i:i], l.shifts[i+1:]...)
			return true, l.persistShifts()
		}
	}
	return false, nil
}

// Expenses returns a copy of the expense sequence in stored order.
func (l *Ledger) Expenses() []model.ExpenseEntry {
	return append([]model.ExpenseEntry(nil), l.expenses...)
}

// Expense returns the expense with id.
func (l *Ledger) Expense(id string) (model.ExpenseEntry, bool) {
	for _, e := range l.expenses {
		if e.ID == id {
			return e, true
		}
	}
	return model.ExpenseEntry{}, false
}

// AddExpense prepends e. An empty ID is filled with a fresh one.
func (l *Ledger) AddExpense(e model.ExpenseEntry) (model.ExpenseEntry, error) {
	if e.ID == "" {
		e.ID = model.NewID()
	}
	l.expenses = append([]model.ExpenseEntry{e}, l.expenses...)
	return e, l.persistExpenses()
}

// UpdateExpense replaces the expense with id by e, keeping id.
func (l *Ledger) UpdateExpense(id string, e model.ExpenseEntry) (bool, error) {
	for i := range l.expenses {
		if l.expenses[i].ID == id {
			e.ID = id
			l.expenses[i] = e
			return true, l.persistExpenses()
		}
	}
	return false, nil
}

// RemoveExpense deletes the first expense with id.
func (l *Ledger) RemoveExpense(id string) (bool, error) {
	for i := range l.expenses {
		if l.expenses[i].ID == id {
			l.expenses = append(l.expenses[:i:i], l.expenses[i+1:]...)
			return true, l.persistExpenses()
		}
	}
	return false, nil
}

func (l *Ledger) persistShifts() error {
	if err := store.Save(l.kv, store.KeyShifts, l.shifts); err != nil {
		l.log.Error("write-through failed", log.FieldKey, store.KeyShifts, log.FieldError, err)
		return fmt.Errorf("saving shifts: %w", err)
	}
	return nil
}

func (l *Ledger) persistExpenses() error {
	if err := store.Save(l.kv, store.KeyExpenses, l.expenses); err != nil {
		l.log.Error("write-through failed", log.FieldKey, store.KeyExpenses, log.FieldError, err)
		return fmt.Errorf("saving expenses: %w", err)
	}
	return nil
}
