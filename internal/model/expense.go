package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ExpenseEntry is an ancillary work expense. Amount may be any sign.
type ExpenseEntry struct {
	ID          string
	Date        string // YYYY-MM-DD
	Amount      decimal.Decimal
	Description string
}

type expenseWire struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Amount      json.RawMessage `json:"amount,omitempty"`
	Description string          `json:"description"`
}

type expenseRecord struct {
	ID          json.RawMessage `json:"id"`
	Date        json.RawMessage `json:"date"`
	Amount      json.RawMessage `json:"amount"`
	Description json.RawMessage `json:"description"`
}

// MarshalJSON writes the amount as a bare JSON number.
func (e ExpenseEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(expenseWire{
		ID:          e.ID,
		Date:        e.Date,
		Amount:      json.RawMessage(e.Amount.String()),
		Description: e.Description,
	})
}

// UnmarshalJSON coerces an absent or non-numeric amount to zero and
// mistyped text fields to their literal.
func (e *ExpenseEntry) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return errNullRecord
	}
	var r expenseRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*e = ExpenseEntry{
		ID:          coerceText(r.ID),
		Date:        coerceText(r.Date),
		Amount:      coerceAmount(r.Amount),
		Description: coerceText(r.Description),
	}
	return nil
}
