// Package model defines domain types for tiptrack shifts and expenses.
package model

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-day format used for every stored date.
const DateLayout = "2006-01-02"

// ShiftEntry is one workday's recorded tip activity.
type ShiftEntry struct {
	ID         string
	Date       string // YYYY-MM-DD
	Made       decimal.Decimal
	TipOut     decimal.Decimal
	Hours      *decimal.Decimal // nil when not recorded
	Restaurant string
	Notes      string
}

// Net returns the take-home amount for the shift (made minus tip-out).
func (e ShiftEntry) Net() decimal.Decimal {
	return e.Made.Sub(e.TipOut)
}

// HoursValue returns the recorded hours, or zero when absent.
func (e ShiftEntry) HoursValue() decimal.Decimal {
	if e.Hours == nil {
		return decimal.Zero
	}
	return *e.Hours
}

// NewID returns a fresh opaque entry identifier.
func NewID() string {
	return uuid.NewString()
}

// OptionalHours maps a zero hours value to absent.
func OptionalHours(d decimal.Decimal) *decimal.Decimal {
	if d.IsZero() {
		return nil
	}
	return &d
}

type shiftWire struct {
	ID         string          `json:"id"`
	Date       string          `json:"date"`
	Made       json.RawMessage `json:"made,omitempty"`
	TipOut     json.RawMessage `json:"tipOut,omitempty"`
	Hours      json.RawMessage `json:"hours,omitempty"`
	Restaurant string          `json:"restaurant,omitempty"`
	Notes      string          `json:"notes,omitempty"`
}

// shiftRecord is the tolerant decode shape: every field is read raw and
// coerced, so a mistyped field never rejects the record.
type shiftRecord struct {
	ID         json.RawMessage `json:"id"`
	Date       json.RawMessage `json:"date"`
	Made       json.RawMessage `json:"made"`
	TipOut     json.RawMessage `json:"tipOut"`
	Hours      json.RawMessage `json:"hours"`
	Restaurant json.RawMessage `json:"restaurant"`
	Notes      json.RawMessage `json:"notes"`
}

// MarshalJSON writes amounts as bare JSON numbers.
func (e ShiftEntry) MarshalJSON() ([]byte, error) {
	w := shiftWire{
		ID:         e.ID,
		Date:       e.Date,
		Made:       json.RawMessage(e.Made.String()),
		TipOut:     json.RawMessage(e.TipOut.String()),
		Restaurant: e.Restaurant,
		Notes:      e.Notes,
	}
	if e.Hours != nil {
		w.Hours = json.RawMessage(e.Hours.String())
	}
	return json.Marshal(w)
}

// UnmarshalJSON coerces absent or non-numeric amounts to zero so that no
// entry in memory ever holds a non-numeric amount.
func (e *ShiftEntry) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return errNullRecord
	}
	var r shiftRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*e = ShiftEntry{
		ID:         coerceText(r.ID),
		Date:       coerceText(r.Date),
		Made:       coerceAmount(r.Made),
		TipOut:     coerceAmount(r.TipOut),
		Hours:      OptionalHours(coerceAmount(r.Hours)),
		Restaurant: coerceText(r.Restaurant),
		Notes:      coerceText(r.Notes),
	}
	return nil
}
