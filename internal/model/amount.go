package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidDate is returned for a date that is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")
	// ErrNegativeAmount is returned when made, tip-out or hours is below zero.
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrEmptyDescription is returned for an expense without a description.
	ErrEmptyDescription = errors.New("description is required")
	// ErrInvalidAmount is returned by ParseAmount for non-numeric input.
	ErrInvalidAmount = errors.New("invalid amount")
	// errNullRecord rejects a stored null in place of a record.
	errNullRecord = errors.New("null record")
)

// ParseLenient parses a decimal, falling back to zero on blank or
// non-numeric input.
func ParseLenient(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseAmount parses user input strictly. Blank input is zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// coerceAmount turns any JSON value into a decimal: numbers and numeric
// strings parse, booleans map to 1/0, everything else is zero.
func coerceAmount(raw json.RawMessage) decimal.Decimal {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return decimal.Zero
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero
		}
		return ParseLenient(s)
	case 't':
		if string(raw) == "true" {
			return decimal.NewFromInt(1)
		}
		return decimal.Zero
	case 'f', 'n', '{', '[':
		return decimal.Zero
	}
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// coerceText turns a JSON scalar into text: strings as is, numbers and
// booleans as their literal, everything else empty.
func coerceText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case 'n', '{', '[':
		return ""
	}
	return string(raw)
}

// ValidDate reports whether s is a YYYY-MM-DD calendar day.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidateShift checks form input before it is stored.
func ValidateShift(e ShiftEntry) error {
	if !ValidDate(e.Date) {
		return fmt.Errorf("%w %q", ErrInvalidDate, e.Date)
	}
	if e.Made.IsNegative() || e.TipOut.IsNegative() {
		return ErrNegativeAmount
	}
	if e.Hours != nil && e.Hours.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// ValidateExpense checks form input before it is stored.
func ValidateExpense(e ExpenseEntry) error {
	if !ValidDate(e.Date) {
		return fmt.Errorf("%w %q", ErrInvalidDate, e.Date)
	}
	if strings.TrimSpace(e.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

// Today returns the local calendar day as YYYY-MM-DD.
func Today() string {
	return time.Now().Format(DateLayout)
}
