// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount as dollars with two decimals and comma
// separators. e.g., 1234.5 -> "$1,234.50", -12 -> "-$12.00"
func FormatMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + FormatMoney(d.Neg())
	}
	s := d.StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return "$" + s
	}
	return "$" + FormatNumber(n) + "." + frac
}

// FormatCompactMoney formats an amount for tight spaces such as chart
// labels. e.g., 1234 -> "$1.2K", 85.5 -> "$86"
func FormatCompactMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + FormatCompactMoney(d.Neg())
	}
	thousand := decimal.NewFromInt(1000)
	if d.GreaterThanOrEqual(thousand) {
		return "$" + d.Div(thousand).StringFixed(1) + "K"
	}
	return "$" + d.StringFixed(0)
}

// FormatHours formats optional hours. Absent hours render as "-".
func FormatHours(h *decimal.Decimal) string {
	if h == nil {
		return "-"
	}
	return h.String()
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatDate renders a YYYY-MM-DD day with its weekday, e.g. "Sun 2025-01-05".
// Unparsable input is returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return FormatDayOfWeek(int(t.Weekday())) + " " + date
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// ShortID returns the first eight characters of an identifier.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
