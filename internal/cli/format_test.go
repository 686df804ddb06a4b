package cli

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/tiptrack/internal/report"
)

func TestFormatMoney(t *testing.T) {
	tests := map[string]string{
		"0":         "$0.00",
		"12.5":      "$12.50",
		"1234.5":    "$1,234.50",
		"1234567.8": "$1,234,567.80",
		"-12":       "-$12.00",
		"0.005":     "$0.01",
	}
	for in, want := range tests {
		if got := FormatMoney(decimal.RequireFromString(in)); got != want {
			t.Errorf("FormatMoney(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatCompactMoney(t *testing.T) {
	tests := map[string]string{
		"85.5": "$86",
		"1234": "$1.2K",
		"-40":  "-$40",
	}
	for in, want := range tests {
		if got := FormatCompactMoney(decimal.RequireFromString(in)); got != want {
			t.Errorf("FormatCompactMoney(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	if got := FormatHours(nil); got != "-" {
		t.Errorf("FormatHours(nil) = %q, want -", got)
	}
	h := decimal.RequireFromString("6.5")
	if got := FormatHours(&h); got != "6.5" {
		t.Errorf("FormatHours(6.5) = %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	for n, want := range map[int64]string{0: "0", 999: "999", 1000: "1,000", -1234567: "-1,234,567"} {
		if got := FormatNumber(n); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2025-01-05"); got != "Sun 2025-01-05" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatDate("garbage"); got != "garbage" {
		t.Errorf("FormatDate(garbage) = %q", got)
	}
}

func TestShortIDAndTruncate(t *testing.T) {
	if got := ShortID("0123456789abcdef"); got != "01234567" {
		t.Errorf("ShortID = %q", got)
	}
	if got := ShortID("abc"); got != "abc" {
		t.Errorf("ShortID(abc) = %q", got)
	}
	if got := Truncate("Café du Monde", 5); got != "Café…" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Shifts",
		Headers: []string{"Date", "Net", "Restaurant"},
		Rows: [][]string{
			{"2025-01-05", "$80.00", "Café"},
			{"---"},
			{"Total", "$80.00", ""},
		},
		Left: []int{2},
	})
	for _, want := range []string{"Shifts", "Date", "Restaurant", "$80.00", "Café", "Total", "╭", "╯"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// title, top, header, separator, row, separator, row, bottom
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8:\n%s", len(lines), out)
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Fatalf("RenderTable(empty) = %q", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline([]float64{0, 7, -3}); got != "▁█▁" {
		t.Fatalf("RenderSparkline = %q", got)
	}
	if got := RenderSparkline(nil); got != "" {
		t.Fatalf("RenderSparkline(nil) = %q", got)
	}
}

func TestRenderNetByDay(t *testing.T) {
	days := []report.DayNet{
		{Date: "2025-01-05", Net: decimal.RequireFromString("100")},
		{Date: "2025-01-06", Net: decimal.RequireFromString("50")},
	}
	out := RenderNetByDay(days, 10)
	if !strings.Contains(out, "Net by Day") || !strings.Contains(out, "$100.00") {
		t.Fatalf("unexpected chart:\n%s", out)
	}
	if !strings.Contains(out, strings.Repeat("█", 10)) {
		t.Errorf("largest bar should fill the width:\n%s", out)
	}
	lines := strings.Split(out, "\n")
	if got := strings.Count(lines[2], "█"); got != 5 {
		t.Errorf("half-value bar has %d blocks, want 5:\n%s", got, out)
	}

	if empty := RenderNetByDay(nil, 10); !strings.Contains(empty, "No shifts") {
		t.Errorf("empty chart = %q", empty)
	}
}
