package report

import (
	"testing"
	"time"

	"github.com/theirongolddev/tiptrack/internal/model"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func shift(date, made, tipOut string) model.ShiftEntry {
	return model.ShiftEntry{ID: date + made, Date: date, Made: dec(made), TipOut: dec(tipOut)}
}

func scenario() []model.ShiftEntry {
	return []model.ShiftEntry{
		shift("2025-01-05", "100", "20"),
		shift("2025-01-05", "50", "10"),
		shift("2025-02-01", "200", "30"),
	}
}

func TestComputeTotals_Scenario(t *testing.T) {
	got := ComputeTotals(scenario())
	if !got.Made.Equal(dec("350")) || !got.TipOut.Equal(dec("60")) || !got.Net.Equal(dec("290")) {
		t.Fatalf("totals = made %s out %s net %s, want 350/60/290", got.Made, got.TipOut, got.Net)
	}
	if got.Count != 3 {
		t.Fatalf("Count = %d, want 3", got.Count)
	}
	if !got.Made.Sub(got.TipOut).Equal(got.Net) {
		t.Fatalf("made - tipOut = %s, want net %s", got.Made.Sub(got.TipOut), got.Net)
	}
	if want := dec("290").Div(dec("3")); !got.Average.Equal(want) {
		t.Fatalf("Average = %s, want %s", got.Average, want)
	}
}

func TestComputeTotals_EmptyAverageIsZero(t *testing.T) {
	got := ComputeTotals(nil)
	if got.Count != 0 || !got.Average.IsZero() || !got.Net.IsZero() || !got.PerHour.IsZero() {
		t.Fatalf("empty totals = %+v", got)
	}
}

func TestComputeTotals_PerHour(t *testing.T) {
	h := dec("5")
	e := shift("2025-01-01", "120", "20")
	e.Hours = &h
	got := ComputeTotals([]model.ShiftEntry{e, shift("2025-01-02", "10", "0")})
	if !got.Hours.Equal(dec("5")) {
		t.Fatalf("Hours = %s, want 5", got.Hours)
	}
	if !got.PerHour.Equal(dec("22")) {
		t.Fatalf("PerHour = %s, want 22", got.PerHour)
	}
}

func TestFilterByRange_InclusiveBounds(t *testing.T) {
	entries := []model.ShiftEntry{
		shift("2025-01-31", "1", "0"),
		shift("2025-02-01", "2", "0"),
		shift("2025-02-15", "3", "0"),
		shift("2025-02-28", "4", "0"),
		shift("2025-03-01", "5", "0"),
	}

	got := FilterByRange(entries, "2025-02-01", "2025-02-28")
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Date != "2025-02-01" || got[2].Date != "2025-02-28" {
		t.Fatalf("bounds not retained: %v .. %v", got[0].Date, got[2].Date)
	}
}

func TestFilterByRange_OpenBounds(t *testing.T) {
	entries := scenario()
	if got := FilterByRange(entries, "", ""); len(got) != 3 {
		t.Fatalf("unbounded len = %d, want 3", len(got))
	}
	if got := FilterByRange(entries, "2025-01-06", ""); len(got) != 1 {
		t.Fatalf("start-only len = %d, want 1", len(got))
	}
	if got := FilterByRange(entries, "", "2025-01-05"); len(got) != 2 {
		t.Fatalf("end-only len = %d, want 2", len(got))
	}
}

func TestGroupNetByDay_Scenario(t *testing.T) {
	got := GroupNetByDay(scenario())
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Date != "2025-01-05" || !got[0].Net.Equal(dec("120")) {
		t.Errorf("day 0 = %s %s, want 2025-01-05 120", got[0].Date, got[0].Net)
	}
	if got[1].Date != "2025-02-01" || !got[1].Net.Equal(dec("170")) {
		t.Errorf("day 1 = %s %s, want 2025-02-01 170", got[1].Date, got[1].Net)
	}
}

func TestGroupNetByDay_OrdersAscending(t *testing.T) {
	got := GroupNetByDay([]model.ShiftEntry{
		shift("2025-03-02", "1", "0"),
		shift("2025-03-01", "1", "0"),
	})
	if len(got) != 2 || got[0].Date != "2025-03-01" || got[1].Date != "2025-03-02" {
		t.Fatalf("order = %+v", got)
	}
}

func TestGroupByRestaurant(t *testing.T) {
	a := shift("2025-01-01", "100", "0")
	a.Restaurant = "Cafe"
	b := shift("2025-01-02", "50", "0")
	b.Restaurant = "Cafe"
	c := shift("2025-01-03", "200", "0")
	c.Restaurant = "Diner"

	got := GroupByRestaurant([]model.ShiftEntry{a, b, c, shift("2025-01-04", "5", "0")})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Restaurant != "Diner" || got[1].Restaurant != "Cafe" || got[1].Shifts != 2 || !got[1].Net.Equal(dec("150")) {
		t.Fatalf("groups = %+v", got)
	}
	if got[2].Restaurant != "" {
		t.Fatalf("blank group = %+v", got[2])
	}
}

func TestMonthWindows(t *testing.T) {
	tests := []struct {
		now       time.Time
		this, prv Window
	}{
		{
			now:  time.Date(2025, time.March, 15, 12, 0, 0, 0, time.Local),
			this: Window{"2025-03-01", "2025-03-31"},
			prv:  Window{"2025-02-01", "2025-02-28"},
		},
		{
			now:  time.Date(2024, time.March, 31, 23, 59, 0, 0, time.Local),
			this: Window{"2024-03-01", "2024-03-31"},
			prv:  Window{"2024-02-01", "2024-02-29"},
		},
		{
			now:  time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local),
			this: Window{"2026-01-01", "2026-01-31"},
			prv:  Window{"2025-12-01", "2025-12-31"},
		},
	}
	for _, tt := range tests {
		if got := ThisMonth(tt.now); got != tt.this {
			t.Errorf("ThisMonth(%s) = %+v, want %+v", tt.now.Format(time.DateOnly), got, tt.this)
		}
		if got := LastMonth(tt.now); got != tt.prv {
			t.Errorf("LastMonth(%s) = %+v, want %+v", tt.now.Format(time.DateOnly), got, tt.prv)
		}
	}
}

func TestSummarize_NetsExpenses(t *testing.T) {
	expenses := []model.ExpenseEntry{
		{ID: "x", Date: "2025-01-10", Amount: dec("15"), Description: "Shoes"},
		{ID: "y", Date: "2025-02-10", Amount: dec("99"), Description: "Outside"},
	}
	s := Summarize(scenario(), expenses, Window{"2025-01-01", "2025-01-31"})

	if s.Totals.Count != 2 || !s.Totals.Net.Equal(dec("120")) {
		t.Fatalf("totals = %+v", s.Totals)
	}
	if s.ExpenseTotal.Count != 1 || !s.ExpenseTotal.Amount.Equal(dec("15")) {
		t.Fatalf("expense totals = %+v", s.ExpenseTotal)
	}
	if !s.NetAfterExpenses.Equal(dec("105")) {
		t.Fatalf("NetAfterExpenses = %s, want 105", s.NetAfterExpenses)
	}
	if len(s.PerDay) != 1 {
		t.Fatalf("PerDay = %+v", s.PerDay)
	}
}

func TestWindow_String(t *testing.T) {
	if got := (Window{}).String(); got != "all time" {
		t.Fatalf("String = %q", got)
	}
	if got := (Window{"2025-01-01", "2025-01-31"}).String(); got != "2025-01-01 to 2025-01-31" {
		t.Fatalf("String = %q", got)
	}
}
