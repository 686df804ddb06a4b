// Package report aggregates shift and expense entries for the summary view.
package report

import (
	"sort"

	"github.com/theirongolddev/tiptrack/internal/model"

	"github.com/shopspring/decimal"
)

// Totals holds plain sums over a set of shifts.
type Totals struct {
	Made    decimal.Decimal
	TipOut  decimal.Decimal
	Net     decimal.Decimal
	Count   int
	Average decimal.Decimal // Net / Count, zero when Count is zero
	Hours   decimal.Decimal // sum of recorded hours
	PerHour decimal.Decimal // Net / Hours, zero when no hours are recorded
}

// DayNet is the summed net for one calendar day.
type DayNet struct {
	Date string
	Net  decimal.Decimal
}

// RestaurantNet is the summed net and shift count for one restaurant.
type RestaurantNet struct {
	Restaurant string
	Shifts     int
	Net        decimal.Decimal
}

// ComputeTotals sums made, tip-out and net across entries.
func ComputeTotals(entries []model.ShiftEntry) Totals {
	var t Totals
	for _, e := range entries {
		t.Made = t.Made.Add(e.Made)
		t.TipOut = t.TipOut.Add(e.TipOut)
		t.Net = t.Net.Add(e.Net())
		t.Hours = t.Hours.Add(e.HoursValue())
		t.Count++
	}
	if t.Count > 0 {
		t.Average = t.Net.Div(decimal.NewFromInt(int64(t.Count)))
	}
	if t.Hours.IsPositive() {
		t.PerHour = t.Net.Div(t.Hours)
	}
	return t
}

// InRange reports whether date falls within [start, end]. An empty bound is
// unbounded. Dates compare as fixed-width YYYY-MM-DD strings.
func InRange(date, start, end string) bool {
	if start != "" && date < start {
		return false
	}
	if end != "" && date > end {
		return false
	}
	return true
}

// FilterByRange returns the entries dated within [start, end], keeping order.
func FilterByRange(entries []model.ShiftEntry, start, end string) []model.ShiftEntry {
	result := make([]model.ShiftEntry, 0, len(entries))
	for _, e := range entries {
		if InRange(e.Date, start, end) {
			result = append(result, e)
		}
	}
	return result
}

// GroupNetByDay sums net per date, ascending by date.
func GroupNetByDay(entries []model.ShiftEntry) []DayNet {
	dayMap := make(map[string]decimal.Decimal)
	for _, e := range entries {
		dayMap[e.Date] = dayMap[e.Date].Add(e.Net())
	}

	days := make([]DayNet, 0, len(dayMap))
	for date, net := range dayMap {
		days = append(days, DayNet{Date: date, Net: net})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})
	return days
}

// GroupByRestaurant sums net per restaurant, highest net first. Shifts with
// no restaurant are grouped under "".
func GroupByRestaurant(entries []model.ShiftEntry) []RestaurantNet {
	byName := make(map[string]*RestaurantNet)
	for _, e := range entries {
		rn, ok := byName[e.Restaurant]
		if !ok {
			rn = &RestaurantNet{Restaurant: e.Restaurant}
			byName[e.Restaurant] = rn
		}
		rn.Shifts++
		rn.Net = rn.Net.Add(e.Net())
	}

	result := make([]RestaurantNet, 0, len(byName))
	for _, rn := range byName {
		result = append(result, *rn)
	}
	sort.Slice(result, func(i, j int) bool {
		if c := result[i].Net.Cmp(result[j].Net); c != 0 {
			return c > 0
		}
		return result[i].Restaurant < result[j].Restaurant
	})
	return result
}
