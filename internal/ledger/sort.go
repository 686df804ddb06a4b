package ledger

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/tiptrack/internal/model"
)

// SortKey names a shift column the display can be ordered by.
type SortKey string

const (
	SortDate       SortKey = "date"
	SortMade       SortKey = "made"
	SortTipOut     SortKey = "tipOut"
	SortNet        SortKey = "net"
	SortHours      SortKey = "hours"
	SortRestaurant SortKey = "restaurant"
	SortNotes      SortKey = "notes"
)

// SortKeys lists every key in column order.
var SortKeys = []SortKey{SortDate, SortMade, SortTipOut, SortNet, SortHours, SortRestaurant, SortNotes}

// ParseSortKey matches s against the known keys, ignoring case and dashes.
func ParseSortKey(s string) (SortKey, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
	for _, k := range SortKeys {
		if strings.ToLower(string(k)) == norm {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// SortState is the current display ordering.
type SortState struct {
	Key  SortKey
	Desc bool
}

// DefaultSort orders newest shifts first.
func DefaultSort() SortState {
	return SortState{Key: SortDate, Desc: true}
}

// Toggle returns the state after selecting key: the same key flips
// direction, date starts descending and any other key starts ascending.
func (s SortState) Toggle(key SortKey) SortState {
	if s.Key == key {
		return SortState{Key: key, Desc: !s.Desc}
	}
	return SortState{Key: key, Desc: key == SortDate}
}

func (s SortState) String() string {
	dir := "asc"
	if s.Desc {
		dir = "desc"
	}
	return string(s.Key) + " " + dir
}

// SortShifts returns a sorted copy of entries. Ties keep their input order
// in both directions. Absent hours sort before any recorded value.
func SortShifts(entries []model.ShiftEntry, s SortState) []model.ShiftEntry {
	out := make([]model.ShiftEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		c := compareShifts(out[i], out[j], s.Key)
		if s.Desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compareShifts(a, b model.ShiftEntry, key SortKey) int {
	switch key {
	case SortMade:
		return a.Made.Cmp(b.Made)
	case SortTipOut:
		return a.TipOut.Cmp(b.TipOut)
	case SortNet:
		return a.Net().Cmp(b.Net())
	case SortHours:
		return compareHours(a.Hours, b.Hours)
	case SortRestaurant:
		return strings.Compare(a.Restaurant, b.Restaurant)
	case SortNotes:
		return strings.Compare(a.Notes, b.Notes)
	default:
		return strings.Compare(a.Date, b.Date)
	}
}

func compareHours(a, b *decimal.Decimal) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Cmp(*b)
}

// SortExpenses returns a copy of expenses ordered by date, newest first.
func SortExpenses(expenses []model.ExpenseEntry) []model.ExpenseEntry {
	out := append([]model.ExpenseEntry(nil), expenses...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
