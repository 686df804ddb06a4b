package ledger

import (
	"testing"

	"github.com/theirongolddev/tiptrack/internal/model"
)

func TestSortState_Toggle(t *testing.T) {
	s := DefaultSort()
	if s != (SortState{Key: SortDate, Desc: true}) {
		t.Fatalf("DefaultSort = %v", s)
	}

	s = s.Toggle(SortDate)
	if s.Key != SortDate || s.Desc {
		t.Fatalf("toggle same key = %v, want date asc", s)
	}

	s = s.Toggle(SortNet)
	if s.Key != SortNet || s.Desc {
		t.Fatalf("switch to net = %v, want net asc", s)
	}

	s = s.Toggle(SortNet)
	if !s.Desc {
		t.Fatalf("toggle net again = %v, want desc", s)
	}

	s = s.Toggle(SortDate)
	if s.Key != SortDate || !s.Desc {
		t.Fatalf("switch back to date = %v, want date desc", s)
	}
}

func TestSortShifts_ByNet(t *testing.T) {
	entries := []model.ShiftEntry{
		shift("a", "2025-01-01", "100", "20"), // 80
		shift("b", "2025-01-02", "50", "0"),   // 50
		shift("c", "2025-01-03", "90", "0"),   // 90
	}

	asc := ids(SortShifts(entries, SortState{Key: SortNet}))
	if !equalIDs(asc, []string{"b", "a", "c"}) {
		t.Fatalf("net asc = %v, want [b a c]", asc)
	}
	desc := ids(SortShifts(entries, SortState{Key: SortNet, Desc: true}))
	if !equalIDs(desc, []string{"c", "a", "b"}) {
		t.Fatalf("net desc = %v, want [c a b]", desc)
	}
	if got := ids(entries); !equalIDs(got, []string{"a", "b", "c"}) {
		t.Fatalf("input reordered: %v", got)
	}
}

func TestSortShifts_StableTies(t *testing.T) {
	entries := []model.ShiftEntry{
		shift("a", "2025-01-01", "1", "0"),
		shift("b", "2025-01-01", "1", "0"),
		shift("c", "2025-01-01", "1", "0"),
	}
	for _, desc := range []bool{false, true} {
		got := ids(SortShifts(entries, SortState{Key: SortDate, Desc: desc}))
		if !equalIDs(got, []string{"a", "b", "c"}) {
			t.Fatalf("desc=%v ties = %v, want input order", desc, got)
		}
	}
}

func TestSortShifts_AbsentHoursFirst(t *testing.T) {
	h := dec("4")
	withHours := shift("h", "2025-01-01", "1", "0")
	withHours.Hours = &h
	entries := []model.ShiftEntry{withHours, shift("n", "2025-01-01", "1", "0")}

	got := ids(SortShifts(entries, SortState{Key: SortHours}))
	if !equalIDs(got, []string{"n", "h"}) {
		t.Fatalf("hours asc = %v, want [n h]", got)
	}
}

func TestParseSortKey(t *testing.T) {
	for in, want := range map[string]SortKey{
		"date":    SortDate,
		"TipOut":  SortTipOut,
		"tip-out": SortTipOut,
		" net ":   SortNet,
	} {
		got, err := ParseSortKey(in)
		if err != nil || got != want {
			t.Errorf("ParseSortKey(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseSortKey("bogus"); err == nil {
		t.Error("ParseSortKey(bogus) should fail")
	}
}

func TestSortExpenses_NewestFirst(t *testing.T) {
	in := []model.ExpenseEntry{
		{ID: "1", Date: "2025-01-01"},
		{ID: "2", Date: "2025-03-01"},
		{ID: "3", Date: "2025-02-01"},
	}
	got := SortExpenses(in)
	if got[0].ID != "2" || got[1].ID != "3" || got[2].ID != "1" {
		t.Fatalf("SortExpenses = %v", got)
	}
}
