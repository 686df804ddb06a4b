package registry

import (
	"errors"
	"reflect"
	"testing"

	"github.com/theirongolddev/tiptrack/internal/model"
	"github.com/theirongolddev/tiptrack/internal/store"
)

func TestRegister_IgnoresBlank(t *testing.T) {
	r := Open(store.NewMemory())
	for _, name := range []string{"", "   ", "\t"} {
		if err := r.Register(name); err != nil {
			t.Fatalf("Register(%q): %v", name, err)
		}
	}
	if got := r.Names(); len(got) != 0 {
		t.Fatalf("Names = %v, want empty", got)
	}
}

func TestRegister_Idempotent(t *testing.T) {
	kv := store.NewMemory()
	r := Open(kv)
	_ = r.Register("Cafe")
	_ = r.Register(" Cafe ")
	_ = r.Register("cafe")

	want := []string{"Cafe", "cafe"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names = %v, want %v", got, want)
	}
	if got := Open(kv).Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("reopened Names = %v, want %v", got, want)
	}
}

func TestAllKnownNames_UnionSorted(t *testing.T) {
	r := Open(store.NewMemory())
	_ = r.Register("Zeta")
	_ = r.Register("Bistro")

	entries := []model.ShiftEntry{
		{Restaurant: "Annex"},
		{Restaurant: "Bistro"},
		{Restaurant: "  "},
		{},
	}
	want := []string{"Annex", "Bistro", "Zeta"}
	if got := r.AllKnownNames(entries); !reflect.DeepEqual(got, want) {
		t.Fatalf("AllKnownNames = %v, want %v", got, want)
	}
	if got := r.Names(); len(got) != 2 {
		t.Fatalf("AllKnownNames must not register, Names = %v", got)
	}
}

func TestSeed(t *testing.T) {
	kv := store.NewMemory()
	r := Open(kv)
	entries := []model.ShiftEntry{{Restaurant: "Grill"}, {Restaurant: "Grill"}, {Restaurant: "Deli"}}
	if err := r.Seed(entries); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	want := []string{"Deli", "Grill"}
	if got := Open(kv).Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names = %v, want %v", got, want)
	}
}

func TestLastUsed(t *testing.T) {
	kv := store.NewMemory()
	r := Open(kv)
	if got := r.LastUsed(); got != "" {
		t.Fatalf("LastUsed = %q, want empty", got)
	}
	if err := r.SetLastUsed("Cafe"); err != nil {
		t.Fatalf("SetLastUsed: %v", err)
	}
	if got := Open(kv).LastUsed(); got != "Cafe" {
		t.Fatalf("LastUsed = %q, want Cafe", got)
	}
}

func TestLastUsed_RawTextFallback(t *testing.T) {
	kv := store.NewMemory()
	_ = kv.Put(store.KeyLastRestaurant, []byte("Old Diner"))
	if got := Open(kv).LastUsed(); got != "Old Diner" {
		t.Fatalf("LastUsed = %q, want Old Diner", got)
	}
}

// flakyKV fails writes while fail is set.
type flakyKV struct {
	*store.Memory
	fail bool
}

func (f *flakyKV) Put(key string, value []byte) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.Memory.Put(key, value)
}

func TestRegister_FailedWriteLeavesSetUnchanged(t *testing.T) {
	kv := &flakyKV{Memory: store.NewMemory(), fail: true}
	r := Open(kv)

	if err := r.Register("Cafe"); err == nil {
		t.Fatal("Register returned nil error for failing backend")
	}
	if got := r.Names(); len(got) != 0 {
		t.Fatalf("Names after failed write = %v, want empty", got)
	}

	kv.fail = false
	if err := r.Register("Cafe"); err != nil {
		t.Fatalf("retry Register: %v", err)
	}
	if got := Open(kv).Names(); !reflect.DeepEqual(got, []string{"Cafe"}) {
		t.Fatalf("stored Names = %v, want [Cafe]", got)
	}
}

func TestSeed_FailedWriteLeavesSetUnchanged(t *testing.T) {
	kv := &flakyKV{Memory: store.NewMemory(), fail: true}
	r := Open(kv)

	if err := r.Seed([]model.ShiftEntry{{Restaurant: "Diner"}}); err == nil {
		t.Fatal("Seed returned nil error for failing backend")
	}
	if got := r.Names(); len(got) != 0 {
		t.Fatalf("Names after failed seed = %v, want empty", got)
	}
}
