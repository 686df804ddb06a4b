package cmd

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/theirongolddev/tiptrack/internal/config"
	"github.com/theirongolddev/tiptrack/internal/csvio"
	"github.com/theirongolddev/tiptrack/internal/ledger"
	"github.com/theirongolddev/tiptrack/internal/model"
	"github.com/theirongolddev/tiptrack/internal/registry"
	"github.com/theirongolddev/tiptrack/internal/store"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

// useMemoryStore points commands at a shared in-memory backend.
func useMemoryStore(t *testing.T) *store.Memory {
	t.Helper()
	kv := store.NewMemory()
	prevOpen, prevCfg, prevOut := openStore, cfg, stderr
	openStore = func() (store.KV, error) { return kv, nil }
	cfg = config.DefaultConfig()
	stderr = io.Discard
	t.Cleanup(func() {
		openStore, cfg, stderr = prevOpen, prevCfg, prevOut
	})
	return kv
}

func seedShift(t *testing.T, kv store.KV, e model.ShiftEntry) model.ShiftEntry {
	t.Helper()
	saved, err := ledger.Open(kv).AddShift(e)
	if err != nil {
		t.Fatalf("AddShift: %v", err)
	}
	return saved
}

func shiftIDs(entries []model.ShiftEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestRunImport_GrossFailureLeavesLedgerUnchanged(t *testing.T) {
	kv := useMemoryStore(t)
	existing := seedShift(t, kv, model.ShiftEntry{Date: "2025-01-01", Made: decimal.NewFromInt(100)})

	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(empty, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{filepath.Join(dir, "missing.csv"), empty} {
		err := runImport(nil, []string{path})
		if err == nil || !strings.HasPrefix(err.Error(), "import failed:") {
			t.Fatalf("runImport(%s) = %v, want import failed error", filepath.Base(path), err)
		}
	}

	got := shiftIDs(ledger.Open(kv).Shifts())
	if !reflect.DeepEqual(got, []string{existing.ID}) {
		t.Fatalf("shifts after failed import = %v, want [%s]", got, existing.ID)
	}
}

func TestRunImport_PrependsInFileOrder(t *testing.T) {
	kv := useMemoryStore(t)
	existing := seedShift(t, kv, model.ShiftEntry{Date: "2025-01-01", Made: decimal.NewFromInt(100)})

	batch := []model.ShiftEntry{
		{Date: "2025-02-01", Made: decimal.NewFromInt(50), Restaurant: "Diner", Notes: "A"},
		{Date: "2025-02-02", Made: decimal.NewFromInt(60), Restaurant: "Bistro", Notes: "B"},
	}
	path := filepath.Join(t.TempDir(), "shifts.csv")
	if err := os.WriteFile(path, []byte(csvio.Encode(batch, csvio.Full)), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := runImport(nil, []string{path}); err != nil {
		t.Fatalf("runImport: %v", err)
	}

	shifts := ledger.Open(kv).Shifts()
	if len(shifts) != 3 {
		t.Fatalf("len(shifts) = %d, want 3", len(shifts))
	}
	notes := []string{shifts[0].Notes, shifts[1].Notes}
	if !reflect.DeepEqual(notes, []string{"A", "B"}) || shifts[2].ID != existing.ID {
		t.Fatalf("order = %v then %s, want [A B] then existing", notes, shifts[2].ID)
	}
	if shifts[0].ID == "" || shifts[0].ID == shifts[1].ID {
		t.Fatalf("imported ids = %q, %q, want fresh distinct ids", shifts[0].ID, shifts[1].ID)
	}
	if got := registry.Open(kv).Names(); !reflect.DeepEqual(got, []string{"Bistro", "Diner"}) {
		t.Fatalf("restaurants = %v, want [Bistro Diner]", got)
	}
}

func TestRunImport_DropsHoursWhenFeatureOff(t *testing.T) {
	kv := useMemoryStore(t)
	cfg.Features.Hours = false

	hours := decimal.NewFromInt(6)
	batch := []model.ShiftEntry{{Date: "2025-02-01", Made: decimal.NewFromInt(50), Hours: &hours}}
	path := filepath.Join(t.TempDir(), "shifts.csv")
	if err := os.WriteFile(path, []byte(csvio.Encode(batch, csvio.Full)), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := runImport(nil, []string{path}); err != nil {
		t.Fatalf("runImport: %v", err)
	}
	if h := ledger.Open(kv).Shifts()[0].Hours; h != nil {
		t.Fatalf("Hours = %v, want nil", h)
	}
}

func TestEditShift_ChangesOnlySetFlags(t *testing.T) {
	kv := useMemoryStore(t)
	hours := decimal.NewFromInt(5)
	saved := seedShift(t, kv, model.ShiftEntry{
		Date:       "2025-01-03",
		Made:       decimal.NewFromInt(120),
		TipOut:     decimal.NewFromInt(20),
		Hours:      &hours,
		Restaurant: "Diner",
		Notes:      "brunch",
	})

	var f shiftFlags
	fs := pflag.NewFlagSet("edit", pflag.ContinueOnError)
	f.register(fs)
	if err := fs.Parse([]string{"--made", "200"}); err != nil {
		t.Fatal(err)
	}

	l := ledger.Open(kv)
	reg := registry.Open(kv)
	if _, err := editShift(l, reg, fs, &f, saved.ID[:8]); err != nil {
		t.Fatalf("editShift: %v", err)
	}

	got, ok := ledger.Open(kv).Shift(saved.ID)
	if !ok {
		t.Fatalf("shift %s missing after edit", saved.ID)
	}
	if !got.Made.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("Made = %s, want 200", got.Made)
	}
	if got.Date != saved.Date || !got.TipOut.Equal(saved.TipOut) || got.Restaurant != "Diner" || got.Notes != "brunch" {
		t.Fatalf("unset fields changed: %+v", got)
	}
	if got.Hours == nil || !got.Hours.Equal(hours) {
		t.Fatalf("Hours = %v, want 5", got.Hours)
	}
}

func TestEditShift_UnknownIDChangesNothing(t *testing.T) {
	kv := useMemoryStore(t)
	saved := seedShift(t, kv, model.ShiftEntry{Date: "2025-01-03", Made: decimal.NewFromInt(120)})

	var f shiftFlags
	fs := pflag.NewFlagSet("edit", pflag.ContinueOnError)
	f.register(fs)
	if err := fs.Parse([]string{"--made", "1"}); err != nil {
		t.Fatal(err)
	}

	if _, err := editShift(ledger.Open(kv), registry.Open(kv), fs, &f, "zzzz"); err == nil {
		t.Fatal("editShift with unknown id returned nil error")
	}
	got, _ := ledger.Open(kv).Shift(saved.ID)
	if !got.Made.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("Made = %s, want 120", got.Made)
	}
}
