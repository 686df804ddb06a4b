package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type item struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func backends(t *testing.T) map[string]KV {
	t.Helper()
	dir := t.TempDir()

	db, err := OpenSQLite(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	fs, err := OpenDir(filepath.Join(dir, "kv"))
	if err != nil {
		t.Fatalf("OpenDir: %v", err)
	}

	return map[string]KV{
		"memory": NewMemory(),
		"sqlite": db,
		"json":   fs,
	}
}

func TestLoad_MissingKeyIsEmpty(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			got := Load[item](kv, KeyShifts)
			if got == nil || len(got) != 0 {
				t.Fatalf("Load = %#v, want empty non-nil slice", got)
			}
		})
	}
}

func TestSaveLoad_Overwrites(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := Save(kv, KeyShifts, []item{{"a", 1}, {"b", 2}}); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if err := Save(kv, KeyShifts, []item{{"c", 3}}); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got := Load[item](kv, KeyShifts)
			if len(got) != 1 || got[0] != (item{"c", 3}) {
				t.Fatalf("Load = %#v, want [{c 3}]", got)
			}
		})
	}
}

func TestLoad_CorruptJSONIsEmpty(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, raw := range []string{"{not json", `{"name":"obj"}`, "null", "   "} {
				if err := kv.Put(KeyExpenses, []byte(raw)); err != nil {
					t.Fatalf("Put: %v", err)
				}
				if got := Load[item](kv, KeyExpenses); len(got) != 0 {
					t.Fatalf("Load(%q) = %#v, want empty", raw, got)
				}
			}
		})
	}
}

func TestLoad_SkipsOnlyBadElements(t *testing.T) {
	kv := NewMemory()
	raw := `[{"name":"a","count":1},{"name":"b","count":"two"},{"name":"c","count":3}]`
	if err := kv.Put(KeyShifts, []byte(raw)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got := Load[item](kv, KeyShifts)
	if len(got) != 2 || got[0].Name != "a" || got[1].Name != "c" {
		t.Fatalf("Load = %#v, want [a c]", got)
	}
}

type failingKV struct{}

func (failingKV) Get(string) ([]byte, bool, error) { return nil, false, errors.New("disk gone") }
func (failingKV) Put(string, []byte) error         { return errors.New("disk gone") }
func (failingKV) Close() error                     { return nil }

func TestLoad_ReadErrorIsEmpty(t *testing.T) {
	if got := Load[item](failingKV{}, KeyShifts); len(got) != 0 {
		t.Fatalf("Load = %#v, want empty", got)
	}
	if got := LoadString(failingKV{}, KeyLastRestaurant); got != "" {
		t.Fatalf("LoadString = %q, want empty", got)
	}
}

func TestSave_PropagatesWriteError(t *testing.T) {
	if err := Save(failingKV{}, KeyShifts, []item{{"a", 1}}); err == nil {
		t.Fatal("Save returned nil error for failing backend")
	}
}

func TestString_RoundTripAndBareText(t *testing.T) {
	kv := NewMemory()
	if err := SaveString(kv, KeyLastRestaurant, "Cafe Rio"); err != nil {
		t.Fatalf("SaveString: %v", err)
	}
	if got := LoadString(kv, KeyLastRestaurant); got != "Cafe Rio" {
		t.Fatalf("LoadString = %q, want Cafe Rio", got)
	}

	// Older stores kept the name as raw text.
	_ = kv.Put(KeyLastRestaurant, []byte("Diner"))
	if got := LoadString(kv, KeyLastRestaurant); got != "Diner" {
		t.Fatalf("LoadString = %q, want Diner", got)
	}
}

func TestDir_AtomicWriteLeavesNoTemp(t *testing.T) {
	root := t.TempDir()
	d, err := OpenDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Put(KeyShifts, []byte("[]")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != KeyShifts+".json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("dir contents = %v, want [%s.json]", names, KeyShifts)
	}
}

func TestPut_RejectsPathKeys(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := kv.Put("../escape", []byte("[]")); !errors.Is(err, ErrInvalidKey) {
				t.Fatalf("Put err = %v, want ErrInvalidKey", err)
			}
		})
	}
}

func TestSQLite_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiptrack.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := Save(db, KeyRestaurants, []string{"Cafe"}); err != nil {
		t.Fatal(err)
	}
	_ = db.Close()

	db, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = db.Close() }()

	got := Load[string](db, KeyRestaurants)
	if len(got) != 1 || got[0] != "Cafe" {
		t.Fatalf("Load after reopen = %v, want [Cafe]", got)
	}
	keys, err := db.Keys()
	if err != nil || len(keys) != 1 || keys[0] != KeyRestaurants {
		t.Fatalf("Keys = %v, %v", keys, err)
	}
}

func TestOpenBackend_Unknown(t *testing.T) {
	if _, err := OpenBackend("redis", t.TempDir()); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("err = %v, want ErrUnknownBackend", err)
	}
}
