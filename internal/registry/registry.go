// Package registry remembers restaurant names for autocomplete and the
// restaurant used on the most recent shift.
package registry

import (
	"sort"
	"strings"

	"github.com/theirongolddev/tiptrack/internal/log"
	"github.com/theirongolddev/tiptrack/internal/model"
	"github.com/theirongolddev/tiptrack/internal/store"
)

// Registry is the persisted set of distinct restaurant names.
type Registry struct {
	kv    store.KV
	names []string
	log   *log.Logger
}

// Open loads the registry from kv. Unreadable data loads as empty.
func Open(kv store.KV) *Registry {
	return &Registry{
		kv:    kv,
		names: store.Load[string](kv, store.KeyRestaurants),
		log:   log.For(log.ComponentRegistry),
	}
}

// Names returns the persisted names, sorted.
func (r *Registry) Names() []string {
	out := append([]string(nil), r.names...)
	sort.Strings(out)
	return out
}

func (r *Registry) has(name string) bool {
	for _, n := range r.names {
		if n == name {
			return true
		}
	}
	return false
}

// Register adds the trimmed name when it is new. Blank names are ignored.
// Matching is case-sensitive.
func (r *Registry) Register(name string) error {
	name = strings.TrimSpace(name)
	if name == "" || r.has(name) {
		return nil
	}
	next := append(r.names[:len(r.names):len(r.names)], name)
	if err := store.Save(r.kv, store.KeyRestaurants, next); err != nil {
		r.log.Error("saving restaurants", log.FieldError, err)
		return err
	}
	r.names = next
	return nil
}

// Seed registers the restaurant of every entry, saving once at most.
func (r *Registry) Seed(entries []model.ShiftEntry) error {
	prev := r.names
	r.names = r.names[:len(r.names):len(r.names)]
	added := 0
	for _, e := range entries {
		name := strings.TrimSpace(e.Restaurant)
		if name == "" || r.has(name) {
			continue
		}
		r.names = append(r.names, name)
		added++
	}
	if added == 0 {
		return nil
	}
	if err := store.Save(r.kv, store.KeyRestaurants, r.names); err != nil {
		r.names = prev
		return err
	}
	r.log.Debug("seeded restaurants", log.FieldCount, added)
	return nil
}

// AllKnownNames returns the sorted union of the registry and the
// non-blank restaurants found in entries.
func (r *Registry) AllKnownNames(entries []model.ShiftEntry) []string {
	seen := make(map[string]struct{}, len(r.names))
	for _, n := range r.names {
		seen[n] = struct{}{}
	}
	for _, e := range entries {
		if name := strings.TrimSpace(e.Restaurant); name != "" {
			seen[name] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// LastUsed returns the restaurant recorded on the most recent add, or "".
func (r *Registry) LastUsed() string {
	return store.LoadString(r.kv, store.KeyLastRestaurant)
}

// SetLastUsed records name as the most recently used restaurant.
func (r *Registry) SetLastUsed(name string) error {
	return store.SaveString(r.kv, store.KeyLastRestaurant, strings.TrimSpace(name))
}
