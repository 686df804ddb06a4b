// Package store provides the key-value persistence port for tiptrack and
// the JSON codec that reads and writes named containers through it.
package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Storage keys. Each holds one JSON-encoded container.
const (
	KeyShifts         = "tipEntries.v1"
	KeyExpenses       = "expenses.v1"
	KeyLastRestaurant = "lastRestaurant.v1"
	KeyRestaurants    = "restaurants.v1"
)

// Backend names accepted by OpenBackend.
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
)

var (
	// ErrUnknownBackend is returned by OpenBackend for an unsupported kind.
	ErrUnknownBackend = errors.New("unknown storage backend")
	// ErrInvalidKey is returned for keys that cannot name a slot.
	ErrInvalidKey = errors.New("invalid storage key")
)

// KV is a named-slot store. Put overwrites any existing value.
type KV interface {
	Get(key string) (value []byte, ok bool, err error)
	Put(key string, value []byte) error
	Close() error
}

// OpenBackend opens the named backend rooted at dataDir.
func OpenBackend(kind, dataDir string) (KV, error) {
	switch strings.ToLower(kind) {
	case "", BackendSQLite:
		db, err := OpenSQLite(filepath.Join(dataDir, "tiptrack.db"))
		if err != nil {
			return nil, err
		}
		return db, nil
	case BackendJSON:
		dir, err := OpenDir(filepath.Join(dataDir, "kv"))
		if err != nil {
			return nil, err
		}
		return dir, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, kind)
	}
}

func checkKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w %q", ErrInvalidKey, key)
	}
	return nil
}
