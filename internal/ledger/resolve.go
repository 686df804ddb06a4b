package ledger

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when no entry matches an identifier.
	ErrNotFound = errors.New("entry not found")
	// ErrAmbiguousID is returned when a prefix matches more than one entry.
	ErrAmbiguousID = errors.New("ambiguous id prefix")
)

// ResolveShiftID expands a unique identifier prefix to the full id.
func (l *Ledger) ResolveShiftID(prefix string) (string, error) {
	ids := make([]string, len(l.shifts))
	for i, e := range l.shifts {
		ids[i] = e.ID
	}
	return resolve(ids, prefix)
}

// ResolveExpenseID expands a unique identifier prefix to the full id.
func (l *Ledger) ResolveExpenseID(prefix string) (string, error) {
	ids := make([]string, len(l.expenses))
	for i, e := range l.expenses {
		ids[i] = e.ID
	}
	return resolve(ids, prefix)
}

func resolve(ids []string, prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("%w: empty id", ErrNotFound)
	}

	var match string
	n := 0
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			match = id
			n++
		}
	}
	switch n {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNotFound, prefix)
	case 1:
		return match, nil
	default:
		return "", fmt.Errorf("%w: %s matches %d entries", ErrAmbiguousID, prefix, n)
	}
}
