package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/theirongolddev/tiptrack/internal/log"
)

// Load reads the sequence stored at key. A missing key, a read failure or
// a value that is not a JSON array yield an empty sequence; elements that
// fail to decode are skipped. No error reaches the caller.
func Load[T any](kv KV, key string) []T {
	logger := log.For(log.ComponentStorage)

	data, ok, err := kv.Get(key)
	if err != nil {
		logger.Warn("storage read failed", log.FieldKey, key, log.FieldError, err)
		return []T{}
	}
	if !ok || len(bytes.TrimSpace(data)) == 0 {
		return []T{}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Warn("discarding unparsable value", log.FieldKey, key, log.FieldError, err)
		return []T{}
	}

	// Elements decode one by one so a single bad record does not take the
	// rest of the sequence with it.
	out := make([]T, 0, len(raw))
	skipped := 0
	for _, elem := range raw {
		var item T
		if err := json.Unmarshal(elem, &item); err != nil {
			skipped++
			logger.Warn("skipping unparsable element", log.FieldKey, key, log.FieldError, err)
			continue
		}
		out = append(out, item)
	}
	if skipped > 0 {
		logger.Warn("loaded with skipped elements", log.FieldKey, key,
			log.FieldCount, len(out), log.FieldSkipped, skipped)
	}
	return out
}

// Save JSON-encodes items and overwrites key.
func Save[T any](kv KV, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := kv.Put(key, data); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// LoadString reads a single string. Values written as bare text rather than
// a JSON string are returned as is.
func LoadString(kv KV, key string) string {
	data, ok, err := kv.Get(key)
	if err != nil {
		log.For(log.ComponentStorage).Warn("storage read failed", log.FieldKey, key, log.FieldError, err)
		return ""
	}
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return string(data)
	}
	return s
}

// SaveString writes a single JSON-encoded string.
func SaveString(kv KV, key, value string) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := kv.Put(key, data); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}
