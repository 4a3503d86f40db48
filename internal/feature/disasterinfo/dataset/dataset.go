// Package dataset loads the read-only disaster information served by the API.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
)

// Dataset is the disaster information mapping, loaded once at process start.
// It is never mutated after Load, so it is safe to share across request
// handlers without synchronization.
type Dataset struct {
	entries map[string]json.RawMessage
}

// Load reads and decodes the JSON document at path.
// The top level must be an object keyed by disaster type.
func Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read disaster data: %w", err)
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse disaster data: %w", err)
	}
	return &Dataset{entries: entries}, nil
}

// All returns the full mapping as loaded.
// Callers must treat the result as read-only.
func (d *Dataset) All() map[string]json.RawMessage {
	return d.entries
}

// Lookup returns the entry for one disaster type.
// The second result is false when the type is unknown.
func (d *Dataset) Lookup(name string) (json.RawMessage, bool) {
	entry, ok := d.entries[name]
	return entry, ok
}
