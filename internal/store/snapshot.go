package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNoSnapshot signals that no usable snapshot exists on disk; callers
// fall back to their seed data.
var ErrNoSnapshot = errors.New("store: no snapshot")

// SnapshotMirror persists a collection as a single JSON file. The file is
// rewritten in full on every change and read once at startup. A missing
// or malformed file is treated as "no snapshot", never as a fatal error.
type SnapshotMirror struct {
	path string
}

// NewSnapshotMirror creates a mirror writing to path.
func NewSnapshotMirror(path string) *SnapshotMirror {
	return &SnapshotMirror{path: path}
}

// Path returns the file backing this mirror.
func (m *SnapshotMirror) Path() string { return m.path }

// Save serializes the full collection, replacing any previous snapshot.
func (m *SnapshotMirror) Save(entities []Entity) error {
	if entities == nil {
		entities = []Entity{}
	}
	data, err := json.MarshalIndent(entities, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("store: ensure snapshot dir: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("store: write snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot back. Order and field values are preserved;
// numbers come back as float64, which is the only numeric kind collections
// store.
func (m *SnapshotMirror) Load() ([]Entity, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("store: read snapshot: %w", err)
	}
	var entities []Entity
	if err := json.Unmarshal(data, &entities); err != nil {
		return nil, ErrNoSnapshot
	}
	if entities == nil {
		entities = []Entity{}
	}
	return entities, nil
}
