// Package demos declares the built-in demo definitions and the registry
// the TUI menus are built from.
package demos

import (
	"fmt"
	"sync"

	"github.com/curioterm/curio/internal/schema"
)

// Registry maintains known demo definitions in registration order, so the
// main menu lists built-ins first and custom demos after them.
type Registry struct {
	mu    sync.RWMutex
	byID  map[string]schema.Definition
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: map[string]schema.Definition{}}
}

// Register installs a validated definition. Duplicate ids are rejected.
func (r *Registry) Register(def schema.Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	def = def.Normalized()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[def.ID]; exists {
		return fmt.Errorf("demos: %s already registered", def.ID)
	}
	r.byID[def.ID] = def
	r.order = append(r.order, def.ID)
	return nil
}

// MustRegister panics if registration fails, used for the built-ins.
func (r *Registry) MustRegister(def schema.Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Resolve returns the definition for an id.
func (r *Registry) Resolve(id string) (schema.Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.byID[id]
	if !ok {
		return schema.Definition{}, fmt.Errorf("demos: unknown id %s", id)
	}
	return def, nil
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// All returns the definitions in registration order.
func (r *Registry) All() []schema.Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]schema.Definition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// LoadCustom merges user-authored YAML definitions from dir into the
// registry. Duplicates of built-in ids are rejected.
func (r *Registry) LoadCustom(dir string) error {
	files, err := schema.LoadDefinitionDir(dir)
	if err != nil {
		return err
	}
	for _, file := range files {
		if err := r.Register(file.Definition); err != nil {
			return fmt.Errorf("demos: %s: %w", file.Path, err)
		}
	}
	return nil
}
