// Package store holds the in-memory collections that back each demo.
//
// A Collection is an ordered list of entities; insertion order is display
// order. All mutations are synchronous and run to completion before the
// next event is handled, so there is no locking here — the TUI event loop
// is the only writer.
package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an update or toggle targets an id that is
// not present in the collection.
var ErrNotFound = errors.New("store: entity not found")

// Fields maps field names to scalar values. Only string, float64 and bool
// are stored so a snapshot survives a JSON round-trip unchanged.
type Fields map[string]any

// Entity is one record in a collection. The ID is assigned at creation
// and never mutated or reused.
type Entity struct {
	ID     string `json:"id"`
	Fields Fields `json:"fields"`
}

// Clone returns a deep copy of the entity.
func (e Entity) Clone() Entity {
	clone := Entity{ID: e.ID, Fields: make(Fields, len(e.Fields))}
	for k, v := range e.Fields {
		clone.Fields[k] = v
	}
	return clone
}

// String returns the named field as a string, or "" when absent.
func (e Entity) String(field string) string {
	if v, ok := e.Fields[field].(string); ok {
		return v
	}
	return ""
}

// Number returns the named field as a float64, or 0 when absent.
func (e Entity) Number(field string) float64 {
	switch v := e.Fields[field].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

// Bool returns the named field as a bool, or false when absent.
func (e Entity) Bool(field string) bool {
	if v, ok := e.Fields[field].(bool); ok {
		return v
	}
	return false
}

// Mirror receives the full collection after every successful mutation.
// The snapshot mirror persists it; a nil mirror keeps the collection
// purely in-memory.
type Mirror interface {
	Save(entities []Entity) error
	Load() ([]Entity, error)
}

// Collection is the authoritative ordered list of entities for one demo.
type Collection struct {
	name     string
	entities []Entity
	newID    func() string
	mirror   Mirror
}

// Option customizes collection construction.
type Option func(*Collection)

// WithMirror attaches a persistence mirror. Every mutation rewrites the
// full snapshot.
func WithMirror(m Mirror) Option {
	return func(c *Collection) { c.mirror = m }
}

// WithIDFunc overrides identifier generation, used by tests that need
// predictable ids.
func WithIDFunc(fn func() string) Option {
	return func(c *Collection) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// New creates an empty collection.
func New(name string, opts ...Option) *Collection {
	c := &Collection{
		name:  name,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Name returns the collection's demo name.
func (c *Collection) Name() string { return c.name }

// Len returns the number of entities.
func (c *Collection) Len() int { return len(c.entities) }

// Entities returns a copy of the collection in insertion order. Derived
// views are computed over this copy on every render.
func (c *Collection) Entities() []Entity {
	out := make([]Entity, 0, len(c.entities))
	for _, e := range c.entities {
		out = append(out, e.Clone())
	}
	return out
}

// Get returns the entity with the given id.
func (c *Collection) Get(id string) (Entity, bool) {
	for _, e := range c.entities {
		if e.ID == id {
			return e.Clone(), true
		}
	}
	return Entity{}, false
}

// Add assigns a fresh identifier, appends the entity at the end and
// returns the stored copy. A failed mirror write rolls the append back,
// so an error always means the collection is unchanged.
func (c *Collection) Add(fields Fields) (Entity, error) {
	entity := Entity{ID: c.newID(), Fields: make(Fields, len(fields))}
	for k, v := range fields {
		entity.Fields[k] = v
	}
	c.entities = append(c.entities, entity)
	if err := c.flush(); err != nil {
		c.entities = c.entities[:len(c.entities)-1]
		return Entity{}, err
	}
	return entity.Clone(), nil
}

// Update replaces the entity matching id with a merged copy: patch fields
// override existing ones, unnamed fields are kept.
func (c *Collection) Update(id string, patch Fields) (Entity, error) {
	for i := range c.entities {
		if c.entities[i].ID != id {
			continue
		}
		merged := c.entities[i].Clone()
		for k, v := range patch {
			merged.Fields[k] = v
		}
		prev := c.entities[i]
		c.entities[i] = merged
		if err := c.flush(); err != nil {
			c.entities[i] = prev
			return Entity{}, err
		}
		return merged.Clone(), nil
	}
	return Entity{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Remove filters out the entity matching id. Removing an unknown id is a
// no-op and returns false with no error. A failed mirror write restores
// the entity.
func (c *Collection) Remove(id string) (bool, error) {
	for i := range c.entities {
		if c.entities[i].ID != id {
			continue
		}
		prev := append([]Entity(nil), c.entities...)
		c.entities = append(c.entities[:i], c.entities[i+1:]...)
		if err := c.flush(); err != nil {
			c.entities = prev
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// Toggle flips the boolean field and, when counter names a number field,
// adjusts it by +1 or -1 in the same mutation. The pair is one state
// transition: callers never observe the flip without the adjustment.
func (c *Collection) Toggle(id, field, counter string) (Entity, error) {
	for i := range c.entities {
		if c.entities[i].ID != id {
			continue
		}
		merged := c.entities[i].Clone()
		next := !merged.Bool(field)
		merged.Fields[field] = next
		if counter != "" {
			delta := float64(-1)
			if next {
				delta = 1
			}
			merged.Fields[counter] = merged.Number(counter) + delta
		}
		prev := c.entities[i]
		c.entities[i] = merged
		if err := c.flush(); err != nil {
			c.entities[i] = prev
			return Entity{}, err
		}
		return merged.Clone(), nil
	}
	return Entity{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Replace swaps the whole collection, used when restoring a snapshot or
// seeding. Entities without ids receive fresh ones.
func (c *Collection) Replace(entities []Entity) error {
	next := make([]Entity, 0, len(entities))
	for _, e := range entities {
		clone := e.Clone()
		if clone.ID == "" {
			clone.ID = c.newID()
		}
		if clone.Fields == nil {
			clone.Fields = Fields{}
		}
		next = append(next, clone)
	}
	prev := c.entities
	c.entities = next
	if err := c.flush(); err != nil {
		c.entities = prev
		return err
	}
	return nil
}

// Restore loads the mirror snapshot into the collection. When the mirror
// is absent, empty or malformed the fallback seed is used instead.
func (c *Collection) Restore(seed []Entity) error {
	if c.mirror != nil {
		if entities, err := c.mirror.Load(); err == nil && entities != nil {
			return c.Replace(entities)
		}
	}
	return c.Replace(seed)
}

func (c *Collection) flush() error {
	if c.mirror == nil {
		return nil
	}
	if err := c.mirror.Save(c.entities); err != nil {
		return fmt.Errorf("store: mirror %s: %w", c.name, err)
	}
	return nil
}
