// Package schema describes demos as data. A Definition names the entity
// fields, their validation rules, toggleable flags with optional paired
// counters, and the derived views the TUI renders as tabs. Built-in demos
// are declared in internal/demos; user demos load from .curio/demos/*.yaml.
package schema

import (
	"fmt"
	"strings"

	"github.com/curioterm/curio/internal/store"
	"github.com/curioterm/curio/internal/validate"
)

// FieldKind selects the input widget and value type for a field.
type FieldKind string

const (
	KindText      FieldKind = "text"
	KindMultiline FieldKind = "multiline"
	KindNumber    FieldKind = "number"
	KindBool      FieldKind = "bool"
	KindFile      FieldKind = "file"
)

// Numeric reports whether values of this kind are stored as float64.
func (k FieldKind) Numeric() bool { return k == KindNumber }

func (k FieldKind) valid() bool {
	switch k {
	case KindText, KindMultiline, KindNumber, KindBool, KindFile:
		return true
	}
	return false
}

// FieldSpec declares one entity field.
type FieldSpec struct {
	Name        string        `yaml:"name"`
	Label       string        `yaml:"label,omitempty"`
	Kind        FieldKind     `yaml:"kind,omitempty"`
	Placeholder string        `yaml:"placeholder,omitempty"`
	Rule        validate.Rule `yaml:"rule,omitempty"`
	Default     string        `yaml:"default,omitempty"`
	// ReadOnly fields never appear in the form; they change only through
	// toggle counters (e.g. a like count).
	ReadOnly bool `yaml:"read_only,omitempty"`
}

// DisplayLabel returns the label, falling back to the field name.
func (f FieldSpec) DisplayLabel() string {
	if strings.TrimSpace(f.Label) != "" {
		return f.Label
	}
	return f.Name
}

// ToggleSpec binds a key to a boolean field flip. Counter optionally
// names a number field adjusted by ±1 together with the flip.
type ToggleSpec struct {
	Field   string `yaml:"field"`
	Counter string `yaml:"counter,omitempty"`
	Label   string `yaml:"label,omitempty"`
}

// ViewOp selects how a derived view projects the collection.
type ViewOp string

const (
	// ViewAll passes the collection through unchanged.
	ViewAll ViewOp = "all"
	// ViewWhereTrue keeps entities whose bool field is set.
	ViewWhereTrue ViewOp = "where-true"
	// ViewWhereFalse keeps entities whose bool field is unset.
	ViewWhereFalse ViewOp = "where-false"
)

// ViewSpec declares one named projection rendered as a tab.
type ViewSpec struct {
	Name  string `yaml:"name"`
	Op    ViewOp `yaml:"op"`
	Field string `yaml:"field,omitempty"`
}

// Definition is the full description of one demo.
type Definition struct {
	ID           string         `yaml:"id"`
	Title        string         `yaml:"title"`
	Description  string         `yaml:"description,omitempty"`
	Noun         string         `yaml:"noun,omitempty"`
	Fields       []FieldSpec    `yaml:"fields"`
	Toggles      []ToggleSpec   `yaml:"toggles,omitempty"`
	Views        []ViewSpec     `yaml:"views,omitempty"`
	BarField     string         `yaml:"bar_field,omitempty"`
	Persistent   bool           `yaml:"persistent,omitempty"`
	SimulateLoad bool           `yaml:"simulate_load,omitempty"`
	Seed         []store.Fields `yaml:"seed,omitempty"`
}

// EntityNoun returns the singular noun used in messages ("note added").
func (d Definition) EntityNoun() string {
	if n := strings.TrimSpace(d.Noun); n != "" {
		return n
	}
	return "entry"
}

// Field returns the spec for a named field.
func (d Definition) Field(name string) (FieldSpec, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// FormFields returns the fields that appear in the add/edit form: bool
// fields are toggled from the list view, not typed into the form, and
// read-only fields are managed by toggle counters.
func (d Definition) FormFields() []FieldSpec {
	var out []FieldSpec
	for _, f := range d.Fields {
		if f.Kind == KindBool || f.ReadOnly {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Normalized returns a trimmed copy of the definition with kind defaults
// applied.
func (d Definition) Normalized() Definition {
	clone := Definition{
		ID:           strings.TrimSpace(d.ID),
		Title:        strings.TrimSpace(d.Title),
		Description:  strings.TrimSpace(d.Description),
		Noun:         strings.TrimSpace(d.Noun),
		BarField:     strings.TrimSpace(d.BarField),
		Persistent:   d.Persistent,
		SimulateLoad: d.SimulateLoad,
		Seed:         d.Seed,
	}
	if len(d.Fields) > 0 {
		clone.Fields = make([]FieldSpec, len(d.Fields))
		for i, f := range d.Fields {
			f.Name = strings.TrimSpace(f.Name)
			f.Label = strings.TrimSpace(f.Label)
			if f.Kind == "" {
				f.Kind = KindText
			}
			clone.Fields[i] = f
		}
	}
	if len(d.Toggles) > 0 {
		clone.Toggles = make([]ToggleSpec, len(d.Toggles))
		for i, t := range d.Toggles {
			t.Field = strings.TrimSpace(t.Field)
			t.Counter = strings.TrimSpace(t.Counter)
			t.Label = strings.TrimSpace(t.Label)
			clone.Toggles[i] = t
		}
	}
	if len(d.Views) > 0 {
		clone.Views = make([]ViewSpec, len(d.Views))
		for i, v := range d.Views {
			v.Name = strings.TrimSpace(v.Name)
			v.Field = strings.TrimSpace(v.Field)
			if v.Op == "" {
				v.Op = ViewAll
			}
			clone.Views[i] = v
		}
	}
	return clone
}

// Validate ensures the definition is internally consistent: unique ids
// and field names, toggles and views referencing declared fields of the
// right kind, well-formed rules.
func (d Definition) Validate() error {
	def := d.Normalized()
	if def.ID == "" {
		return fmt.Errorf("schema: id is required")
	}
	if def.Title == "" {
		return fmt.Errorf("schema: %s: title is required", def.ID)
	}
	if len(def.Fields) == 0 {
		return fmt.Errorf("schema: %s: at least one field is required", def.ID)
	}
	kinds := map[string]FieldKind{}
	for i, f := range def.Fields {
		if f.Name == "" {
			return fmt.Errorf("schema: %s: fields[%d]: name is required", def.ID, i)
		}
		if _, dup := kinds[f.Name]; dup {
			return fmt.Errorf("schema: %s: duplicate field %s", def.ID, f.Name)
		}
		if !f.Kind.valid() {
			return fmt.Errorf("schema: %s: field %s: unknown kind %q", def.ID, f.Name, f.Kind)
		}
		if err := f.Rule.Validate(); err != nil {
			return fmt.Errorf("schema: %s: field %s: %w", def.ID, f.Name, err)
		}
		kinds[f.Name] = f.Kind
	}
	for _, t := range def.Toggles {
		if kinds[t.Field] != KindBool {
			return fmt.Errorf("schema: %s: toggle %s must reference a bool field", def.ID, t.Field)
		}
		if t.Counter != "" && kinds[t.Counter] != KindNumber {
			return fmt.Errorf("schema: %s: toggle counter %s must reference a number field", def.ID, t.Counter)
		}
	}
	for _, v := range def.Views {
		if v.Name == "" {
			return fmt.Errorf("schema: %s: view name is required", def.ID)
		}
		switch v.Op {
		case ViewAll:
		case ViewWhereTrue, ViewWhereFalse:
			if kinds[v.Field] != KindBool {
				return fmt.Errorf("schema: %s: view %s must filter a bool field", def.ID, v.Name)
			}
		default:
			return fmt.Errorf("schema: %s: view %s: unknown op %q", def.ID, v.Name, v.Op)
		}
	}
	if def.BarField != "" && kinds[def.BarField] != KindNumber {
		return fmt.Errorf("schema: %s: bar_field %s must reference a number field", def.ID, def.BarField)
	}
	for i, row := range def.Seed {
		for name := range row {
			if _, ok := kinds[name]; !ok {
				return fmt.Errorf("schema: %s: seed[%d]: unknown field %s", def.ID, i, name)
			}
		}
	}
	return nil
}

// SeedEntities converts seed rows into entities, filling unset bool and
// number fields with zero values so toggles and counters start defined.
func (d Definition) SeedEntities() []store.Entity {
	if len(d.Seed) == 0 {
		return nil
	}
	out := make([]store.Entity, 0, len(d.Seed))
	for _, row := range d.Seed {
		fields := store.Fields{}
		for _, f := range d.Fields {
			switch f.Kind {
			case KindBool:
				fields[f.Name] = false
			case KindNumber:
				fields[f.Name] = float64(0)
			default:
				fields[f.Name] = ""
			}
		}
		for k, v := range row {
			switch value := v.(type) {
			case int:
				fields[k] = float64(value)
			case float64, bool, string:
				fields[k] = value
			}
		}
		out = append(out, store.Entity{Fields: fields})
	}
	return out
}
