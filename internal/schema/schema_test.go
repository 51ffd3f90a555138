package schema

import (
	"testing"

	"github.com/curioterm/curio/internal/store"
	"github.com/curioterm/curio/internal/validate"
)

func validDefinition() Definition {
	return Definition{
		ID:    "recipes",
		Title: "Recipes",
		Noun:  "recipe",
		Fields: []FieldSpec{
			{Name: "name", Rule: validate.Rule{Required: true, MinLen: 2}},
			{Name: "servings", Kind: KindNumber, Rule: validate.Rule{Positive: true}},
			{Name: "tried", Kind: KindBool},
		},
		Toggles: []ToggleSpec{{Field: "tried", Label: "tried"}},
		Views: []ViewSpec{
			{Name: "All", Op: ViewAll},
			{Name: "Tried", Op: ViewWhereTrue, Field: "tried"},
		},
		Seed: []store.Fields{{"name": "Shakshuka", "servings": 2}},
	}
}

func TestValidDefinition(t *testing.T) {
	if err := validDefinition().Validate(); err != nil {
		t.Fatalf("expected valid definition, got %v", err)
	}
}

func TestDefinitionRequiresIDAndTitle(t *testing.T) {
	def := validDefinition()
	def.ID = "  "
	if err := def.Validate(); err == nil {
		t.Fatalf("blank id must be rejected")
	}
	def = validDefinition()
	def.Title = ""
	if err := def.Validate(); err == nil {
		t.Fatalf("blank title must be rejected")
	}
}

func TestDefinitionRejectsDuplicateFields(t *testing.T) {
	def := validDefinition()
	def.Fields = append(def.Fields, FieldSpec{Name: "name"})
	if err := def.Validate(); err == nil {
		t.Fatalf("duplicate field names must be rejected")
	}
}

func TestDefinitionRejectsUnknownFieldKind(t *testing.T) {
	def := validDefinition()
	def.Fields[0].Kind = "dropdown"
	if err := def.Validate(); err == nil {
		t.Fatalf("unknown kind must be rejected")
	}
}

func TestToggleMustReferenceBoolField(t *testing.T) {
	def := validDefinition()
	def.Toggles = []ToggleSpec{{Field: "name"}}
	if err := def.Validate(); err == nil {
		t.Fatalf("toggle on a text field must be rejected")
	}
}

func TestToggleCounterMustReferenceNumberField(t *testing.T) {
	def := validDefinition()
	def.Toggles = []ToggleSpec{{Field: "tried", Counter: "name"}}
	if err := def.Validate(); err == nil {
		t.Fatalf("counter on a text field must be rejected")
	}
}

func TestViewMustFilterBoolField(t *testing.T) {
	def := validDefinition()
	def.Views = []ViewSpec{{Name: "Broken", Op: ViewWhereTrue, Field: "servings"}}
	if err := def.Validate(); err == nil {
		t.Fatalf("view filtering a number field must be rejected")
	}
}

func TestSeedMustUseDeclaredFields(t *testing.T) {
	def := validDefinition()
	def.Seed = []store.Fields{{"surprise": true}}
	if err := def.Validate(); err == nil {
		t.Fatalf("seed rows with unknown fields must be rejected")
	}
}

func TestNormalizedAppliesKindDefault(t *testing.T) {
	def := Definition{
		ID:     " demo ",
		Title:  " Demo ",
		Fields: []FieldSpec{{Name: " name "}},
	}
	norm := def.Normalized()
	if norm.ID != "demo" || norm.Title != "Demo" {
		t.Fatalf("normalize must trim, got %q %q", norm.ID, norm.Title)
	}
	if norm.Fields[0].Kind != KindText {
		t.Fatalf("kind must default to text, got %q", norm.Fields[0].Kind)
	}
}

func TestFormFieldsSkipBoolAndReadOnly(t *testing.T) {
	def := Definition{
		ID:    "feed",
		Title: "Feed",
		Fields: []FieldSpec{
			{Name: "body"},
			{Name: "liked", Kind: KindBool},
			{Name: "likes", Kind: KindNumber, ReadOnly: true},
		},
	}
	fields := def.FormFields()
	if len(fields) != 1 || fields[0].Name != "body" {
		t.Fatalf("form fields wrong: %v", fields)
	}
}

func TestSeedEntitiesFillZeroValues(t *testing.T) {
	def := validDefinition().Normalized()
	entities := def.SeedEntities()
	if len(entities) != 1 {
		t.Fatalf("expected 1 seed entity, got %d", len(entities))
	}
	e := entities[0]
	if e.Fields["name"] != "Shakshuka" {
		t.Fatalf("seed value lost: %v", e.Fields)
	}
	if e.Fields["servings"] != 2.0 {
		t.Fatalf("int seed values must become float64, got %T", e.Fields["servings"])
	}
	if e.Fields["tried"] != false {
		t.Fatalf("unset bool fields must default to false")
	}
}
