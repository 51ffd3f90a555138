package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/curioterm/curio/internal/demos"
	"github.com/curioterm/curio/internal/store"
)

func typeInto(f formModel, s string) formModel {
	next, _ := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next
}

func TestErrorsAppearOnlyAfterBlur(t *testing.T) {
	form, _ := newForm(demos.Notes(), nil)
	form = typeInto(form, "ab") // title min_len is 3

	if form.fields[0].err != "" {
		t.Fatalf("untouched field must not show an error while typing")
	}

	form, _ = form.Next()
	if !form.fields[0].touched {
		t.Fatalf("leaving a field must mark it touched")
	}
	if form.fields[0].err == "" {
		t.Fatalf("blur must validate the field being left")
	}
}

func TestTouchedFieldRevalidatesWhileTyping(t *testing.T) {
	form, _ := newForm(demos.Notes(), nil)
	form = typeInto(form, "ab")
	form, _ = form.Next()
	form, _ = form.Prev()

	form = typeInto(form, "c")
	if got := form.fields[0].value(); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
	if form.fields[0].err != "" {
		t.Fatalf("fixing a touched field must clear its error, got %q", form.fields[0].err)
	}
}

func TestNewFormStartsCursorBlink(t *testing.T) {
	form, cmd := newForm(demos.Notes(), nil)
	if cmd == nil {
		t.Fatalf("focusing the first field must return its blink command")
	}
	if form.focus != 0 {
		t.Fatalf("first field must start focused, got %d", form.focus)
	}
}

func TestFocusWrapsAroundFields(t *testing.T) {
	form, _ := newForm(demos.Notes(), nil)
	if form.focus != 0 {
		t.Fatalf("first field must start focused")
	}
	form, _ = form.Next()
	form, _ = form.Next()
	if form.focus != 0 {
		t.Fatalf("focus must wrap back to the first field, got %d", form.focus)
	}
}

func TestFocusedMultilineConsumesEnter(t *testing.T) {
	form, _ := newForm(demos.Notes(), nil)
	if form.FocusedMultiline() {
		t.Fatalf("title is a single-line field")
	}
	form, _ = form.Next()
	if !form.FocusedMultiline() {
		t.Fatalf("body is multiline and must keep the enter key")
	}
}

func TestValidateAllMarksEverythingTouched(t *testing.T) {
	form, _ := newForm(demos.Notes(), nil)
	if form.ValidateAll() {
		t.Fatalf("blank required title must fail validation")
	}
	for i, f := range form.fields {
		if !f.touched {
			t.Fatalf("field %d must be touched after ValidateAll", i)
		}
	}
	if form.fields[0].err == "" {
		t.Fatalf("title must carry an error")
	}
}

func TestRawValuesAreTrimmed(t *testing.T) {
	form, _ := newForm(demos.Notes(), nil)
	form.fields[0].input.SetValue("  Water the garden  ")
	if got := form.RawValues()["title"]; got != "Water the garden" {
		t.Fatalf("raw values must be trimmed, got %q", got)
	}
}

func TestEditPrefillsInitialValues(t *testing.T) {
	initial := store.Fields{"name": "Tulip", "price": 3.5}
	form, _ := newForm(demos.Flowers(), initial)
	if got := form.fields[0].input.Value(); got != "Tulip" {
		t.Fatalf("name must be prefilled, got %q", got)
	}
	if got := form.fields[1].input.Value(); got != "3.5" {
		t.Fatalf("price must render back as text, got %q", got)
	}
}

func TestEditRelaxesFileRequirement(t *testing.T) {
	initial := store.Fields{"title": "Dunes", "image": "data:image/png;base64,AAAA"}
	form, _ := newForm(demos.Gallery(), initial)

	// fields: title, caption, image path
	imageField := form.fields[2]
	if imageField.spec.Rule.Required {
		t.Fatalf("file field must not be required while editing")
	}
	if imageField.input.Value() != "" {
		t.Fatalf("stored data url must not leak into the path input")
	}
	if !strings.Contains(imageField.input.Placeholder, "keep current image") {
		t.Fatalf("placeholder must explain the blank field, got %q", imageField.input.Placeholder)
	}
	if !form.ValidateAll() {
		t.Fatalf("edit with a blank image must validate")
	}
}

func TestAddKeepsFileRequirement(t *testing.T) {
	form, _ := newForm(demos.Gallery(), nil)
	form.fields[0].input.SetValue("Dunes")
	if form.ValidateAll() {
		t.Fatalf("add without an image must fail validation")
	}
}
