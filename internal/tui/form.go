package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/curioterm/curio/internal/schema"
	"github.com/curioterm/curio/internal/store"
)

var (
	fieldLabelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CCCCCC"))
	fieldErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	formHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).MarginTop(1)
	formFocusedMarker = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Render("▸ ")
)

// formField pairs a field spec with its input widget and validation
// state. A field becomes "touched" the first time focus leaves it; only
// touched fields re-validate while typing, so errors never appear on the
// first keystroke.
type formField struct {
	spec    schema.FieldSpec
	input   textinput.Model
	area    textarea.Model
	touched bool
	err     string
}

func (f *formField) multiline() bool {
	return f.spec.Kind == schema.KindMultiline
}

func (f *formField) value() string {
	if f.multiline() {
		return f.area.Value()
	}
	return f.input.Value()
}

func (f *formField) focus() tea.Cmd {
	if f.multiline() {
		return f.area.Focus()
	}
	return f.input.Focus()
}

func (f *formField) blur() {
	if f.multiline() {
		f.area.Blur()
	} else {
		f.input.Blur()
	}
}

func (f *formField) validate() {
	err := f.spec.Rule.Check(f.spec.DisplayLabel(), f.value(), f.spec.Kind.Numeric())
	if err != nil {
		f.err = err.Error()
	} else {
		f.err = ""
	}
}

// formModel is the Pending Entity: it exists only while a create/edit
// modal is open and is discarded on cancel or successful submit.
type formModel struct {
	fields []formField
	focus  int
}

// newForm builds the form for a definition and returns the command that
// starts the first field's cursor blink. initial carries the entity under
// edit (nil for add). When editing, a file field left blank means "keep
// the current image", so its Required rule is relaxed.
func newForm(def schema.Definition, initial store.Fields) (formModel, tea.Cmd) {
	editing := initial != nil
	specs := def.FormFields()
	form := formModel{fields: make([]formField, 0, len(specs))}
	for _, spec := range specs {
		field := formField{spec: spec}
		if spec.Kind == schema.KindFile && editing {
			field.spec.Rule.Required = false
		}
		if field.multiline() {
			area := textarea.New()
			area.Placeholder = spec.Placeholder
			area.SetWidth(48)
			area.SetHeight(4)
			area.ShowLineNumbers = false
			area.CharLimit = 0
			if editing {
				area.SetValue(initialText(spec, initial))
			} else {
				area.SetValue(spec.Default)
			}
			field.area = area
		} else {
			input := textinput.New()
			input.Placeholder = spec.Placeholder
			input.Width = 40
			input.CharLimit = 200
			if spec.Kind == schema.KindFile && editing {
				input.Placeholder = "(keep current image)"
			} else if editing {
				input.SetValue(initialText(spec, initial))
			} else {
				input.SetValue(spec.Default)
			}
			field.input = input
		}
		form.fields = append(form.fields, field)
	}
	var cmd tea.Cmd
	if len(form.fields) > 0 {
		cmd = form.fields[0].focus()
	}
	return form, cmd
}

// initialText renders an existing field value back into input text.
func initialText(spec schema.FieldSpec, fields store.Fields) string {
	v, ok := fields[spec.Name]
	if !ok {
		return ""
	}
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	}
	return ""
}

// Next moves focus to the following field, validating the one being left.
func (m formModel) Next() (formModel, tea.Cmd) {
	return m.moveFocus(1)
}

// Prev moves focus to the previous field, validating the one being left.
func (m formModel) Prev() (formModel, tea.Cmd) {
	return m.moveFocus(-1)
}

func (m formModel) moveFocus(delta int) (formModel, tea.Cmd) {
	if len(m.fields) == 0 {
		return m, nil
	}
	current := &m.fields[m.focus]
	current.touched = true
	current.validate()
	current.blur()
	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	return m, m.fields[m.focus].focus()
}

// Update routes input to the focused widget and re-validates it when it
// has already been touched.
func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	if len(m.fields) == 0 {
		return m, nil
	}
	field := &m.fields[m.focus]
	var cmd tea.Cmd
	if field.multiline() {
		field.area, cmd = field.area.Update(msg)
	} else {
		field.input, cmd = field.input.Update(msg)
	}
	if field.touched {
		field.validate()
	}
	return m, cmd
}

// FocusedMultiline reports whether the focused field consumes the enter
// key for newlines.
func (m formModel) FocusedMultiline() bool {
	if len(m.fields) == 0 {
		return false
	}
	return m.fields[m.focus].multiline()
}

// ValidateAll runs every field validator, marks all fields touched, and
// reports whether the form may submit.
func (m *formModel) ValidateAll() bool {
	ok := true
	for i := range m.fields {
		m.fields[i].touched = true
		m.fields[i].validate()
		if m.fields[i].err != "" {
			ok = false
		}
	}
	return ok
}

// RawValues returns the trimmed input text per field name.
func (m formModel) RawValues() map[string]string {
	out := make(map[string]string, len(m.fields))
	for _, f := range m.fields {
		out[f.spec.Name] = strings.TrimSpace(f.value())
	}
	return out
}

// View renders labels, widgets and inline errors.
func (m formModel) View() string {
	var sections []string
	for i, f := range m.fields {
		label := fieldLabelStyle.Render(f.spec.DisplayLabel())
		if i == m.focus {
			label = formFocusedMarker + label
		} else {
			label = "  " + label
		}
		var widget string
		if f.multiline() {
			widget = f.area.View()
		} else {
			widget = f.input.View()
		}
		block := fmt.Sprintf("%s\n%s", label, widget)
		if f.err != "" {
			block += "\n" + fieldErrorStyle.Render("⚠ "+f.err)
		}
		sections = append(sections, block)
	}
	hint := formHintStyle.Render("tab/shift+tab → move    enter → save    esc → cancel")
	sections = append(sections, hint)
	return strings.Join(sections, "\n\n")
}
