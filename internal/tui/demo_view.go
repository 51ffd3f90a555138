package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/curioterm/curio/internal/schema"
	"github.com/curioterm/curio/internal/store"
	"github.com/curioterm/curio/internal/upload"
	"github.com/curioterm/curio/internal/views"
)

// simulatedLoadDelay stages the feed demo's loading state before its seed
// data appears, standing in for the network round-trip the mock fakes.
const simulatedLoadDelay = 900 * time.Millisecond

// modalKind tracks which dialog is open. At most one modal is open at a
// time; opening another implicitly closes the current one, and esc always
// cancels without submitting.
type modalKind int

const (
	modalNone modalKind = iota
	modalAdd
	modalEdit
	modalDeleteConfirm
)

// demoLoadedMsg delivers the end of a simulated load. Tokens from a torn
// down view no longer match and are dropped, so a stale timer can never
// mutate a demo the user already left.
type demoLoadedMsg struct {
	token int
}

var (
	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).Underline(true)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	entryTitleStyle  = lipgloss.NewStyle().Bold(true)
	entryMetaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
	entryBarStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	modalBoxStyle    = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#5B8DEF")).
				Padding(1, 2)
	demoHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).MarginTop(1)
)

// demoView runs one demo: the collection, the derived-view tabs, the
// selection cursor and the modal state machine.
type demoView struct {
	app        *App
	def        schema.Definition
	collection *store.Collection

	viewIdx int
	cursor  int

	modal      modalKind
	modalForID string
	form       formModel

	loading   bool
	loadToken int
	spin      spinner.Model
}

func newDemoView(app *App, def schema.Definition) *demoView {
	var opts []store.Option
	if def.Persistent && app.config != nil {
		opts = append(opts, store.WithMirror(store.NewSnapshotMirror(app.config.SnapshotPath(def.ID))))
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	v := &demoView{
		app:        app,
		def:        def,
		collection: store.New(def.ID, opts...),
		spin:       sp,
	}
	return v
}

// Init restores the collection, or stages a simulated load first when the
// demo asks for one.
func (v *demoView) Init() tea.Cmd {
	if !v.def.SimulateLoad {
		if err := v.collection.Restore(v.def.SeedEntities()); err != nil {
			v.app.logError("%s · restore failed: %v", v.def.ID, err)
		}
		return nil
	}
	v.loading = true
	v.loadToken++
	token := v.loadToken
	return tea.Batch(
		v.spin.Tick,
		tea.Tick(simulatedLoadDelay, func(time.Time) tea.Msg {
			return demoLoadedMsg{token: token}
		}),
	)
}

// teardown invalidates pending load timers. Called when the user leaves
// the demo so a late tick cannot touch a dead view.
func (v *demoView) teardown() {
	v.loadToken++
}

// visible returns the active derived view's projection, recomputed on
// every call.
func (v *demoView) visible() []store.Entity {
	entities := v.collection.Entities()
	if len(v.def.Views) == 0 {
		return entities
	}
	if v.viewIdx >= len(v.def.Views) {
		v.viewIdx = 0
	}
	return views.Apply(v.def.Views[v.viewIdx], entities)
}

func (v *demoView) clampCursor(visible int) {
	if v.cursor >= visible {
		v.cursor = visible - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *demoView) selected() (store.Entity, bool) {
	entities := v.visible()
	if len(entities) == 0 {
		return store.Entity{}, false
	}
	v.clampCursor(len(entities))
	return entities[v.cursor], true
}

// Update handles demo-scoped messages. Keys are routed to the modal first
// so text inputs behave normally while one is open.
func (v *demoView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case demoLoadedMsg:
		if msg.token != v.loadToken || !v.loading {
			return nil
		}
		v.loading = false
		if err := v.collection.Restore(v.def.SeedEntities()); err != nil {
			v.app.logError("%s · restore failed: %v", v.def.ID, err)
			return v.app.showToast("loading failed", toastError)
		}
		return nil

	case spinner.TickMsg:
		if !v.loading {
			return nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return cmd

	case tea.KeyMsg:
		if v.modal != modalNone {
			return v.updateModal(msg)
		}
		return v.handleListKey(msg)
	}
	return nil
}

func (v *demoView) handleListKey(msg tea.KeyMsg) tea.Cmd {
	if v.loading {
		return nil
	}
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.visible())-1 {
			v.cursor++
		}
	case "tab":
		if len(v.def.Views) > 1 {
			v.viewIdx = (v.viewIdx + 1) % len(v.def.Views)
			v.cursor = 0
		}
	case "a":
		return v.openAdd()
	case "e", "enter":
		return v.openEdit()
	case "d":
		return v.openDeleteConfirm()
	case "t", " ":
		return v.toggleSelected()
	}
	return nil
}

func (v *demoView) openAdd() tea.Cmd {
	v.modal = modalAdd
	v.modalForID = ""
	var cmd tea.Cmd
	v.form, cmd = newForm(v.def, nil)
	return cmd
}

func (v *demoView) openEdit() tea.Cmd {
	entity, ok := v.selected()
	if !ok {
		return nil
	}
	v.modal = modalEdit
	v.modalForID = entity.ID
	var cmd tea.Cmd
	v.form, cmd = newForm(v.def, entity.Fields)
	return cmd
}

func (v *demoView) openDeleteConfirm() tea.Cmd {
	entity, ok := v.selected()
	if !ok {
		return nil
	}
	v.modal = modalDeleteConfirm
	v.modalForID = entity.ID
	return nil
}

// closeModal discards the pending entity and returns to the list. Used
// for cancel paths and after successful submits alike.
func (v *demoView) closeModal() {
	v.modal = modalNone
	v.modalForID = ""
	v.form = formModel{}
}

func (v *demoView) toggleSelected() tea.Cmd {
	if len(v.def.Toggles) == 0 {
		return nil
	}
	entity, ok := v.selected()
	if !ok {
		return nil
	}
	toggle := v.def.Toggles[0]
	updated, err := v.collection.Toggle(entity.ID, toggle.Field, toggle.Counter)
	if err != nil {
		v.app.logError("%s · toggle failed: %v", v.def.ID, err)
		return v.app.showToast("toggle failed", toastError)
	}
	label := toggle.Label
	if label == "" {
		label = toggle.Field
	}
	state := "off"
	if updated.Bool(toggle.Field) {
		state = "on"
	}
	v.app.logAction(v.def.ID, "toggled", fmt.Sprintf("%s %s for %s", label, state, entity.ID))
	return nil
}

func (v *demoView) updateModal(msg tea.KeyMsg) tea.Cmd {
	if v.modal == modalDeleteConfirm {
		switch msg.String() {
		case "y", "enter":
			return v.confirmDelete()
		case "n", "esc":
			v.closeModal()
		}
		return nil
	}

	switch msg.String() {
	case "esc":
		// Cancel, never submit: the collection stays untouched.
		v.closeModal()
		return nil
	case "tab":
		var cmd tea.Cmd
		v.form, cmd = v.form.Next()
		return cmd
	case "shift+tab":
		var cmd tea.Cmd
		v.form, cmd = v.form.Prev()
		return cmd
	case "enter":
		if !v.form.FocusedMultiline() {
			return v.submitForm()
		}
	case "ctrl+s":
		return v.submitForm()
	}
	var cmd tea.Cmd
	v.form, cmd = v.form.Update(msg)
	return cmd
}

func (v *demoView) confirmDelete() tea.Cmd {
	id := v.modalForID
	v.closeModal()
	removed, err := v.collection.Remove(id)
	if err != nil {
		v.app.logError("%s · delete failed: %v", v.def.ID, err)
		return v.app.showToast("delete failed", toastError)
	}
	if !removed {
		return v.app.showToast("already removed", toastInfo)
	}
	v.app.logAction(v.def.ID, "deleted", id)
	return v.app.showToast(v.def.EntityNoun()+" deleted", toastInfo)
}

// submitForm validates, converts raw input into typed fields and applies
// the add or update. Validation or upload failures leave the modal open
// and the collection unchanged.
func (v *demoView) submitForm() tea.Cmd {
	if !v.form.ValidateAll() {
		v.app.logWarn("%s · submit rejected by validation", v.def.ID)
		return v.app.showToast("fix the highlighted fields", toastError)
	}
	fields, err := v.buildFields(v.form.RawValues())
	if err != nil {
		v.app.logWarn("%s · %v", v.def.ID, err)
		return v.app.showToast(userMessage(err), toastError)
	}

	if v.modal == modalEdit {
		id := v.modalForID
		if _, err := v.collection.Update(id, fields); err != nil {
			v.closeModal()
			v.app.logError("%s · update failed: %v", v.def.ID, err)
			return v.app.showToast("update failed", toastError)
		}
		v.closeModal()
		v.app.logAction(v.def.ID, "updated", id)
		return v.app.showToast(v.def.EntityNoun()+" updated", toastSuccess)
	}

	entity, err := v.collection.Add(fields)
	if err != nil {
		v.closeModal()
		v.app.logError("%s · add failed: %v", v.def.ID, err)
		return v.app.showToast("add failed", toastError)
	}
	v.closeModal()
	v.app.logAction(v.def.ID, "added", entity.ID)
	return v.app.showToast(v.def.EntityNoun()+" added", toastSuccess)
}

// buildFields converts validated raw strings into stored scalars. File
// fields are converted to data URLs here; on edit, a blank file field
// keeps the current image by omitting the field from the patch.
func (v *demoView) buildFields(raw map[string]string) (store.Fields, error) {
	fields := store.Fields{}
	for _, spec := range v.def.Fields {
		if spec.ReadOnly {
			if v.modal == modalAdd && spec.Kind == schema.KindNumber {
				fields[spec.Name] = float64(0)
			}
			continue
		}
		if spec.Kind == schema.KindBool {
			if v.modal == modalAdd {
				fields[spec.Name] = false
			}
			continue
		}
		value, ok := raw[spec.Name]
		if !ok {
			continue
		}
		switch spec.Kind {
		case schema.KindNumber:
			n, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, fmt.Errorf("%s must be a number", spec.DisplayLabel())
			}
			fields[spec.Name] = n
		case schema.KindFile:
			if value == "" {
				// Edit with no new file: keep the stored data URL.
				continue
			}
			if strings.HasPrefix(value, "data:") {
				fields[spec.Name] = value
				continue
			}
			url, err := upload.DataURL(value)
			if err != nil {
				return nil, err
			}
			fields[spec.Name] = url
		default:
			fields[spec.Name] = value
		}
	}
	return fields, nil
}

// View renders the tabs, the entity list and any open modal.
func (v *demoView) View() string {
	if v.loading {
		return fmt.Sprintf("%s loading %s…", v.spin.View(), v.def.Title)
	}
	if v.modal != modalNone {
		return v.renderModal()
	}
	sections := []string{v.renderTabs()}
	sections = append(sections, v.renderEntries())
	sections = append(sections, v.renderSummary())
	hints := "a → add    e → edit    d → delete"
	if len(v.def.Toggles) > 0 {
		label := v.def.Toggles[0].Label
		if label == "" {
			label = v.def.Toggles[0].Field
		}
		hints += "    t → " + label
	}
	if len(v.def.Views) > 1 {
		hints += "    tab → view"
	}
	hints += "    esc → menu"
	sections = append(sections, demoHintStyle.Render(hints))
	return strings.Join(sections, "\n")
}

func (v *demoView) renderTabs() string {
	if len(v.def.Views) == 0 {
		return entryMetaStyle.Render(v.def.Description)
	}
	entities := v.collection.Entities()
	var tabs []string
	for i, view := range v.def.Views {
		label := fmt.Sprintf("%s (%d)", view.Name, len(views.Apply(view, entities)))
		if i == v.viewIdx {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(label))
		}
	}
	return strings.Join(tabs, "  ")
}

func (v *demoView) renderEntries() string {
	entities := v.visible()
	if len(entities) == 0 {
		return entryMetaStyle.Render(fmt.Sprintf("No %ss yet. Press a to add one.", v.def.EntityNoun()))
	}
	v.clampCursor(len(entities))
	maxBar := 0.0
	if v.def.BarField != "" {
		maxBar = views.MaxNumber(v.collection.Entities(), v.def.BarField)
	}
	var rows []string
	for i, entity := range entities {
		rows = append(rows, v.renderEntry(entity, i == v.cursor, maxBar))
	}
	return strings.Join(rows, "\n")
}

// renderEntry draws one list row: primary text, secondary field summary,
// toggle markers and an optional bar scaled against the collection max.
func (v *demoView) renderEntry(entity store.Entity, selected bool, maxBar float64) string {
	marker := "  "
	if selected {
		marker = formFocusedMarker
	}
	primary := ""
	var meta []string
	for _, spec := range v.def.Fields {
		switch spec.Kind {
		case schema.KindBool:
			continue
		case schema.KindFile:
			if entity.String(spec.Name) != "" {
				meta = append(meta, "🖼 image")
			}
			continue
		case schema.KindNumber:
			meta = append(meta, fmt.Sprintf("%s %s", spec.DisplayLabel(), strconv.FormatFloat(entity.Number(spec.Name), 'f', -1, 64)))
		default:
			if primary == "" {
				primary = entity.String(spec.Name)
				continue
			}
			if text := entity.String(spec.Name); text != "" {
				meta = append(meta, firstLine(text))
			}
		}
	}
	for _, toggle := range v.def.Toggles {
		if entity.Bool(toggle.Field) {
			label := toggle.Label
			if label == "" {
				label = toggle.Field
			}
			meta = append(meta, "✓ "+label)
		}
	}
	line := marker + entryTitleStyle.Render(primary)
	if len(meta) > 0 {
		line += "  " + entryMetaStyle.Render(strings.Join(meta, " · "))
	}
	if v.def.BarField != "" && maxBar > 0 {
		width := int(entity.Number(v.def.BarField) / maxBar * 20)
		if width > 0 {
			line += "\n    " + entryBarStyle.Render(strings.Repeat("█", width))
		}
	}
	return line
}

func (v *demoView) renderSummary() string {
	entities := v.collection.Entities()
	parts := []string{fmt.Sprintf("%d %s(s)", len(entities), v.def.EntityNoun())}
	if v.def.BarField != "" {
		spec, _ := v.def.Field(v.def.BarField)
		parts = append(parts, fmt.Sprintf("total %s %s",
			strings.ToLower(spec.DisplayLabel()),
			strconv.FormatFloat(views.SumNumber(entities, v.def.BarField), 'f', -1, 64)))
	}
	for _, toggle := range v.def.Toggles {
		label := toggle.Label
		if label == "" {
			label = toggle.Field
		}
		parts = append(parts, fmt.Sprintf("%d %s", views.CountBool(entities, toggle.Field, true), label))
	}
	return entryMetaStyle.Render(strings.Join(parts, " · "))
}

func (v *demoView) renderModal() string {
	switch v.modal {
	case modalDeleteConfirm:
		entity, ok := v.collection.Get(v.modalForID)
		name := v.def.EntityNoun()
		if ok {
			if primary := firstTextField(v.def, entity); primary != "" {
				name = fmt.Sprintf("%s %q", name, primary)
			}
		}
		body := fmt.Sprintf("Delete %s?\n\ny → delete    n/esc → cancel", name)
		return modalBoxStyle.Render(body)
	case modalEdit:
		title := entryTitleStyle.Render("Edit " + v.def.EntityNoun())
		return modalBoxStyle.Render(title + "\n\n" + v.form.View())
	default:
		title := entryTitleStyle.Render("Add " + v.def.EntityNoun())
		return modalBoxStyle.Render(title + "\n\n" + v.form.View())
	}
}

func firstTextField(def schema.Definition, entity store.Entity) string {
	for _, spec := range def.Fields {
		if spec.Kind == schema.KindText {
			if text := entity.String(spec.Name); text != "" {
				return text
			}
		}
	}
	return ""
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[:idx]
	}
	return text
}

// userMessage strips the package prefix from wrapped errors so toasts read
// like UI copy ("file exceeds the 5MB limit"), not like Go errors.
func userMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx >= 0 && strings.HasPrefix(msg, "upload:") {
		return msg[idx+2:]
	}
	return msg
}
