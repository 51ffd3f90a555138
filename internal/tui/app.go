// Package tui is the terminal UI for curio. It follows The Elm
// Architecture via bubbletea: one model, an Update that consumes messages
// strictly in dispatch order, and a View rendered from state. Every
// mutation — key press, form submit, toast timer — arrives as a message,
// so no two collection mutations are ever concurrent.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/curioterm/curio/internal/config"
	"github.com/curioterm/curio/internal/demos"
	"github.com/curioterm/curio/internal/logbook"
	"github.com/curioterm/curio/internal/schema"
)

// appState represents which "screen" we're on.
type appState int

const (
	stateMenu appState = iota // demo picker
	stateDemo                 // one demo running
)

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithRegistry overrides the demo registry used by the app.
func WithRegistry(reg *demos.Registry) AppOption {
	return func(a *App) {
		if reg != nil {
			a.registry = reg
		}
	}
}

// App is the main application model. It holds all state: the menu, the
// running demo view, the single toast and the journey log.
type App struct {
	state    appState
	config   *config.Config
	registry *demos.Registry
	logbook  *logbook.Logbook

	menu  list.Model
	demo  *demoView
	toast toastModel

	statusMsg string
	width     int
	height    int
}

// demoItem implements list.Item for the main menu.
type demoItem struct {
	def schema.Definition
}

func (i demoItem) Title() string       { return i.def.Title }
func (i demoItem) Description() string { return i.def.Description }
func (i demoItem) FilterValue() string { return i.def.Title }

// NewApp creates the application model rooted at projectDir.
func NewApp(projectDir string, opts ...AppOption) (*App, error) {
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, err
	}
	registry := demos.Builtin()
	logPath := filepath.Join(cfg.LogsDir(), "journey.log")
	lb, err := logbook.New(logPath)
	if err != nil {
		lb = nil
	}

	app := &App{
		state:    stateMenu,
		config:   cfg,
		registry: registry,
		logbook:  lb,
		toast:    newToast(time.Duration(cfg.ToastMS()) * time.Millisecond),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}

	if err := app.registry.LoadCustom(cfg.DemosDir()); err != nil {
		app.logWarn("custom demos skipped: %v", err)
	}

	app.menu = buildMenu(app.registry)
	app.selectDefault()
	app.logInfo("Session opened · %d demo(s) available", len(app.registry.IDs()))
	return app, nil
}

// buildMenu creates the demo picker from the registry.
func buildMenu(registry *demos.Registry) list.Model {
	defs := registry.All()
	items := make([]list.Item, 0, len(defs))
	for _, def := range defs {
		items = append(items, demoItem{def: def})
	}
	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "✦ CURIO"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	return menu
}

func (a *App) selectDefault() {
	target := a.config.DefaultDemo()
	for idx, id := range a.registry.IDs() {
		if id == target {
			a.menu.Select(idx)
			return
		}
	}
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logWarn(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Warn(format, args...)
}

func (a *App) logError(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Error(format, args...)
}

func (a *App) logAction(demo, verb, detail string) {
	if a.logbook == nil {
		return
	}
	a.logbook.Action(demo, verb, detail)
}

// showToast replaces any visible toast and schedules its dismissal.
func (a *App) showToast(message string, kind toastKind) tea.Cmd {
	var cmd tea.Cmd
	a.toast, cmd = a.toast.Show(message, kind)
	return cmd
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.menu.SetSize(max(0, msg.Width-6), max(0, msg.Height-12))
		return a, nil

	case toastDismissMsg:
		a.toast = a.toast.Update(msg)
		return a, nil

	case demoLoadedMsg, spinner.TickMsg:
		if a.state == stateDemo && a.demo != nil {
			return a, a.demo.Update(msg)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if a.state == stateMenu {
		var cmd tea.Cmd
		a.menu, cmd = a.menu.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if a.state == stateDemo && a.demo != nil {
		// Keys go to the open modal first so inputs behave normally.
		if a.demo.modal == modalNone {
			switch key {
			case "esc":
				return a.returnToMenu()
			case "x":
				if a.toast.visible {
					a.toast = a.toast.Hide()
					return a, nil
				}
			}
		}
		return a, a.demo.Update(msg)
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "x":
		if a.toast.visible {
			a.toast = a.toast.Hide()
			return a, nil
		}
	case "enter":
		return a.openSelectedDemo()
	}

	var cmd tea.Cmd
	a.menu, cmd = a.menu.Update(msg)
	return a, cmd
}

// openSelectedDemo launches the highlighted demo and remembers it as the
// startup default.
func (a *App) openSelectedDemo() (tea.Model, tea.Cmd) {
	item, ok := a.menu.SelectedItem().(demoItem)
	if !ok {
		return a, nil
	}
	if err := a.config.SetDefaultDemo(item.def.ID); err != nil {
		a.logWarn("default demo not saved: %v", err)
	}
	return a.openDemo(item.def)
}

func (a *App) openDemo(def schema.Definition) (tea.Model, tea.Cmd) {
	a.state = stateDemo
	a.demo = newDemoView(a, def)
	a.statusMsg = def.Description
	a.logAction(def.ID, "opened", "")
	return a, a.demo.Init()
}

// returnToMenu tears the demo down, invalidating its pending timers.
func (a *App) returnToMenu() (tea.Model, tea.Cmd) {
	if a.demo != nil {
		a.demo.teardown()
		a.logAction(a.demo.def.ID, "closed", "")
	}
	a.demo = nil
	a.state = stateMenu
	a.statusMsg = ""
	return a, nil
}

// View renders the current state to a string.
func (a *App) View() string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#F7B801")).
		MarginBottom(1).
		Render("✦ CURIO · a cabinet of tiny apps")

	var content string
	switch a.state {
	case stateMenu:
		content = a.menu.View()
	case stateDemo:
		if a.demo != nil {
			title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).Render(a.demo.def.Title)
			content = title + "\n\n" + a.demo.View()
		}
	}

	sections := []string{header, content}
	if toast := a.toast.View(); toast != "" {
		sections = append(sections, toast)
	}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		MarginTop(1).
		Render(a.statusMsg)
	sections = append(sections, footer)
	return strings.Join(sections, "\n")
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines := a.logbook.Tail(6)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(fmt.Sprintf("LOG · %s", fileName))
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(fmt.Sprintf("%s\n%s", head, body))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
