package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// toastKind selects the toast accent color.
type toastKind int

const (
	toastInfo toastKind = iota
	toastSuccess
	toastError
)

// toastDismissMsg fires when a toast's display window elapses. The
// generation token lets Update drop ticks that belong to a toast that was
// already replaced or manually closed.
type toastDismissMsg struct {
	gen int
}

var (
	toastInfoStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5B8DEF")).
			Foreground(lipgloss.Color("#5B8DEF")).
			Padding(0, 1)
	toastSuccessStyle = toastInfoStyle.
				BorderForeground(lipgloss.Color("#4CAF50")).
				Foreground(lipgloss.Color("#4CAF50"))
	toastErrorStyle = toastInfoStyle.
			BorderForeground(lipgloss.Color("#FF6B6B")).
			Foreground(lipgloss.Color("#FF6B6B"))
)

// toastModel displays a single transient notice. A new Show replaces the
// visible toast — there is no queue.
type toastModel struct {
	message  string
	kind     toastKind
	visible  bool
	gen      int
	duration time.Duration
}

func newToast(duration time.Duration) toastModel {
	if duration <= 0 {
		duration = 3 * time.Second
	}
	return toastModel{duration: duration}
}

// Show displays the message and schedules its dismissal. Bumping the
// generation invalidates any tick still pending for the previous toast.
func (t toastModel) Show(message string, kind toastKind) (toastModel, tea.Cmd) {
	t.gen++
	t.message = message
	t.kind = kind
	t.visible = true
	gen := t.gen
	return t, tea.Tick(t.duration, func(time.Time) tea.Msg {
		return toastDismissMsg{gen: gen}
	})
}

// Hide closes the toast immediately and cancels the pending auto-dismiss
// by outrunning its generation.
func (t toastModel) Hide() toastModel {
	t.gen++
	t.visible = false
	return t
}

// Update handles dismissal ticks, ignoring stale generations.
func (t toastModel) Update(msg toastDismissMsg) toastModel {
	if msg.gen == t.gen {
		t.visible = false
	}
	return t
}

// View renders the toast, or "" when nothing is visible.
func (t toastModel) View() string {
	if !t.visible {
		return ""
	}
	style := toastInfoStyle
	switch t.kind {
	case toastSuccess:
		style = toastSuccessStyle
	case toastError:
		style = toastErrorStyle
	}
	return style.Render(t.message)
}
