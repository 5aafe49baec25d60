package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ywarnier/oss-contrib/internal/tui/styles"
)

// LineInput is a single-line answer field. Enter submits the value as
// typed; an empty value is submitted as is and the caller applies the
// default.
type LineInput struct {
	model   textinput.Model
	focused bool
}

// NewLineInput creates a LineInput. def, when set, is shown as placeholder.
func NewLineInput(def string) *LineInput {
	ti := textinput.New()
	ti.CharLimit = 1024
	ti.Width = 60
	ti.Prompt = "› "
	ti.Placeholder = def

	return &LineInput{model: ti}
}

// Focus focuses the input.
func (l *LineInput) Focus() tea.Cmd {
	l.focused = true
	return l.model.Focus()
}

// SetWidth sets the width of the input.
func (l *LineInput) SetWidth(width int) {
	l.model.Width = width - 6
	if l.model.Width < 10 {
		l.model.Width = 10
	}
}

// Update handles key presses.
func (l *LineInput) Update(msg tea.Msg) (*LineInput, tea.Cmd) {
	if !l.focused {
		return l, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			return l, submit(l.model.Value())
		case "ctrl+c", "esc":
			return l, cancel
		}
	}

	var cmd tea.Cmd
	l.model, cmd = l.model.Update(msg)
	return l, cmd
}

// View renders the input.
func (l *LineInput) View() string {
	return styles.InputStyle.Render(l.model.View()) + "\n" + NewShortcutBar(LineInputShortcuts...).View()
}
