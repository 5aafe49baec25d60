package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ywarnier/oss-contrib/internal/tui/styles"
)

// BlockInput is a multi-line answer field. Enter inserts a newline and
// Ctrl+D submits the whole text.
type BlockInput struct {
	textarea textarea.Model
	focused  bool
}

// NewBlockInput creates a BlockInput.
func NewBlockInput(placeholder string) *BlockInput {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(5)
	ta.ShowLineNumbers = false

	return &BlockInput{textarea: ta}
}

// SetWidth sets the component width.
func (b *BlockInput) SetWidth(width int) {
	b.textarea.SetWidth(width - 4)
}

// SetHeight sets the number of visible lines.
func (b *BlockInput) SetHeight(height int) {
	if height < 3 {
		height = 3
	}
	b.textarea.SetHeight(height)
}

// Focus focuses the textarea.
func (b *BlockInput) Focus() tea.Cmd {
	b.focused = true
	return b.textarea.Focus()
}

// Update handles key presses.
func (b *BlockInput) Update(msg tea.Msg) (*BlockInput, tea.Cmd) {
	if !b.focused {
		return b, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+d":
			return b, submit(b.textarea.Value())
		case "ctrl+c", "esc":
			return b, cancel
		}
	}

	var cmd tea.Cmd
	b.textarea, cmd = b.textarea.Update(msg)
	return b, cmd
}

// View renders the component.
func (b *BlockInput) View() string {
	var sb strings.Builder

	sb.WriteString(styles.FocusedBoxStyle.Render(b.textarea.View()))
	sb.WriteString("\n")
	sb.WriteString(NewShortcutBar(BlockInputShortcuts...).View())

	return sb.String()
}
