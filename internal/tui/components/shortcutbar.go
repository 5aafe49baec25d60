package components

import (
	"strings"

	"github.com/ywarnier/oss-contrib/internal/tui/styles"
)

// ShortcutDef defines a single keyboard shortcut.
type ShortcutDef struct {
	Key  string
	Desc string
}

// ShortcutBar displays the keys available for the active question.
type ShortcutBar struct {
	shortcuts []ShortcutDef
}

// NewShortcutBar creates a new ShortcutBar with the given shortcuts.
func NewShortcutBar(shortcuts ...ShortcutDef) *ShortcutBar {
	return &ShortcutBar{shortcuts: shortcuts}
}

// View renders the shortcut bar.
func (s *ShortcutBar) View() string {
	if len(s.shortcuts) == 0 {
		return ""
	}

	parts := make([]string, 0, len(s.shortcuts))
	for _, sc := range s.shortcuts {
		parts = append(parts, styles.KeyStyle.Render(sc.Key)+styles.HelpStyle.Render(": "+sc.Desc))
	}
	return strings.Join(parts, styles.HelpStyle.Render(" │ "))
}

// Shortcut sets for each kind of question.
var (
	// LineInputShortcuts are shown under single-line questions.
	LineInputShortcuts = []ShortcutDef{
		{"Enter", "submit"},
		{"Esc", "cancel"},
	}

	// BlockInputShortcuts are shown under multi-line questions.
	BlockInputShortcuts = []ShortcutDef{
		{"Ctrl+D", "submit"},
		{"Enter", "new line"},
		{"Esc", "cancel"},
	}

	// ChoiceListShortcuts are shown under choice questions.
	ChoiceListShortcuts = []ShortcutDef{
		{"↑/↓", "navigate"},
		{"0-9", "jump"},
		{"Enter", "select"},
		{"Esc", "cancel"},
	}
)
