package components

import (
	"strings"
	"testing"
)

func TestShortcutBar_View(t *testing.T) {
	bar := NewShortcutBar(ShortcutDef{"Enter", "submit"}, ShortcutDef{"Esc", "cancel"})

	view := bar.View()
	for _, want := range []string{"Enter", "submit", "Esc", "cancel", "│"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() = %q, want to contain %q", view, want)
		}
	}
}

func TestShortcutBar_Empty(t *testing.T) {
	if view := NewShortcutBar().View(); view != "" {
		t.Errorf("View() = %q, want empty", view)
	}
}

func TestLineInput_ViewShowsShortcuts(t *testing.T) {
	l := NewLineInput("")

	if !strings.Contains(l.View(), "Enter") {
		t.Errorf("View() = %q, want the submit shortcut", l.View())
	}
}
