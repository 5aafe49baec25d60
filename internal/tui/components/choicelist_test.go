package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewChoiceList_SelectsDefault(t *testing.T) {
	tests := []struct {
		name string
		def  string
		want int
	}{
		{"default listed", "documentation", 1},
		{"default first", "code", 0},
		{"default missing", "event", 0},
		{"no default", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewChoiceList([]string{"code", "documentation"}, tt.def)
			if l.Selected() != tt.want {
				t.Errorf("Selected() = %d, want %d", l.Selected(), tt.want)
			}
		})
	}
}

func TestChoiceList_Navigation(t *testing.T) {
	l := NewChoiceList([]string{"a", "b", "c"}, "")

	l.MoveUp()
	if l.Selected() != 0 {
		t.Errorf("Selected() = %d after MoveUp at top, want 0", l.Selected())
	}

	l.Update(tea.KeyMsg{Type: tea.KeyDown})
	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if l.Selected() != 2 {
		t.Errorf("Selected() = %d, want 2", l.Selected())
	}

	l.MoveDown()
	if l.Selected() != 2 {
		t.Errorf("Selected() = %d after MoveDown at bottom, want 2", l.Selected())
	}

	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	if l.Selected() != 1 {
		t.Errorf("Selected() = %d, want 1", l.Selected())
	}
}

func TestChoiceList_DigitJumps(t *testing.T) {
	l := NewChoiceList([]string{"a", "b", "c"}, "")

	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	if l.Selected() != 2 {
		t.Errorf("Selected() = %d, want 2", l.Selected())
	}

	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("7")})
	if l.Selected() != 2 {
		t.Errorf("Selected() = %d after out of range digit, want 2", l.Selected())
	}
}

func TestChoiceList_EnterSubmitsIndex(t *testing.T) {
	l := NewChoiceList([]string{"New project", "drupal/migrate_plus"}, "New project")
	l.MoveDown()

	cmd := l.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command to be returned")
	}

	msg, ok := cmd().(AnswerSubmittedMsg)
	if !ok {
		t.Fatalf("expected AnswerSubmittedMsg, got %T", cmd())
	}
	if msg.Value != "1" {
		t.Errorf("submitted %q, want %q", msg.Value, "1")
	}
}

func TestChoiceList_EmptyDoesNotSubmit(t *testing.T) {
	l := NewChoiceList(nil, "")

	if cmd := l.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("expected nil command for empty list")
	}
	if !strings.Contains(l.View(), "No choices available") {
		t.Error("expected empty list message")
	}
}

func TestChoiceList_EscCancels(t *testing.T) {
	l := NewChoiceList([]string{"a"}, "")

	cmd := l.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected command to be returned")
	}
	if _, ok := cmd().(AnswerCanceledMsg); !ok {
		t.Errorf("expected AnswerCanceledMsg, got %T", cmd())
	}
}

func TestChoiceList_View(t *testing.T) {
	l := NewChoiceList([]string{"New person", "adam", "zoe"}, "New person")

	view := l.View()
	for _, want := range []string{"[0]", "New person", "[1]", "adam", "[2]", "zoe", "(default)"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestChoiceList_Scrolling(t *testing.T) {
	choices := []string{"a", "b", "c", "d", "e", "f"}
	l := NewChoiceList(choices, "")
	l.SetHeight(3)

	if strings.Contains(l.View(), "more above") {
		t.Error("unexpected top scroll indicator")
	}
	if !strings.Contains(l.View(), "more below") {
		t.Error("expected bottom scroll indicator")
	}

	for range 4 {
		l.MoveDown()
	}
	view := l.View()
	if !strings.Contains(view, "more above") {
		t.Error("expected top scroll indicator")
	}
	if strings.Contains(view, "[0]") {
		t.Error("first entry should be scrolled out of view")
	}
	if !strings.Contains(view, "[4]") {
		t.Error("selected entry should be visible")
	}
}
