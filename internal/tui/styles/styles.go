// Package styles provides Lip Gloss styles for the contrib terminal UI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	Primary    = lipgloss.Color("#7C3AED") // Purple
	Secondary  = lipgloss.Color("#06B6D4") // Cyan
	Success    = lipgloss.Color("#10B981") // Green
	Warning    = lipgloss.Color("#F59E0B") // Amber
	Error      = lipgloss.Color("#EF4444") // Red
	Muted      = lipgloss.Color("#6B7280") // Gray
	Foreground = lipgloss.Color("#F9FAFB") // White
)

// Question styles.
var (
	// QuestionStyle is for the question text.
	QuestionStyle = lipgloss.NewStyle().Foreground(Foreground).Bold(true)

	// AnswerStyle is for an accepted answer echoed after the question.
	AnswerStyle = lipgloss.NewStyle().Foreground(Secondary)

	// DoneMarker prefixes answered questions.
	DoneMarker = lipgloss.NewStyle().Foreground(Success).Render("✓")

	// IndexStyle is for choice indexes.
	IndexStyle = lipgloss.NewStyle().Foreground(Warning)

	// SelectedStyle is for the highlighted choice.
	SelectedStyle = lipgloss.NewStyle().Foreground(Secondary).Bold(true)

	// DefaultStyle marks the default choice.
	DefaultStyle = lipgloss.NewStyle().Foreground(Muted)
)

// Input styles.
var (
	// InputStyle wraps single-line inputs.
	InputStyle = lipgloss.NewStyle().Foreground(Foreground).Padding(0, 1)

	// FocusedBoxStyle is a box around the active multi-line input.
	FocusedBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Primary).Padding(0, 1)
)

// Text styles.
var (
	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle = lipgloss.NewStyle().Foreground(Muted)

	// ErrorTextStyle is for error messages.
	ErrorTextStyle = lipgloss.NewStyle().Foreground(Error)

	// SuccessTextStyle is for success messages.
	SuccessTextStyle = lipgloss.NewStyle().Foreground(Success)

	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().Foreground(Secondary).Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().Foreground(Muted)
)
