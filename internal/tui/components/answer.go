// Package components provides the input widgets of the contrib terminal UI.
package components

import (
	tea "github.com/charmbracelet/bubbletea"
)

// AnswerSubmittedMsg is sent when the user confirms an answer.
type AnswerSubmittedMsg struct {
	Value string
}

// AnswerCanceledMsg is sent when the user gives up on a question.
type AnswerCanceledMsg struct{}

func submit(value string) tea.Cmd {
	return func() tea.Msg {
		return AnswerSubmittedMsg{Value: value}
	}
}

func cancel() tea.Msg {
	return AnswerCanceledMsg{}
}
