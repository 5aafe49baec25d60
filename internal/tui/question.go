package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ywarnier/oss-contrib/internal/ask"
	"github.com/ywarnier/oss-contrib/internal/tui/components"
	"github.com/ywarnier/oss-contrib/internal/tui/styles"
)

// QuestionModel is the bubbletea model for a single question. It quits
// as soon as the question is answered or canceled.
type QuestionModel struct {
	question ask.Question

	line   *components.LineInput
	block  *components.BlockInput
	choice *components.ChoiceList

	answer   string
	done     bool
	canceled bool
}

// NewQuestionModel creates the model matching the shape of q.
func NewQuestionModel(q ask.Question) *QuestionModel {
	m := &QuestionModel{question: q}
	switch {
	case len(q.Choices) > 0:
		m.choice = components.NewChoiceList(q.Choices, q.Default)
	case q.Multiline:
		m.block = components.NewBlockInput("")
	default:
		m.line = components.NewLineInput(q.Default)
	}
	return m
}

// Init focuses the active input.
func (m *QuestionModel) Init() tea.Cmd {
	switch {
	case m.line != nil:
		return m.line.Focus()
	case m.block != nil:
		return m.block.Focus()
	}
	return nil
}

// Update handles messages.
func (m *QuestionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case components.AnswerSubmittedMsg:
		m.answer = msg.Value
		m.done = true
		return m, tea.Quit
	case components.AnswerCanceledMsg:
		m.canceled = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	switch {
	case m.choice != nil:
		cmd = m.choice.Update(msg)
	case m.block != nil:
		m.block, cmd = m.block.Update(msg)
	case m.line != nil:
		m.line, cmd = m.line.Update(msg)
	}
	return m, cmd
}

func (m *QuestionModel) resize(width, height int) {
	switch {
	case m.choice != nil:
		m.choice.SetHeight(height - 4)
	case m.block != nil:
		m.block.SetWidth(width)
		m.block.SetHeight(height / 3)
	case m.line != nil:
		m.line.SetWidth(width)
	}
}

// View renders the question. Once answered it collapses to a single line
// that stays in the terminal scrollback.
func (m *QuestionModel) View() string {
	if m.done {
		return styles.DoneMarker + " " + styles.QuestionStyle.Render(strings.TrimSpace(m.question.Prompt)) +
			" " + styles.AnswerStyle.Render(m.echo()) + "\n"
	}
	if m.canceled {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.QuestionStyle.Render(strings.TrimSpace(m.question.Prompt)))
	b.WriteString("\n")

	switch {
	case m.choice != nil:
		b.WriteString(m.choice.View())
	case m.block != nil:
		b.WriteString(m.block.View())
	case m.line != nil:
		b.WriteString(m.line.View())
	}
	b.WriteString("\n")
	return b.String()
}

// echo is the answer as shown after the question.
func (m *QuestionModel) echo() string {
	switch {
	case m.choice != nil:
		if i := m.choice.Selected(); i >= 0 && i < len(m.question.Choices) {
			return m.question.Choices[i]
		}
	case m.block != nil:
		lines := strings.Count(strings.TrimSpace(m.answer), "\n") + 1
		if lines > 1 {
			return strings.SplitN(strings.TrimSpace(m.answer), "\n", 2)[0] + " …"
		}
	}
	if strings.TrimSpace(m.answer) == "" {
		return m.question.Default
	}
	return strings.TrimSpace(m.answer)
}

// Answer returns the submitted answer.
func (m *QuestionModel) Answer() string {
	return m.answer
}

// Done reports whether an answer was submitted.
func (m *QuestionModel) Done() bool {
	return m.done
}

// Canceled reports whether the user gave up on the question.
func (m *QuestionModel) Canceled() bool {
	return m.canceled
}
