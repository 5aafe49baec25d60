// Package tui provides the terminal user interface for contrib.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ywarnier/oss-contrib/internal/ask"
	contriberrors "github.com/ywarnier/oss-contrib/internal/errors"
	"github.com/ywarnier/oss-contrib/internal/tui/styles"
)

// Session asks each question in its own inline bubbletea program.
type Session struct {
	in  io.Reader
	out io.Writer
}

// NewSession creates a terminal session on the given streams, which
// should be the controlling terminal.
func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{in: in, out: out}
}

// Ask runs the question until it is answered or canceled.
func (s *Session) Ask(ctx context.Context, q ask.Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", contriberrors.Aborted(err.Error())
	}

	program := tea.NewProgram(NewQuestionModel(q),
		tea.WithContext(ctx),
		tea.WithInput(s.in),
		tea.WithOutput(s.out),
	)
	final, err := program.Run()
	if err != nil {
		return "", contriberrors.Aborted(err.Error())
	}

	m, ok := final.(*QuestionModel)
	if !ok || m.Canceled() || !m.Done() {
		return "", contriberrors.Aborted("canceled by user")
	}

	answer := m.Answer()
	if strings.TrimSpace(answer) == "" && q.Default != "" {
		return q.Default, nil
	}
	return answer, nil
}

// Reject prints message below the previous question.
func (s *Session) Reject(message string) {
	fmt.Fprintln(s.out, styles.ErrorTextStyle.Render("✗ "+message))
}

var _ ask.Session = (*Session)(nil)
