package ask

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	contriberrors "github.com/ywarnier/oss-contrib/internal/errors"
)

// lineStyles holds the lipgloss styles used by LineSession.
type lineStyles struct {
	Question lipgloss.Style
	Hint     lipgloss.Style
	Index    lipgloss.Style
	Error    lipgloss.Style
	Prompt   lipgloss.Style
}

func newLineStyles(color bool) lineStyles {
	if !color {
		plain := lipgloss.NewStyle()
		return lineStyles{plain, plain, plain, plain, plain}
	}
	return lineStyles{
		Question: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Hint:     lipgloss.NewStyle().Faint(true),
		Index:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Prompt:   lipgloss.NewStyle().Bold(true),
	}
}

// LineSession asks questions over a plain text stream, one answer per line.
// Multi-line answers end at end of input or at an EOT byte.
type LineSession struct {
	in          *bufio.Reader
	out         io.Writer
	styles      lineStyles
	terminal    bool
	interrupted bool
}

// LineOption configures a LineSession.
type LineOption func(*LineSession)

// WithTerminalInput marks the input as a terminal. End of input on an
// empty multi-line answer is then an empty answer, asked again by the
// caller, instead of a closed stream.
func WithTerminalInput(terminal bool) LineOption {
	return func(s *LineSession) {
		s.terminal = terminal
	}
}

// NewLineSession creates a session reading answers from in and writing
// prompts to out. color enables ANSI styling and should only be set when
// out is a terminal.
func NewLineSession(in io.Reader, out io.Writer, color bool, opts ...LineOption) *LineSession {
	s := &LineSession{
		in:     bufio.NewReader(in),
		out:    out,
		styles: newLineStyles(color),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ask shows q and reads the answer.
func (s *LineSession) Ask(ctx context.Context, q Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", contriberrors.Aborted(err.Error())
	}

	s.render(q)

	answer, err := s.read(ctx, q.Multiline)
	if err != nil {
		return "", err
	}
	if !q.Multiline && strings.TrimSpace(answer) == "" && q.Default != "" {
		return q.Default, nil
	}
	return answer, nil
}

type readResult struct {
	answer string
	err    error
}

// read waits for the next answer or for ctx to end. After an interrupt
// the reader goroutine stays blocked on input and every later Ask fails.
func (s *LineSession) read(ctx context.Context, multiline bool) (string, error) {
	if s.interrupted {
		return "", contriberrors.Aborted("interrupted")
	}

	done := make(chan readResult, 1)
	go func() {
		var r readResult
		if multiline {
			r.answer, r.err = s.readBlock()
		} else {
			r.answer, r.err = s.readLine()
		}
		done <- r
	}()

	select {
	case r := <-done:
		return r.answer, r.err
	case <-ctx.Done():
		s.interrupted = true
		fmt.Fprintln(s.out)
		return "", contriberrors.Aborted(ctx.Err().Error())
	}
}

// Reject prints message as an error block.
func (s *LineSession) Reject(message string) {
	fmt.Fprintf(s.out, "\n %s\n\n", s.styles.Error.Render("[ERROR] "+message))
}

func (s *LineSession) render(q Question) {
	switch {
	case len(q.Choices) > 0:
		fmt.Fprintf(s.out, " %s\n", s.styles.Question.Render(q.Prompt))
		for i, choice := range q.Choices {
			fmt.Fprintf(s.out, "  %s %s\n", s.styles.Index.Render(fmt.Sprintf("[%d]", i)), choice)
		}
		fmt.Fprint(s.out, s.styles.Prompt.Render(" > "))
	case q.Multiline:
		fmt.Fprintf(s.out, " %s\n", s.styles.Question.Render(q.Prompt))
		if q.Hint != "" {
			fmt.Fprintf(s.out, " %s\n", s.styles.Hint.Render(q.Hint))
		}
	default:
		prompt := q.Prompt
		if !strings.HasSuffix(prompt, " ") {
			prompt += " "
		}
		fmt.Fprint(s.out, " "+s.styles.Question.Render(prompt))
	}
}

// readLine returns the next line without its terminator. A closed stream
// with nothing left to read aborts the session.
func (s *LineSession) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", contriberrors.Aborted(err.Error())
		}
		if line == "" {
			fmt.Fprintln(s.out)
			return "", contriberrors.Aborted("input closed")
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readBlock collects text up to an EOT byte or end of input. A newline
// directly after EOT belongs to the terminator. On a terminal, end of input
// is not final: Ctrl+D on an empty answer yields "".
func (s *LineSession) readBlock() (string, error) {
	var b strings.Builder
	for {
		c, err := s.in.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return "", contriberrors.Aborted(err.Error())
			}
			if b.Len() == 0 && !s.terminal {
				return "", contriberrors.Aborted("input closed")
			}
			return b.String(), nil
		}
		if c == EOT {
			if s.in.Buffered() > 0 {
				if next, _ := s.in.Peek(1); len(next) == 1 && next[0] == '\n' {
					_, _ = s.in.ReadByte()
				}
			}
			return b.String(), nil
		}
		b.WriteByte(c)
	}
}
