// Package ask defines the question and answer exchange between the wizard
// and the person running it.
package ask

import (
	"context"
)

// EOT ends a multi-line answer on a line-oriented stream, like Ctrl+D on an
// empty line does on a terminal.
const EOT = 0x04

// Question is one prompt shown to the user.
type Question struct {
	// Prompt is the question text.
	Prompt string
	// Hint is an optional second line explaining how to answer.
	Hint string
	// Default is returned when the answer is empty.
	Default string
	// Choices, when set, are listed by index below the prompt. The answer is
	// either an index or a label; the session does not resolve it.
	Choices []string
	// Multiline collects text until end of input instead of a single line.
	Multiline bool
}

// Session asks questions and reports rejected answers.
type Session interface {
	// Ask shows q and blocks until an answer is given. It fails with an
	// ErrAborted error when the user gives up or input is closed.
	Ask(ctx context.Context, q Question) (string, error)
	// Reject reports why the previous answer was not accepted.
	Reject(message string)
}
