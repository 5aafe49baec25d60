package errors

import "errors"

// Exit codes:
// 0 = Success
// 1 = User error (missing file, unparseable document, bad config)
// 2 = System error (document could not be written)
// 130 = Session aborted
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
	ExitAborted     = 130
)

// ExitCode maps an error returned by a command to a process exit status.
// Returns ExitSuccess for nil and ExitUserError for untyped errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrWrite):
		return ExitSystemError
	case errors.Is(err, ErrAborted):
		return ExitAborted
	default:
		return ExitUserError
	}
}
