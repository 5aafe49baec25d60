// Package errors provides error types with actionable suggestions for contrib.
// Errors carry a Kind so callers can tell recoverable validation problems
// from the fatal conditions that end an invocation.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrMissingInput indicates the target document does not exist.
	ErrMissingInput = errors.New("missing input")
	// ErrParse indicates the target document could not be parsed.
	ErrParse = errors.New("parse error")
	// ErrValidation indicates an answer was rejected by a validator.
	ErrValidation = errors.New("validation error")
	// ErrWrite indicates the updated document could not be persisted.
	ErrWrite = errors.New("write error")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrAborted indicates the interactive session ended before completion.
	ErrAborted = errors.New("aborted")
)

// ContribError is the base error type for contrib errors.
// It wraps an underlying error and provides additional context.
type ContribError struct {
	// Kind is the category of error (e.g., ErrMissingInput, ErrWrite).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path).
	Details map[string]string
}

// Error implements the error interface.
func (e *ContribError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *ContribError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error's Kind matches the target.
func (e *ContribError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with details and suggestions.
func (e *ContribError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\nSuggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *ContribError) WithDetails(key, value string) *ContribError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// New creates a new ContribError with the given kind and message.
func New(kind error, message string) *ContribError {
	return &ContribError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *ContribError {
	return &ContribError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// IsValidation reports whether err is a recoverable validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
