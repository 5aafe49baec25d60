// Package errors provides error types for contrib.
// This file contains document and answer related errors.
package errors

import (
	"fmt"
)

// Document-related error constructors.

// MissingInput creates an error for a target document that does not exist.
func MissingInput(path string) *ContribError {
	return &ContribError{
		Kind:    ErrMissingInput,
		Message: fmt.Sprintf("contributions file not found: %s", path),
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `Generating the YAML from scratch is not supported.
  Use an existing contributions.yml file as base to create one.`,
	}
}

// ParseFailed creates an error for a document that could not be parsed.
func ParseFailed(path string, cause error) *ContribError {
	return &ContribError{
		Kind:    ErrParse,
		Message: fmt.Sprintf("failed to parse contributions file: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `Check the file for YAML syntax errors:
  1. Ensure proper indentation (use spaces, not tabs)
  2. Make sure "types" lists at least one contribution type
  3. "projects" and "people" must be mappings, "contributions" a list`,
	}
}

// WriteFailed creates an error for a document that could not be written.
func WriteFailed(path string, cause error) *ContribError {
	return &ContribError{
		Kind:    ErrWrite,
		Message: fmt.Sprintf("failed to write contributions file: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check that the file is writable and the disk is not full.",
	}
}

// Answer validation error constructors. Messages are shown to the user
// verbatim before the question is asked again.

// EmptyValue creates an error for a blank answer.
func EmptyValue() *ContribError {
	return New(ErrValidation, "Please provide a non-empty value.")
}

// InvalidDate creates an error for an unparseable date answer.
func InvalidDate(value string) *ContribError {
	return New(ErrValidation, "Invalid date. Please provide a time string like 2020-01-22.").
		WithDetails("value", value)
}

// InvalidChoice creates an error for a choice that is not in the list.
// format is a printf pattern with a single %s for the rejected value.
func InvalidChoice(format, value string) *ContribError {
	return New(ErrValidation, fmt.Sprintf(format, value)).
		WithDetails("value", value)
}

// Aborted creates an error for a session that ended before all answers were collected.
func Aborted(reason string) *ContribError {
	return &ContribError{
		Kind:       ErrAborted,
		Message:    "Aborted: " + reason,
		Suggestion: "No changes were written. Run the command again to add the contribution.",
	}
}
