package errors

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestContribError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ContribError
		expected string
	}{
		{
			name:     "simple message",
			err:      New(ErrParse, "bad document"),
			expected: "bad document",
		},
		{
			name: "with cause",
			err: &ContribError{
				Kind:    ErrWrite,
				Message: "write failed",
				Cause:   errors.New("disk full"),
			},
			expected: "write failed: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestContribError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, ErrParse, "wrapped error")

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Without cause, should return Kind
	errNoWrap := New(ErrConfig, "no cause")
	unwrapped = errors.Unwrap(errNoWrap)
	if !errors.Is(unwrapped, ErrConfig) {
		t.Errorf("Unwrap() should return Kind when no cause")
	}
}

func TestContribError_Is(t *testing.T) {
	err := New(ErrWrite, "write failed")

	if !errors.Is(err, ErrWrite) {
		t.Error("errors.Is should return true for matching Kind")
	}
	if errors.Is(err, ErrMissingInput) {
		t.Error("errors.Is should return false for non-matching Kind")
	}

	// The cause chain is still reachable
	wrapped := WriteFailed("contributions.yml", fs.ErrPermission)
	if !errors.Is(wrapped, ErrWrite) {
		t.Error("errors.Is should match the Kind of WriteFailed")
	}
	if !errors.Is(wrapped, fs.ErrPermission) {
		t.Error("errors.Is should match the cause of WriteFailed")
	}
}

func TestContribError_Format(t *testing.T) {
	err := MissingInput("missing.yml")

	formatted := err.Format()

	if !strings.Contains(formatted, "Error: contributions file not found: missing.yml") {
		t.Errorf("Format() should contain error message, got:\n%s", formatted)
	}
	if !strings.Contains(formatted, "path: missing.yml") {
		t.Error("Format() should contain details")
	}
	if !strings.Contains(formatted, "Suggestion: Generating the YAML from scratch is not supported") {
		t.Error("Format() should contain suggestion")
	}
}

func TestContribError_WithDetails(t *testing.T) {
	err := New(ErrConfig, "config error")
	err.WithDetails("file", "config.yaml").WithDetails("line", "42")

	if err.Details["file"] != "config.yaml" {
		t.Error("WithDetails should set key")
	}
	if err.Details["line"] != "42" {
		t.Error("WithDetails should allow chaining")
	}
}

func TestValidationConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     *ContribError
		message string
	}{
		{"empty", EmptyValue(), "Please provide a non-empty value."},
		{"date", InvalidDate("not-a-date"), "Invalid date. Please provide a time string like 2020-01-22."},
		{"choice", InvalidChoice("Project %s is invalid.", "nope"), "Project nope is invalid."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.message {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.message)
			}
			if !IsValidation(tt.err) {
				t.Error("IsValidation should be true")
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"missing input", MissingInput("x.yml"), ExitUserError},
		{"parse", ParseFailed("x.yml", errors.New("boom")), ExitUserError},
		{"write", WriteFailed("x.yml", errors.New("boom")), ExitSystemError},
		{"aborted", Aborted("input closed"), ExitAborted},
		{"untyped", errors.New("plain"), ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
