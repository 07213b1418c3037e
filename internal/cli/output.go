package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/roach88/covreport/internal/ir"
)

// Exit codes for the covreport command.
const (
	ExitSuccess      = 0 // Report written
	ExitFailure      = 1 // Input failed to load or validate (malformed blob, missing level, etc.)
	ExitCommandError = 2 // Command error (unreadable or invalid configuration)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// PrintError writes err as a one-line diagnostic, tagged with its ir error
// code when it has one.
func PrintError(w io.Writer, err error) {
	code := "E001"
	var irErr *ir.Error
	if errors.As(err, &irErr) {
		code = string(irErr.Code)
	}
	fmt.Fprintf(w, "Error [%s]: %v\n", code, err)
}
