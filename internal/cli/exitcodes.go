package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage errors, unexpected failures, or any error that doesn't fit
	// the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing required flags, invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested column or task was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: unreadable board files, corrupted persisted state.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: unknown kinds, ambiguous ID prefixes, boards that break referential rules.
	ExitValidation = 5
)

// CodedError carries the process exit code for a failed command. Commands return it
// instead of calling os.Exit so they stay testable.
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code
func Exit(code int, err error) *CodedError {
	return &CodedError{Code: code, Err: err}
}

// Exitf formats a message into a CodedError
func Exitf(code int, format string, args ...any) *CodedError {
	return &CodedError{Code: code, Err: fmt.Errorf(format, args...)}
}

// ExitCode extracts the exit code from err. nil is success, other errors map to ExitError.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CodedError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}
