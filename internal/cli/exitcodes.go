package cli

import "errors"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing arguments or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Missing roster files or an empty roster where an item is required.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Roster files that cannot be parsed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Duplicate item ids or blank item names.
	ExitValidation = 5
)

// ExitCodeError pairs an error with the process exit code it should produce.
type ExitCodeError struct {
	Code int
	Err  error

	// Reported is set once the error has been written to the user
	Reported bool
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// WithExitCode wraps err so ExitCode reports code for it.
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitCodeError{Code: code, Err: err}
}

// ExitCode returns the exit code carried by err.
// Errors without one map to ExitError; nil maps to ExitSuccess.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}
