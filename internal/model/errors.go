package model

import "fmt"

// ExitCode defines the standard CLI exit codes. These codes allow scripts
// and CI systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitNoRepository indicates no Git repository was found at or above
	// the requested path.
	ExitNoRepository ExitCode = 2

	// ExitGitError indicates a Git operation (reading tags, resolving
	// revisions, inspecting the worktree) failed.
	ExitGitError ExitCode = 3

	// ExitBadIncrement indicates the requested increment was neither a
	// symbolic name (major, minor, patch) nor a parseable dotted version.
	ExitBadIncrement ExitCode = 4

	// ExitNoVersionTags indicates the command required an existing version
	// tag and none of the repository's tags parse as a version.
	ExitNoVersionTags ExitCode = 5
)

// CLIError is an error that carries an exit code. The CLI layer inspects
// errors returned by commands and uses the code when terminating the
// process.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
