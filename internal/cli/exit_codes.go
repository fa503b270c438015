package cli

import (
	"errors"
	"fmt"
)

// Exit codes for the boopifier CLI.
// Hook processing always exits ExitSuccess so Claude Code is never blocked;
// the other codes are only used by the diagnostic subcommands.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitConfigInvalid indicates a configuration file failed to parse or validate
	ExitConfigInvalid = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 2
)

// exitError is a custom error type that carries an exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit code %d", e.code)
}

func (e *exitError) Unwrap() error {
	return e.err
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int, err error) error {
	return &exitError{code: code, err: err}
}

// ExitCode returns the exit code from an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	return ExitInvalidArguments
}
