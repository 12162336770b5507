// Package errors defines the fatal error type and the process exit codes.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes for skills-scout.
const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitConfigError   = 2
	ExitWriteError    = 3
	ExitSkillNotFound = 4
)

// ScoutError carries an exit code alongside the message and cause.
type ScoutError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ScoutError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ScoutError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error.
func (e *ScoutError) ExitCode() int {
	return e.Code
}

func New(code int, message string) *ScoutError {
	return &ScoutError{Code: code, Message: message}
}

func Wrap(code int, message string, cause error) *ScoutError {
	return &ScoutError{Code: code, Message: message, Cause: cause}
}

// ConfigError reports an unreadable or malformed configuration source.
func ConfigError(message string, cause error) *ScoutError {
	return Wrap(ExitConfigError, message, cause)
}

// WriteError reports a failure to read or replace the target document.
func WriteError(path string, cause error) *ScoutError {
	return Wrap(ExitWriteError, fmt.Sprintf("cannot update %s", path), cause)
}

// ValidationError reports bad command-line or option input.
func ValidationError(message string, cause error) *ScoutError {
	return Wrap(ExitGeneralError, message, cause)
}

// SkillNotFound reports a catalog lookup with no match.
func SkillNotFound(name string) *ScoutError {
	return New(ExitSkillNotFound, fmt.Sprintf("skill not found: %s", name))
}

// GetExitCode extracts the exit code from err, defaulting to ExitGeneralError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var scoutErr *ScoutError
	if errors.As(err, &scoutErr) {
		return scoutErr.ExitCode()
	}
	return ExitGeneralError
}
