// Package errors provides structured error types for the Mortar application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the build core and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes group into the phases of a build:
//   - Graph construction failures (CYCLIC_DEPENDENCY, DUPLICATE_TARGET, ...)
//     abort finalization as a whole; no partial target map is produced.
//   - Lookup failures (MISSING_TARGET) indicate a name that is not in a
//     finalized target map.
//   - Execution failures (COMMAND_FAILED, MISSING_INPUT, ...) stop an update
//     walk at the first failing target.
//   - Front-end failures (PARSE_ERROR, UNKNOWN_FORMAT, ...) are reported
//     before any command runs.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeDuplicateTarget, "duplicate target %q", name)
//	if errors.Is(err, errors.ErrCodeDuplicateTarget) {
//	    // Handle duplicate definition
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "stat %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Graph construction errors (finalization aborts as a whole)
	ErrCodeCycle           Code = "CYCLIC_DEPENDENCY"
	ErrCodeDuplicateTarget Code = "DUPLICATE_TARGET"
	ErrCodeUnresolvedDep   Code = "UNRESOLVED_DEPENDENCY"
	ErrCodeInvalidTarget   Code = "INVALID_TARGET"

	// Lookup errors
	ErrCodeMissingTarget Code = "MISSING_TARGET"

	// Execution errors
	ErrCodeMissingInput    Code = "MISSING_INPUT"
	ErrCodeCommandFailed   Code = "COMMAND_FAILED"
	ErrCodeCommandSignaled Code = "COMMAND_SIGNALED"
	ErrCodeDepthExceeded   Code = "DEPTH_EXCEEDED"
	ErrCodeIO              Code = "IO_ERROR"

	// Front-end errors
	ErrCodeParse         Code = "PARSE_ERROR"
	ErrCodeUnknownFormat Code = "UNKNOWN_FORMAT"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ExitStatusError carries the exit status of a failed build command.
// It is attached as the cause of COMMAND_FAILED errors so callers can
// propagate the child's exit code.
type ExitStatusError struct {
	Status int // Exit status of the child process
}

// Error implements the error interface.
func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.Status)
}

// ExitStatus extracts a child process exit status from an error chain.
// Returns 0 and false if no exit status is recorded.
func ExitStatus(err error) (int, bool) {
	var e *ExitStatusError
	if errors.As(err, &e) {
		return e.Status, true
	}
	return 0, false
}
