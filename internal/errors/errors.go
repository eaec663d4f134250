package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorInput    = 2   // Indicates the input stream ended before a valid answer.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect
// command-line, environment or config file input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// Unwrap returns the underlying cause.
func (e ConfigError) Unwrap() error { return e.Cause }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// WrapConfigError wraps err as a ConfigError whose message is prefixed with
// the formatted context. Returns nil if err is nil.
func WrapConfigError(err error, format string, a ...any) error {
	wrapped := WrapError(err, format, a...)
	if wrapped == nil {
		return nil
	}
	return ConfigError{Message: wrapped.Error(), Cause: err}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
// Interactive sessions treat it as a request to ask again, never as a failure.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, format string, a ...any) error {
	return ValidationError{Field: field, Message: fmt.Sprintf(format, a...)}
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// InputError reports that reading an answer failed, usually because the
// input stream was closed while a prompt was waiting.
type InputError struct {
	// Prompt is the question that was being asked.
	Prompt string
	// Cause is the underlying read error.
	Cause error
}

// Error returns a formatted message describing the read failure.
func (e InputError) Error() string {
	if errors.Is(e.Cause, io.EOF) {
		return fmt.Sprintf("input closed while waiting for %q", e.Prompt)
	}
	return fmt.Sprintf("reading answer to %q: %v", e.Prompt, e.Cause)
}

// Unwrap returns the underlying read error.
func (e InputError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCode maps an error returned by a session to a process exit code.
func ExitCode(err error) int {
	var (
		inputErr  InputError
		configErr ConfigError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.As(err, &inputErr):
		return ExitErrorInput
	case errors.As(err, &configErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
