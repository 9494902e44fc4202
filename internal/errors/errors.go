// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// parsing, arithmetic domain, etc.) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All composite error types implement the Unwrap() method to support
// errors.Is() and errors.As().
package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// Sentinel errors for the arithmetic domain failures that yield no value.
// Callers are expected to test these with errors.Is.
var (
	// ErrNegativeSqrt is returned when the integer square root of a
	// negative value is requested.
	ErrNegativeSqrt = errors.New("square root of negative integer")

	// ErrNegativeFactorial is returned when the factorial of a negative
	// value is requested.
	ErrNegativeFactorial = errors.New("factorial of negative integer")

	// ErrNoModularInverse is returned when no modular inverse exists,
	// i.e. the value and the modulus are not coprime.
	ErrNoModularInverse = errors.New("modular inverse does not exist")
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

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

// ParseError reports a malformed decimal integer literal. It records the
// offending input so callers can surface it to the user verbatim.
type ParseError struct {
	// Input is the string that failed to parse.
	Input string
}

// Error returns the error message for a ParseError.
func (e ParseError) Error() string {
	return fmt.Sprintf("invalid decimal integer literal %q", e.Input)
}

// NewParseError creates a new ParseError for the given input.
//
// Parameters:
//   - input: The string that failed to parse.
//
// Returns:
//   - error: A new ParseError instance.
func NewParseError(input string) error {
	return ParseError{Input: input}
}

// DomainError wraps one of the arithmetic sentinel errors together with the
// operation name, preserving the sentinel for errors.Is checks.
type DomainError struct {
	// Op is the name of the operation that failed (e.g. "sqrt").
	Op string
	// Cause is the underlying sentinel error.
	Cause error
}

// Error returns the error message for a DomainError.
func (e DomainError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying sentinel error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e DomainError) Unwrap() error { return e.Cause }

// NewDomainError creates a new DomainError for the given operation and cause.
//
// Parameters:
//   - op: The name of the failing operation.
//   - cause: The sentinel error describing the domain violation.
//
// Returns:
//   - error: A new DomainError instance.
func NewDomainError(op string, cause error) error {
	return DomainError{Op: op, Cause: cause}
}

// DivisionByZeroError reports a division by zero on a driver surface.
// The bigint core panics on a zero divisor; surfaces that accept user
// input return this recoverable typed error instead so callers can handle
// it without aborting the process.
type DivisionByZeroError struct {
	// Dividend is the textual form of the value being divided, kept for
	// diagnostics only.
	Dividend string
}

// Error returns the error message for a DivisionByZeroError.
func (e DivisionByZeroError) Error() string {
	if e.Dividend != "" {
		return fmt.Sprintf("division of %s by zero", e.Dividend)
	}
	return "division by zero"
}

// NewDivisionByZeroError creates a new DivisionByZeroError.
//
// Parameters:
//   - dividend: The textual form of the dividend (may be empty).
//
// Returns:
//   - error: A new DivisionByZeroError instance.
func NewDivisionByZeroError(dividend string) error {
	return DivisionByZeroError{Dividend: dividend}
}

// ServerError represents errors that occur in the HTTP server component.
// It wraps an underlying error with additional context specific to the server operation.
type ServerError struct {
	// Message is a descriptive message about the server error.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns the error message for a ServerError.
// It combines the descriptive message and the underlying cause if present.
func (e ServerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e ServerError) Unwrap() error { return e.Cause }

// NewServerError creates a new ServerError with a message and optional cause.
//
// Parameters:
//   - message: A description of the error context.
//   - cause: The underlying error that occurred (can be nil).
//
// Returns:
//   - error: A new ServerError instance.
func NewServerError(message string, cause error) error {
	return ServerError{Message: message, Cause: cause}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
