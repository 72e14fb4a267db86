// Package errors defines the typed error kinds used across pipup.
// It distinguishes malformed listings, invalid package tokens, the
// nothing-to-upgrade outcome, and carries exit codes for scripting.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes for scripting integration.
// These codes allow scripts to distinguish between different failure modes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure: a malformed listing, an
	// invalid package token, or a failed pip invocation.
	ExitFailure = 2

	// ExitConfigError indicates a configuration or validation error.
	// The command could not proceed due to invalid flags or config.
	ExitConfigError = 3
)

// ExitError represents a command termination with a specific exit code.
//
// Use this error when a command needs to exit with a non-zero status
// while providing context about what went wrong.
//
// Fields:
//   - Code: Exit code (use constants ExitSuccess, ExitFailure, ExitConfigError)
//   - Message: Human-readable error message
//   - Err: Underlying error that caused this exit, may be nil
type ExitError struct {
	// Code is the exit code for the command.
	// Standard codes: 0=success, 2=failure, 3=config error.
	Code int

	// Message is a human-readable description of why the command failed.
	Message string

	// Err is the underlying error that caused this exit.
	// May be nil if no underlying error exists.
	Err error
}

// Error implements the error interface.
//
// Returns the Message field if set, otherwise returns the underlying error's
// message, or a default message with the exit code.
//
// Returns:
//   - string: The error message
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the underlying error for errors.Is/As support.
//
// Returns:
//   - error: The underlying error, or nil if none exists
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and underlying error.
//
// Parameters:
//   - code: Exit code (use ExitSuccess, ExitFailure, ExitConfigError)
//   - err: Underlying error, may be nil
//
// Returns:
//   - *ExitError: New exit error
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// NewExitErrorf creates an ExitError with the given code and formatted message.
//
// Parameters:
//   - code: Exit code
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - *ExitError: New exit error with formatted message
func NewExitErrorf(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// GetExitCode extracts the exit code from an error.
//
// If err is nil or the nothing-to-upgrade sentinel, returns ExitSuccess.
// If err is an ExitError, returns its code. Malformed listings and invalid
// tokens map to ExitFailure. Everything else returns ExitFailure.
//
// Parameters:
//   - err: The error to extract code from
//
// Returns:
//   - int: Exit code
func GetExitCode(err error) int {
	if err == nil || IsNothingToUpgrade(err) {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// MalformedListingError indicates that raw listing text does not contain
// the minimum expected header/separator structure.
//
// Re-parsing the same text cannot succeed, so callers must not retry.
//
// Fields:
//   - Line: The offending line (or a description of what was missing)
//   - Reason: Why the listing was rejected
type MalformedListingError struct {
	// Line is the listing line that failed structural checks, if any.
	Line string

	// Reason explains which structural expectation was violated.
	Reason string
}

// Error implements the error interface.
//
// Returns:
//   - string: Formatted error message including the offending line when present
func (e *MalformedListingError) Error() string {
	if e.Line != "" {
		return fmt.Sprintf("malformed listing: %s: %q", e.Reason, e.Line)
	}
	return fmt.Sprintf("malformed listing: %s", e.Reason)
}

// NewMalformedListingError creates a MalformedListingError with context.
//
// Parameters:
//   - reason: Which structural expectation was violated
//   - line: The offending line, or empty when no single line applies
//
// Returns:
//   - *MalformedListingError: New malformed listing error
func NewMalformedListingError(reason, line string) *MalformedListingError {
	return &MalformedListingError{Reason: reason, Line: line}
}

// IsMalformedListing reports whether err is a MalformedListingError.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: true if err is a MalformedListingError
func IsMalformedListing(err error) bool {
	var mle *MalformedListingError
	return errors.As(err, &mle)
}

// InvalidPackageTokenError indicates a package identifier that cannot form
// a single shell token (e.g. embedded whitespace or an empty name).
//
// Synthesis aborts immediately on the first invalid token; a partially
// built command is never returned.
//
// Fields:
//   - Token: The offending package identifier
//   - Reason: Why the token was rejected
type InvalidPackageTokenError struct {
	// Token is the rejected package identifier.
	Token string

	// Reason explains why the token cannot be used.
	Reason string
}

// Error implements the error interface.
//
// Returns:
//   - string: Formatted error message including the offending token
func (e *InvalidPackageTokenError) Error() string {
	return fmt.Sprintf("invalid package token %q: %s", e.Token, e.Reason)
}

// NewInvalidPackageTokenError creates an InvalidPackageTokenError.
//
// Parameters:
//   - token: The rejected package identifier
//   - reason: Why the token cannot be used
//
// Returns:
//   - *InvalidPackageTokenError: New invalid token error
func NewInvalidPackageTokenError(token, reason string) *InvalidPackageTokenError {
	return &InvalidPackageTokenError{Token: token, Reason: reason}
}

// IsInvalidPackageToken reports whether err is an InvalidPackageTokenError.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: true if err is an InvalidPackageTokenError
func IsInvalidPackageToken(err error) bool {
	var ipt *InvalidPackageTokenError
	return errors.As(err, &ipt)
}

// errNothingToUpgrade is the designated sentinel for an empty package
// sequence. It is not a failure: callers must handle it distinctly from
// both success-with-command and the error kinds above.
var errNothingToUpgrade = errors.New("nothing to upgrade")

// NothingToUpgrade returns the sentinel signaling an empty package sequence.
//
// Returns:
//   - error: The nothing-to-upgrade sentinel
func NothingToUpgrade() error {
	return errNothingToUpgrade
}

// IsNothingToUpgrade reports whether err is the nothing-to-upgrade sentinel.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: true if err signals an empty package sequence
func IsNothingToUpgrade(err error) bool {
	return errors.Is(err, errNothingToUpgrade)
}
