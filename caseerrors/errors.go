package caseerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// The three validation sentinels carry the exact caller-facing message text,
// so matching on err.Error() and matching with errors.Is() agree.
var (
	// ErrNotString indicates the input value was not a string.
	ErrNotString = errors.New("Input must be a string")

	// ErrEmptyInput indicates the input string had zero length.
	ErrEmptyInput = errors.New("Input cannot be an empty string")

	// ErrNoLetterOrDigit indicates the input contained no ASCII letter or
	// digit after separator normalization.
	ErrNoLetterOrDigit = errors.New("Input must contain at least one letter or number")

	// ErrConfig indicates an invalid configuration or option.
	ErrConfig = errors.New("configuration error")
)

// Kind enumerates the validation failure categories.
type Kind int

const (
	// KindNotString rejects non-string input values.
	KindNotString Kind = iota
	// KindEmptyInput rejects zero-length strings.
	KindEmptyInput
	// KindNoLetterOrDigit rejects strings without any ASCII letter or digit.
	KindNoLetterOrDigit
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNotString:
		return "not_string"
	case KindEmptyInput:
		return "empty_input"
	case KindNoLetterOrDigit:
		return "no_letter_or_digit"
	default:
		return "unknown"
	}
}

// message returns the caller-facing message for the kind.
func (k Kind) message() string {
	switch k {
	case KindNotString:
		return ErrNotString.Error()
	case KindEmptyInput:
		return ErrEmptyInput.Error()
	case KindNoLetterOrDigit:
		return ErrNoLetterOrDigit.Error()
	default:
		return "invalid input"
	}
}

// ValidationError represents a rejected conversion input.
// Callers match on the message text verbatim, so Error() returns exactly the
// sentinel text for the kind with no decoration.
type ValidationError struct {
	// Kind identifies the validation failure category
	Kind Kind
	// Input is the offending value (the raw string, or the non-string value
	// for KindNotString; may be nil)
	Input any
}

// NewValidationError creates a ValidationError for the given kind and input.
func NewValidationError(kind Kind, input any) *ValidationError {
	return &ValidationError{Kind: kind, Input: input}
}

// Error returns the exact caller-facing message for the failure kind.
func (e *ValidationError) Error() string {
	return e.Kind.message()
}

// Unwrap returns nil as ValidationError has no underlying cause.
func (e *ValidationError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error's kind sentinel.
func (e *ValidationError) Is(target error) bool {
	switch e.Kind {
	case KindNotString:
		return target == ErrNotString
	case KindEmptyInput:
		return target == ErrEmptyInput
	case KindNoLetterOrDigit:
		return target == ErrNoLetterOrDigit
	default:
		return false
	}
}

// ConfigError represents an invalid configuration or option on one of the
// outer surfaces (CLI flags, MCP tool inputs, generator options).
type ConfigError struct {
	// Option is the name of the problematic option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
