// Package caseerrors provides structured error types for the casetools library.
//
// Import path: github.com/erraggy/casetools/caseerrors
//
// This package enables programmatic error handling via [errors.Is] and
// [errors.As], allowing callers to distinguish between the validation failure
// categories without parsing message text.
//
// # Error Types
//
//   - [ValidationError]: Rejected conversion input (wrong type, empty, no content)
//   - [ConfigError]: Invalid configuration or option on an outer surface
//
// # Sentinel Errors
//
// Each failure kind has a corresponding sentinel for use with errors.Is():
//
//   - [ErrNotString]: Input value is not a string
//   - [ErrEmptyInput]: Input string has zero length
//   - [ErrNoLetterOrDigit]: Input has no ASCII letter or digit after separator normalization
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Message Stability
//
// The three validation sentinels carry exact, stable message text that
// callers and tests may match on verbatim:
//
//	Input must be a string
//	Input cannot be an empty string
//	Input must contain at least one letter or number
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	_, err := caseconv.ToCamelCase("!!!")
//	if errors.Is(err, caseerrors.ErrNoLetterOrDigit) {
//	    // input had no convertible content
//	}
//
// Extract error details with errors.As():
//
//	var valErr *caseerrors.ValidationError
//	if errors.As(err, &valErr) {
//	    fmt.Printf("rejected input %v (%s)\n", valErr.Input, valErr.Kind)
//	}
package caseerrors
