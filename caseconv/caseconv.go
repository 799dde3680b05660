package caseconv

import (
	"github.com/erraggy/casetools/caseerrors"
)

// Style identifies a supported output case style.
type Style string

const (
	// StyleCamel produces camelCase output with digit expansion.
	StyleCamel Style = "camel"
	// StyleDot produces dot.case output with original casing preserved.
	StyleDot Style = "dot"
)

// IsValidStyle reports whether name is a recognized style name.
func IsValidStyle(name string) bool {
	switch Style(name) {
	case StyleCamel, StyleDot:
		return true
	default:
		return false
	}
}

// ValidStyles returns all supported styles.
func ValidStyles() []Style {
	return []Style{StyleCamel, StyleDot}
}

// Result contains the outcome of a detailed conversion.
type Result struct {
	// Output is the converted string
	Output string
	// Style is the output style that was applied
	Style Style
	// Words are the normalized words extracted from the input, in order of
	// appearance, before any digit expansion
	Words []string
}

// ToCamelCase converts input to camelCase.
//
// The input must be a string containing at least one ASCII letter or digit.
// Hyphens and underscores act as word separators; all other punctuation,
// symbols, and non-ASCII characters are stripped. Each digit character is
// expanded to its English word form before casing, so adjacent digits merge
// into a single run:
//
//	ToCamelCase("hello-123-world") // "helloOnetwothreeWorld", nil
//
// Non-string values (including nil) fail with caseerrors.ErrNotString.
func ToCamelCase(input any) (string, error) {
	return Convert(input, StyleCamel)
}

// ToDotCase converts input to dot.case.
//
// Words are joined with "." and keep the casing they had in the input;
// digits pass through unchanged:
//
//	ToDotCase("Hello_World") // "Hello.World", nil
//
// Non-string values (including nil) fail with caseerrors.ErrNotString.
func ToDotCase(input any) (string, error) {
	return Convert(input, StyleDot)
}

// ToCamelCaseString converts s to camelCase. It is a typed convenience for
// callers that already hold a string and cannot hit the not-a-string failure.
func ToCamelCaseString(s string) (string, error) {
	return convertString(s, StyleCamel)
}

// ToDotCaseString converts s to dot.case.
func ToDotCaseString(s string) (string, error) {
	return convertString(s, StyleDot)
}

// Convert converts input to the requested style.
// An unrecognized style fails with a caseerrors.ConfigError.
func Convert(input any, style Style) (string, error) {
	result, err := ConvertDetailed(input, style)
	if err != nil {
		return "", err
	}
	return result.Output, nil
}

// ConvertDetailed converts input to the requested style and returns the
// normalized word list alongside the output.
func ConvertDetailed(input any, style Style) (*Result, error) {
	s, ok := input.(string)
	if !ok {
		return nil, caseerrors.NewValidationError(caseerrors.KindNotString, input)
	}

	words, err := prepare(s)
	if err != nil {
		return nil, err
	}

	var output string
	switch style {
	case StyleCamel:
		output = joinCamel(words)
	case StyleDot:
		output = joinDot(words)
	default:
		return nil, &caseerrors.ConfigError{
			Option:  "style",
			Value:   string(style),
			Message: "unsupported style",
		}
	}

	return &Result{Output: output, Style: style, Words: words}, nil
}

// convertString runs the pipeline for a known-string input.
func convertString(s string, style Style) (string, error) {
	return Convert(s, style)
}

// Converter converts inputs to a fixed style. The zero value is not usable;
// construct with New. A Converter is stateless and safe for concurrent use.
type Converter struct {
	// Style is the output style applied to every conversion
	Style Style
}

// New creates a Converter for the given style.
func New(style Style) *Converter {
	return &Converter{Style: style}
}

// Convert converts input to the Converter's style.
func (c *Converter) Convert(input any) (*Result, error) {
	return ConvertDetailed(input, c.Style)
}

// prepare runs the shared half of the pipeline: validation, separator
// unification, character stripping, and word splitting.
//
// Ordering is load-bearing: the letter/digit presence check runs after
// separator unification but before stripping, so an input made of separators
// plus letters still passes, while punctuation-only input fails with the
// no-content error rather than producing an empty word list.
func prepare(s string) ([]string, error) {
	if len(s) == 0 {
		return nil, caseerrors.NewValidationError(caseerrors.KindEmptyInput, s)
	}

	unified := unifySeparators(s)
	if !hasLetterOrDigit(unified) {
		return nil, caseerrors.NewValidationError(caseerrors.KindNoLetterOrDigit, s)
	}

	return splitWords(stripDisallowed(unified)), nil
}
