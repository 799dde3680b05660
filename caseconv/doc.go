// Package caseconv converts free-form text to camelCase and dot.case.
//
// Both conversions share a single normalization pipeline: hyphens and
// underscores are unified to spaces, every character outside ASCII letters,
// digits, and spaces is stripped, and the remainder is split into words. The
// two styles differ only in how words are joined.
//
// # Quick Start
//
// Convert with the package-level functions:
//
//	out, err := caseconv.ToCamelCase("hello-world")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out) // helloWorld
//
//	out, _ = caseconv.ToDotCase("Hello_World")
//	fmt.Println(out) // Hello.World
//
// Or dispatch on a style value:
//
//	out, err := caseconv.Convert(input, caseconv.StyleCamel)
//
// # Digit Expansion
//
// On the camelCase path each digit character is replaced with its English
// word form before casing, with no separator between adjacent expansions:
//
//	caseconv.ToCamelCase("hello-123-world") // helloOnetwothreeWorld
//
// The dot.case path leaves digits unchanged. camelCase output therefore
// never contains a numeral and is always a valid identifier.
//
// # Validation
//
// The entry points accept any value so that the wrong-type failure is
// expressible; all failures are reported through the caseerrors package:
//
//   - non-string input: caseerrors.ErrNotString
//   - empty string: caseerrors.ErrEmptyInput
//   - no ASCII letter or digit after separator unification: caseerrors.ErrNoLetterOrDigit
//
// The letter/digit presence check runs after separator unification and
// before stripping, so "-_a-" converts fine while "!!!" is rejected.
//
// # Behavior Notes
//
// dot.case preserves the casing of each word; it does not lowercase. The
// conversions are not round-trippable: camelCase output contains no
// separators, so converting it again may produce a different result.
//
// All functions are pure and safe for concurrent use.
//
// # Related Packages
//
// Conversion integrates with the other casetools packages:
//   - [github.com/erraggy/casetools/caseerrors] - Structured error types
//   - [github.com/erraggy/casetools/rewriter] - Rewrite YAML config keys
//   - [github.com/erraggy/casetools/generator] - Generate Go constants from converted names
package caseconv
