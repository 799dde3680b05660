package caseconv

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// joinCamel joins words into camelCase: the first word fully lowercased,
// each subsequent word title-cased (first letter upper, rest lower), no
// separator. Digit expansion runs before casing, so the expanded word is
// cased as one token.
func joinCamel(words []string) string {
	// A Caser is stateful and not safe for concurrent use; construct one
	// per call to keep the conversion reentrant.
	title := cases.Title(language.English)

	var b strings.Builder
	for i, word := range words {
		word = strings.ToLower(expandDigits(word))
		if i == 0 {
			b.WriteString(word)
		} else {
			b.WriteString(title.String(word))
		}
	}
	return b.String()
}

// joinDot joins words with "." as separator. Casing is preserved exactly as
// it appears after normalization; digits pass through unexpanded.
func joinDot(words []string) string {
	return strings.Join(words, ".")
}
