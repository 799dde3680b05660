package caseconv

import "strings"

// Character classification uses explicit byte-range predicates rather than
// regexp. The alphabet is ASCII-only, and any byte of a multi-byte UTF-8
// sequence is >= 0x80, so byte-level filtering also strips non-ASCII text
// without decoding runes.

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// unifySeparators replaces every hyphen and underscore with a single space.
func unifySeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return ' '
		}
		return r
	}, s)
}

// hasLetterOrDigit reports whether s contains at least one ASCII letter or digit.
func hasLetterOrDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if isASCIILetter(s[i]) || isASCIIDigit(s[i]) {
			return true
		}
	}
	return false
}

// stripDisallowed removes every byte that is not an ASCII letter, ASCII
// digit, or space.
func stripDisallowed(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isASCIILetter(c) || isASCIIDigit(c) || c == ' ' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
