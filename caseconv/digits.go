package caseconv

import "strings"

// digitWords maps each ASCII digit value to its spelled-out English word.
// Fixed at compile time; never mutated.
var digitWords = [10]string{
	"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine",
}

// expandDigits replaces each digit character in word with its English word
// form, keeping every other character unchanged. Expansions are concatenated
// in original character order with no separator, so adjacent digits merge
// into a single run: "123" becomes "onetwothree".
func expandDigits(word string) string {
	if !strings.ContainsFunc(word, func(r rune) bool { return r >= '0' && r <= '9' }) {
		return word
	}

	var b strings.Builder
	b.Grow(len(word) * 4)
	for i := 0; i < len(word); i++ {
		c := word[i]
		if isASCIIDigit(c) {
			b.WriteString(digitWords[c-'0'])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}
