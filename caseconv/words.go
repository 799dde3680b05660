package caseconv

import "strings"

// splitWords splits normalized text on runs of whitespace, discarding empty
// fragments. The validator has already guaranteed at least one letter or
// digit survives stripping, so the result is never empty.
func splitWords(s string) []string {
	return strings.Fields(s)
}
