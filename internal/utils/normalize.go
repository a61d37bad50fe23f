package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes free text for answer comparison: lower-case,
// canonical decomposition with combining marks stripped, everything outside
// [a-z0-9] and whitespace dropped, whitespace runs collapsed to one space.
// Total function; empty input yields the empty string.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = norm.NFD.String(strings.ToLower(s))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining diacritic, dropped
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
