package textproc

import (
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var nonASCII = runes.Predicate(func(r rune) bool { return r >= utf8.RuneSelf })

// ASCII drops every rune outside the 7-bit range.
func ASCII(s string) string {
	out, _, err := transform.String(runes.Remove(nonASCII), s)
	if err != nil {
		b := make([]rune, 0, len(s))
		for _, r := range s {
			if r < utf8.RuneSelf {
				b = append(b, r)
			}
		}
		return string(b)
	}

	return out
}
