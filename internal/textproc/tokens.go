package textproc

import (
	"strings"
	"unicode"
)

// Words splits on whitespace, the way word budgets are counted.
func Words(s string) []string {
	return strings.Fields(s)
}

// Tokens returns lower-cased runs of letters and digits.
func Tokens(s string) []string {
	var out []string
	var b strings.Builder

	flush := func() {
		if b.Len() == 0 {
			return
		}
		out = append(out, b.String())
		b.Reset()
	}

	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' {
			if r == '\'' && b.Len() == 0 {
				continue
			}
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	for i, t := range out {
		out[i] = strings.TrimRight(t, "'")
	}

	return out
}

// ContentTokens is Tokens without stopwords and pure numbers.
func ContentTokens(s string) []string {
	all := Tokens(s)
	out := all[:0]
	for _, t := range all {
		if t == "" || IsStopword(t) || isNumber(t) {
			continue
		}
		out = append(out, t)
	}

	return out
}

func isNumber(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return s != ""
}
