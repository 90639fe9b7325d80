package textproc

import (
	"strings"
	"unicode"
)

var abbreviations = map[string]bool{
	"e.g": true, "i.e": true, "etc": true, "vs": true, "cf": true,
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"jr": true, "sr": true,
}

// Sentences splits text at sentence-final punctuation followed by
// whitespace and at line breaks. Known abbreviations and single-letter
// initials do not end a sentence.
func Sentences(text string) []string {
	var out []string
	var cur strings.Builder

	flush := func() {
		s := strings.TrimSpace(cur.String())
		if s != "" {
			out = append(out, s)
		}
		cur.Reset()
	}

	rs := []rune(text)
	for i := 0; i < len(rs); i++ {
		r := rs[i]

		if r == '\n' || r == '\r' {
			flush()
			continue
		}

		cur.WriteRune(r)

		if r != '.' && r != '!' && r != '?' {
			continue
		}

		// absorb runs like "?!" or "..." and closing quotes/brackets
		j := i + 1
		for j < len(rs) && (rs[j] == '.' || rs[j] == '!' || rs[j] == '?' || isCloser(rs[j])) {
			cur.WriteRune(rs[j])
			j++
		}
		i = j - 1

		if j < len(rs) && !unicode.IsSpace(rs[j]) {
			continue
		}
		if r == '.' && isAbbreviation(cur.String()) {
			continue
		}

		flush()
	}
	flush()

	return out
}

// FirstSentences joins the first n sentences with a space.
func FirstSentences(text string, n int) string {
	s := Sentences(text)
	if n >= 0 && len(s) > n {
		s = s[:n]
	}

	return strings.Join(s, " ")
}

func isCloser(r rune) bool {
	return r == '"' || r == '\'' || r == ')' || r == ']' || r == '”' || r == '’'
}

func isAbbreviation(sentence string) bool {
	fields := strings.Fields(sentence)
	if len(fields) == 0 {
		return false
	}

	last := strings.ToLower(strings.TrimRight(fields[len(fields)-1], "."))
	last = strings.TrimLeft(last, "(\"'")
	if abbreviations[last] {
		return true
	}

	// initials such as "j. r. r."
	rs := []rune(last)
	return len(rs) == 1 && unicode.IsLetter(rs[0]) && len(fields) > 1
}
