package summarize

import (
	"sort"
	"strings"

	"github.com/brogergvhs/repolabel/internal/textproc"
)

// Phrases longer than this are not useful as topic suggestions.
const maxPhraseWords = 3

type Keyword struct {
	Phrase string
	Score  float64
}

// Keywords ranks candidate phrases with RAKE: phrases are runs of
// non-stopwords between stopwords and punctuation, each word scores
// degree/frequency and a phrase scores the sum of its words.
func Keywords(text string, n int) []Keyword {
	phrases := candidatePhrases(text)
	if len(phrases) == 0 || n == 0 {
		return nil
	}

	freq := map[string]int{}
	degree := map[string]int{}
	for _, p := range phrases {
		for _, w := range p {
			freq[w]++
			degree[w] += len(p)
		}
	}

	seen := map[string]bool{}
	var out []Keyword
	for _, p := range phrases {
		key := strings.Join(p, " ")
		if seen[key] {
			continue
		}
		seen[key] = true

		score := 0.0
		for _, w := range p {
			score += float64(degree[w]) / float64(freq[w])
		}
		out = append(out, Keyword{Phrase: key, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	if n > 0 && len(out) > n {
		out = out[:n]
	}

	return out
}

func candidatePhrases(text string) [][]string {
	var out [][]string

	for _, s := range textproc.Sentences(text) {
		for _, frag := range strings.FieldsFunc(s, isPhraseBreak) {
			var cur []string
			emit := func() {
				if len(cur) > 0 && len(cur) <= maxPhraseWords {
					out = append(out, cur)
				}
				cur = nil
			}

			for _, tok := range textproc.Tokens(frag) {
				if textproc.IsStopword(tok) || len(tok) < 2 {
					emit()
					continue
				}
				cur = append(cur, tok)
			}
			emit()
		}
	}

	return out
}

func isPhraseBreak(r rune) bool {
	switch r {
	case ',', ';', ':', '.', '!', '?', '(', ')', '[', ']', '{', '}', '"', '/', '|', '*', '+':
		return true
	}
	return false
}
