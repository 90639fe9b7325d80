package similarity

import "sort"

type Score struct {
	Candidate string
	Value     float64
}

// Rank scores every candidate against text, best first. Equal scores keep
// the candidates' input order.
func Rank(text string, candidates []string) []Score {
	out := make([]Score, len(candidates))
	for i, c := range candidates {
		out[i] = Score{Candidate: c, Value: RatcliffObershelp(text, c)}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })

	return out
}

// Best returns the highest scoring candidate.
func Best(text string, candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}

	return Rank(text, candidates)[0].Candidate, true
}
