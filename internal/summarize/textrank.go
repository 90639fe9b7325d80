package summarize

import (
	"math"
	"sort"
	"strings"

	"github.com/brogergvhs/repolabel/internal/textproc"
)

const (
	damping       = 0.85
	convergence   = 1e-4
	maxIterations = 100
)

type sentence struct {
	index  int
	text   string
	tokens []string
	words  int
	score  float64
}

// Summarize picks the highest ranked sentences of text until adding
// another one would move the total word count further from words.
// Selected sentences keep their original order and are joined by "\n".
func Summarize(text string, words int) string {
	if words <= 0 {
		return ""
	}

	var nodes []*sentence
	for i, s := range textproc.Sentences(text) {
		toks := textproc.ContentTokens(s)
		if len(toks) == 0 {
			continue
		}
		nodes = append(nodes, &sentence{
			index:  i,
			text:   s,
			tokens: toks,
			words:  len(textproc.Words(s)),
		})
	}

	switch len(nodes) {
	case 0:
		return ""
	case 1:
		return nodes[0].text
	}

	nodes = rank(nodes)

	ordered := make([]*sentence, len(nodes))
	copy(ordered, nodes)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].score != ordered[j].score {
			return ordered[i].score > ordered[j].score
		}
		return ordered[i].index < ordered[j].index
	})

	selected := selectByWordCount(ordered, words)
	sort.Slice(selected, func(i, j int) bool { return selected[i].index < selected[j].index })

	out := make([]string, len(selected))
	for i, s := range selected {
		out[i] = s.text
	}

	return strings.Join(out, "\n")
}

func selectByWordCount(ordered []*sentence, words int) []*sentence {
	count := 0
	var out []*sentence
	for _, s := range ordered {
		if abs(words-count-s.words) > abs(words-count) {
			break
		}
		out = append(out, s)
		count += s.words
	}

	return out
}

// rank runs weighted PageRank over the sentence similarity graph. Sentences
// sharing no content word with any other are dropped unless every sentence
// is isolated.
func rank(nodes []*sentence) []*sentence {
	n := len(nodes)
	weights := make([][]float64, n)
	for i := range weights {
		weights[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := similarity(nodes[i].tokens, nodes[j].tokens)
			weights[i][j] = w
			weights[j][i] = w
		}
	}

	connected := make([]int, 0, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if weights[i][j] > 0 {
				connected = append(connected, i)
				break
			}
		}
	}

	if len(connected) == 0 {
		for _, s := range nodes {
			s.score = 1 - damping
		}
		return nodes
	}

	outSum := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			outSum[i] += weights[i][j]
		}
	}

	scores := make([]float64, n)
	for _, i := range connected {
		scores[i] = 1
	}

	for iter := 0; iter < maxIterations; iter++ {
		delta := 0.0
		next := make([]float64, n)
		for _, i := range connected {
			sum := 0.0
			for _, j := range connected {
				if weights[j][i] == 0 {
					continue
				}
				sum += weights[j][i] / outSum[j] * scores[j]
			}
			next[i] = (1 - damping) + damping*sum
			delta = math.Max(delta, math.Abs(next[i]-scores[i]))
		}
		scores = next
		if delta < convergence {
			break
		}
	}

	out := make([]*sentence, 0, len(connected))
	for _, i := range connected {
		nodes[i].score = scores[i]
		out = append(out, nodes[i])
	}

	return out
}

// similarity is the TextRank overlap measure: shared distinct tokens over
// the sum of log10 sentence lengths.
func similarity(a, b []string) float64 {
	denom := math.Log10(float64(len(a))) + math.Log10(float64(len(b)))
	if denom == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(a))
	for _, t := range a {
		set[t] = struct{}{}
	}

	seen := make(map[string]struct{}, len(b))
	common := 0
	for _, t := range b {
		if _, ok := set[t]; !ok {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		common++
	}

	return float64(common) / denom
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
