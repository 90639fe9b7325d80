// Package similarity scores candidate topic tags against README text.
package similarity

// RatcliffObershelp returns 2*M / (|a|+|b|) where M is the number of runes
// matched by repeatedly taking the longest common substring and recursing
// on the unmatched text to its left and right.
func RatcliffObershelp(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)

	if string(ra) == string(rb) {
		return 1
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	return 2 * float64(matches(ra, rb)) / float64(len(ra)+len(rb))
}

func matches(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	ia, ib, n := longestCommonSubstring(a, b)
	if n == 0 {
		return 0
	}

	return matches(a[:ia], b[:ib]) + n + matches(a[ia+n:], b[ib+n:])
}

// longestCommonSubstring returns the start offsets and length of the
// longest common run; the earliest one in a wins ties.
func longestCommonSubstring(a, b []rune) (int, int, int) {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)

	bestA, bestB, best := 0, 0, 0
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > best {
					best = cur[j]
					bestA = i - best
					bestB = j - best
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}

	return bestA, bestB, best
}
