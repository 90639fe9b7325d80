package reaper

import (
	"strconv"
	"strings"
)

// LastPage is the highest reporeapers result page walked by default.
const LastPage = 99

// SelectPages picks the pages to walk. An explicit range ("a-b") or list
// ("a,b,c") wins over start..end. Pages outside 1..LastPage are dropped and
// a malformed range selects nothing.
func SelectPages(start, end int, rng, list string) []int {
	if rng != "" {
		return pageRange(rng)
	}
	if list != "" {
		return pageList(list)
	}

	if start < 1 {
		start = 1
	}
	if end <= 0 || end > LastPage {
		end = LastPage
	}

	out := []int{}
	for n := start; n <= end; n++ {
		out = append(out, n)
	}
	return out
}

func pageRange(rng string) []int {
	parts := strings.Split(rng, "-")
	if len(parts) != 2 {
		return nil
	}
	start, err1 := atoi(parts[0])
	end, err2 := atoi(parts[1])
	if err1 != nil || err2 != nil {
		return nil
	}
	if start <= 0 || end <= 0 || start > end || end > LastPage {
		return nil
	}

	out := make([]int, 0, end-start+1)
	for n := start; n <= end; n++ {
		out = append(out, n)
	}
	return out
}

func pageList(list string) []int {
	out := []int{}
	for _, n := range strings.Split(list, ",") {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		idx, err := atoi(n)
		if err != nil {
			continue
		}
		if idx > 0 && idx <= LastPage {
			out = append(out, idx)
		}
	}
	return out
}

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
