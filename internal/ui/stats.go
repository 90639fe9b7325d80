package ui

import (
	"fmt"
	"io"
	"sync/atomic"
)

// Stats tallies README lookups for one reporeapers page.
type Stats struct {
	Total      atomic.Int64
	NotFound   atomic.Int64
	Short      atomic.Int64
	Sufficient atomic.Int64
}

func (s *Stats) Found() int64 {
	return s.Short.Load() + s.Sufficient.Load()
}

func (s *Stats) Print(w io.Writer) {
	fmt.Fprintf(w, "Total: %d\n", s.Total.Load())
	fmt.Fprintf(w, "404: %d\n", s.NotFound.Load())
	fmt.Fprintf(w, "200: %d\n", s.Found())
	fmt.Fprintf(w, "Short: %d\n", s.Short.Load())
	fmt.Fprintf(w, "Sufficient: %d\n", s.Sufficient.Load())
}
