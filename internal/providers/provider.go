package providers

import (
	"context"

	"github.com/brogergvhs/repolabel/internal/github"
)

// Finder locates repositories GitHub considers related to a query.
type Finder interface {
	FindSimilar(ctx context.Context, query string, limit int) ([]github.Repo, error)
}
