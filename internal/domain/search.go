package domain

import "context"

// SearchHit is one nearest-neighbor match. Position indexes into the
// domain's record sequence; the loader preserves this alignment.
type SearchHit struct {
	Position int
	Distance float64
}

// Searcher is the nearest-neighbor index contract, one instance per domain.
// Hits come back ordered by ascending distance.
type Searcher interface {
	Search(ctx context.Context, vector []float32, k int) ([]SearchHit, error)
}
