package query

import (
	"context"

	"github.com/kailas-cloud/askdex/internal/calc"
	"github.com/kailas-cloud/askdex/internal/domain"
	"github.com/kailas-cloud/askdex/internal/registry"
)

// Router classifies a query into a domain name.
type Router interface {
	Route(query string) domain.Name
}

// Retriever fetches ordered candidates from a domain's vector index.
type Retriever interface {
	Retrieve(ctx context.Context, d *registry.Domain, query string, k int) ([]domain.Candidate, error)
}

// Calculator answers arithmetic queries.
type Calculator interface {
	Solve(ctx context.Context, query string) (calc.Solution, error)
}
