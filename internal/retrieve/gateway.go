// Package retrieve wraps the embedding call and the index search into a
// single candidate-fetch operation.
package retrieve

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/askdex/internal/domain"
	"github.com/kailas-cloud/askdex/internal/registry"
)

// DefaultTimeout bounds one embed+search round-trip. Neither external call
// carries an internal timeout, so the gateway imposes one.
const DefaultTimeout = 10 * time.Second

// Gateway turns a query into an ordered candidate list via the external
// embedding service and the domain's vector index.
type Gateway struct {
	embed   domain.Embedder
	timeout time.Duration
	logger  *zap.Logger
}

// New creates a gateway. timeout <= 0 falls back to DefaultTimeout.
func New(embed domain.Embedder, timeout time.Duration, logger *zap.Logger) *Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{embed: embed, timeout: timeout, logger: logger}
}

// Retrieve returns up to k candidates ordered by ascending distance.
// Embedding or index failures (including timeout expiry) surface as
// domain.ErrRetrievalUnavailable; they are never retried here.
func (g *Gateway) Retrieve(
	ctx context.Context, d *registry.Domain, query string, k int,
) ([]domain.Candidate, error) {
	if k < 1 {
		return nil, fmt.Errorf("k must be >= 1, got %d", k)
	}
	if d.Searcher == nil {
		return nil, fmt.Errorf("domain %s has no index: %w", d.Def.Name, domain.ErrRetrievalUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	emb, err := g.embed.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %v: %w", err, domain.ErrRetrievalUnavailable)
	}

	hits, err := d.Searcher.Search(ctx, emb.Embedding, k)
	if err != nil {
		return nil, fmt.Errorf("search %s index: %v: %w", d.Def.Name, err, domain.ErrRetrievalUnavailable)
	}

	candidates := make([]domain.Candidate, 0, len(hits))
	for _, h := range hits {
		// Guard against a stale index referencing positions beyond the
		// loaded metadata; such hits are dropped, not fatal.
		if h.Position < 0 || h.Position >= len(d.Records) {
			g.logger.Warn("index position out of range",
				zap.String("domain", d.Def.Name.String()),
				zap.Int("position", h.Position),
				zap.Int("records", len(d.Records)),
			)
			continue
		}
		candidates = append(candidates, domain.Candidate{
			Record:   d.Records[h.Position],
			Distance: h.Distance,
		})
	}
	return candidates, nil
}
