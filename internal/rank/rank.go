// Package rank orders retrieval candidates by blending index distance with
// query-conditioned attribute boosts. Distance alone reflects topical
// similarity, not the attribute the user asked to optimize; the per-domain
// boost table maps trigger keywords to attributes without coupling the
// ranking loop to domain semantics.
package rank

import (
	"sort"
	"strings"

	"github.com/kailas-cloud/askdex/internal/catalog"
	"github.com/kailas-cloud/askdex/internal/domain"
)

// Rank scores and orders candidates, truncated to limit. Base score is
// -distance; each boost rule whose trigger appears in the query adds
// weight*attributeValue when the attribute is present. Missing attributes
// contribute zero, never a penalty. The sort is stable: ties keep the
// original retrieval order.
func Rank(
	def catalog.Definition, query string, candidates []domain.Candidate, limit int,
) []domain.RankedResult {
	q := strings.ToLower(query)

	ranked := make([]domain.RankedResult, len(candidates))
	for i, c := range candidates {
		ranked[i] = domain.RankedResult{
			Record:   c.Record,
			Distance: c.Distance,
			Score:    score(def.Boosts, q, c),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func score(boosts []catalog.BoostRule, q string, c domain.Candidate) float64 {
	s := -c.Distance
	for _, b := range boosts {
		if !triggered(b.Triggers, q) {
			continue
		}
		if v, ok := c.Record.Attrs[b.Attribute].Num(); ok {
			s += b.Weight * v
		}
	}
	return s
}

func triggered(triggers []string, q string) bool {
	for _, t := range triggers {
		if strings.Contains(q, t) {
			return true
		}
	}
	return false
}
