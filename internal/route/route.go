// Package route classifies a query into a domain by ordered-priority rule
// matching: domains are tested in their declared order and the first whose
// keyword or pattern set matches wins. A query containing keywords of two
// domains always resolves to the one checked first.
package route

import (
	"strings"

	"github.com/kailas-cloud/askdex/internal/catalog"
	"github.com/kailas-cloud/askdex/internal/domain"
)

// Router is an ordered-priority keyword/pattern classifier.
type Router struct {
	defs []catalog.Definition
}

// New creates a router over definitions in priority order.
func New(defs []catalog.Definition) *Router {
	return &Router{defs: defs}
}

// Route returns the first matching domain, or Unknown. Pure function of the
// query text and the static rule tables.
func (r *Router) Route(query string) domain.Name {
	q := strings.ToLower(query)

	for _, def := range r.defs {
		if matches(def, q) {
			return def.Name
		}
	}
	return domain.Unknown
}

func matches(def catalog.Definition, q string) bool {
	for _, kw := range def.Keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	for _, pat := range def.Patterns {
		if pat.MatchString(q) {
			return true
		}
	}
	return false
}
