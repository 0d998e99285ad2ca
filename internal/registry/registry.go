// Package registry holds the process-wide read-only domain state: record
// sets, their searchers and the exact-match resolver. A Registry is built
// once at startup and passed into the dispatcher, so tests can substitute
// fake domains.
package registry

import (
	"strings"

	"github.com/kailas-cloud/askdex/internal/catalog"
	"github.com/kailas-cloud/askdex/internal/domain"
)

// Domain is one loaded subject area: its static definition, its record
// sequence (positionally aligned with the vector index) and the searcher
// over that index. Searcher is nil for non-retrieval domains.
type Domain struct {
	Def      catalog.Definition
	Records  []*domain.Record
	Searcher domain.Searcher
}

// ResolveExact returns the first record whose identifier is a
// case-insensitive literal substring of the query, or nil. Records are
// scanned in their declared order.
func (d *Domain) ResolveExact(query string) *domain.Record {
	if !d.Def.ExactMatch {
		return nil
	}
	q := strings.ToLower(query)
	for _, rec := range d.Records {
		if strings.Contains(q, strings.ToLower(rec.ID)) {
			return rec
		}
	}
	return nil
}

// Registry is the read-only set of configured domains in priority order.
type Registry struct {
	ordered []*Domain
	byName  map[domain.Name]*Domain
}

// New creates a registry. Domain order defines router and fallback priority.
func New(domains ...*Domain) *Registry {
	byName := make(map[domain.Name]*Domain, len(domains))
	for _, d := range domains {
		byName[d.Def.Name] = d
	}
	return &Registry{ordered: domains, byName: byName}
}

// Get returns the domain by name.
func (r *Registry) Get(name domain.Name) (*Domain, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// InPriorityOrder returns all domains in their declared order.
func (r *Registry) InPriorityOrder() []*Domain {
	return r.ordered
}

// Definitions returns the static definitions in priority order, for the
// router.
func (r *Registry) Definitions() []catalog.Definition {
	defs := make([]catalog.Definition, len(r.ordered))
	for i, d := range r.ordered {
		defs[i] = d.Def
	}
	return defs
}
