// Package query orchestrates one request end-to-end: route, resolve or
// retrieve, rank, assemble. The service keeps no state across calls and is
// safe for concurrent use once the registry is loaded.
package query

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/askdex/internal/domain"
	"github.com/kailas-cloud/askdex/internal/domain/attr"
	"github.com/kailas-cloud/askdex/internal/metrics"
	"github.com/kailas-cloud/askdex/internal/rank"
	"github.com/kailas-cloud/askdex/internal/registry"
)

// Status is the terminal outcome class of a query. Unknown and NoMatch are
// informational outcomes, not errors.
type Status string

// Query outcome statuses.
const (
	StatusOK      Status = "ok"
	StatusUnknown Status = "unknown"
	StatusNoMatch Status = "no_match"
)

// Result is one answer entry. Distance and Score are nil for exact-match
// hits, where no retrieval happened.
type Result struct {
	ID         string
	Distance   *float64
	Score      *float64
	Attributes attr.Map
}

// Outcome is the single terminal response of one query. Expression and
// Value are set for arithmetic answers only.
type Outcome struct {
	Status     Status
	Domain     domain.Name
	Results    []Result
	Expression string
	Value      *float64
}

// Service is the query dispatcher.
type Service struct {
	reg       *registry.Registry
	router    Router
	retriever Retriever
	calc      Calculator
	logger    *zap.Logger
}

// New creates a dispatcher service.
func New(
	reg *registry.Registry, router Router, retriever Retriever,
	calc Calculator, logger *zap.Logger,
) *Service {
	return &Service{reg: reg, router: router, retriever: retriever, calc: calc, logger: logger}
}

// Process handles one query and guarantees exactly one terminal outcome:
// a payload, an informational Unknown/NoMatch, or an error.
func (s *Service) Process(ctx context.Context, queryText string) (Outcome, error) {
	if strings.TrimSpace(queryText) == "" {
		return Outcome{}, domain.ErrEmptyQuery
	}

	start := time.Now()
	out, err := s.process(ctx, queryText)
	s.observe(out, err, time.Since(start))
	return out, err
}

func (s *Service) process(ctx context.Context, queryText string) (Outcome, error) {
	name := s.router.Route(queryText)

	if name == domain.Unknown {
		// Last-resort entity-name scan: the query may literally contain a
		// record identifier even when no keyword matched ("Tell me about
		// Tunisia").
		for _, d := range s.reg.InPriorityOrder() {
			if rec := d.ResolveExact(queryText); rec != nil {
				return exactOutcome(d, rec), nil
			}
		}
		return Outcome{Status: StatusUnknown, Domain: domain.Unknown}, nil
	}

	if name == domain.Math {
		return s.solveMath(ctx, queryText)
	}

	d, ok := s.reg.Get(name)
	if !ok {
		return Outcome{}, domain.ErrDomainNotFound
	}

	if rec := d.ResolveExact(queryText); rec != nil {
		return exactOutcome(d, rec), nil
	}

	return s.retrieveAndRank(ctx, d, queryText)
}

func (s *Service) retrieveAndRank(
	ctx context.Context, d *registry.Domain, queryText string,
) (Outcome, error) {
	candidates, err := s.retriever.Retrieve(ctx, d, queryText, d.Def.MaxResults)
	if err != nil {
		return Outcome{}, err
	}

	if len(candidates) == 0 {
		return Outcome{Status: StatusNoMatch, Domain: d.Def.Name}, nil
	}
	if gate := d.Def.RejectDistance; gate > 0 && candidates[0].Distance >= gate {
		return Outcome{Status: StatusNoMatch, Domain: d.Def.Name}, nil
	}

	requested := rank.RequestedCount(queryText, d.Def)
	ranked := rank.Rank(d.Def, queryText, candidates, requested)

	results := make([]Result, len(ranked))
	for i, rr := range ranked {
		dist, score := rr.Distance, rr.Score
		results[i] = Result{
			ID:         rr.Record.ID,
			Distance:   &dist,
			Score:      &score,
			Attributes: rr.Record.Attrs,
		}
	}
	return Outcome{Status: StatusOK, Domain: d.Def.Name, Results: results}, nil
}

func (s *Service) solveMath(ctx context.Context, queryText string) (Outcome, error) {
	sol, err := s.calc.Solve(ctx, queryText)
	if err != nil {
		if errors.Is(err, domain.ErrNoExpression) {
			s.logger.Debug("no evaluable expression", zap.String("query", queryText), zap.Error(err))
			return Outcome{Status: StatusNoMatch, Domain: domain.Math}, nil
		}
		return Outcome{}, err
	}

	value := sol.Value
	return Outcome{
		Status:     StatusOK,
		Domain:     domain.Math,
		Expression: sol.Expression,
		Value:      &value,
	}, nil
}

func exactOutcome(d *registry.Domain, rec *domain.Record) Outcome {
	return Outcome{
		Status:  StatusOK,
		Domain:  d.Def.Name,
		Results: []Result{{ID: rec.ID, Attributes: rec.Attrs}},
	}
}

func (s *Service) observe(out Outcome, err error, elapsed time.Duration) {
	name := out.Domain
	if name == "" {
		name = domain.Unknown
	}
	status := string(out.Status)
	if err != nil {
		status = "error"
	}
	metrics.QueriesTotal.WithLabelValues(name.String(), status).Inc()
	metrics.QueryDuration.WithLabelValues(name.String()).Observe(elapsed.Seconds())
}
