// Package health aggregates component availability checks.
package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// EmbeddingChecker checks embedding provider availability.
type EmbeddingChecker interface {
	HealthCheck(ctx context.Context) error
}

// Status is the aggregated health status.
type Status string

// Aggregated statuses.
const (
	Healthy  Status = "ok"
	Degraded Status = "degraded"
)

// Report holds per-component check outcomes.
type Report struct {
	Status Status
	Checks map[string]string
}

// Service coordinates health checks.
type Service struct {
	db        DBPinger
	embedding EmbeddingChecker
}

// New creates a health service. embedding can be nil.
func New(db DBPinger, embedding EmbeddingChecker) *Service {
	return &Service{db: db, embedding: embedding}
}

// Check probes all components and aggregates the result.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]string)

	checks["database"] = outcome(s.db.Ping(ctx))
	if s.embedding != nil {
		checks["embedding"] = outcome(s.embedding.HealthCheck(ctx))
	}

	status := Healthy
	for _, v := range checks {
		if v != "ok" {
			status = Degraded
			break
		}
	}
	return Report{Status: status, Checks: checks}
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
