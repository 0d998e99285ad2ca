// Package chi is the HTTP transport: request decoding, outcome encoding
// and the sentinel-to-status error mapping.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/askdex/internal/calc"
	"github.com/kailas-cloud/askdex/internal/domain"
	"github.com/kailas-cloud/askdex/internal/domain/attr"
	healthuc "github.com/kailas-cloud/askdex/internal/usecase/health"
	queryuc "github.com/kailas-cloud/askdex/internal/usecase/query"
)

// QueryService processes one query into a terminal outcome.
type QueryService interface {
	Process(ctx context.Context, queryText string) (queryuc.Outcome, error)
}

// HealthService reports component availability.
type HealthService interface {
	Check(ctx context.Context) healthuc.Report
}

// sentinelStatus maps a domain sentinel to an HTTP status and error code.
type sentinelStatus struct {
	sentinel error
	status   int
	code     string
}

// Server exposes the query engine over HTTP.
type Server struct {
	queries   QueryService
	health    HealthService
	logger    *zap.Logger
	sentinels []sentinelStatus
}

// NewServer creates the HTTP API server.
func NewServer(queries QueryService, health HealthService, logger *zap.Logger) *Server {
	return &Server{
		queries: queries,
		health:  health,
		logger:  logger,
		sentinels: []sentinelStatus{
			{domain.ErrEmptyQuery, http.StatusBadRequest, "empty_query"},
			{domain.ErrRetrievalUnavailable, http.StatusBadGateway, "retrieval_unavailable"},
			{domain.ErrEmbeddingProviderError, http.StatusBadGateway, "embedding_provider_error"},
			{domain.ErrDomainNotFound, http.StatusInternalServerError, "domain_not_found"},
		},
	}
}

// Routes registers the API endpoints on the router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/v1/query", s.handleQuery)
	r.Get("/healthz", s.handleHealth)
}

type queryRequest struct {
	Query string `json:"query"`
}

type resultPayload struct {
	ID         string   `json:"id"`
	Distance   *float64 `json:"distance,omitempty"`
	Score      *float64 `json:"score,omitempty"`
	Attributes attr.Map `json:"attributes,omitempty"`
}

type queryResponse struct {
	Status     string          `json:"status"`
	Domain     string          `json:"domain"`
	Results    []resultPayload `json:"results,omitempty"`
	Expression string          `json:"expression,omitempty"`
	Value      *float64        `json:"value,omitempty"`
	ValueText  string          `json:"value_text,omitempty"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body: "+err.Error())
		return
	}

	out, err := s.queries.Process(r.Context(), req.Query)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp := queryResponse{
		Status:     string(out.Status),
		Domain:     out.Domain.String(),
		Expression: out.Expression,
		Value:      out.Value,
	}
	if out.Value != nil {
		resp.ValueText = calc.FormatValue(*out.Value)
	}
	for _, res := range out.Results {
		resp.Results = append(resp.Results, resultPayload{
			ID:         res.ID,
			Distance:   res.Distance,
			Score:      res.Score,
			Attributes: res.Attributes,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, m := range s.sentinels {
		if errors.Is(err, m.sentinel) {
			writeError(w, m.status, m.code, m.sentinel.Error())
			return
		}
	}
	s.logger.Error("unhandled query error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
