package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/askdex/internal/domain"
	"github.com/kailas-cloud/askdex/internal/domain/attr"
	healthuc "github.com/kailas-cloud/askdex/internal/usecase/health"
	queryuc "github.com/kailas-cloud/askdex/internal/usecase/query"
)

type stubQueryService struct {
	outcome queryuc.Outcome
	err     error
	gotText string
}

func (s *stubQueryService) Process(ctx context.Context, queryText string) (queryuc.Outcome, error) {
	s.gotText = queryText
	return s.outcome, s.err
}

type stubHealthService struct {
	report healthuc.Report
}

func (s *stubHealthService) Check(ctx context.Context) healthuc.Report {
	return s.report
}

func newTestRouter(queries QueryService, health HealthService) http.Handler {
	r := chi.NewRouter()
	NewServer(queries, health, zap.NewNop()).Routes(r)
	return r
}

func postQuery(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/query", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleQuery_RankedResults(t *testing.T) {
	distance, score := 0.10, 2.40
	queries := &stubQueryService{outcome: queryuc.Outcome{
		Status: queryuc.StatusOK,
		Domain: domain.Car,
		Results: []queryuc.Result{{
			ID:         "fast-far",
			Distance:   &distance,
			Score:      &score,
			Attributes: attr.Map{"top_speed": attr.IntVal(250)},
		}},
	}}
	handler := newTestRouter(queries, &stubHealthService{})

	rec := postQuery(t, handler, `{"query": "show me fast cars"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if queries.gotText != "show me fast cars" {
		t.Errorf("service received %q", queries.gotText)
	}

	var resp struct {
		Status  string `json:"status"`
		Domain  string `json:"domain"`
		Results []struct {
			ID         string             `json:"id"`
			Distance   *float64           `json:"distance"`
			Score      *float64           `json:"score"`
			Attributes map[string]float64 `json:"attributes"`
		} `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Status != "ok" || resp.Domain != "car" {
		t.Errorf("response = %s/%s, want ok/car", resp.Status, resp.Domain)
	}
	if len(resp.Results) != 1 || resp.Results[0].ID != "fast-far" {
		t.Fatalf("results = %+v", resp.Results)
	}
	if resp.Results[0].Distance == nil || *resp.Results[0].Distance != 0.10 {
		t.Errorf("distance = %v", resp.Results[0].Distance)
	}
	if resp.Results[0].Attributes["top_speed"] != 250 {
		t.Errorf("attributes = %v", resp.Results[0].Attributes)
	}
}

func TestHandleQuery_ExactMatchOmitsDistance(t *testing.T) {
	queries := &stubQueryService{outcome: queryuc.Outcome{
		Status:  queryuc.StatusOK,
		Domain:  domain.Country,
		Results: []queryuc.Result{{ID: "Tunisia"}},
	}}
	handler := newTestRouter(queries, &stubHealthService{})

	rec := postQuery(t, handler, `{"query": "Tell me about Tunisia"}`)

	body := rec.Body.String()
	if strings.Contains(body, `"distance"`) || strings.Contains(body, `"score"`) {
		t.Errorf("exact match response carries distance/score: %s", body)
	}
}

func TestHandleQuery_MathAnswer(t *testing.T) {
	value := 37.0
	queries := &stubQueryService{outcome: queryuc.Outcome{
		Status:     queryuc.StatusOK,
		Domain:     domain.Math,
		Expression: "5 * 8 - 3",
		Value:      &value,
	}}
	handler := newTestRouter(queries, &stubHealthService{})

	rec := postQuery(t, handler, `{"query": "5 times 8 minus 3"}`)

	var resp struct {
		Status     string   `json:"status"`
		Domain     string   `json:"domain"`
		Expression string   `json:"expression"`
		Value      *float64 `json:"value"`
		ValueText  string   `json:"value_text"`
		Results    []any    `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Expression != "5 * 8 - 3" || resp.Value == nil || *resp.Value != 37 {
		t.Errorf("math payload = %+v", resp)
	}
	if resp.ValueText != "37" {
		t.Errorf("value_text = %q, want %q", resp.ValueText, "37")
	}
	if len(resp.Results) != 0 {
		t.Errorf("math answer carries %d results", len(resp.Results))
	}
}

// A fractional result is rendered trimmed to three decimals.
func TestHandleQuery_MathValueTextTrimmed(t *testing.T) {
	value := 12 + 7.0/3.0
	queries := &stubQueryService{outcome: queryuc.Outcome{
		Status:     queryuc.StatusOK,
		Domain:     domain.Math,
		Expression: "12 + 7 / 3",
		Value:      &value,
	}}
	handler := newTestRouter(queries, &stubHealthService{})

	rec := postQuery(t, handler, `{"query": "12 plus 7 divided by 3"}`)

	var resp struct {
		ValueText string `json:"value_text"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.ValueText != "14.333" {
		t.Errorf("value_text = %q, want %q", resp.ValueText, "14.333")
	}
}

func TestHandleQuery_InformationalStatuses(t *testing.T) {
	tests := []struct {
		name    string
		outcome queryuc.Outcome
		want    string
	}{
		{"unknown", queryuc.Outcome{Status: queryuc.StatusUnknown, Domain: domain.Unknown}, "unknown"},
		{"no match", queryuc.Outcome{Status: queryuc.StatusNoMatch, Domain: domain.Country}, "no_match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestRouter(&stubQueryService{outcome: tt.outcome}, &stubHealthService{})

			rec := postQuery(t, handler, `{"query": "anything"}`)

			// Informational outcomes are 200s, not errors.
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			var resp struct {
				Status string `json:"status"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("bad response body: %v", err)
			}
			if resp.Status != tt.want {
				t.Errorf("status = %q, want %q", resp.Status, tt.want)
			}
		})
	}
}

func TestHandleQuery_SentinelMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"empty query", domain.ErrEmptyQuery, http.StatusBadRequest, "empty_query"},
		{"retrieval unavailable", domain.ErrRetrievalUnavailable, http.StatusBadGateway, "retrieval_unavailable"},
		{"embedding provider", domain.ErrEmbeddingProviderError, http.StatusBadGateway, "embedding_provider_error"},
		{"domain not found", domain.ErrDomainNotFound, http.StatusInternalServerError, "domain_not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestRouter(&stubQueryService{err: tt.err}, &stubHealthService{})

			rec := postQuery(t, handler, `{"query": "x"}`)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var resp struct {
				Code string `json:"code"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("bad response body: %v", err)
			}
			if resp.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", resp.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleQuery_InvalidBody(t *testing.T) {
	handler := newTestRouter(&stubQueryService{}, &stubHealthService{})

	rec := postQuery(t, handler, `{not json`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	tests := []struct {
		name       string
		report     healthuc.Report
		wantStatus int
	}{
		{
			"healthy",
			healthuc.Report{Status: healthuc.Healthy, Checks: map[string]string{"database": "ok"}},
			http.StatusOK,
		},
		{
			"degraded",
			healthuc.Report{Status: healthuc.Degraded, Checks: map[string]string{"database": "error"}},
			http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestRouter(&stubQueryService{}, &stubHealthService{report: tt.report})

			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
