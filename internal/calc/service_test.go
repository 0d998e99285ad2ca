package calc

import (
	"context"
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/askdex/internal/domain"
)

type stubConverter struct {
	expression string
	err        error
	calls      int
}

func (s *stubConverter) Convert(ctx context.Context, query string) (string, error) {
	s.calls++
	return s.expression, s.err
}

func TestSolve_RewriteOnly(t *testing.T) {
	s := New(nil, zap.NewNop())

	sol, err := s.Solve(context.Background(), "What is 5 times 8 minus 3?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sol.Expression != "5 * 8 - 3" {
		t.Errorf("expression = %q, want %q", sol.Expression, "5 * 8 - 3")
	}
	if sol.Value != 37 {
		t.Errorf("value = %v, want 37", sol.Value)
	}
}

func TestSolve_ConverterPreferred(t *testing.T) {
	conv := &stubConverter{expression: "2 + 2"}
	s := New(conv, zap.NewNop())

	sol, err := s.Solve(context.Background(), "what is two plus two")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.calls != 1 {
		t.Errorf("converter called %d times, want 1", conv.calls)
	}
	if sol.Expression != "2 + 2" || sol.Value != 4 {
		t.Errorf("solution = %+v, want 2 + 2 = 4", sol)
	}
}

func TestSolve_ConverterFailureFallsBack(t *testing.T) {
	conv := &stubConverter{err: errors.New("model unavailable")}
	s := New(conv, zap.NewNop())

	sol, err := s.Solve(context.Background(), "What is 12 plus 7 divided by 3?")
	if err != nil {
		t.Fatalf("fallback should have answered, got error: %v", err)
	}
	if sol.Expression != "12 + 7 / 3" {
		t.Errorf("expression = %q, want the rewrite output", sol.Expression)
	}
	if math.Abs(sol.Value-(12+7.0/3.0)) > 1e-9 {
		t.Errorf("value = %v", sol.Value)
	}
}

func TestSolve_ConverterGarbageFallsBack(t *testing.T) {
	conv := &stubConverter{expression: "not an expression at all;;"}
	s := New(conv, zap.NewNop())

	sol, err := s.Solve(context.Background(), "square root of 81")
	if err != nil {
		t.Fatalf("fallback should have answered, got error: %v", err)
	}
	if sol.Expression != "sqrt(81)" || sol.Value != 9 {
		t.Errorf("solution = %+v, want sqrt(81) = 9", sol)
	}
}

func TestSolve_NothingEvaluable(t *testing.T) {
	s := New(nil, zap.NewNop())

	_, err := s.Solve(context.Background(), "What's the weather like today?")
	if !errors.Is(err, domain.ErrNoExpression) {
		t.Errorf("err = %v, want ErrNoExpression", err)
	}
}

func TestSolve_EmptyAfterRewrite(t *testing.T) {
	s := New(nil, zap.NewNop())

	_, err := s.Solve(context.Background(), "what is")
	if !errors.Is(err, domain.ErrNoExpression) {
		t.Errorf("err = %v, want ErrNoExpression", err)
	}
}
