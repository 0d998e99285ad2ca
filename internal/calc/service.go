package calc

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/askdex/internal/domain"
	"github.com/kailas-cloud/askdex/internal/metrics"
)

// Converter turns a natural-language question into an arithmetic
// expression. Implementations may call an external model.
type Converter interface {
	Convert(ctx context.Context, query string) (string, error)
}

// Solution is an evaluated arithmetic answer.
type Solution struct {
	Expression string
	Value      float64
}

// Service evaluates arithmetic queries. converter is the optional primary
// conversion strategy; pass nil when no model is configured and only the
// deterministic rewrite is used.
type Service struct {
	converter Converter
	logger    *zap.Logger
}

// New creates a calc service.
func New(converter Converter, logger *zap.Logger) *Service {
	return &Service{converter: converter, logger: logger}
}

// Solve recovers an expression from the query and evaluates it. A failing
// primary converter falls back to the deterministic rewrite; the fallback is
// counted and logged, never silent. Returns domain.ErrNoExpression when the
// query yields nothing evaluable.
func (s *Service) Solve(ctx context.Context, query string) (Solution, error) {
	if s.converter != nil {
		if sol, err := s.solveConverted(ctx, query); err == nil {
			return sol, nil
		}
		metrics.ConverterFallbacksTotal.Inc()
	}

	expression := Rewrite(query)
	if expression == "" {
		return Solution{}, domain.ErrNoExpression
	}

	value, err := Evaluate(expression)
	if err != nil {
		return Solution{}, fmt.Errorf("%v: %w", err, domain.ErrNoExpression)
	}
	return Solution{Expression: expression, Value: value}, nil
}

func (s *Service) solveConverted(ctx context.Context, query string) (Solution, error) {
	converted, err := s.converter.Convert(ctx, query)
	if err != nil {
		s.logger.Warn("expression converter failed, using rewrite fallback", zap.Error(err))
		return Solution{}, err
	}

	expression := strings.TrimSpace(converted)
	if expression == "" {
		s.logger.Warn("expression converter returned empty output")
		return Solution{}, domain.ErrNoExpression
	}

	value, err := Evaluate(expression)
	if err != nil {
		s.logger.Warn("converted expression failed to evaluate, using rewrite fallback",
			zap.String("expression", expression), zap.Error(err))
		return Solution{}, err
	}
	return Solution{Expression: expression, Value: value}, nil
}
