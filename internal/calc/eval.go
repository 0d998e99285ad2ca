package calc

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
)

// evalEnv exposes the root helpers the rewrite emits. The expression
// language passes integer literals as int, so the helpers take any and
// coerce instead of binding math.Sqrt directly.
var evalEnv = map[string]any{
	"sqrt": func(v any) (float64, error) {
		f, err := asFloat(v)
		if err != nil {
			return 0, err
		}
		return math.Sqrt(f), nil
	},
	"cbrt": func(v any) (float64, error) {
		f, err := asFloat(v)
		if err != nil {
			return 0, err
		}
		return math.Cbrt(f), nil
	},
}

func asFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("argument %v (%T) is not numeric", v, v)
	}
}

// Evaluate compiles and runs an arithmetic expression.
func Evaluate(expression string) (float64, error) {
	out, err := expr.Eval(expression, evalEnv)
	if err != nil {
		return 0, fmt.Errorf("evaluate %q: %w", expression, err)
	}

	switch v := out.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("expression %q is not numeric (got %T)", expression, out)
	}
}

// FormatValue renders a result the way users expect: integers bare, reals
// trimmed to at most three decimals.
func FormatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%d", int64(v))
	}
	s := fmt.Sprintf("%.3f", v)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
