package calc

import (
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expression string
		want       float64
	}{
		{"3 + 4", 7},
		{"5 * 8 - 3", 37},
		{"12 + 7 / 3", 12 + 7.0/3.0},
		{"(4 + 3) **2", 49},
		{"4 ** 3", 64},
		{"sqrt(81)", 9},
		{"cbrt(27)", 3},
		{"(5 + 3) * 2 **2 - 4", 28},
		{"10 - 4 **2", -6},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			got, err := Evaluate(tt.expression)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.expression, got, tt.want)
			}
		})
	}
}

// Root helpers must accept whatever numeric type a subexpression produces:
// integer literals, float results of division, and nested root calls.
func TestEvaluate_RootArgumentTypes(t *testing.T) {
	tests := []struct {
		expression string
		want       float64
	}{
		{"sqrt(81)", 9},
		{"cbrt(27)", 3},
		{"sqrt(6.25)", 2.5},
		{"sqrt(80 + 1)", 9},
		{"sqrt(162 / 2)", 9},
		{"sqrt(81) + cbrt(27)", 12},
		{"cbrt(sqrt(729))", 3},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			got, err := Evaluate(tt.expression)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.expression, got, tt.want)
			}
		})
	}
}

func TestEvaluate_Invalid(t *testing.T) {
	for _, expression := range []string{"", "what even", "3 +", "drop table", `sqrt("nine")`} {
		t.Run(expression, func(t *testing.T) {
			if _, err := Evaluate(expression); err == nil {
				t.Errorf("Evaluate(%q) succeeded, want error", expression)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{9, "9"},
		{-6, "-6"},
		{37, "37"},
		{14.333333333, "14.333"},
		{1.75, "1.75"},
		{2.5, "2.5"},
		{0, "0"},
	}

	for _, tt := range tests {
		if got := FormatValue(tt.value); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
