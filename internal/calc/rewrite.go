// Package calc answers arithmetic queries: it recovers an expression from
// natural language and evaluates it. Conversion is a two-stage strategy: an
// optional LLM-backed converter first, the deterministic rewrite as
// fallback.
package calc

import (
	"regexp"
	"strings"
)

var (
	fillerWords = regexp.MustCompile(`\b(what|is|calculate|please|solve|find|result of|equals|answer)\b`)
	sqrtPhrase  = regexp.MustCompile(`square root of (\d+)`)
	cbrtPhrase  = regexp.MustCompile(`cube root of (\d+)`)
	disallowed  = regexp.MustCompile(`[^0-9a-z+\-*/^().\s]`)

	operatorWords = strings.NewReplacer(
		"plus", "+",
		"minus", "-",
		"multiplied by", "*",
		"times", "*",
		"divided by", "/",
		"over", "/",
		"to the power of", "**",
		"squared", "**2",
		"cubed", "**3",
	)
)

// Rewrite deterministically converts a natural-language question into an
// arithmetic expression. Returns "" when nothing expression-like remains.
func Rewrite(query string) string {
	q := strings.ToLower(query)
	q = fillerWords.ReplaceAllString(q, "")
	q = operatorWords.Replace(q)
	q = sqrtPhrase.ReplaceAllString(q, "sqrt($1)")
	q = cbrtPhrase.ReplaceAllString(q, "cbrt($1)")
	q = disallowed.ReplaceAllString(q, "")
	return strings.TrimSpace(q)
}
