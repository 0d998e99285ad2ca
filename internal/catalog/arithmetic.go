package catalog

import (
	"regexp"

	"github.com/kailas-cloud/askdex/internal/domain"
)

var mathPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(plus|minus|times|multiplied by|divided by|over|squared|cubed|power|square root|cube root)\b`),
	regexp.MustCompile(`\d+\s*[-+*/^]\s*\d+`),
	regexp.MustCompile(`\d+\s*\(.*\)`),
	regexp.MustCompile(`\d+\s*\^\s*\d+`),
}

// Arithmetic defines the math domain. It has no record set: queries are
// converted to an expression and evaluated directly.
func Arithmetic() Definition {
	return Definition{
		Name:     domain.Math,
		Patterns: mathPatterns,
	}
}
