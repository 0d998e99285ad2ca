// Package catalog declares the static per-domain rule tables: routing
// keywords, attribute extraction patterns, ranking boosts and result limits.
// Definitions are built once at process start and read-only thereafter.
package catalog

import (
	"regexp"

	"github.com/kailas-cloud/askdex/internal/domain"
	"github.com/kailas-cloud/askdex/internal/domain/attr"
)

// FieldRule extracts one attribute from record text. Patterns are tried in
// declaration order; the first match wins and its first capture group is
// parsed according to Kind.
type FieldRule struct {
	Field    string
	Kind     attr.Kind
	Patterns []*regexp.Regexp
}

// BoostRule adds Weight*attributeValue to a candidate's score when any
// trigger keyword appears in the query and the attribute is present.
type BoostRule struct {
	Triggers  []string
	Attribute string
	Weight    float64
}

// Definition is the complete static configuration of one domain.
type Definition struct {
	Name     domain.Name
	Keywords []string         // case-insensitive substring routing rules
	Patterns []*regexp.Regexp // structural routing patterns (math)

	Fields []FieldRule
	Boosts []BoostRule

	// ExactMatch enables the identifier-substring short-circuit; only set
	// for domains whose identifiers are proper nouns.
	ExactMatch bool

	// Retrieval is false for domains answered without the vector index.
	Retrieval bool

	DefaultCount int
	MaxResults   int

	// RejectDistance gates the semantic fallback: a top hit at or beyond
	// this distance is treated as no match. Zero disables the gate.
	RejectDistance float64
}

// All returns the configured definitions in router priority order.
func All() []Definition {
	return []Definition{Cars(), Countries(), Arithmetic()}
}
