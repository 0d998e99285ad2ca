package catalog

import (
	"regexp"

	"github.com/kailas-cloud/askdex/internal/domain"
	"github.com/kailas-cloud/askdex/internal/domain/attr"
)

var (
	reCapital  = regexp.MustCompile(`([A-Za-z\s]+?)\s+is the capital of [A-Za-z\s]+`)
	reArea     = regexp.MustCompile(`total area of ([\d,]+)\s*square kilometers`)
	rePopul    = regexp.MustCompile(`population of ([\d,]+)`)
	reLanguage = regexp.MustCompile(`official languages? spoken[^:]*:?\s*([A-Za-z,\s]+)`)
	reAnimal   = regexp.MustCompile(`National Animal is the ([A-Za-z\s]+)`)
	reBird     = regexp.MustCompile(`National Bird is the ([A-Za-z\s]+)`)
	// First sentence of the cultural-fact section appended to each record.
	reExtra = regexp.MustCompile(`### About the Country best play:\s*([^.\n]+)`)
)

// Countries defines the country domain. Identifiers are country names, so
// the exact-match short-circuit applies; the semantic fallback only accepts
// close hits (distance < 0.25).
func Countries() Definition {
	return Definition{
		Name: domain.Country,
		Keywords: []string{
			"capital", "population", "language", "area", "square kilometers",
			"country", "national animal", "national bird", "flag", "rivers",
			"continent", "geography", "official language", "currency",
			"borders", "neighbors", "government", "president", "prime minister",
		},
		Fields: []FieldRule{
			{Field: "capital", Kind: attr.Text, Patterns: []*regexp.Regexp{reCapital}},
			{Field: "area_sq_km", Kind: attr.Int, Patterns: []*regexp.Regexp{reArea}},
			{Field: "population", Kind: attr.Int, Patterns: []*regexp.Regexp{rePopul}},
			{Field: "languages", Kind: attr.Text, Patterns: []*regexp.Regexp{reLanguage}},
			{Field: "national_animal", Kind: attr.Text, Patterns: []*regexp.Regexp{reAnimal}},
			{Field: "national_bird", Kind: attr.Text, Patterns: []*regexp.Regexp{reBird}},
			{Field: "extra", Kind: attr.Text, Patterns: []*regexp.Regexp{reExtra}},
		},
		ExactMatch:     true,
		Retrieval:      true,
		DefaultCount:   1,
		MaxResults:     3,
		RejectDistance: 0.25,
	}
}
