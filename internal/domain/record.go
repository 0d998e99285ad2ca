package domain

import "github.com/kailas-cloud/askdex/internal/domain/attr"

// Record is one indexed text entry of a domain. Records are loaded once at
// startup, positionally aligned with the domain's vector index, and never
// mutated afterward.
type Record struct {
	ID    string
	Text  string
	Attrs attr.Map
}

// Candidate is a record retrieved for a query before ranking.
// Distance is the index dissimilarity, non-negative, lower = more similar.
type Candidate struct {
	Record   *Record
	Distance float64
}

// RankedResult is a candidate after hybrid scoring. Score is only meaningful
// for relative ordering within a single ranking call.
type RankedResult struct {
	Record   *Record
	Distance float64
	Score    float64
}
