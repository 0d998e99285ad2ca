package catalog

import (
	"regexp"

	"github.com/kailas-cloud/askdex/internal/domain"
	"github.com/kailas-cloud/askdex/internal/domain/attr"
)

var (
	reBodyType  = regexp.MustCompile(`(?i)Specs:\s*([^,]+)`)
	reTopSpeed  = regexp.MustCompile(`(\d+)\s*km/h`)
	reMileage   = regexp.MustCompile(`(\d+)\s*km/l`)
	reHorsePwr  = regexp.MustCompile(`(?i)(\d+)\s*hp`)
	reNCAP      = regexp.MustCompile(`NCAP Rating:\s*([\d.]+)/5`)
	reBrandBy   = regexp.MustCompile(`(?i)by\s+([^(]+?)\s*\(`)
	reBrandMade = regexp.MustCompile(`(?i)manufactured by\s+([^,]+)`)
	reBrandProd = regexp.MustCompile(`(?i)produced by\s+([^,]+)`)
	reCarDescr  = regexp.MustCompile(`(?s)Description:(.+?)(?:\n\n|$)`)
)

// Cars defines the vehicle domain. Numeric specs are only accepted next to
// their unit token (km/h, km/l, hp) so one number cannot leak into another
// field.
func Cars() Definition {
	return Definition{
		Name: domain.Car,
		Keywords: []string{
			"engine", "mileage", "horsepower", "top speed", "fuel efficiency",
			"suv", "sedan", "coupe", "convertible", "hatchback", "vehicle",
			"car", "ncap", "model", "brand", "km/l", "kmph", "car specs",
			"acceleration", "electric car", "gasoline", "transmission",
			"launch year",
		},
		Fields: []FieldRule{
			{Field: "body_type", Kind: attr.Text, Patterns: []*regexp.Regexp{reBodyType}},
			{Field: "top_speed", Kind: attr.Int, Patterns: []*regexp.Regexp{reTopSpeed}},
			{Field: "mileage_km_l", Kind: attr.Int, Patterns: []*regexp.Regexp{reMileage}},
			{Field: "horsepower", Kind: attr.Int, Patterns: []*regexp.Regexp{reHorsePwr}},
			{Field: "ncap", Kind: attr.Real, Patterns: []*regexp.Regexp{reNCAP}},
			{Field: "brand", Kind: attr.Text, Patterns: []*regexp.Regexp{reBrandBy, reBrandMade, reBrandProd}},
			{Field: "description", Kind: attr.Text, Patterns: []*regexp.Regexp{reCarDescr}},
		},
		Boosts: []BoostRule{
			{Triggers: []string{"fast", "speed"}, Attribute: "top_speed", Weight: 0.01},
			{Triggers: []string{"efficient", "mileage"}, Attribute: "mileage_km_l", Weight: 0.01},
			{Triggers: []string{"safe"}, Attribute: "ncap", Weight: 0.1},
			{Triggers: []string{"power", "hp"}, Attribute: "horsepower", Weight: 0.01},
		},
		Retrieval:    true,
		DefaultCount: 1,
		MaxResults:   5,
	}
}
