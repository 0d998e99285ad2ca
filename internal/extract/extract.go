// Package extract derives typed attributes from raw record text using the
// per-domain rule tables declared in catalog.
package extract

import (
	"strconv"
	"strings"

	"github.com/kailas-cloud/askdex/internal/catalog"
	"github.com/kailas-cloud/askdex/internal/domain/attr"
)

// Attributes applies the rule table to text. It is a pure function of its
// inputs and never fails: a field whose patterns do not match, or whose
// capture does not parse, is set to the explicit missing value.
func Attributes(rules []catalog.FieldRule, text string) attr.Map {
	m := make(attr.Map, len(rules))
	for _, rule := range rules {
		m[rule.Field] = field(rule, text)
	}
	return m
}

func field(rule catalog.FieldRule, text string) attr.Value {
	for _, re := range rule.Patterns {
		sub := re.FindStringSubmatch(text)
		if sub == nil {
			continue
		}
		raw := strings.TrimSpace(sub[1])
		if raw == "" {
			continue
		}
		if v, ok := parse(rule.Kind, raw); ok {
			return v
		}
	}
	return attr.None()
}

func parse(kind attr.Kind, raw string) (attr.Value, bool) {
	switch kind {
	case attr.Int:
		// Record texts write large numbers with thousands separators.
		n, err := strconv.ParseInt(strings.ReplaceAll(raw, ",", ""), 10, 64)
		if err != nil {
			return attr.None(), false
		}
		return attr.IntVal(n), true
	case attr.Real:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return attr.None(), false
		}
		return attr.RealVal(f), true
	case attr.Text:
		return attr.TextVal(raw), true
	default:
		return attr.None(), false
	}
}
