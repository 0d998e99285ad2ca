package rank

import (
	"regexp"
	"strconv"

	"github.com/kailas-cloud/askdex/internal/catalog"
)

// countPattern picks up an explicit result count request ("show me 3 ...").
var countPattern = regexp.MustCompile(`(?i)\b(?:show|give|list|find)\s+(?:me\s+)?(\d+)\b`)

// RequestedCount returns how many results the query asks for: the explicit
// number when present, the domain default otherwise, always clamped into
// [1, MaxResults].
func RequestedCount(query string, def catalog.Definition) int {
	n := def.DefaultCount

	if sub := countPattern.FindStringSubmatch(query); sub != nil {
		if parsed, err := strconv.Atoi(sub[1]); err == nil {
			n = parsed
		}
	}

	if n < 1 {
		n = 1
	}
	if def.MaxResults > 0 && n > def.MaxResults {
		n = def.MaxResults
	}
	return n
}
