package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kailas-cloud/askdex/internal/catalog"
	"github.com/kailas-cloud/askdex/internal/domain"
	"github.com/kailas-cloud/askdex/internal/extract"
)

// metadataEntry mirrors the persisted metadata file format. Entry order in
// the file is the positional alignment with the vector index; the loader
// must not reorder.
type metadataEntry struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// LoadRecords reads a domain's metadata file and derives attributes for
// every record up front. Attribute extraction is idempotent, so computing it
// once at load and sharing read-only is safe for concurrent queries.
func LoadRecords(path string, def catalog.Definition) ([]*domain.Record, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read metadata %s: %w", path, err)
	}

	var entries []metadataEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse metadata %s: %w", path, err)
	}

	records := make([]*domain.Record, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("metadata %s: entry %d has no id", path, i)
		}
		records[i] = &domain.Record{
			ID:    e.ID,
			Text:  e.Text,
			Attrs: extract.Attributes(def.Fields, e.Text),
		}
	}
	return records, nil
}
