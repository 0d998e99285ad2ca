// Package index adapts the FT.SEARCH store into the domain Searcher
// contract, one Repo per domain. Each record hash stores its position in
// the metadata sequence; the seeder writes positions in metadata order,
// which is the alignment invariant the whole engine relies on.
package index

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kailas-cloud/askdex/internal/db"
	"github.com/kailas-cloud/askdex/internal/domain"
)

// KeyPrefix namespaces all askdex keys and indices.
const KeyPrefix = "askdex:"

// store is the consumer interface for index operations (ISP).
type store interface {
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	DropIndex(ctx context.Context, name string) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Repo is the vector index of one domain.
type Repo struct {
	store  store
	domain string
}

var _ domain.Searcher = (*Repo)(nil)

// New creates an index repository for the named domain.
func New(s store, domainName string) *Repo {
	return &Repo{store: s, domain: domainName}
}

func (r *Repo) indexName() string {
	return fmt.Sprintf("%s%s:idx", KeyPrefix, r.domain)
}

func (r *Repo) key(position int) string {
	return fmt.Sprintf("%s%s:%d", KeyPrefix, r.domain, position)
}

// Search implements domain.Searcher: top-k positions by ascending distance.
func (r *Repo) Search(ctx context.Context, vector []float32, k int) ([]domain.SearchHit, error) {
	sr, err := r.store.SearchKNN(ctx, &db.KNNQuery{
		IndexName:    r.indexName(),
		Vector:       vector,
		K:            k,
		ReturnFields: []string{"pos"},
	})
	if err != nil {
		return nil, fmt.Errorf("search %s index: %w", r.domain, err)
	}

	hits := make([]domain.SearchHit, 0, len(sr.Entries))
	for _, e := range sr.Entries {
		pos, err := strconv.Atoi(e.Fields["pos"])
		if err != nil {
			return nil, fmt.Errorf("entry %s: bad position %q", e.Key, e.Fields["pos"])
		}
		dist, err := strconv.ParseFloat(e.Fields[db.DistanceField], 64)
		if err != nil {
			return nil, fmt.Errorf("entry %s: bad distance %q", e.Key, e.Fields[db.DistanceField])
		}
		hits = append(hits, domain.SearchHit{Position: pos, Distance: dist})
	}
	return hits, nil
}

// EnsureIndex creates the domain's FT index if absent. recreate drops and
// rebuilds it, used when re-seeding with a different dimension.
func (r *Repo) EnsureIndex(ctx context.Context, dim int, recreate bool) error {
	name := r.indexName()

	exists, err := r.store.IndexExists(ctx, name)
	if err != nil {
		return fmt.Errorf("probe index %s: %w", name, err)
	}
	if exists {
		if !recreate {
			return nil
		}
		if err := r.store.DropIndex(ctx, name); err != nil {
			return fmt.Errorf("drop index %s: %w", name, err)
		}
	}

	def := &db.IndexDefinition{
		Name:     name,
		Prefixes: []string{fmt.Sprintf("%s%s:", KeyPrefix, r.domain)},
		Fields: []db.FieldSchema{
			{Name: "pos", Type: db.FieldNumeric},
			{Name: "id", Type: db.FieldTag},
			{Name: "text", Type: db.FieldText},
			{Name: "vec", Type: db.FieldVector, VectorDim: dim, VectorMetric: "L2"},
		},
	}
	if err := r.store.CreateIndex(ctx, def); err != nil {
		return fmt.Errorf("create index %s: %w", name, err)
	}
	return nil
}

// Item is one record to ingest, positionally aligned with the metadata file.
type Item struct {
	Position int
	ID       string
	Text     string
	Vector   []float32
}

// Ingest writes record hashes in one pipelined round-trip.
func (r *Repo) Ingest(ctx context.Context, items []Item) error {
	if len(items) == 0 {
		return nil
	}

	hashes := make([]db.HashSetItem, len(items))
	for i, it := range items {
		hashes[i] = db.HashSetItem{
			Key: r.key(it.Position),
			Fields: map[string]string{
				"pos":  strconv.Itoa(it.Position),
				"id":   it.ID,
				"text": it.Text,
				"vec":  vectorBlob(it.Vector),
			},
		}
	}
	if err := r.store.HSetMulti(ctx, hashes); err != nil {
		return fmt.Errorf("ingest %s records: %w", r.domain, err)
	}
	return nil
}
