package index

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/askdex/internal/db"
)

type fakeStore struct {
	searchResult *db.SearchResult
	searchErr    error
	lastQuery    *db.KNNQuery

	hashes []db.HashSetItem

	exists    bool
	existsErr error
	created   *db.IndexDefinition
	dropped   []string
}

func (f *fakeStore) SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error) {
	f.lastQuery = q
	return f.searchResult, f.searchErr
}

func (f *fakeStore) HSetMulti(ctx context.Context, items []db.HashSetItem) error {
	f.hashes = append(f.hashes, items...)
	return nil
}

func (f *fakeStore) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	f.created = def
	return nil
}

func (f *fakeStore) DropIndex(ctx context.Context, name string) error {
	f.dropped = append(f.dropped, name)
	return nil
}

func (f *fakeStore) IndexExists(ctx context.Context, name string) (bool, error) {
	return f.exists, f.existsErr
}

func TestSearch(t *testing.T) {
	store := &fakeStore{searchResult: &db.SearchResult{
		Total: 2,
		Entries: []db.Entry{
			{Key: "askdex:car:3", Fields: map[string]string{"pos": "3", db.DistanceField: "0.12"}},
			{Key: "askdex:car:0", Fields: map[string]string{"pos": "0", db.DistanceField: "0.34"}},
		},
	}}
	repo := New(store, "car")

	hits, err := repo.Search(context.Background(), []float32{0.1, 0.2}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.lastQuery.IndexName != "askdex:car:idx" {
		t.Errorf("index name = %q, want askdex:car:idx", store.lastQuery.IndexName)
	}
	if store.lastQuery.K != 5 {
		t.Errorf("k = %d, want 5", store.lastQuery.K)
	}
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2", len(hits))
	}
	if hits[0].Position != 3 || hits[0].Distance != 0.12 {
		t.Errorf("hits[0] = %+v, want pos 3 dist 0.12", hits[0])
	}
	if hits[1].Position != 0 || hits[1].Distance != 0.34 {
		t.Errorf("hits[1] = %+v, want pos 0 dist 0.34", hits[1])
	}
}

func TestSearch_BadPosition(t *testing.T) {
	store := &fakeStore{searchResult: &db.SearchResult{
		Entries: []db.Entry{
			{Key: "askdex:car:x", Fields: map[string]string{"pos": "not-a-number", db.DistanceField: "0.1"}},
		},
	}}
	repo := New(store, "car")

	if _, err := repo.Search(context.Background(), []float32{0.1}, 1); err == nil {
		t.Fatal("expected error for unparsable position")
	}
}

func TestSearch_StoreFailure(t *testing.T) {
	store := &fakeStore{searchErr: errors.New("connection reset")}
	repo := New(store, "car")

	if _, err := repo.Search(context.Background(), []float32{0.1}, 1); err == nil {
		t.Fatal("expected error")
	}
}

func TestEnsureIndex_CreatesWhenAbsent(t *testing.T) {
	store := &fakeStore{exists: false}
	repo := New(store, "country")

	if err := repo.EnsureIndex(context.Background(), 1536, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.created == nil {
		t.Fatal("index was not created")
	}
	if store.created.Name != "askdex:country:idx" {
		t.Errorf("index name = %q", store.created.Name)
	}
	if len(store.created.Prefixes) != 1 || store.created.Prefixes[0] != "askdex:country:" {
		t.Errorf("prefixes = %v", store.created.Prefixes)
	}

	var vec *db.FieldSchema
	for i := range store.created.Fields {
		if store.created.Fields[i].Name == "vec" {
			vec = &store.created.Fields[i]
		}
	}
	if vec == nil {
		t.Fatal("no vec field in schema")
	}
	if vec.VectorDim != 1536 || vec.VectorMetric != "L2" {
		t.Errorf("vec field = %+v, want dim 1536 metric L2", vec)
	}
}

func TestEnsureIndex_ExistingIsKept(t *testing.T) {
	store := &fakeStore{exists: true}
	repo := New(store, "country")

	if err := repo.EnsureIndex(context.Background(), 1536, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.created != nil || len(store.dropped) != 0 {
		t.Errorf("existing index touched: created=%v dropped=%v", store.created, store.dropped)
	}
}

func TestEnsureIndex_Recreate(t *testing.T) {
	store := &fakeStore{exists: true}
	repo := New(store, "country")

	if err := repo.EnsureIndex(context.Background(), 512, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.dropped) != 1 || store.dropped[0] != "askdex:country:idx" {
		t.Errorf("dropped = %v", store.dropped)
	}
	if store.created == nil {
		t.Fatal("index was not recreated")
	}
}

func TestIngest(t *testing.T) {
	store := &fakeStore{}
	repo := New(store, "car")

	items := []Item{
		{Position: 0, ID: "Falcon GT", Text: "a coupe", Vector: []float32{1.0}},
		{Position: 1, ID: "Comet S", Text: "a sedan", Vector: []float32{2.0}},
	}
	if err := repo.Ingest(context.Background(), items); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.hashes) != 2 {
		t.Fatalf("wrote %d hashes, want 2", len(store.hashes))
	}
	first := store.hashes[0]
	if first.Key != "askdex:car:0" {
		t.Errorf("key = %q, want askdex:car:0", first.Key)
	}
	if first.Fields["pos"] != "0" || first.Fields["id"] != "Falcon GT" {
		t.Errorf("fields = %v", first.Fields)
	}
	if first.Fields["vec"] != vectorBlob([]float32{1.0}) {
		t.Error("vector blob mismatch")
	}
}

func TestIngest_Empty(t *testing.T) {
	store := &fakeStore{}
	repo := New(store, "car")

	if err := repo.Ingest(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.hashes) != 0 {
		t.Errorf("wrote %d hashes for empty input", len(store.hashes))
	}
}
