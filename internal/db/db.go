// Package db defines the storage contract for the per-domain vector
// indices. The engine only reads; the seeder also writes.
package db

import (
	"context"
	"time"
)

// Store is the database facade.
type Store interface {
	Pinger
	HashWriter
	IndexManager
	KNNSearcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashSetItem holds a single key+fields pair for pipelined HSET.
type HashSetItem struct {
	Key    string
	Fields map[string]string
}

// HashWriter writes record hashes (seeder only).
type HashWriter interface {
	HSetMulti(ctx context.Context, items []HashSetItem) error
}

// FieldType is an FT schema field type.
type FieldType string

// Supported schema field types.
const (
	FieldTag     FieldType = "TAG"
	FieldNumeric FieldType = "NUMERIC"
	FieldText    FieldType = "TEXT"
	FieldVector  FieldType = "VECTOR"
)

// FieldSchema describes one FT index field. Vector fields carry the
// dimension and distance metric.
type FieldSchema struct {
	Name         string
	Type         FieldType
	VectorDim    int
	VectorMetric string // L2, COSINE, IP (default L2)
}

// IndexDefinition describes one FT index.
type IndexDefinition struct {
	Name     string
	Prefixes []string
	Fields   []FieldSchema
}

// IndexManager provides FT index lifecycle operations.
type IndexManager interface {
	CreateIndex(ctx context.Context, def *IndexDefinition) error
	DropIndex(ctx context.Context, name string) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// DistanceField is the reply field carrying the KNN distance for each hit.
const DistanceField = "__dist"

// KNNQuery is a nearest-neighbor search request.
type KNNQuery struct {
	IndexName    string
	Vector       []float32
	K            int
	ReturnFields []string
}

// Entry is one search hit with its returned hash fields.
type Entry struct {
	Key    string
	Fields map[string]string
}

// SearchResult holds raw search hits in index order.
type SearchResult struct {
	Total   int64
	Entries []Entry
}

// KNNSearcher runs vector similarity searches.
type KNNSearcher interface {
	SearchKNN(ctx context.Context, q *KNNQuery) (*SearchResult, error)
}
