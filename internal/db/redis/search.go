package redis

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/askdex/internal/db"
)

// distanceAlias is the name the KNN clause assigns to the vector distance.
const distanceAlias = db.DistanceField

// SearchKNN runs a KNN vector similarity search via FT.SEARCH, ordered by
// ascending distance.
func (s *Store) SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error) {
	if q.IndexName == "" {
		return nil, fmt.Errorf("index name is required")
	}
	if len(q.Vector) == 0 {
		return nil, fmt.Errorf("vector is required")
	}
	if q.K <= 0 {
		return nil, fmt.Errorf("k must be positive")
	}

	queryStr := fmt.Sprintf("*=>[KNN %d @vec $BLOB AS %s]", q.K, distanceAlias)

	args := []string{q.IndexName, queryStr}

	returnFields := append([]string{distanceAlias}, q.ReturnFields...)
	args = append(args, "RETURN", strconv.Itoa(len(returnFields)))
	args = append(args, returnFields...)

	args = append(args,
		"SORTBY", distanceAlias,
		"LIMIT", "0", strconv.Itoa(q.K),
		"PARAMS", "2", "BLOB", vectorToBytes(q.Vector),
		"DIALECT", "2",
	)

	cmd := s.b().Arbitrary("FT.SEARCH").Args(args...).Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: err}
	}

	return parseSearchResult(raw)
}

// parseSearchResult converts the RESP2 FT.SEARCH reply
// [total, key1, fields1, key2, fields2, ...] into entries.
func parseSearchResult(raw []rueidis.RedisMessage) (*db.SearchResult, error) {
	if len(raw) == 0 {
		return &db.SearchResult{}, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}

	result := &db.SearchResult{Total: total}

	for i := 1; i+1 < len(raw); i += 2 {
		key, err := raw[i].ToString()
		if err != nil {
			return nil, fmt.Errorf("parse key at %d: %w", i, err)
		}

		fieldsArr, err := raw[i+1].ToArray()
		if err != nil {
			return nil, fmt.Errorf("parse fields of %s: %w", key, err)
		}

		fields := make(map[string]string, len(fieldsArr)/2)
		for j := 0; j+1 < len(fieldsArr); j += 2 {
			name, err := fieldsArr[j].ToString()
			if err != nil {
				continue
			}
			value, err := fieldsArr[j+1].ToString()
			if err != nil {
				continue
			}
			fields[name] = value
		}

		result.Entries = append(result.Entries, db.Entry{Key: key, Fields: fields})
	}

	return result, nil
}

// vectorToBytes encodes float32s as a little-endian FLOAT32 blob.
func vectorToBytes(v []float32) string {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return string(buf)
}
