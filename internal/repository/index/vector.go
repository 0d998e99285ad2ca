package index

import (
	"encoding/binary"
	"math"
)

// vectorBlob encodes float32s as a little-endian FLOAT32 blob, the format
// the VECTOR field expects in a hash.
func vectorBlob(v []float32) string {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return string(buf)
}
