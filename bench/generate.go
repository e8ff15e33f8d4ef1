package bench

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"time"

	"github.com/amp-labs/amp-sort/hashing"
	"github.com/amp-labs/amp-sort/sortable"
)

// Generator produces the random integers that fill benchmark buffers. The
// values are non-negative and fit in 31 bits, like those of C's random().
type Generator struct {
	seed uint64
	rng  *rand.Rand
}

// NewGenerator returns a Generator seeded with seed, or with the current time
// when seed is zero. The same non-zero seed always yields the same values.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint:gosec
	}

	return &Generator{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), //nolint:gosec
	}
}

// Seed returns the seed actually in use.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Next returns a value in [0, 2^31).
func (g *Generator) Next() int32 {
	return g.rng.Int32()
}

// element binds a sortable type to the conversion from generated integers and
// to its canonical byte encoding for fingerprints.
type element[T sortable.Sortable[T]] struct {
	kind    ElementKind
	convert func(int32) T
	encode  hashing.Encoder[T]
}

func (e element[T]) fill(g *Generator, dst []T) {
	for i := range dst {
		dst[i] = e.convert(g.Next())
	}
}

var float32Element = element[sortable.Float32]{ //nolint:gochecknoglobals
	kind:    Float32,
	convert: func(v int32) sortable.Float32 { return sortable.Float32(v) },
	encode: func(dst []byte, v sortable.Float32) []byte {
		return binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(v)))
	},
}

var float64Element = element[sortable.Float64]{ //nolint:gochecknoglobals
	kind:    Float64,
	convert: func(v int32) sortable.Float64 { return sortable.Float64(v) },
	encode: func(dst []byte, v sortable.Float64) []byte {
		return binary.LittleEndian.AppendUint64(dst, math.Float64bits(float64(v)))
	},
}

var intElement = element[sortable.Int]{ //nolint:gochecknoglobals
	kind:    Int,
	convert: func(v int32) sortable.Int { return sortable.Int(v) },
	encode: func(dst []byte, v sortable.Int) []byte {
		return binary.LittleEndian.AppendUint64(dst, uint64(v)) //nolint:gosec
	},
}
