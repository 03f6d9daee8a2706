package filter

import (
	"fmt"
	"math"
	"math/rand"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-metro"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
	"github.com/zhenjl/cityhash"
)

// Hasher maps a Value to the 64-bit hash consumed by a filter.
type Hasher interface {
	Hash(v Value) (uint64, error)
}

// Mix64 is the 64-bit avalanche finalizer applied to generic hashes.
func Mix64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

// NumericHash is the generic hash of a number. Numerically equal values hash
// equally: an integral float hashes like the int64 it equals, -0 hashes like
// 0 and every NaN hashes alike.
func NumericHash(v Value) uint64 {
	if v.kind == KindInt64 {
		return v.n
	}
	f := math.Float64frombits(v.n)
	switch {
	case math.IsNaN(f):
		return 0x7ff8000000000001
	case f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64:
		return uint64(int64(f))
	}
	return v.n
}

// DoubleHash derives k indexes in [0, m) from the two halves of one hash.
func DoubleHash(hash, m uint64, k uint32) []uint64 {
	hashedIdx := make([]uint64, k)
	h1 := hash & 0xffffffff
	h2 := hash >> 32
	for i := uint64(0); i < uint64(k); i++ {
		hashedIdx[i] = (h1 + i*h2) % m
	}
	return hashedIdx
}

// Engine selects the byte hash used by a FastHasher.
type Engine uint8

const (
	EngineMetro Engine = iota
	EngineXXH3
	EngineCity
	EngineMurmur3
)

var engineNames = map[Engine]string{
	EngineMetro:   "metro",
	EngineXXH3:    "xxh3",
	EngineCity:    "city",
	EngineMurmur3: "murmur3",
}

func (e Engine) String() string {
	if name, ok := engineNames[e]; ok {
		return name
	}
	return fmt.Sprintf("engine(%d)", uint8(e))
}

// ParseEngine returns the Engine with the given name.
func ParseEngine(name string) (Engine, error) {
	for e, n := range engineNames {
		if n == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown hash engine %q", ErrConfiguration, name)
}

func (e Engine) sum(data []byte, seed uint64) uint64 {
	switch e {
	case EngineXXH3:
		return xxh3.HashSeed(data, seed)
	case EngineCity:
		return cityhash.CityHash64WithSeed(data, uint32(len(data)), seed)
	case EngineMurmur3:
		return murmur3.Sum64WithSeed(data, uint32(seed))
	}
	return metro.Hash64(data, seed)
}

// processSeed keys every FastHasher in this process. Fast hashes are
// comparable between filters of one process only.
var processSeed = rand.Uint64()

// FastHasher hashes with a per-process seed. Its output is not stable across
// processes and must never be persisted.
type FastHasher struct {
	Engine Engine
}

func (h FastHasher) Hash(v Value) (uint64, error) {
	switch v.kind {
	case KindBytes:
		return Mix64(h.Engine.sum(v.b, processSeed)), nil
	case KindText:
		return Mix64(h.Engine.sum([]byte(v.s), processSeed)), nil
	case KindInt64, KindFloat64:
		return Mix64(NumericHash(v)), nil
	}
	return 0, fmt.Errorf("%w: unhashable %s value", ErrType, v.kind)
}

// ContentHasher is deterministic across processes and versions: bytes and
// UTF-8 text are hashed with XXH64 (seed 0), numbers with NumericHash and
// Mix64.
type ContentHasher struct{}

func (ContentHasher) Hash(v Value) (uint64, error) {
	switch v.kind {
	case KindBytes:
		return xxhash.Sum64(v.b), nil
	case KindText:
		if !utf8.ValidString(v.s) {
			return 0, ErrInvalidUTF8
		}
		return xxhash.Sum64String(v.s), nil
	case KindInt64, KindFloat64:
		return Mix64(NumericHash(v)), nil
	}
	return 0, fmt.Errorf("%w: only bytes, text, int64 and float64 are supported in serializable mode", ErrType)
}
