// Package bloom is a classical flat-array Bloom filter. Every probe may land
// on a different cache line; it is kept as the baseline the split block
// filter is measured against.
package bloom

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/rag-nar1/abloom/filter"
)

type BloomFilter struct {
	capacity uint64
	fpRate   float64
	m        uint64 // size of bit-array
	k        uint32 // number of hash-functions

	Bits   *bitset.BitSet // the filter actual storage
	Hasher filter.Hasher
}

// NewBloomFilter sizes the filter with the textbook formulas
//
//	m = ceil(-n * ln(p) / ln(2)^2)
//	k = round(m / n * ln(2))
func NewBloomFilter(n uint64, fpRate float64, hasher filter.Hasher) (*BloomFilter, error) {
	if n == 0 {
		return nil, filter.ErrZeroCapacity
	}
	if !(fpRate > 0 && fpRate < 1) {
		return nil, fmt.Errorf("%w, got %v", filter.ErrFPRateRange, fpRate)
	}
	if hasher == nil {
		hasher = filter.FastHasher{}
	}

	m := math.Ceil(-float64(n) * math.Log(fpRate) / (math.Ln2 * math.Ln2))
	if m > math.MaxInt/2 {
		return nil, fmt.Errorf("%w: %v bits for capacity %d", filter.ErrResource, m, n)
	}
	k := max(uint32(math.Round(m/float64(n)*math.Ln2)), 1)

	return &BloomFilter{
		capacity: n,
		fpRate:   fpRate,
		m:        uint64(m),
		k:        k,
		Bits:     bitset.New(uint(m)),
		Hasher:   hasher,
	}, nil
}

// Hash returns the k bit indexes of v, derived from one 64-bit hash by
// double hashing.
func (bf *BloomFilter) Hash(v filter.Value) ([]uint64, error) {
	hash, err := bf.Hasher.Hash(v)
	if err != nil {
		return nil, err
	}
	return filter.DoubleHash(hash, bf.m, bf.k), nil
}

func (bf *BloomFilter) Insert(v filter.Value) error {
	idx, err := bf.Hash(v)
	if err != nil {
		return err
	}
	for _, i := range idx {
		bf.Bits.Set(uint(i))
	}
	return nil
}

func (bf *BloomFilter) Contains(v filter.Value) (bool, error) {
	idx, err := bf.Hash(v)
	if err != nil {
		return false, err
	}
	for _, i := range idx {
		if !bf.Bits.Test(uint(i)) {
			return false, nil
		}
	}
	return true, nil
}

func (bf *BloomFilter) Clear()        { bf.Bits.ClearAll() }
func (bf *BloomFilter) IsEmpty() bool { return bf.Bits.None() }

func (bf *BloomFilter) Capacity() uint64 { return bf.capacity }
func (bf *BloomFilter) FPRate() float64  { return bf.fpRate }
func (bf *BloomFilter) K() int           { return int(bf.k) }
func (bf *BloomFilter) BitCount() uint64 { return bf.m }

// ByteCount is the size of the backing words.
func (bf *BloomFilter) ByteCount() uint64 { return (bf.m + 63) / 64 * 8 }

func (bf *BloomFilter) Serializable() bool {
	_, ok := bf.Hasher.(filter.ContentHasher)
	return ok
}

func (bf *BloomFilter) Copy() *BloomFilter {
	c := *bf
	c.Bits = bf.Bits.Clone()
	return &c
}

func (bf *BloomFilter) compatible(other *BloomFilter) error {
	if err := filter.Compatible(bf, other); err != nil {
		return err
	}
	if bf.Hasher != other.Hasher {
		return fmt.Errorf("%w (different hashers)", filter.ErrMismatch)
	}
	return nil
}

// UnionInPlace ORs other into bf. Both must share capacity, fp_rate and
// hasher.
func (bf *BloomFilter) UnionInPlace(other *BloomFilter) error {
	if err := bf.compatible(other); err != nil {
		return err
	}
	bf.Bits.InPlaceUnion(other.Bits)
	return nil
}

func (bf *BloomFilter) Equal(other *BloomFilter) bool {
	return bf.compatible(other) == nil && bf.Bits.Equal(other.Bits)
}

var _ filter.Filter = (*BloomFilter)(nil)
