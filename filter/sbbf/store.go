package sbbf

import (
	"math/bits"
	"slices"
	"strconv"
)

// store owns the block array shared by both filter modes.
type store struct {
	capacity   uint64
	fpRate     float64
	blockCount uint64
	blocks     []uint64
}

func newStore(capacity uint64, fpRate float64) (store, error) {
	blockCount, err := Calibrate(capacity, fpRate)
	if err != nil {
		return store{}, err
	}
	return store{
		capacity:   capacity,
		fpRate:     fpRate,
		blockCount: blockCount,
		blocks:     make([]uint64, blockCount*BlockWords),
	}, nil
}

func (s *store) insertHash(hash uint64) { insertHash(s.blocks, s.blockCount, hash) }

func (s *store) containsHash(hash uint64) bool { return containsHash(s.blocks, s.blockCount, hash) }

func (s *store) clone() store {
	c := *s
	c.blocks = slices.Clone(s.blocks)
	return c
}

func (s *store) sameShape(o *store) bool {
	return s.capacity == o.capacity && s.fpRate == o.fpRate
}

// orIn requires sameShape; equal capacity and fp_rate imply equal block
// counts for calibrated filters, and Deserialize keeps the payload's count,
// so the lengths are checked too.
func (s *store) orIn(o *store) bool {
	if len(s.blocks) != len(o.blocks) {
		return false
	}
	for i, w := range o.blocks {
		s.blocks[i] |= w
	}
	return true
}

// Clear zeroes every block. Capacity and fp_rate are unchanged.
func (s *store) Clear() { clear(s.blocks) }

// IsEmpty reports whether no bit is set.
func (s *store) IsEmpty() bool {
	for _, w := range s.blocks {
		if w != 0 {
			return false
		}
	}
	return true
}

// PopCount is the number of set bits.
func (s *store) PopCount() uint64 {
	var n int
	for _, w := range s.blocks {
		n += bits.OnesCount64(w)
	}
	return uint64(n)
}

func (s *store) Capacity() uint64   { return s.capacity }
func (s *store) FPRate() float64    { return s.fpRate }
func (s *store) K() int             { return BlockWords }
func (s *store) BlockCount() uint64 { return s.blockCount }
func (s *store) ByteCount() uint64  { return s.blockCount * BlockBytes }
func (s *store) BitCount() uint64   { return s.blockCount * BlockBits }

func (s *store) String() string {
	return "<BloomFilter capacity=" + strconv.FormatUint(s.capacity, 10) +
		" fp_rate=" + strconv.FormatFloat(s.fpRate, 'g', -1, 64) + ">"
}
