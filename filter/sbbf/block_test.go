package sbbf_test

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rag-nar1/abloom/filter/sbbf"
)

func TestLocate(t *testing.T) {
	tests := []struct {
		name       string
		hash       uint64
		blockCount uint64
		block      uint64
		bits       [sbbf.BlockWords]uint8
	}{
		// XXH64("alice")
		{"alice", 0x73a3ea485f2e6049, 20, 4, [8]uint8{55, 2, 31, 41, 32, 20, 29, 10}},
		// XXH64("bob")
		{"bob", 0x92878a3b42bad03b, 20, 3, [8]uint8{21, 30, 37, 19, 47, 7, 10, 11}},
		// Mix64(42)
		{"forty-two", 0x810879608e4259cc, 20, 4, [8]uint8{44, 43, 26, 57, 58, 11, 43, 8}},
		{"zero", 0, 20, 0, [8]uint8{}},
		{"single block", 0xffffffff00000000, 1, 0, [8]uint8{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			block, bits := sbbf.Locate(test.hash, test.blockCount)
			require.Equal(t, test.block, block)
			require.Equal(t, test.bits, bits)
		})
	}
}

func TestLocateUsesModulo(t *testing.T) {
	// 7 is not a power of two; a mask would give 0xdeadbeef & 6.
	block, _ := sbbf.Locate(0xdeadbeef<<32, 7)
	require.Equal(t, uint64(0xdeadbeef%7), block)
}

func TestInsertHashSetsOneBitPerWord(t *testing.T) {
	f, err := sbbf.NewSerializable(1000, 0.01)
	require.NoError(t, err)

	const hash = 0x73a3ea485f2e6049
	f.InsertHash(hash)
	require.True(t, f.ContainsHash(hash))

	block, positions := sbbf.Locate(hash, f.BlockCount())
	data := f.Serialize()
	total := 0
	for i := uint64(0); i < f.BlockCount()*sbbf.BlockWords; i++ {
		w := wordAt(data, i)
		total += bits.OnesCount64(w)
		if i/sbbf.BlockWords == block {
			require.Equal(t, uint64(1)<<positions[i%sbbf.BlockWords], w)
		} else {
			require.Zero(t, w)
		}
	}
	require.Equal(t, sbbf.BlockWords, total)
}

func TestContainsHashShortCircuits(t *testing.T) {
	f, err := sbbf.New(1000, 0.01)
	require.NoError(t, err)

	// same block, differing low bits
	f.InsertHash(0x0000000500000001)
	require.True(t, f.ContainsHash(0x0000000500000001))
	require.False(t, f.ContainsHash(0x0000000500000002))
}
