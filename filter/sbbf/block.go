package sbbf

const (
	BlockBits  = 512
	BlockBytes = 64
	BlockWords = 8
	WordBits   = 64
)

// salt holds the Parquet SBBF per-word multipliers.
var salt = [BlockWords]uint32{
	0x47b6137b, 0x44974d91, 0x8824ad5b, 0xa2b7289d,
	0x705495c7, 0x2df1424b, 0x9efc4947, 0x5c6bfb31,
}

// Locate returns the block selected by hash and the bit set in each of its
// words.
func Locate(hash, blockCount uint64) (block uint64, bits [BlockWords]uint8) {
	block = (hash >> 32) % blockCount
	low := uint32(hash)
	for i := range bits {
		bits[i] = uint8((low * salt[i]) >> 26)
	}
	return block, bits
}

func blockAt(blocks []uint64, idx uint64) *[BlockWords]uint64 {
	off := idx * BlockWords
	return (*[BlockWords]uint64)(blocks[off : off+BlockWords])
}

func insertHash(blocks []uint64, blockCount, hash uint64) {
	b := blockAt(blocks, (hash>>32)%blockCount)
	low := uint32(hash)
	for i := range b {
		b[i] |= 1 << ((low * salt[i]) >> 26)
	}
}

func containsHash(blocks []uint64, blockCount, hash uint64) bool {
	b := blockAt(blocks, (hash>>32)%blockCount)
	low := uint32(hash)
	for i := range b {
		if b[i]&(1<<((low*salt[i])>>26)) == 0 {
			return false
		}
	}
	return true
}
