package sbbf

import (
	"fmt"

	"github.com/rag-nar1/abloom/filter"
)

const (
	Magic      = "ABLM"
	Version    = 1
	HeaderSize = 29 // 4 magic + 1 version + 8 capacity + 8 fp_rate + 8 block_count
)

// Serialize encodes f in the version 1 wire format. The output is
// HeaderSize + ByteCount() bytes long.
func (f *SerializableFilter) Serialize() []byte {
	buf := make([]byte, 0, HeaderSize+len(f.blocks)*8)
	buf = append(buf, Magic...)
	buf = append(buf, Version)
	buf = filter.AppendUint64(buf, f.capacity)
	buf = filter.AppendFloat64(buf, f.fpRate)
	buf = filter.AppendUint64(buf, f.blockCount)
	for _, w := range f.blocks {
		buf = filter.AppendUint64(buf, w)
	}
	return buf
}

func (f *SerializableFilter) MarshalBinary() ([]byte, error) {
	return f.Serialize(), nil
}

func (f *SerializableFilter) UnmarshalBinary(data []byte) error {
	d, err := Deserialize(data)
	if err != nil {
		return err
	}
	*f = *d
	return nil
}

// Deserialize decodes a filter written by Serialize. The block count is
// taken from the payload and never recomputed.
func Deserialize(data []byte) (*SerializableFilter, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: got %d bytes", filter.ErrTooShort, len(data))
	}
	if string(data[0:4]) != Magic {
		return nil, filter.ErrBadMagic
	}
	if data[4] != Version {
		return nil, fmt.Errorf("%w: %d (expected %d)", filter.ErrUnsupportedVersion, data[4], Version)
	}

	capacity := filter.ReadUint64(data[5:13])
	fpRate := filter.ReadFloat64(data[13:21])
	blockCount := filter.ReadUint64(data[21:29])

	payload := uint64(len(data) - HeaderSize)
	if blockCount > payload/BlockBytes || blockCount*BlockBytes != payload {
		return nil, fmt.Errorf("%w: %d blocks, got %d payload bytes",
			filter.ErrLengthMismatch, blockCount, payload)
	}
	if capacity == 0 {
		return nil, filter.ErrBadCapacity
	}
	if !(fpRate > 0 && fpRate < 1) {
		return nil, fmt.Errorf("%w: %v", filter.ErrBadFPRate, fpRate)
	}
	if blockCount == 0 {
		return nil, filter.ErrBadBlockCount
	}

	blocks := make([]uint64, blockCount*BlockWords)
	words := data[HeaderSize:]
	for i := range blocks {
		blocks[i] = filter.ReadUint64(words[i*8:])
	}

	return &SerializableFilter{store: store{
		capacity:   capacity,
		fpRate:     fpRate,
		blockCount: blockCount,
		blocks:     blocks,
	}}, nil
}
