package filter

import (
	"encoding/binary"
	"math"
)

// AppendUint64 appends v to buf in big-endian order.
func AppendUint64(buf []byte, v uint64) []byte {
	return binary.BigEndian.AppendUint64(buf, v)
}

// AppendFloat64 appends the raw IEEE-754 bits of f in big-endian order.
func AppendFloat64(buf []byte, f float64) []byte {
	return binary.BigEndian.AppendUint64(buf, math.Float64bits(f))
}

// ReadUint64 decodes a big-endian uint64 from the first 8 bytes of buf.
func ReadUint64(buf []byte) uint64 {
	return binary.BigEndian.Uint64(buf)
}

func ReadFloat64(buf []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(buf))
}
