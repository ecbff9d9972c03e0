package encoding

import (
	"encoding/binary"
	"math"
)

// ToBytes32 turns a uint32 into []byte len 4
func ToBytes32(in uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, in)
	return buf
}

// FromBytes32 turns the first 4 bytes of data into a uint32
func FromBytes32(data []byte) uint32 {
	return binary.BigEndian.Uint32(data)
}

// ToBytes64f turns a float64 into []byte len 8 (IEEE 754 bits)
func ToBytes64f(in float64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, math.Float64bits(in))
	return buf
}

// FromBytes64f turns the first 8 bytes of data into a float64
func FromBytes64f(data []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(data))
}

// AppendPair appends two float64 to buf, x first.
func AppendPair(buf []byte, x, y float64) []byte {
	buf = append(buf, ToBytes64f(x)...)
	return append(buf, ToBytes64f(y)...)
}

// Pair reads two float64 from the first 16 bytes of data.
func Pair(data []byte) (float64, float64) {
	return FromBytes64f(data[:8]), FromBytes64f(data[8:16])
}
