package host

import "encoding/binary"

// Uint64ToBigEndian marshals a uint64 to a fixed 8-byte big-endian slice.
func Uint64ToBigEndian(v uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, v)
	return bz
}

// BigEndianToUint64 returns a uint64 from big-endian bytes. Returns 0
// for empty input.
func BigEndianToUint64(bz []byte) uint64 {
	if len(bz) == 0 {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}
