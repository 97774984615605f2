package binary

import "encoding/binary"

// Uint32LE decodes a little-endian uint32 at off.
// The second result is false if fewer than four bytes remain.
//
// Example:
//
//	valLen, ok := binary.Uint32LE(body, pos)
func Uint32LE(b []byte, off int) (uint32, bool) {
	if off < 0 || off+4 > len(b) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b[off:]), true
}
