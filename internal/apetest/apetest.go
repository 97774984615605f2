// Package apetest builds APE tag fixtures for tests.
package apetest

import (
	"bytes"

	"github.com/simonhull/apetag/internal/binary"
)

// Global and item flag bits.
const (
	FlagHeader        = 1 << 29
	FlagHasHeader     = 1 << 31
	FlagBinary        = 1 << 1
	FlagExternal      = 2 << 1
	FlagReservedValue = 3 << 1
)

// Item is one item to encode.
type Item struct {
	Key   string
	Value []byte
	Flags uint32
}

// Text returns a UTF-8 item.
func Text(key, value string) Item {
	return Item{Key: key, Value: []byte(value)}
}

// Binary returns an item flagged as binary data.
func Binary(key string, value []byte) Item {
	return Item{Key: key, Value: value, Flags: FlagBinary}
}

// Items encodes items back to back.
func Items(items ...Item) []byte {
	buf := &bytes.Buffer{}
	w := binary.NewSafeWriter(buf)
	for _, it := range items {
		w.WriteUint32LE(uint32(len(it.Value)))
		w.WriteUint32LE(it.Flags)
		w.WriteCString(it.Key)
		w.WriteBytes(it.Value)
	}
	return buf.Bytes()
}

// Block encodes a 32-byte header or footer block.
func Block(version, size, count, flags uint32) []byte {
	buf := &bytes.Buffer{}
	w := binary.NewSafeWriter(buf)
	w.WriteString("APETAGEX")
	w.WriteUint32LE(version)
	w.WriteUint32LE(size)
	w.WriteUint32LE(count)
	w.WriteUint32LE(flags)
	w.WriteZeros(8)
	return buf.Bytes()
}

// Tag encodes an APEv2 tag with a footer only: items followed by a footer
// whose size covers the items and the footer.
func Tag(items ...Item) []byte {
	body := Items(items...)
	size := uint32(len(body) + 32)
	return append(body, Block(2000, size, uint32(len(items)), 0)...)
}

// TagWithHeader encodes an APEv2 tag with both a header and a footer.
func TagWithHeader(items ...Item) []byte {
	body := Items(items...)
	size := uint32(len(body) + 32)
	count := uint32(len(items))

	out := Block(2000, size, count, FlagHasHeader|FlagHeader)
	out = append(out, body...)
	return append(out, Block(2000, size, count, FlagHasHeader)...)
}

// File returns prefix followed by the encoded tag, as a media file would
// carry it.
func File(prefix []byte, tag []byte) []byte {
	out := make([]byte, 0, len(prefix)+len(tag))
	out = append(out, prefix...)
	return append(out, tag...)
}

// Audio returns n bytes of filler that never contains the preamble.
func Audio(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(0x10 + i%0x20)
	}
	return b
}
