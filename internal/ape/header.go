package ape

import (
	"github.com/simonhull/apetag/internal/binary"
)

// Block layout constants.
const (
	// Preamble opens every header and footer block.
	Preamble = "APETAGEX"

	// BlockSize is the on-disk size of a header or footer block.
	BlockSize = 32

	// MaxTagSize is the largest tag body Load accepts.
	MaxTagSize = 1024 * 1024

	// Version1 and Version2 are the published version numbers.
	Version1 = 1000
	Version2 = 2000

	// flagHeader is bit 29 of the global flags. Load treats a block with
	// this bit clear as a footer.
	flagHeader = 1 << 29

	// itemEncodingMask covers the per-item encoding bits; zero means UTF-8.
	itemEncodingMask = 6
)

// Header is a decoded header or footer block.
type Header struct {
	Version uint32 // 1000 or 2000
	Size    uint32 // bytes of items plus one block, header excluded
	Count   uint32 // declared number of items
	Flags   uint32 // global flags; 0 for version 1000
}

// IsFooter reports whether Load will treat the block as a footer and seek
// back from the end of the file to reach the items.
func (h Header) IsFooter() bool {
	return h.Flags&flagHeader == 0
}

// IsV1 reports whether the block declares version 1.0.
func (h Header) IsV1() bool { return h.Version == Version1 }

// IsV2 reports whether the block declares version 2.0.
func (h Header) IsV2() bool { return h.Version == Version2 }

// DecodeHeader decodes a 32-byte block.
//
// It returns false if block is short or does not start with the preamble.
// No range checks are made on the decoded fields.
func DecodeHeader(block []byte) (Header, bool) {
	if len(block) < BlockSize || string(block[:len(Preamble)]) != Preamble {
		return Header{}, false
	}

	var h Header
	h.Version, _ = binary.Uint32LE(block, 8)
	h.Size, _ = binary.Uint32LE(block, 12)
	h.Count, _ = binary.Uint32LE(block, 16)
	h.Flags, _ = binary.Uint32LE(block, 20)
	return h, true
}
