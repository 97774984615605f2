// Package ape locates and decodes APEv1/APEv2 tags stored at the end of a
// media file.
//
// A tag is a 32-byte header and/or footer block around a run of items:
//
//	[header 32B][item]...[item][footer 32B]  <- end of file
//
// Every block starts with the preamble "APETAGEX" followed by four
// little-endian uint32 fields (version, size, count, flags) and 8 reserved
// bytes. Each item is
//
//	valLen u32le | flags u32le | key NUL | value (valLen bytes)
//
// Load finds the tag, reads its body into a Session, and leaves the
// caller's file position untouched. Session.Next then walks the items one at
// a time, ending the sequence early when the framing is damaged instead of
// returning an error.
package ape
