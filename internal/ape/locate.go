package ape

import (
	"io"
	"io/fs"
	"log/slog"

	"github.com/simonhull/apetag/internal/binary"
	"github.com/simonhull/apetag/internal/types"
)

// scanChunkSize is the read size used by the linear scan.
const scanChunkSize = 4096

// Loader finds and loads tags. The zero value probes only the end of the
// file and logs nothing.
type Loader struct {
	// Logger receives debug output; nil discards it.
	Logger *slog.Logger

	// Path is used in error messages only.
	Path string

	// Slow enables the linear scan from the start of the file when no
	// block sits at end of file.
	Slow bool
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l.Logger
}

// Locate finds a tag block using a fast end-of-file probe and, if enabled,
// a linear scan. On success rs is positioned just past the block and the
// block's absolute offset is returned.
func Locate(rs io.ReadSeeker, slow bool) (Header, int64, error) {
	l := &Loader{Slow: slow}
	return l.Locate(rs)
}

// Locate is the Loader form of the package-level Locate.
func (l *Loader) Locate(rs io.ReadSeeker) (Header, int64, error) {
	log := l.logger()

	// A file shorter than one block cannot hold a tag.
	pos, err := rs.Seek(-BlockSize, io.SeekEnd)
	if err != nil {
		log.Debug("no room for a tag block", "path", l.Path, "error", err)
		return Header{}, 0, &types.NotFoundError{Path: l.Path}
	}

	if h, ok := readBlock(rs); ok {
		log.Debug("tag block at end of file", "path", l.Path, "offset", pos, "footer", h.IsFooter())
		return h, pos, nil
	}

	if !l.Slow {
		return Header{}, 0, &types.NotFoundError{Path: l.Path}
	}

	log.Debug("no tag block at end of file, scanning", "path", l.Path)
	pos, err = l.scan(rs)
	if err != nil {
		return Header{}, 0, err
	}

	if _, err := rs.Seek(pos, io.SeekStart); err != nil {
		return Header{}, 0, &types.IOError{Path: l.Path, Op: "seek", Offset: pos, Err: err}
	}
	h, ok := readBlock(rs)
	if !ok {
		return Header{}, 0, &types.NotFoundError{Path: l.Path, Slow: true}
	}
	log.Debug("tag block found by scan", "path", l.Path, "offset", pos, "footer", h.IsFooter())
	return h, pos, nil
}

// readBlock reads and decodes one block from the current position.
func readBlock(r io.Reader) (Header, bool) {
	block := make([]byte, BlockSize)
	if _, err := binary.ReadFull(r, block); err != nil {
		return Header{}, false
	}
	return DecodeHeader(block)
}

// scan reads rs from the start and returns the offset of the first
// preamble. Read errors other than transient ones end the scan as not found.
func (l *Loader) scan(rs io.ReadSeeker) (int64, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, &types.IOError{Path: l.Path, Op: "seek", Offset: 0, Err: err}
	}

	var m matcher
	buf := make([]byte, scanChunkSize)
	var pos int64
	empty := 0
	for {
		got, err := rs.Read(buf)
		for i := range got {
			if m.feed(buf[i]) {
				return pos + int64(i) + 1 - int64(len(Preamble)), nil
			}
		}
		pos += int64(got)

		if err != nil {
			if binary.IsTransient(err) {
				continue
			}
			if err != io.EOF {
				l.logger().Debug("scan aborted", "path", l.Path, "offset", pos, "error", err)
			}
			return 0, &types.NotFoundError{Path: l.Path, Slow: true}
		}
		if got == 0 {
			if empty++; empty >= 100 {
				return 0, &types.NotFoundError{Path: l.Path, Slow: true}
			}
			continue
		}
		empty = 0
	}
}

// matcher tracks how much of the preamble has been seen.
//
// On a mismatch it falls back to the longest preamble prefix that is still
// a suffix of the input, so overlapping starts such as "APETAPETAGEX" are
// found.
type matcher struct {
	n int
}

// preambleFallback[i] is the state to fall back to after i+1 bytes of the
// preamble matched and the next byte did not.
var preambleFallback = [len(Preamble) - 1]int{0, 0, 0, 0, 1, 0, 0}

// feed consumes one byte and reports whether the preamble just completed.
func (m *matcher) feed(c byte) bool {
	for m.n > 0 && c != Preamble[m.n] {
		m.n = preambleFallback[m.n-1]
	}
	if c == Preamble[m.n] {
		m.n++
	}
	if m.n == len(Preamble) {
		m.n = 0
		return true
	}
	return false
}

// FileSize returns the size of rs.
//
// Anything with a Stat method (such as *os.File) reports 0 unless it is a
// regular file, which makes a footer-relative seek fail. In-memory readers
// report Size, and anything else is measured by seeking to the end.
func FileSize(rs io.ReadSeeker) (int64, error) {
	switch v := rs.(type) {
	case interface{ Stat() (fs.FileInfo, error) }:
		fi, err := v.Stat()
		if err != nil || !fi.Mode().IsRegular() {
			return 0, nil
		}
		return fi.Size(), nil
	case interface{ Size() int64 }:
		return v.Size(), nil
	}

	cur, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := rs.Seek(cur, io.SeekStart); err != nil {
		return 0, err
	}
	return end, nil
}
