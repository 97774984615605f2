package ape

import (
	"io"

	"github.com/simonhull/apetag/internal/binary"
	"github.com/simonhull/apetag/internal/types"
)

// Load finds the tag in rs and reads its body into a new Session.
//
// The position of rs is restored before Load returns, whatever the outcome.
// On failure no partial state is returned.
func Load(rs io.ReadSeeker, slow bool) (*Session, error) {
	l := &Loader{Slow: slow}
	return l.Load(rs)
}

// Load is the Loader form of the package-level Load.
func (l *Loader) Load(rs io.ReadSeeker) (*Session, error) {
	log := l.logger()

	saved, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, &types.IOError{Path: l.Path, Op: "seek", Err: err}
	}
	defer func() {
		if _, err := rs.Seek(saved, io.SeekStart); err != nil {
			log.Warn("restore file position", "path", l.Path, "offset", saved, "error", err)
		}
	}()

	h, _, err := l.Locate(rs)
	if err != nil {
		return nil, err
	}

	// The body ends where the file ends; step back over it.
	if h.IsFooter() {
		size, err := FileSize(rs)
		if err != nil {
			return nil, &types.IOError{Path: l.Path, Op: "stat", Err: err}
		}
		start := size - int64(h.Size)
		if _, err := rs.Seek(start, io.SeekStart); err != nil {
			return nil, &types.IOError{Path: l.Path, Op: "seek", Offset: start, Err: err}
		}
	}

	if h.Size > MaxTagSize {
		log.Debug("tag rejected", "path", l.Path, "size", h.Size, "limit", MaxTagSize)
		return nil, &types.OversizeError{Path: l.Path, Size: h.Size, Limit: MaxTagSize}
	}

	body := make([]byte, h.Size)
	if _, err := binary.ReadFull(rs, body); err != nil {
		off, _ := rs.Seek(0, io.SeekCurrent)
		return nil, &types.IOError{Path: l.Path, Op: "read", Offset: off, Err: err}
	}

	log.Debug("tag loaded", "path", l.Path, "version", h.Version, "size", h.Size, "count", h.Count)
	return &Session{header: h, body: body, logger: log, path: l.Path}, nil
}
