// Package binary provides byte-level reading primitives for tag decoding.
package binary

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// maxEmptyReads bounds how many (0, nil) reads ReadFull tolerates in a row.
const maxEmptyReads = 100

// IsTransient reports whether err is an interrupted or would-block error
// that is worth retrying.
func IsTransient(err error) bool {
	return errors.Is(err, syscall.EINTR) || errors.Is(err, syscall.EAGAIN)
}

// ReadFull reads exactly len(buf) bytes from r.
//
// Transient errors are retried. A clean end of input before buf is full is
// reported as io.ErrUnexpectedEOF (or io.EOF if nothing was read), matching
// io.ReadFull.
func ReadFull(r io.Reader, buf []byte) (int, error) {
	n, empty := 0, 0
	for n < len(buf) {
		got, err := r.Read(buf[n:])
		n += got
		if err != nil {
			if IsTransient(err) {
				continue
			}
			if errors.Is(err, io.EOF) {
				if n == 0 {
					return 0, io.EOF
				}
				if n < len(buf) {
					return n, io.ErrUnexpectedEOF
				}
				return n, nil
			}
			return n, err
		}
		if got == 0 {
			empty++
			if empty >= maxEmptyReads {
				return n, io.ErrNoProgress
			}
			continue
		}
		empty = 0
	}
	return n, nil
}

// SafeReader wraps io.ReaderAt with bounds checking and helpful error messages.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// Path returns the file path associated with this reader.
func (sr *SafeReader) Path() string {
	return sr.path
}

// Size returns the size the reader was created with.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// ReadAt reads len(b) bytes at off, naming what is being read in any error.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if off < 0 || off >= sr.size {
		return fmt.Errorf("%s: offset %d out of bounds (file size: %d) while reading %s",
			sr.path, off, sr.size, what)
	}

	if off+int64(len(b)) > sr.size {
		return fmt.Errorf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s",
			sr.path, len(b), off, sr.size, what)
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%s: failed to read %s at offset %d: %w", sr.path, what, off, err)
	}

	if n < len(b) {
		return fmt.Errorf("%s: short read for %s at offset %d: got %d bytes, expected %d",
			sr.path, what, off, n, len(b))
	}

	return nil
}

// Magic reads n bytes at off and returns them as a string, or "" if the
// read falls outside the file.
func (sr *SafeReader) Magic(off int64, n int) string {
	buf := make([]byte, n)
	if err := sr.ReadAt(buf, off, "magic bytes"); err != nil {
		return ""
	}
	return string(buf)
}
