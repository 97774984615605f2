package binary

import (
	"encoding/binary"
	"io"
)

// SafeWriter wraps io.Writer with position tracking and a sticky error.
type SafeWriter struct {
	w      io.Writer
	err    error
	offset int64
}

// NewSafeWriter creates a new SafeWriter.
func NewSafeWriter(w io.Writer) *SafeWriter {
	return &SafeWriter{w: w}
}

// Offset returns the current position (number of bytes written).
func (sw *SafeWriter) Offset() int64 {
	return sw.offset
}

// Err returns the first write error, if any.
func (sw *SafeWriter) Err() error {
	return sw.err
}

// WriteBytes writes raw bytes. After the first error it does nothing.
func (sw *SafeWriter) WriteBytes(b []byte) {
	if sw.err != nil {
		return
	}
	n, err := sw.w.Write(b)
	sw.offset += int64(n)
	sw.err = err
}

// WriteString writes s without a terminator.
func (sw *SafeWriter) WriteString(s string) {
	sw.WriteBytes([]byte(s))
}

// WriteCString writes s followed by a NUL byte.
func (sw *SafeWriter) WriteCString(s string) {
	sw.WriteBytes(append([]byte(s), 0))
}

// WriteUint32LE writes v in little-endian byte order.
func (sw *SafeWriter) WriteUint32LE(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	sw.WriteBytes(buf[:])
}

// WriteZeros writes n zero bytes.
func (sw *SafeWriter) WriteZeros(n int) {
	sw.WriteBytes(make([]byte, n))
}
