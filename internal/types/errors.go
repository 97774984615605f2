package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks. Every typed error below matches
// exactly one of these.
var (
	ErrNotFound = errors.New("ape tag not found")
	ErrCorrupt  = errors.New("ape tag corrupted")
	ErrOversize = errors.New("ape tag too large")
	ErrIO       = errors.New("ape tag i/o failure")
)

// NotFoundError is returned when no APETAGEX preamble can be located.
type NotFoundError struct {
	Path string
	// Slow reports whether the linear scan was attempted.
	Slow bool
}

func (e *NotFoundError) Error() string {
	if e.Slow {
		return withPath(e.Path, "no ape tag found (full scan)")
	}
	return withPath(e.Path, "no ape tag found at end of file")
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// OversizeError is returned when a tag declares a size above the sanity cap.
type OversizeError struct {
	Path  string
	Size  uint32
	Limit uint32
}

func (e *OversizeError) Error() string {
	return withPath(e.Path, fmt.Sprintf("tag size %d exceeds limit %d", e.Size, e.Limit))
}

// Is reports whether target is ErrOversize.
func (e *OversizeError) Is(target error) bool { return target == ErrOversize }

// IOError wraps a seek or read failure.
type IOError struct {
	Err    error
	Path   string
	Op     string // "seek", "read", "stat"
	Offset int64
}

func (e *IOError) Error() string {
	return withPath(e.Path, fmt.Sprintf("%s at offset %d: %v", e.Op, e.Offset, e.Err))
}

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool { return target == ErrIO }

// Unwrap returns the underlying I/O error.
func (e *IOError) Unwrap() error { return e.Err }

// CorruptedTagError is returned when tag structure is invalid.
type CorruptedTagError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *CorruptedTagError) Error() string {
	return withPath(e.Path, fmt.Sprintf("corrupted tag at offset %d: %s", e.Offset, e.Reason))
}

// Is reports whether target is ErrCorrupt.
func (e *CorruptedTagError) Is(target error) bool { return target == ErrCorrupt }

// withPath prefixes msg with path, if there is one.
func withPath(path, msg string) string {
	if path == "" {
		return msg
	}
	return path + ": " + msg
}

// Warning represents a non-fatal issue encountered while reading a tag.
//
// Warnings indicate problems that don't prevent item extraction but
// may indicate damaged data, such as a declared item count that does not
// match the number of items actually read.
type Warning struct {
	// Stage where the warning occurred
	Stage string // "locate", "items", "container"

	// Warning message
	Message string

	// Offset within the tag body (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
