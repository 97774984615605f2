package apetag

import (
	"io"

	"github.com/simonhull/apetag/internal/ape"
	"github.com/simonhull/apetag/internal/types"
)

// Tags is an alias to types.Tags.
// Re-exporting from internal/types to maintain public API.
type Tags = types.Tags

// Header is a decoded APE header or footer block.
type Header = ape.Header

// Item is one text item of a tag, after key aliasing and date truncation.
type Item = ape.Item

// Session is a loaded tag body with a cursor over its items.
type Session = ape.Session

// MaxTagSize is the largest tag body that will be loaded.
const MaxTagSize = ape.MaxTagSize

// Load finds the tag in rs and returns a Session over its items.
//
// This is the low-level entry point: it does no container detection and
// collects nothing. The position of rs is left unchanged.
//
//	s, err := apetag.Load(f, apetag.WithSlowScan())
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//	for key, value := range s.All() {
//		fmt.Printf("%s=%s\n", key, value)
//	}
//
// Only WithSlowScan and WithLogger apply here.
func Load(rs io.ReadSeeker, opts ...Option) (*Session, error) {
	options := applyOptions(opts)
	l := &ape.Loader{Slow: options.slowScan, Logger: options.logger}
	return l.Load(rs)
}
