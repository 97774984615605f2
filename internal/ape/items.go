package ape

import (
	"bytes"
	"iter"
	"log/slog"
	"strings"

	"github.com/simonhull/apetag/internal/binary"
)

// itemHeaderSize is the value length plus the item flags.
const itemHeaderSize = 8

// Item is one text item of a tag.
type Item struct {
	Key   string
	Value []byte // raw bytes, not NUL-terminated
}

// Text returns the value as a string.
func (it Item) Text() string {
	return string(it.Value)
}

// Session owns one loaded tag body and a cursor over its items.
//
// A Session is not safe for concurrent use.
type Session struct {
	logger  *slog.Logger
	path    string
	body    []byte
	header  Header
	pos     int
	skipped int
	done    bool
}

// Header returns the decoded header or footer block.
func (s *Session) Header() Header {
	return s.header
}

// Count returns the declared item count. It is not checked against the
// items the body actually holds.
func (s *Session) Count() int {
	return int(s.header.Count)
}

// Offset returns how many body bytes the cursor has consumed.
func (s *Session) Offset() int {
	return s.pos
}

// Skipped returns how many well-framed binary items have been stepped
// over, including any that trail the last text item.
func (s *Session) Skipped() int {
	return s.skipped
}

// Close releases the tag body. Next reports false afterwards.
func (s *Session) Close() {
	s.body = nil
	s.done = true
}

// Next returns the next text item.
//
// Binary items are skipped. The sequence ends at the end of the body or at
// the first item whose framing is damaged; both look the same to the
// caller. Once Next has returned false it always returns false.
func (s *Session) Next() (Item, bool) {
	if s.done {
		return Item{}, false
	}
	if s.pos >= len(s.body) {
		s.done = true
		return Item{}, false
	}

	item, n, skipped, reason := parseItem(s.body[s.pos:])
	s.skipped += skipped
	if reason != "" {
		s.logger.Debug("item sequence stopped", "path", s.path, "offset", s.pos+n, "reason", reason)
		s.done = true
		return Item{}, false
	}
	s.pos += n
	return item, true
}

// All returns an iterator over the remaining items as key/value pairs.
// It shares the Session's cursor.
func (s *Session) All() iter.Seq2[string, []byte] {
	return func(yield func(string, []byte) bool) {
		for {
			item, ok := s.Next()
			if !ok || !yield(item.Key, item.Value) {
				return
			}
		}
	}
}

// Items drains the remaining items into a slice.
func (s *Session) Items() []Item {
	var items []Item
	for {
		item, ok := s.Next()
		if !ok {
			return items
		}
		items = append(items, item)
	}
}

// parseItem decodes the first text item in b, skipping binary items before
// it. It returns the item, the bytes consumed and the number of binary items
// skipped, or a non-empty reason when no item could be read.
func parseItem(b []byte) (item Item, pos, skipped int, reason string) {
	size := len(b)

	for size-pos > itemHeaderSize {
		valLen, _ := binary.Uint32LE(b, pos)
		flags, _ := binary.Uint32LE(b, pos+4)
		pos += itemHeaderSize

		// Room left for the key and its terminator.
		maxKeyLen := int64(size-pos) - int64(valLen) - 1
		if maxKeyLen < 0 {
			return Item{}, pos, skipped, "value length exceeds tag"
		}

		keyLen := bytes.IndexByte(b[pos:pos+int(maxKeyLen)+1], 0)
		if keyLen < 0 {
			return Item{}, pos, skipped, "unterminated key"
		}

		if flags&itemEncodingMask != 0 {
			pos += keyLen + 1 + int(valLen)
			skipped++
			continue
		}

		key := string(b[pos : pos+keyLen])
		pos += keyLen + 1
		value := bytes.Clone(b[pos : pos+int(valLen)])
		pos += int(valLen)

		key, value = normalize(key, value)
		return Item{Key: key, Value: value}, pos, skipped, ""
	}

	if pos == 0 {
		return Item{}, pos, skipped, "truncated item header"
	}
	return Item{}, pos, skipped, "no text item before end of tag"
}

// normalize maps the year keys onto "date" and cuts dates down to the year.
func normalize(key string, value []byte) (string, []byte) {
	if strings.EqualFold(key, "record date") || strings.EqualFold(key, "year") {
		key = "date"
	}
	if strings.EqualFold(key, "date") && len(value) > 4 {
		value = value[:4]
	}
	return key, value
}
