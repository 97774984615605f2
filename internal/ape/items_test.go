package ape

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/apetag/internal/apetest"
)

// session wraps a raw body the way Load would.
func session(body []byte) *Session {
	return &Session{
		body:   body,
		header: Header{Version: Version2, Size: uint32(len(body))},
		logger: (&Loader{}).logger(),
	}
}

func TestNext_AliasAndTruncate(t *testing.T) {
	s := session(apetest.Items(
		apetest.Text("Artist", "Queen"),
		apetest.Text("Year", "1999-08-11"),
	))

	item, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, Item{Key: "Artist", Value: []byte("Queen")}, item)

	item, ok = s.Next()
	require.True(t, ok)
	assert.Equal(t, Item{Key: "date", Value: []byte("1999")}, item)

	_, ok = s.Next()
	assert.False(t, ok)
}

func TestNext_KeyNormalization(t *testing.T) {
	tests := []struct {
		key, value         string
		wantKey, wantValue string
	}{
		{"Year", "1999", "date", "1999"},
		{"YEAR", "1999-W34", "date", "1999"},
		{"Record Date", "1999-08-11 12:34:56", "date", "1999"},
		{"record date", "1999-08", "date", "1999"},
		{"DATE", "2001-01-01", "DATE", "2001"},
		{"Date", "99", "Date", "99"},
		{"Year", "", "date", ""},
		{"Years", "1999-08-11", "Years", "1999-08-11"},
		{"Recording Date", "1999-08-11", "Recording Date", "1999-08-11"},
		{"Title", "1999-08-11", "Title", "1999-08-11"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			s := session(apetest.Items(apetest.Text(tt.key, tt.value)))
			item, ok := s.Next()
			require.True(t, ok)
			assert.Equal(t, tt.wantKey, item.Key)
			assert.Equal(t, tt.wantValue, item.Text())
		})
	}
}

func TestNext_ValueLengthBeyondBody(t *testing.T) {
	body := apetest.Items(
		apetest.Text("Artist", "Queen"),
		apetest.Text("Title", "Bohemian Rhapsody"),
	)
	bad := apetest.Items(apetest.Text("Album", "Opera"))
	binary.LittleEndian.PutUint32(bad, 10_000)
	body = append(body, bad...)
	body = append(body, apetest.Items(apetest.Text("Genre", "Rock"))...)

	s := session(body)
	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Artist", items[0].Key)
	assert.Equal(t, "Title", items[1].Key)

	for range 3 {
		_, ok := s.Next()
		assert.False(t, ok)
	}
}

func TestNext_UnterminatedKey(t *testing.T) {
	body := apetest.Items(apetest.Text("Artist", "Queen"))
	tail := []byte{0, 0, 0, 0, 0, 0, 0, 0, 'K', 'e', 'y'}
	s := session(append(body, tail...))

	_, ok := s.Next()
	require.True(t, ok)
	_, ok = s.Next()
	assert.False(t, ok)
}

func TestNext_KeyTerminatorAtBound(t *testing.T) {
	// The NUL may sit in the last byte before the value.
	body := apetest.Items(apetest.Text("K", "v"))
	s := session(body)

	item, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, Item{Key: "K", Value: []byte("v")}, item)
	assert.Equal(t, len(body), s.Offset())
}

func TestNext_SkipsBinaryItems(t *testing.T) {
	cover := []byte("front.jpg\x00\xff\xd8\xff\xe0")
	s := session(apetest.Items(
		apetest.Text("Artist", "Queen"),
		apetest.Binary("Cover Art (Front)", cover),
		apetest.Item{Key: "Link", Value: []byte("http://example.com"), Flags: apetest.FlagExternal},
		apetest.Item{Key: "Odd", Value: []byte("x"), Flags: apetest.FlagReservedValue},
		apetest.Text("Title", "Innuendo"),
	))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Artist", items[0].Key)
	assert.Equal(t, Item{Key: "Title", Value: []byte("Innuendo")}, items[1])
	assert.Equal(t, 3, s.Skipped())
}

func TestNext_ReadOnlyFlagIsText(t *testing.T) {
	// Bit 0 marks an item read-only and does not change its encoding.
	s := session(apetest.Items(apetest.Item{Key: "Title", Value: []byte("x"), Flags: 1}))
	item, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, "Title", item.Key)
}

func TestNext_OnlyBinaryItems(t *testing.T) {
	s := session(apetest.Items(apetest.Binary("Cover Art (Back)", []byte{1, 2, 3})))
	_, ok := s.Next()
	assert.False(t, ok)
	assert.Equal(t, 1, s.Skipped())
	assert.Zero(t, s.Offset(), "cursor does not move when the sequence ends")

	_, ok = s.Next()
	assert.False(t, ok)
	assert.Equal(t, 1, s.Skipped())
}

func TestNext_TrailingBinaryItems(t *testing.T) {
	s := session(apetest.Items(
		apetest.Text("Artist", "Queen"),
		apetest.Binary("Cover Art (Front)", []byte{0xff, 0xd8}),
		apetest.Binary("Cover Art (Back)", []byte{0xff, 0xd8}),
	))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, s.Skipped())
}

func TestNext_ShortTail(t *testing.T) {
	for n := 0; n <= itemHeaderSize; n++ {
		s := session(make([]byte, n))
		_, ok := s.Next()
		assert.False(t, ok, "tail of %d bytes", n)
	}
}

func TestNext_RawValueBytes(t *testing.T) {
	value := []byte{'a', 0, 'b', 0xC3, 0xA9, 0xFF}
	s := session(apetest.Items(apetest.Item{Key: "Comment", Value: value}))

	item, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, value, item.Value)
}

func TestNext_ValueIsCopied(t *testing.T) {
	body := apetest.Items(apetest.Text("Artist", "Queen"))
	s := session(body)
	item, ok := s.Next()
	require.True(t, ok)

	for i := range body {
		body[i] = 0
	}
	assert.Equal(t, "Queen", item.Text())
}

func TestNext_StopsAtFooter(t *testing.T) {
	tag := apetest.Tag(apetest.Text("Artist", "Queen"))
	s := session(tag)

	items := s.Items()
	require.Len(t, items, 1)
	assert.Less(t, s.Offset(), len(tag))
}

func TestNext_RoundTrip(t *testing.T) {
	in := []apetest.Item{
		apetest.Text("Artist", "Freddie Mercury"),
		apetest.Text("Album", "Mr. Bad Guy"),
		apetest.Text("Title", "Living on My Own"),
		apetest.Text("Track", "7/11"),
		apetest.Text("Genre", "Pop"),
		apetest.Text("Record Date", "1985-04-29"),
		apetest.Text("Comment", "ünïcödé ✓"),
		apetest.Text("Empty", ""),
	}
	s := session(apetest.Items(in...))

	var got []Item
	for key, value := range s.All() {
		got = append(got, Item{Key: key, Value: value})
	}
	require.Len(t, got, len(in))

	for i, it := range in {
		if it.Key == "Record Date" {
			assert.Equal(t, Item{Key: "date", Value: []byte("1985")}, got[i])
			continue
		}
		assert.Equal(t, it.Key, got[i].Key)
		assert.True(t, bytes.Equal(it.Value, got[i].Value), "value of %s", it.Key)
	}
}

func TestAll_StopsEarly(t *testing.T) {
	s := session(apetest.Items(
		apetest.Text("A1", "1"),
		apetest.Text("A2", "2"),
		apetest.Text("A3", "3"),
	))

	for key := range s.All() {
		if key == "A1" {
			break
		}
	}

	// The cursor moved past the first item only.
	item, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, "A2", item.Key)
}

func TestSession_Close(t *testing.T) {
	s := session(apetest.Items(apetest.Text("Artist", "Queen")))
	s.Close()

	_, ok := s.Next()
	assert.False(t, ok)
}
