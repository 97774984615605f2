package apetag

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/simonhull/apetag/internal/ape"
)

// Tag is a fully read APE tag.
//
// Items holds the text items in file order, after "Year" and "Record Date"
// have been renamed to "date" and dates cut down to the year. Tags indexes
// the same items by case-folded key.
type Tag struct {
	// Path of the file, empty when read from a bare io.ReadSeeker
	Path string

	// Host format detected from the file's magic bytes
	Container Container

	// Decoded header or footer block
	Header Header

	// Declared item count (advisory)
	Count int

	// Binary items stepped over while reading
	Skipped int

	// Text items in file order
	Items []Item

	// Items indexed by case-folded key
	Tags Tags

	// Warnings encountered while reading (non-fatal issues)
	Warnings []Warning
}

// Read reads the APE tag from rs.
//
// The position of rs is the same after Read returns as before. If rs also
// implements io.ReaderAt the host container is detected as well.
//
// Example:
//
//	tag, err := apetag.Read(bytes.NewReader(data))
//	if errors.Is(err, apetag.ErrNotFound) {
//		// no tag
//	}
func Read(rs io.ReadSeeker, opts ...Option) (*Tag, error) {
	return read(rs, "", applyOptions(opts))
}

// Open opens the file at path, reads its APE tag and closes the file.
//
// Example:
//
//	tag, err := apetag.Open("song.ape")
//	if err != nil {
//		return err
//	}
//	fmt.Println(tag.Tags.GetFirst("Artist"))
func Open(path string, opts ...Option) (*Tag, error) {
	return open(path, applyOptions(opts))
}

// OpenContext is Open with a context check before any I/O happens.
//
// Reading a single tag is bounded by the 1 MiB size cap and is not
// interruptible once started.
func OpenContext(ctx context.Context, path string, opts ...Option) (*Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany reads the tags of many files concurrently.
//
// Results are returned in the same order as paths. A file without a tag
// yields a nil entry; any other failure cancels the batch and is returned.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	tags, err := apetag.OpenMany(ctx, paths, apetag.WithSlowScan())
//	if err != nil {
//		log.Fatal(err)
//	}
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*Tag, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	options := applyOptions(opts)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(options.concurrency)

	results := make([]*Tag, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			tag, err := open(path, options)
			if errors.Is(err, ErrNotFound) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = tag
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func open(path string, options *readOptions) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return read(f, path, options)
}

func read(rs io.ReadSeeker, path string, options *readOptions) (*Tag, error) {
	l := &ape.Loader{
		Path:   path,
		Slow:   options.slowScan,
		Logger: options.logger,
	}

	s, err := l.Load(rs)
	if err != nil {
		return nil, fmt.Errorf("load tag: %w", err)
	}
	defer s.Close()

	tag := &Tag{
		Path:   path,
		Header: s.Header(),
		Count:  s.Count(),
	}

	for item, ok := s.Next(); ok; item, ok = s.Next() {
		tag.Items = append(tag.Items, item)
		tag.Tags.Add(item.Key, item.Text())
	}
	tag.Skipped = s.Skipped()

	if got := len(tag.Items) + tag.Skipped; got != tag.Count {
		tag.Warnings = append(tag.Warnings, Warning{
			Stage:   "items",
			Message: fmt.Sprintf("declared %d items, read %d", tag.Count, got),
			Offset:  int64(s.Offset()),
		})
	}

	if ra, ok := rs.(io.ReaderAt); ok {
		size, err := ape.FileSize(rs)
		if err == nil {
			tag.Container, err = DetectContainer(ra, size, path)
		}
		if err != nil {
			tag.Warnings = append(tag.Warnings, Warning{
				Stage:   "container",
				Message: fmt.Sprintf("detect container: %v", err),
			})
		}
	}

	if options.strictParsing && len(tag.Warnings) > 0 {
		w := tag.Warnings[0]
		return nil, &CorruptedTagError{Path: path, Offset: w.Offset, Reason: w.Message}
	}

	if options.ignoreWarnings {
		tag.Warnings = nil
	}

	options.logger.Debug("tag read", "path", path, "items", len(tag.Items), "container", tag.Container.String())
	return tag, nil
}

// Fingerprint returns an xxHash64 digest of the tag's items in order.
//
// Two tags with the same keys and values in the same order share a
// fingerprint regardless of the file they came from, which makes it useful
// for spotting duplicated metadata across a library.
func (t *Tag) Fingerprint() uint64 {
	d := xxhash.New()
	var n [4]byte
	for _, item := range t.Items {
		binary.LittleEndian.PutUint32(n[:], uint32(len(item.Key)))
		_, _ = d.Write(n[:])
		_, _ = d.WriteString(item.Key)
		binary.LittleEndian.PutUint32(n[:], uint32(len(item.Value)))
		_, _ = d.Write(n[:])
		_, _ = d.Write(item.Value)
	}
	return d.Sum64()
}

// Len returns the number of text items.
func (t *Tag) Len() int {
	return len(t.Items)
}
