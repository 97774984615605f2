// Package apetag reads APEv1 and APEv2 tags from the end of media files.
//
// APE tags are key/value metadata appended to Monkey's Audio, Musepack,
// WavPack, TTA and OptimFROG files, and sometimes to MP3s. apetag finds the
// tag, decodes its items and hands them back without touching the rest of
// the file.
//
// # Quick Start
//
//	tag, err := apetag.Open("song.ape")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s - %s (%s)\n",
//		tag.Tags.GetFirst("Artist"),
//		tag.Tags.GetFirst("Title"),
//		tag.Tags.GetFirst("date"))
//
// # Finding the Tag
//
// By default only the last 32 bytes are probed for a footer. Files with a
// trailer after the tag, typically an ID3v1 block on MP3s, need
// WithSlowScan, which reads the file from the start looking for the
// "APETAGEX" preamble.
//
// # Items
//
// Only UTF-8 items are returned; binary items such as cover art are
// skipped. Two keys are normalized: "Year" and "Record Date" become "date",
// and any "date" value is cut to its first four bytes, the year.
//
// A damaged item ends the item sequence. Everything before it is returned;
// nothing after it is. The declared count in the header is advisory, and a
// mismatch is reported as a Warning rather than an error.
//
// # Low-level Access
//
// Load returns a Session that yields items one at a time:
//
//	s, err := apetag.Load(f)
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//	for key, value := range s.All() {
//		fmt.Printf("%s=%s\n", key, value)
//	}
//
// Both Load and Read leave the reader's position where they found it.
//
// # Error Handling
//
// Failures to find or load a tag are returned as typed errors that match
// the sentinels ErrNotFound, ErrOversize and ErrIO with errors.Is:
//
//	tag, err := apetag.Open(path)
//	switch {
//	case errors.Is(err, apetag.ErrNotFound):
//		// no tag
//	case err != nil:
//		return err
//	}
//
// # Logging
//
// Pass WithLogger to receive debug output through log/slog: where the tag
// was found, why an item sequence stopped, and oversize rejections.
package apetag
