package types

import (
	"io"

	"github.com/simonhull/apetag/internal/binary"
)

// Container is the audio format an APE tag was found in.
//
// Detection is informational only; tag location never depends on it.
type Container int

const (
	// ContainerUnknown represents an unrecognized file.
	ContainerUnknown Container = iota
	// ContainerMP3 represents MPEG audio, with or without an ID3v2 tag.
	ContainerMP3
	// ContainerMonkeysAudio represents Monkey's Audio (.ape) files.
	ContainerMonkeysAudio
	// ContainerMusepack represents Musepack SV7 and SV8 files.
	ContainerMusepack
	// ContainerWavPack represents WavPack files.
	ContainerWavPack
	// ContainerTTA represents True Audio files.
	ContainerTTA
	// ContainerOptimFROG represents OptimFROG files.
	ContainerOptimFROG
	// ContainerFLAC represents FLAC files.
	ContainerFLAC
)

// String returns the display name of the container.
func (c Container) String() string {
	switch c {
	case ContainerMP3:
		return "MP3"
	case ContainerMonkeysAudio:
		return "Monkey's Audio"
	case ContainerMusepack:
		return "Musepack"
	case ContainerWavPack:
		return "WavPack"
	case ContainerTTA:
		return "TTA"
	case ContainerOptimFROG:
		return "OptimFROG"
	case ContainerFLAC:
		return "FLAC"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this container.
func (c Container) Extensions() []string {
	switch c {
	case ContainerMP3:
		return []string{".mp3"}
	case ContainerMonkeysAudio:
		return []string{".ape", ".mac"}
	case ContainerMusepack:
		return []string{".mpc", ".mp+", ".mpp"}
	case ContainerWavPack:
		return []string{".wv"}
	case ContainerTTA:
		return []string{".tta"}
	case ContainerOptimFROG:
		return []string{".ofr", ".ofs"}
	case ContainerFLAC:
		return []string{".flac"}
	default:
		return nil
	}
}

// DetectContainer determines the container by examining magic bytes at the
// start of the file.
//
// An unrecognized signature yields ContainerUnknown with a nil error; an
// error means the first bytes could not be read at all.
func DetectContainer(r io.ReaderAt, size int64, path string) (Container, error) {
	if size < 4 {
		return ContainerUnknown, nil
	}

	sr := binary.NewSafeReader(r, size, path)

	magic := make([]byte, 4)
	if err := sr.ReadAt(magic, 0, "file magic bytes"); err != nil {
		return ContainerUnknown, &IOError{Path: path, Op: "read", Err: err}
	}

	if c := containerFromMagic(magic); c != ContainerUnknown {
		return c, nil
	}

	// An ID3v2 tag may precede any of these formats; look behind it.
	if string(magic[:3]) == "ID3" {
		header := make([]byte, 10)
		if err := sr.ReadAt(header, 0, "ID3v2 header"); err != nil {
			return ContainerMP3, nil
		}
		skip := int64(10 + decodeSynchsafe(header[6:10]))
		if header[5]&0x10 != 0 {
			skip += 10 // footer present
		}
		if c := containerFromMagic([]byte(sr.Magic(skip, 4))); c != ContainerUnknown {
			return c, nil
		}
		return ContainerMP3, nil
	}

	return ContainerUnknown, nil
}

// containerFromMagic matches the four bytes that open a stream.
func containerFromMagic(magic []byte) Container {
	if len(magic) < 4 {
		return ContainerUnknown
	}
	switch {
	case string(magic) == "MAC ":
		return ContainerMonkeysAudio
	case string(magic) == "MPCK", string(magic[:3]) == "MP+":
		return ContainerMusepack
	case string(magic) == "wvpk":
		return ContainerWavPack
	case string(magic) == "TTA1":
		return ContainerTTA
	case string(magic) == "OFR ":
		return ContainerOptimFROG
	case string(magic) == "fLaC":
		return ContainerFLAC
	// MPEG frame sync (11 set bits)
	case magic[0] == 0xFF && magic[1]&0xE0 == 0xE0:
		return ContainerMP3
	}
	return ContainerUnknown
}

// decodeSynchsafe decodes a synchsafe integer (7 bits per byte)
func decodeSynchsafe(b []byte) uint32 {
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}
