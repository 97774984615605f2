package types

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// id3Prefix returns an ID3v2.4 tag of n payload bytes followed by next.
func id3Prefix(n int, footer bool, next string) []byte {
	flags := byte(0)
	if footer {
		flags = 0x10
	}
	buf := &bytes.Buffer{}
	buf.WriteString("ID3")
	buf.Write([]byte{4, 0, flags})
	buf.Write([]byte{byte(n >> 21 & 0x7F), byte(n >> 14 & 0x7F), byte(n >> 7 & 0x7F), byte(n & 0x7F)})
	buf.Write(make([]byte, n))
	if footer {
		buf.Write(make([]byte, 10))
	}
	buf.WriteString(next)
	return buf.Bytes()
}

func TestDetectContainer(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Container
	}{
		{"monkeys audio", []byte("MAC \x96\x0f\x00\x00"), ContainerMonkeysAudio},
		{"musepack sv8", []byte("MPCKSH\x00\x00"), ContainerMusepack},
		{"musepack sv7", []byte("MP+\x17\x00\x00\x00\x00"), ContainerMusepack},
		{"wavpack", []byte("wvpk\x00\x00\x00\x00"), ContainerWavPack},
		{"tta", []byte("TTA1\x01\x00\x02\x00"), ContainerTTA},
		{"optimfrog", []byte("OFR \x0f\x00\x00\x00"), ContainerOptimFROG},
		{"flac", []byte("fLaC\x00\x00\x00\x22"), ContainerFLAC},
		{"mp3 frame sync", []byte{0xFF, 0xFB, 0x90, 0x00}, ContainerMP3},
		{"mp3 with id3", id3Prefix(20, false, "\xff\xfb\x90\x00"), ContainerMP3},
		{"id3 before monkeys audio", id3Prefix(300, false, "MAC "), ContainerMonkeysAudio},
		{"id3 with footer before wavpack", id3Prefix(64, true, "wvpk"), ContainerWavPack},
		{"truncated id3", []byte("ID3\x04\x00"), ContainerMP3},
		{"unknown", []byte("RIFF\x00\x00\x00\x00WAVE"), ContainerUnknown},
		{"too small", []byte("MA"), ContainerUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectContainer(bytes.NewReader(tt.data), int64(len(tt.data)), "test")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContainer_String(t *testing.T) {
	assert.Equal(t, "Monkey's Audio", ContainerMonkeysAudio.String())
	assert.Equal(t, "Musepack", ContainerMusepack.String())
	assert.Equal(t, "Unknown", ContainerUnknown.String())
	assert.Equal(t, "Unknown", Container(99).String())
}

func TestContainer_Extensions(t *testing.T) {
	assert.Contains(t, ContainerMonkeysAudio.Extensions(), ".ape")
	assert.Contains(t, ContainerWavPack.Extensions(), ".wv")
	assert.Nil(t, ContainerUnknown.Extensions())
}
