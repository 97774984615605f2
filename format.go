package apetag

import (
	"io"

	"github.com/simonhull/apetag/internal/types"
)

// Container is an alias to types.Container.
// Re-exporting from internal/types to maintain public API.
type Container = types.Container

// Re-export all container constants.
const (
	ContainerUnknown      = types.ContainerUnknown
	ContainerMP3          = types.ContainerMP3
	ContainerMonkeysAudio = types.ContainerMonkeysAudio
	ContainerMusepack     = types.ContainerMusepack
	ContainerWavPack      = types.ContainerWavPack
	ContainerTTA          = types.ContainerTTA
	ContainerOptimFROG    = types.ContainerOptimFROG
	ContainerFLAC         = types.ContainerFLAC
)

// DetectContainer is a wrapper around types.DetectContainer.
func DetectContainer(r io.ReaderAt, size int64, path string) (Container, error) {
	return types.DetectContainer(r, size, path)
}
