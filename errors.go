package apetag

import (
	"github.com/simonhull/apetag/internal/types"
)

// Sentinel errors re-exported from internal/types for errors.Is checks.
var (
	ErrNotFound = types.ErrNotFound
	ErrCorrupt  = types.ErrCorrupt
	ErrOversize = types.ErrOversize
	ErrIO       = types.ErrIO
)

// NotFoundError is an alias to types.NotFoundError.
// Re-exporting from internal/types to maintain public API.
type NotFoundError = types.NotFoundError

// OversizeError is an alias to types.OversizeError.
// Re-exporting from internal/types to maintain public API.
type OversizeError = types.OversizeError

// IOError is an alias to types.IOError.
// Re-exporting from internal/types to maintain public API.
type IOError = types.IOError

// CorruptedTagError is an alias to types.CorruptedTagError.
// Re-exporting from internal/types to maintain public API.
type CorruptedTagError = types.CorruptedTagError

// Warning is an alias to types.Warning.
// Re-exporting from internal/types to maintain public API.
type Warning = types.Warning
