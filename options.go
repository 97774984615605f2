package apetag

import (
	"log/slog"
	"runtime"
)

// Option configures behavior when reading tags.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	tag, err := apetag.Open("song.mpc",
//	    apetag.WithSlowScan(),
//	    apetag.WithLogger(slog.Default()),
//	)
type Option func(*readOptions)

// readOptions holds configuration for reading tags.
type readOptions struct {
	logger         *slog.Logger
	concurrency    int  // OpenMany worker limit
	slowScan       bool // Scan the whole file when the end holds no tag
	strictParsing  bool // Fail on any warning
	ignoreWarnings bool // Suppress all warnings
}

// defaultOptions returns the default configuration.
func defaultOptions() *readOptions {
	return &readOptions{
		logger:      slog.New(slog.DiscardHandler),
		concurrency: runtime.NumCPU(),
	}
}

func applyOptions(opts []Option) *readOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithSlowScan enables the linear scan fallback.
//
// By default only the last 32 bytes of the file are probed for a tag
// footer. Files that carry a trailer after the tag (an ID3v1 block, for
// example) need the scan, which reads the file from the start until it
// finds the "APETAGEX" preamble.
//
// Example:
//
//	tag, err := apetag.Open("song.mp3", apetag.WithSlowScan())
func WithSlowScan() Option {
	return func(o *readOptions) {
		o.slowScan = true
	}
}

// WithLogger sets the logger for debug output. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *readOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default a tag whose items do not add up to its declared count is
// returned with a warning. With strict parsing enabled it is rejected with
// a CorruptedTagError.
func WithStrictParsing() Option {
	return func(o *readOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// Example:
//
//	tag, err := apetag.Open("song.ape", apetag.WithIgnoreWarnings())
//	// tag.Warnings will always be empty
func WithIgnoreWarnings() Option {
	return func(o *readOptions) {
		o.ignoreWarnings = true
	}
}

// WithConcurrency limits how many files OpenMany reads at once.
// Values below 1 are ignored. Default is runtime.NumCPU().
func WithConcurrency(n int) Option {
	return func(o *readOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}
