package matroska

import "github.com/rs/zerolog"

// defaultMaxElementSize, defaultMaxDepth and defaultSeekChainLimit are
// the ceilings applied unless overridden with an Option. They exist so
// a hostile or truncated file cannot force unbounded recursion or an
// unbounded single allocation.
const (
	defaultMaxElementSize = 1024 * 1024 * 1024
	defaultMaxDepth       = 16
	defaultSeekChainLimit = 8
)

// config collects everything an Option can set, with the package
// defaults already applied.
type config struct {
	parseOptions
	seekChainLimit int
	logger         *zerolog.Logger
}

func defaultConfig() config {
	return config{
		parseOptions: parseOptions{
			maxElementSize: defaultMaxElementSize,
			maxDepth:       defaultMaxDepth,
			strictASCII:    false,
		},
		seekChainLimit: defaultSeekChainLimit,
	}
}

// Option configures how Open/Parse reads a stream. The functional
// options pattern mirrors how this codebase's sibling packages
// configure their constructors instead of growing a wide-parameter
// struct into every call site.
type Option func(*config)

// WithMaxElementSize caps the declared size any single element may
// advertise; anything above it is reported as a corrupt file. Zero
// disables the ceiling.
func WithMaxElementSize(n uint64) Option {
	return func(c *config) { c.maxElementSize = n }
}

// WithMaxRecursionDepth caps how deeply master elements may nest.
func WithMaxRecursionDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}

// WithSeekChainLimit caps how many chained SeekHeads are followed
// before a loop is assumed and the chase aborts.
func WithSeekChainLimit(n int) Option {
	return func(c *config) { c.seekChainLimit = n }
}

// WithStrictASCII controls whether String-kind bodies (codec IDs,
// language codes, and similar short ASCII fields) are validated as
// strict 7-bit ASCII rather than as UTF-8 (the default).
func WithStrictASCII(strict bool) Option {
	return func(c *config) { c.strictASCII = strict }
}

// WithLogger attaches a diagnostic logger; nil (the default) disables
// logging entirely. Logging is a side channel only -- it never changes
// parse outcomes.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = &l }
}

func (c config) log() *zerolog.Logger {
	if c.logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return c.logger
}
