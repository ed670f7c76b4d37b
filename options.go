package kdgo

// Options contains configuration options for tree construction.
type Options struct {
	// NumThreads is the number of worker goroutines used during
	// construction. It must be >= 1. Construction with NumThreads > 1
	// produces a tree structurally identical to a single-threaded build;
	// parallelism affects performance only.
	NumThreads int

	// LeafSize is the maximum number of points stored in a leaf node.
	LeafSize int

	// Logger receives structured build diagnostics. Defaults to a
	// no-op logger.
	Logger *Logger
}

// DefaultOptions contains the default configuration options for tree
// construction.
var DefaultOptions = Options{
	NumThreads: 1,
	LeafSize:   20,
}

// WithNumThreads configures the number of construction workers.
func WithNumThreads(n int) func(o *Options) {
	return func(o *Options) {
		o.NumThreads = n
	}
}

// WithLeafSize configures the maximum number of points per leaf.
func WithLeafSize(n int) func(o *Options) {
	return func(o *Options) {
		o.LeafSize = n
	}
}

// WithLogger configures the logger used for build diagnostics.
func WithLogger(l *Logger) func(o *Options) {
	return func(o *Options) {
		o.Logger = l
	}
}
