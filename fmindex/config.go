package fmindex

// BuildConfig controls construction-time resource usage (spec.md §5): it
// never affects query behavior, since the resulting index is identical
// bit-for-bit regardless of Workers — only how many goroutines
// cooperate to build it.
type BuildConfig struct {
	// Workers is the number of goroutines used to encode input
	// sequences into disjoint ranges of the concatenated symbol stream
	// in parallel. Workers <= 1 encodes sequentially on the calling
	// goroutine. There is no default worker pool: callers choose their
	// own thread count, per spec.md §5's "coarse-grained, caller-chosen
	// thread count."
	Workers int
}

// DefaultConfig returns the sequential (Workers: 1) configuration Build
// and BuildBidirectional use.
func DefaultConfig() BuildConfig {
	return BuildConfig{Workers: 1}
}
