package search

import "github.com/fmindex-go/fmindex/searchscheme"

// CachedSearch memoizes the expanded Scheme derived from a
// (sigma, kMin, kMax, length) key, regenerating only when that key
// changes — spec §4.8's "per-thread cache of the last (k_min, k_max, L)
// triple and its expanded scheme". A *CachedSearch is not safe for
// concurrent use from multiple goroutines; callers wanting one cache per
// worker should construct one CachedSearch per goroutine, matching the
// "thread-local" framing in the source.
//
// The key additionally includes sigma (spec §9's second open question):
// the source's cache keys only on (k_min, k_max, L), which is incorrect
// if two queries share a cache but run against indices of different
// alphabet size, since NodeCount-driven generators pick different
// schemes for different sigma. Grounded on
// orig:fmindex-collection/search/CachedSearchScheme.h.
type CachedSearch struct {
	generate func(kMin, kMax int) searchscheme.Scheme

	valid      bool
	sigma      int
	kMin, kMax int
	length     int
	scheme     searchscheme.Scheme
}

// NewCachedSearch wraps a scheme generator (e.g. generator.H2 partially
// applied over part lengths and sigma) with memoization.
func NewCachedSearch(generate func(kMin, kMax int) searchscheme.Scheme) *CachedSearch {
	return &CachedSearch{generate: generate}
}

// Scheme returns the expanded scheme for this (sigma, kMin, kMax,
// length) key, recomputing via generate+ExpandScheme only if the key
// differs from the last call.
func (c *CachedSearch) Scheme(sigma, kMin, kMax, length int, partCounts []int) searchscheme.Scheme {
	if c.valid && c.sigma == sigma && c.kMin == kMin && c.kMax == kMax && c.length == length {
		return c.scheme
	}
	base := c.generate(kMin, kMax)
	c.scheme = searchscheme.ExpandScheme(base, partCounts)
	c.sigma, c.kMin, c.kMax, c.length = sigma, kMin, kMax, length
	c.valid = true
	return c.scheme
}
