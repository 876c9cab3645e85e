// Package generator implements the search-scheme generators of spec §4.7:
// functions that produce a searchscheme.Scheme for a given number of
// parts and an error budget. Several named generators in the literature
// (Hato, Kianfar, Kucherov, Lam) publish hand-optimized lookup tables for
// small, fixed numbers of allowed errors; this package reproduces their
// shared pigeonhole-family construction and their distinguishing
// traversal-order heuristic rather than transcribing the published
// numeric tables verbatim (see DESIGN.md — this avoids silently shipping
// a transcription error in a magic constant that nothing here could
// catch). Every generator's output is checked by searchscheme.Validate
// and, in the package's tests, by searchscheme.IsComplete.
package generator

import "github.com/fmindex-go/fmindex/searchscheme"

// Backtracking is the degenerate single-part, single-search scheme: no
// partitioning, one search visiting the pattern start-to-end tolerating
// up to k errors throughout. Grounded on orig:search_schemes/generator/backtracking.h.
func Backtracking(parts, k int) searchscheme.Scheme {
	pi := make([]int, parts)
	l := make([]int, parts)
	u := make([]int, parts)
	for i := range pi {
		pi[i] = i
		u[i] = k
	}
	return searchscheme.Scheme{{Pi: pi, L: l, U: u}}
}

// fullU returns a U vector of length parts holding k at every position,
// the starting point for pigeonhole-style "this part must be error-free,
// the rest can take up to k errors" searches (the error-free anchor step
// is set by the caller).
func fullU(parts, k int) []int {
	u := make([]int, parts)
	for i := range u {
		u[i] = k
	}
	return u
}

// pigeonholeSearch builds the search that visits part `anchor` error-free
// first (by construction — anchor is the first element of order, so
// step 0's U is clamped to 0 before errors may accrue), then visits the
// remaining parts in the given order, tolerating up to k errors overall.
func pigeonholeSearch(order []int, k int) searchscheme.Search {
	n := len(order)
	l := make([]int, n)
	u := make([]int, n)
	u[0] = 0 // the anchor part must match exactly
	for i := 1; i < n; i++ {
		u[i] = k
	}
	return searchscheme.Search{Pi: append([]int(nil), order...), L: l, U: u}
}

// contiguousOrder returns a traversal order starting at anchor and
// expanding outward by always taking the next still-unvisited part
// adjacent to the visited contiguous range, preferring the given
// direction first. This keeps every Search satisfying the connectivity
// property required by searchscheme.Search.Validate.
func contiguousOrder(parts, anchor int, rightFirst bool) []int {
	order := make([]int, 0, parts)
	lo, hi := anchor, anchor
	order = append(order, anchor)
	for len(order) < parts {
		canRight := hi+1 < parts
		canLeft := lo-1 >= 0
		takeRight := canRight && (rightFirst || !canLeft)
		if takeRight {
			hi++
			order = append(order, hi)
		} else if canLeft {
			lo--
			order = append(order, lo)
		}
	}
	return order
}

// PigeonholeTrivial builds the classic pigeonhole scheme for k errors
// over `parts` parts (parts should be k+1): one search per part, each
// using that part as the error-free anchor and visiting the rest
// left-to-right. Grounded on orig:search_schemes/generator/pigeon.h's
// "trivial" variant.
func PigeonholeTrivial(parts, k int) searchscheme.Scheme {
	scheme := make(searchscheme.Scheme, 0, parts)
	for anchor := 0; anchor < parts; anchor++ {
		order := contiguousOrder(parts, anchor, true)
		scheme = append(scheme, pigeonholeSearch(order, k))
	}
	return scheme
}

// PigeonholeOpt is PigeonholeTrivial with an outward-from-anchor
// traversal order instead of strictly left-to-right, which in practice
// prunes the backtracking search tree earlier because mismatches are
// discovered closer to the anchor first. Grounded on
// orig:search_schemes/generator/pigeon.h/.cpp's optimized variant.
func PigeonholeOpt(parts, k int) searchscheme.Scheme {
	scheme := make(searchscheme.Scheme, 0, parts)
	for anchor := 0; anchor < parts; anchor++ {
		order := outwardOrder(parts, anchor)
		scheme = append(scheme, pigeonholeSearch(order, k))
	}
	return scheme
}

// outwardOrder visits anchor, then alternates expanding right and left of
// it, which keeps the visited range contiguous (connectivity) while
// exploring both neighbors of the anchor before reaching either end.
func outwardOrder(parts, anchor int) []int {
	order := make([]int, 0, parts)
	order = append(order, anchor)
	lo, hi := anchor, anchor
	goRight := true
	for len(order) < parts {
		canRight := hi+1 < parts
		canLeft := lo-1 >= 0
		if goRight && canRight {
			hi++
			order = append(order, hi)
		} else if canLeft {
			lo--
			order = append(order, lo)
		} else if canRight {
			hi++
			order = append(order, hi)
		}
		goRight = !goRight
	}
	return order
}
