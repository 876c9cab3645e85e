package generator

import "github.com/fmindex-go/fmindex/searchscheme"

// ZeroOnesZeroTrivial builds the classic "0 1* 0" scheme: two searches,
// one anchored at the first part and one at the last, each requiring its
// anchor to match exactly before the rest of the pattern is allowed
// errors. It is complete for k==1 (the one error must avoid at least one
// of the two ends); for k>1 it covers strictly less than the full
// pigeonhole scheme does; use PigeonholeTrivial/Opt instead when more
// than one error must be tolerated. Grounded on
// orig:search_schemes/generator/zeroOnesZero.h.
func ZeroOnesZeroTrivial(parts, k int) searchscheme.Scheme {
	left := contiguousOrder(parts, 0, true)
	right := contiguousOrder(parts, parts-1, false)
	return searchscheme.Scheme{
		pigeonholeSearch(left, k),
		pigeonholeSearch(right, k),
	}
}

// ZeroOnesZeroOpt is ZeroOnesZeroTrivial with the outward-from-anchor
// traversal order used elsewhere in this package, for the same earlier
// pruning benefit. Grounded on
// orig:search_schemes/generator/zeroOnesZero.h's optimized variant.
func ZeroOnesZeroOpt(parts, k int) searchscheme.Scheme {
	left := outwardOrder(parts, 0)
	right := outwardOrder(parts, parts-1)
	return searchscheme.Scheme{
		pigeonholeSearch(left, k),
		pigeonholeSearch(right, k),
	}
}
