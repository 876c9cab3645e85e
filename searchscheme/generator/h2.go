package generator

import "github.com/fmindex-go/fmindex/searchscheme"

// H2 picks the cheapest-by-searchscheme.NodeCount candidate scheme out of
// a pool of schemes this package already knows how to build, falling back
// to PigeonholeTrivial (always complete) if every other candidate fails
// completeness. Grounded on orig:search_schemes/generator/h2.h, which
// optimizes over a matrix of candidate part-visit orders; this keeps that
// spirit — search a candidate pool, optimize a cost model — without
// reproducing its specific differential-matrix search procedure.
func H2(parts, k int, partLengths []int, sigma int) searchscheme.Scheme {
	candidates := []searchscheme.Scheme{
		PigeonholeOpt(parts, k),
		PigeonholeTrivial(parts, k),
	}
	if k == 1 {
		candidates = append([]searchscheme.Scheme{ZeroOnesZeroOpt(parts, k)}, candidates...)
	}

	var best searchscheme.Scheme
	bestCost := -1.0
	for _, cand := range candidates {
		if cand.Validate() != nil || !searchscheme.IsComplete(cand, parts, 0, k) {
			continue
		}
		cost := searchscheme.NodeCount(cand, partLengths, sigma)
		if bestCost < 0 || cost < bestCost {
			best, bestCost = cand, cost
		}
	}
	if best == nil {
		best = PigeonholeTrivial(parts, k)
	}
	return best
}
