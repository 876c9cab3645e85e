package searchscheme

// NodeCount estimates the search-tree node count a scheme would visit
// against a pattern split into parts of the given lengths, over an
// alphabet of size sigma. This is an approximate branching-cost estimate
// used to rank candidate schemes against each other (as generator/h2.go
// does), not the literature's exact recursive node count: every step
// multiplies the cost by its part's length, and a step with any error
// budget (U[i] > L[i], or L[i] > 0 meaning an error is already required)
// multiplies it by sigma as well. Grounded on
// orig:search_schemes/nodeCount.h.
func NodeCount(scheme Scheme, partLengths []int, sigma int) float64 {
	var total float64
	for _, s := range scheme {
		total += searchNodeCount(s, partLengths, sigma)
	}
	return total
}

func searchNodeCount(s Search, partLengths []int, sigma int) float64 {
	cost := 1.0
	for i, p := range s.Pi {
		branching := 1.0
		if s.U[i] > s.L[i] || s.L[i] > 0 {
			branching = float64(sigma)
		}
		cost *= float64(partLengths[p]) * branching
	}
	return cost
}

// LimitToHamming tightens every search's bounds to what the Hamming
// (substitution-only) error model permits: at step i, at most i+1 errors
// can have accumulated (one per visited position so far), so U[i] is
// capped at i+1. Grounded on the Hamming-distance restriction spec §4.6
// calls out as a named operation on top of the general (edit-distance
// capable) Search representation.
func LimitToHamming(scheme Scheme) Scheme {
	out := make(Scheme, len(scheme))
	for si, s := range scheme {
		newU := make([]int, len(s.U))
		newL := make([]int, len(s.L))
		for i := range s.U {
			maxAtStep := i + 1
			if s.U[i] < maxAtStep {
				newU[i] = s.U[i]
			} else {
				newU[i] = maxAtStep
			}
			newL[i] = s.L[i]
			if newL[i] > newU[i] {
				newL[i] = newU[i]
			}
		}
		out[si] = Search{Pi: append([]int(nil), s.Pi...), L: newL, U: newU}
	}
	return out
}
