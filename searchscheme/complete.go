package searchscheme

// accepts reports whether search s tolerates the per-part error profile e
// (e[p] is the number of errors attributed to part p), walking Pi's
// traversal order and checking the cumulative error count against L/U at
// every step.
func accepts(s Search, e []int) bool {
	var cum int
	for i, p := range s.Pi {
		cum += e[p]
		if cum < s.L[i] || cum > s.U[i] {
			return false
		}
	}
	return true
}

// IsComplete reports whether scheme covers every Hamming-distance error
// profile with total weight in [minK, maxK] over numParts parts: every
// assignment of 0/1 errors to each part, with total weight in range, must
// be accepted by at least one search in the scheme. Grounded on
// orig:search_schemes/isComplete.h/.cpp's brute-force enumeration, scoped
// here to the Hamming (substitution-only, at most one error per part)
// error model.
func IsComplete(scheme Scheme, numParts, minK, maxK int) bool {
	e := make([]int, numParts)
	var weight int

	var rec func(p int) bool
	rec = func(p int) bool {
		if p == numParts {
			if weight < minK || weight > maxK {
				return true // out of range profiles don't constrain completeness
			}
			for _, s := range scheme {
				if accepts(s, e) {
					return true
				}
			}
			return false
		}
		for v := 0; v <= 1; v++ {
			e[p] = v
			weight += v
			if !rec(p + 1) {
				weight -= v
				return false
			}
			weight -= v
		}
		e[p] = 0
		return true
	}
	return rec(0)
}
