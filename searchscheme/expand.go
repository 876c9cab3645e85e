package searchscheme

// Expand re-partitions a Search defined over len(partCounts) abstract
// parts into one defined over a finer partition, where original part k is
// split into partCounts[k] contiguous sub-parts (all sub-parts of the
// same original part take that part's place in Pi; they are visited in
// ascending order, or in descending order when the part lies left of the
// parts visited before it, so every prefix of the new Pi stays
// contiguous). Bounds
// for every sub-part before the last one of its original part carry the
// previous step's lower bound (no additional errors are confirmed until
// the whole original part has been visited) and the current part's upper
// bound (errors may occur anywhere within the part); the last sub-part of
// each original part gets the original step's exact L/U.
//
// Grounded on orig:search_schemes/expand.h. Applying Expand twice, with a
// second partCounts refining the first's sub-parts further, is equivalent
// to applying it once with the composed partition — spec §4.6's
// expand(expand(s,L1),L2) == expand(s,L2) property.
func Expand(s Search, partCounts []int) Search {
	n := len(partCounts)
	starts := make([]int, n)
	var total int
	for k := 0; k < n; k++ {
		starts[k] = total
		total += partCounts[k]
	}

	newPi := make([]int, 0, total)
	newL := make([]int, 0, total)
	newU := make([]int, 0, total)

	prevL := 0
	visitedLo := 0
	for i, p := range s.Pi {
		count := partCounts[p]
		descending := i > 0 && p < visitedLo
		if i == 0 || p < visitedLo {
			visitedLo = p
		}
		for j := 0; j < count; j++ {
			sub := starts[p] + j
			if descending {
				sub = starts[p] + count - 1 - j
			}
			newPi = append(newPi, sub)
			if j == count-1 {
				newL = append(newL, s.L[i])
				newU = append(newU, s.U[i])
			} else {
				newL = append(newL, prevL)
				newU = append(newU, s.U[i])
			}
		}
		prevL = s.L[i]
	}

	return Search{Pi: newPi, L: newL, U: newU}
}

// ExpandScheme applies Expand to every search in scheme.
func ExpandScheme(scheme Scheme, partCounts []int) Scheme {
	out := make(Scheme, len(scheme))
	for i, s := range scheme {
		out[i] = Expand(s, partCounts)
	}
	return out
}
