package generator

import "github.com/fmindex-go/fmindex/searchscheme"

// SuffixFilter builds the single right-to-left search used by suffix
// filtering: it extends the match one part at a time starting from the
// last part (the one closest to where a seed-and-extend search usually
// starts verifying), admitting an additional error only once that many
// parts have been consumed — U[i] = min(k, i), so the first part visited
// must match exactly and every subsequent part may account for one more
// error. Grounded on orig:search_schemes/generator/suffixFilter.h.
func SuffixFilter(parts, k int) searchscheme.Scheme {
	pi := make([]int, parts)
	l := make([]int, parts)
	u := make([]int, parts)
	for i := 0; i < parts; i++ {
		pi[i] = parts - 1 - i
		if i < k {
			u[i] = i
		} else {
			u[i] = k
		}
	}
	return searchscheme.Scheme{{Pi: pi, L: l, U: u}}
}
