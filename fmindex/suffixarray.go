package fmindex

import "sort"

// buildSuffixArray computes the suffix array of text (a Symbol stream
// already terminated by sentinels) via prefix doubling: O(log n) rounds,
// each a comparison sort costing O(n log n) comparisons, each comparison
// O(1) after a rank-array refresh. This
// favors auditability over raw throughput, appropriate for a reference
// FM-index construction path; construction is not on any query's hot
// path.
func buildSuffixArray(text []Symbol) []int {
	n := len(text)
	sa := make([]int, n)
	rank := make([]int, n)
	tmp := make([]int, n)

	for i := range sa {
		sa[i] = i
		rank[i] = int(text[i])
	}

	for k := 1; ; k *= 2 {
		key := func(i int) (int, int) {
			r1 := rank[i]
			r2 := -1
			if i+k < n {
				r2 = rank[i+k]
			}
			return r1, r2
		}
		sort.Slice(sa, func(a, b int) bool {
			ia, ja := key(sa[a])
			ib, jb := key(sa[b])
			if ia != ib {
				return ia < ib
			}
			return ja < jb
		})

		tmp[sa[0]] = 0
		for i := 1; i < n; i++ {
			tmp[sa[i]] = tmp[sa[i-1]]
			pa, qa := key(sa[i-1])
			pb, qb := key(sa[i])
			if pa != pb || qa != qb {
				tmp[sa[i]]++
			}
		}
		copy(rank, tmp)

		if rank[sa[n-1]] == n-1 {
			break
		}
	}
	return sa
}

// buildBWT derives the Burrows-Wheeler transform from text and its
// suffix array: bwt[i] = text[sa[i]-1], or the last symbol of text when
// sa[i] == 0.
func buildBWT(text []Symbol, sa []int) []Symbol {
	n := len(text)
	bwt := make([]Symbol, n)
	for i, s := range sa {
		if s == 0 {
			bwt[i] = text[n-1]
		} else {
			bwt[i] = text[s-1]
		}
	}
	return bwt
}

// cumulativeCounts returns C where C[c] is the number of symbols strictly
// less than c across text, the standard LF-mapping base offset.
func cumulativeCounts(sigma int, text []Symbol) []uint64 {
	counts := make([]uint64, sigma)
	for _, s := range text {
		counts[s]++
	}
	c := make([]uint64, sigma)
	var acc uint64
	for s := 0; s < sigma; s++ {
		c[s] = acc
		acc += counts[s]
	}
	return c
}

// reverseSequences returns a new slice with the non-sentinel run of symbols
// reversed and each original sequence's sentinel preserved in place, used
// to build the backward text a BiFMIndex's reverse rank dictionary is
// defined over. seqStarts/seqEnds mark each sequence's [start,end) span
// (end being one past the sentinel's position).
func reverseSequences(text []Symbol, seqStarts, seqEnds []int) []Symbol {
	out := make([]Symbol, len(text))
	copy(out, text)
	for k := range seqStarts {
		// seqEnds[k] is one past the sentinel row; the sentinel itself
		// (at seqEnds[k]-1) stays in place so the reversed sequence is
		// still sentinel-terminated rather than sentinel-prefixed.
		lo, hi := seqStarts[k], seqEnds[k]-1
		for i, j := lo, hi-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
