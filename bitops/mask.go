package bitops

// MarkExact returns the bitset whose bit j is 1 iff the value encoded by
// bits (planes[k-1][j]..planes[0][j]) equals v, for k == len(planes)
// bitplanes each of equal word length. planes[i] is bit i of the encoded
// value (plane 0 is the least significant bit).
//
// For k == 3 this dispatches to bitops.Ternary with a truth table that has
// exactly one minterm set — the concrete shape EPR-family rank dictionaries
// use when sigma fits in 3 bitplanes (sigma <= 8, e.g. DNA+sentinel). Larger
// k fall back to a per-plane AND reduction; both paths return identical
// bitsets for the same inputs.
func MarkExact(v uint64, planes [][]uint64) []uint64 {
	if len(planes) == 0 {
		return nil
	}
	if len(planes) == 3 {
		x := exactMinterm(v)
		return Ternary(x, planes[2], planes[1], planes[0])
	}
	n := len(planes[0])
	out := make([]uint64, n)
	MarkExactInto(out, v, planes)
	return out
}

// MarkExactInto is MarkExact writing into a caller-supplied destination.
func MarkExactInto(dst []uint64, v uint64, planes [][]uint64) {
	if len(planes) == 3 {
		x := exactMinterm(v)
		TernaryInto(dst, x, planes[2], planes[1], planes[0])
		return
	}
	for w := range dst {
		acc := ^uint64(0)
		for i, plane := range planes {
			bit := (v >> uint(i)) & 1
			pw := plane[w]
			if bit == 0 {
				pw = ^pw
			}
			acc &= pw
		}
		dst[w] = acc
	}
}

// exactMinterm builds the 3-input truth table with exactly one minterm set,
// at bit position 4*a+2*b+c where a/b/c are bits 2/1/0 of v.
func exactMinterm(v uint64) uint8 {
	return 1 << uint(v&0b111)
}

// MarkExactOrLess returns the bitset whose bit j is 1 iff the value encoded
// by bits (planes[k-1][j]..planes[0][j]) is <= v.
//
// Unlike MarkExact this has an inherent bit-by-bit dependency (a standard
// digit comparator processed from the most to the least significant
// bitplane) and so is not expressed through the single 3-input Ternary op
// even when k == 3; it still costs exactly O(k) word operations per output
// word, i.e. O(N/64) word operations in total as required by spec.
func MarkExactOrLess(v uint64, planes [][]uint64) []uint64 {
	if len(planes) == 0 {
		return nil
	}
	n := len(planes[0])
	out := make([]uint64, n)
	MarkExactOrLessInto(out, v, planes)
	return out
}

// MarkExactOrLessInto is MarkExactOrLess writing into dst.
func MarkExactOrLessInto(dst []uint64, v uint64, planes [][]uint64) {
	k := len(planes)
	for w := range dst {
		var equalSoFar uint64 = ^uint64(0)
		var less uint64
		for i := k - 1; i >= 0; i-- {
			bit := (v >> uint(i)) & 1
			p := planes[i][w]
			if bit == 1 {
				less |= equalSoFar & ^p
				equalSoFar &= p
			} else {
				equalSoFar &= ^p
			}
		}
		dst[w] = less | equalSoFar
	}
}

// MarkExactAll returns, for every v in [0, 2^k), the MarkExact bitset for
// that value, packed into one array in ascending v order.
func MarkExactAll(planes [][]uint64) [][]uint64 {
	k := len(planes)
	count := 1 << uint(k)
	out := make([][]uint64, count)
	for v := 0; v < count; v++ {
		out[v] = MarkExact(uint64(v), planes)
	}
	return out
}
