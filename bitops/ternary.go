package bitops

// Ternary applies the three-input boolean function x (a truth table packed
// into the low 8 bits, bit position 4*a+2*b+1*c holding f(a,b,c)) elementwise
// over three equal-length bitsets, returning a new bitset.
//
// This is the "single-instruction 3-input boolean f(a,b,c)" design note from
// spec §9: on hardware with a native ternary-logic instruction (e.g.
// vpternlogd) this would be one instruction per word. This module ships no
// assembly, so Ternary always takes the portable path below; it is still the
// single dispatch point a future platform-specific fast path would hook into.
//
// The portable path composes a, b, c through AND and XOR operations only by
// evaluating the Zhegalkin (algebraic normal form) polynomial of x: every
// 3-input boolean function is a XOR of at most 7 AND-terms over {a,b,c} plus
// an optional constant-true term, and that polynomial is what literally the
// Möbius transform of the truth table produces.
func Ternary(x uint8, a, b, c []uint64) []uint64 {
	coeffs := zhegalkinCoeffs(x)
	n := len(a)
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = ternaryWord(coeffs, a[i], b[i], c[i])
	}
	return out
}

// TernaryInto is Ternary but writes into a caller-supplied destination,
// avoiding an allocation on the hot rank-construction path.
func TernaryInto(dst []uint64, x uint8, a, b, c []uint64) {
	coeffs := zhegalkinCoeffs(x)
	for i := range dst {
		dst[i] = ternaryWord(coeffs, a[i], b[i], c[i])
	}
}

// TernaryWord is the single-word version of Ternary, used when a rank
// dictionary only needs one super-block's worth of bitplanes at a time.
func TernaryWord(x uint8, a, b, c uint64) uint64 {
	return ternaryWord(zhegalkinCoeffs(x), a, b, c)
}

// zhegalkinCoeffs holds, for each of the 8 minterms (indexed the same way as
// the truth table: bit index = 4*a+2*b+c), whether that minterm's ANF
// coefficient is set. Index 0 is the constant term.
type zhegalkinCoeffs [8]bool

// zhegalkinCoeffs computes the algebraic-normal-form coefficients of the
// truth table x via the standard subset-sum (Möbius) transform over the
// 3-dimensional Boolean lattice.
func zhegalkinCoeffs(x uint8) zhegalkinCoeffs {
	var c [8]uint8
	for i := 0; i < 8; i++ {
		c[i] = (x >> uint(i)) & 1
	}
	for bit := 0; bit < 3; bit++ {
		mask := 1 << uint(bit)
		for i := 0; i < 8; i++ {
			if i&mask != 0 {
				c[i] ^= c[i^mask]
			}
		}
	}
	var out zhegalkinCoeffs
	for i := 0; i < 8; i++ {
		out[i] = c[i] != 0
	}
	return out
}

// ternaryWord evaluates the ANF polynomial for one word of each input.
// Minterm index i encodes which of {a,b,c} participate: bit2->a, bit1->b,
// bit0->c (matching the 4a+2b+c convention used for x itself).
func ternaryWord(coeffs zhegalkinCoeffs, a, b, c uint64) uint64 {
	var result uint64
	if coeffs[0] {
		result = ^uint64(0)
	}
	if coeffs[1] {
		result ^= c
	}
	if coeffs[2] {
		result ^= b
	}
	ab := a & b
	bc := b & c
	ac := a & c
	if coeffs[3] {
		result ^= bc
	}
	if coeffs[4] {
		result ^= a
	}
	if coeffs[5] {
		result ^= ac
	}
	if coeffs[6] {
		result ^= ab
	}
	if coeffs[7] {
		result ^= ab & c
	}
	return result
}
