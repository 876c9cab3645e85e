// Package bitops provides the branchless bit-level primitives that the
// rank-dictionary family in package rank is built on: word and bitset
// popcount, the single three-input ternary-logic boolean function used to
// fuse bitplane lookups into one mark-c bitmask, and the mark_exact /
// mark_exact_or_less derived operations used by EPR-style rank dictionaries.
//
// All operations here work on a "bitset" represented as []uint64, bit j of
// the bitset living at word j/64, bit j%64 (LSB-first, same convention the
// rest of the module uses).
package bitops

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

// hasHardwarePopcount reports whether the host CPU exposes a native
// popcount instruction. math/bits.OnesCount64 already emits that
// instruction on these platforms; the variable exists so PopcountWords can
// be benchmarked/validated against the portable SWAR path it gates, mirroring
// the teacher's hasAVX2-style dispatch switch.
var hasHardwarePopcount = cpu.X86.HasPOPCNT || cpu.ARM64.HasASIMD

// PopcountWord returns the number of set bits in w, using the fastest
// available implementation.
func PopcountWord(w uint64) int {
	if hasHardwarePopcount {
		return bits.OnesCount64(w)
	}
	return popcountPortable(w)
}

// popcountPortable is the classic SWAR (bit-parallel) popcount: three
// rounds of pair/nibble/byte summation followed by a multiply-reduce. It
// must agree with PopcountWord for every input; rank dictionaries rely on
// that to stay bit-exact regardless of which path construction picked.
func popcountPortable(w uint64) int {
	const m1 = 0x5555555555555555
	const m2 = 0x3333333333333333
	const m4 = 0x0f0f0f0f0f0f0f0f
	const h01 = 0x0101010101010101

	w -= (w >> 1) & m1
	w = (w & m2) + ((w >> 2) & m2)
	w = (w + (w >> 4)) & m4
	return int((w * h01) >> 56)
}

// PopcountWords sums PopcountWord over every word of a bitset.
func PopcountWords(words []uint64) uint64 {
	var total uint64
	for _, w := range words {
		total += uint64(PopcountWord(w))
	}
	return total
}

// PopcountWordsUpTo sums PopcountWord over the first nBits bits of a
// bitset, masking off the tail of the last partial word.
func PopcountWordsUpTo(words []uint64, nBits int) uint64 {
	if nBits <= 0 {
		return 0
	}
	fullWords := nBits / 64
	var total uint64
	for _, w := range words[:fullWords] {
		total += uint64(PopcountWord(w))
	}
	if rem := nBits % 64; rem != 0 {
		mask := (uint64(1) << uint(rem)) - 1
		total += uint64(PopcountWord(words[fullWords] & mask))
	}
	return total
}
