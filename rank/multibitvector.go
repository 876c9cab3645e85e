package rank

import "github.com/fmindex-go/fmindex/bitvector"

// MultiBitvector is the one-bit-vector-per-symbol rank dictionary from
// spec §4.3: sigma independent BitVectors, bit c set at position i iff
// symbols[i]==c. rank(i,c) is a single BitVector.Rank; symbol(i) scans the
// sigma planes for the one that is set (O(sigma), matching
// orig:rankvector/MultiBitvector.h's own tradeoff of simplicity over a
// faster symbol lookup).
type MultiBitvector struct {
	sigma int
	n     int
	bits  []bitvector.BitVector // one per symbol
}

// BuildMultiBitvector constructs a MultiBitvector dictionary over symbols
// using builder (e.g. bitvector.BuildDense) for each per-symbol plane.
func BuildMultiBitvector(sigma int, symbols []uint8, builder bitvector.Builder) (*MultiBitvector, error) {
	n := len(symbols)
	for _, s := range symbols {
		if int(s) >= sigma {
			return nil, ErrAlphabetExceeded
		}
	}
	bits := make([]bitvector.BitVector, sigma)
	for c := 0; c < sigma; c++ {
		c := uint8(c)
		bv, err := builder(n, bitvector.AlwaysOK(func(i int) bool { return symbols[i] == c }))
		if err != nil {
			return nil, err
		}
		bits[c] = bv
	}
	return &MultiBitvector{sigma: sigma, n: n, bits: bits}, nil
}

func (d *MultiBitvector) Size() int  { return d.n }
func (d *MultiBitvector) Sigma() int { return d.sigma }

func (d *MultiBitvector) Symbol(i int) uint8 {
	for c := 0; c < d.sigma; c++ {
		if d.bits[c].Symbol(i) {
			return uint8(c)
		}
	}
	panic("rank: MultiBitvector.Symbol found no set plane")
}

func (d *MultiBitvector) Rank(i int, c uint8) uint64 {
	return uint64(d.bits[c].Rank(i))
}

func (d *MultiBitvector) PrefixRank(i int, c uint8) uint64 {
	var sum uint64
	for k := 0; k <= int(c); k++ {
		sum += uint64(d.bits[k].Rank(i))
	}
	return sum
}

func (d *MultiBitvector) AllRanks(i int) []uint64 {
	out := make([]uint64, d.sigma)
	for c := 0; c < d.sigma; c++ {
		out[c] = uint64(d.bits[c].Rank(i))
	}
	return out
}

func (d *MultiBitvector) AllRanksAndPrefixRanks(i int) (ranks, prefixRanks []uint64) {
	ranks = d.AllRanks(i)
	prefixRanks = prefixRanksFromAll(ranks)
	return
}

func (d *MultiBitvector) Prefetch(i int) {
	for c := 0; c < d.sigma; c++ {
		d.bits[c].Prefetch(i)
	}
}
