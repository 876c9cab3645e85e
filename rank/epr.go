package rank

import "github.com/fmindex-go/fmindex/bitops"

// eprBlockBits is EPR's block granularity: one 64-bit word per bitplane
// per block, matching bitops.MarkExact's word-oriented contract.
const eprBlockBits = 64

// EPR is the "enhanced prefix rank" dictionary from spec §4.3: a symbol is
// encoded across ceil(log2 sigma) bitplanes, and rank(i,c) is answered by
// fusing the bitplanes with bitops.MarkExact (one Ternary op when k==3, a
// short AND-reduction otherwise) followed by a single popcount — O(1)
// memory lookups and O(log sigma) popcount-class operations, per spec
// §4.3's bound. Grounded on orig:rankvector/EPRV3.h and EPRV5.h, which
// this corresponds to as the single-level variant (no second counter
// level; see EPR2Level for that).
type EPR struct {
	sigma       int
	n           int
	k           int
	planes      [][]uint64 // k slices, each len == numBlocks
	blockCounts []uint64   // [block*sigma + c] = count of c before block start
}

// BuildEPR constructs an EPR rank dictionary over symbols.
func BuildEPR(sigma int, symbols []uint8) (*EPR, error) {
	n := len(symbols)
	k := bitsForSigma(sigma)
	numBlocks := (n + eprBlockBits - 1) / eprBlockBits
	if numBlocks == 0 {
		numBlocks = 1
	}

	planes := make([][]uint64, k)
	for i := range planes {
		planes[i] = make([]uint64, numBlocks)
	}
	// blockCounts carries one sentinel row past the last real block: Rank
	// and AllRanks call blockAndOffset(i) with i==n, and when n is an exact
	// multiple of eprBlockBits that lands blk at numBlocks with off==0, so
	// the sentinel row (the final cumulative counts) must be present to
	// read rather than recompute from the bitplanes.
	blockCounts := make([]uint64, (numBlocks+1)*sigma)

	running := make([]uint64, sigma)
	for blk := 0; blk < numBlocks; blk++ {
		copy(blockCounts[blk*sigma:(blk+1)*sigma], running)
		for off := 0; off < eprBlockBits; off++ {
			i := blk*eprBlockBits + off
			if i >= n {
				break
			}
			s := symbols[i]
			if int(s) >= sigma {
				return nil, ErrAlphabetExceeded
			}
			for bit := 0; bit < k; bit++ {
				if (s>>uint(bit))&1 == 1 {
					planes[bit][blk] |= 1 << uint(off)
				}
			}
			running[s]++
		}
	}
	copy(blockCounts[numBlocks*sigma:(numBlocks+1)*sigma], running)

	return &EPR{sigma: sigma, n: n, k: k, planes: planes, blockCounts: blockCounts}, nil
}

func (d *EPR) Size() int  { return d.n }
func (d *EPR) Sigma() int { return d.sigma }

func (d *EPR) blockAndOffset(i int) (blk, off int) {
	return i / eprBlockBits, i % eprBlockBits
}

func (d *EPR) blockPlanes(blk int) [][]uint64 {
	out := make([][]uint64, d.k)
	for i, p := range d.planes {
		out[i] = p[blk : blk+1]
	}
	return out
}

func (d *EPR) Symbol(i int) uint8 {
	blk, off := d.blockAndOffset(i)
	bit := uint64(1) << uint(off)
	var s uint8
	for bit2 := 0; bit2 < d.k; bit2++ {
		if d.planes[bit2][blk]&bit != 0 {
			s |= 1 << uint(bit2)
		}
	}
	return s
}

func (d *EPR) Rank(i int, c uint8) uint64 {
	blk, off := d.blockAndOffset(i)
	base := d.blockCounts[blk*d.sigma+int(c)]
	if off == 0 {
		return base
	}
	mask := bitops.MarkExact(uint64(c), d.blockPlanes(blk))[0]
	lowMask := uint64(1)<<uint(off) - 1
	return base + uint64(bitops.PopcountWord(mask&lowMask))
}

func (d *EPR) PrefixRank(i int, c uint8) uint64 {
	blk, off := d.blockAndOffset(i)
	var base uint64
	for k := 0; k <= int(c); k++ {
		base += d.blockCounts[blk*d.sigma+k]
	}
	if off == 0 {
		return base
	}
	mask := bitops.MarkExactOrLess(uint64(c), d.blockPlanes(blk))[0]
	lowMask := uint64(1)<<uint(off) - 1
	return base + uint64(bitops.PopcountWord(mask&lowMask))
}

func (d *EPR) AllRanks(i int) []uint64 {
	blk, off := d.blockAndOffset(i)
	out := make([]uint64, d.sigma)
	copy(out, d.blockCounts[blk*d.sigma:(blk+1)*d.sigma])
	if off == 0 {
		return out
	}
	lowMask := uint64(1)<<uint(off) - 1
	masks := bitops.MarkExactAll(d.blockPlanes(blk))
	for c := 0; c < d.sigma; c++ {
		out[c] += uint64(bitops.PopcountWord(masks[c][0] & lowMask))
	}
	return out
}

func (d *EPR) AllRanksAndPrefixRanks(i int) (ranks, prefixRanks []uint64) {
	ranks = d.AllRanks(i)
	prefixRanks = prefixRanksFromAll(ranks)
	return
}

func (d *EPR) Prefetch(i int) {}
