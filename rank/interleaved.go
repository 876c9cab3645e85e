package rank

import "github.com/fmindex-go/fmindex/bitops"

// interleavedBlockBits is the block granularity Interleaved uses for its
// per-symbol cumulative counters, one word per symbol per block.
const interleavedBlockBits = 64

// Interleaved is the "interleaved-bits" rank dictionary from spec §4.3:
// sigma full bitplanes (one per symbol, not compressed to ceil(log2 sigma)
// like EPR), stored word-interleaved so that one cache line holds a
// block's worth of every plane, plus per-block per-symbol cumulative
// counters. rank(i,c) costs one counter lookup and one popcount.
type Interleaved struct {
	sigma       int
	n           int
	blockCounts []uint64 // [block*sigma + c] = count of c strictly before block start
	planes      []uint64 // [block*sigma + c] = word for symbol c at this block
}

// BuildInterleaved constructs an Interleaved rank dictionary over symbols.
func BuildInterleaved(sigma int, symbols []uint8) (*Interleaved, error) {
	n := len(symbols)
	numBlocks := (n + interleavedBlockBits - 1) / interleavedBlockBits
	if numBlocks == 0 {
		numBlocks = 1
	}
	// blockCounts carries one sentinel row past the last real block: Rank
	// and AllRanks call blockAndOffset(i) with i==n, and when n is an exact
	// multiple of interleavedBlockBits that lands blk at numBlocks with
	// off==0, so the sentinel row (the final cumulative counts) must be
	// present to read. planes is never indexed at blk==numBlocks, since
	// every reader short-circuits on off==0 before touching it.
	blockCounts := make([]uint64, (numBlocks+1)*sigma)
	planes := make([]uint64, numBlocks*sigma)

	running := make([]uint64, sigma)
	for blk := 0; blk < numBlocks; blk++ {
		copy(blockCounts[blk*sigma:(blk+1)*sigma], running)
		for off := 0; off < interleavedBlockBits; off++ {
			i := blk*interleavedBlockBits + off
			if i >= n {
				break
			}
			s := symbols[i]
			if int(s) >= sigma {
				return nil, ErrAlphabetExceeded
			}
			planes[blk*sigma+int(s)] |= 1 << uint(off)
			running[s]++
		}
	}
	copy(blockCounts[numBlocks*sigma:(numBlocks+1)*sigma], running)

	return &Interleaved{sigma: sigma, n: n, blockCounts: blockCounts, planes: planes}, nil
}

func (d *Interleaved) Size() int  { return d.n }
func (d *Interleaved) Sigma() int { return d.sigma }

func (d *Interleaved) blockAndOffset(i int) (blk, off int) {
	return i / interleavedBlockBits, i % interleavedBlockBits
}

func (d *Interleaved) Symbol(i int) uint8 {
	blk, off := d.blockAndOffset(i)
	bit := uint64(1) << uint(off)
	for c := 0; c < d.sigma; c++ {
		if d.planes[blk*d.sigma+c]&bit != 0 {
			return uint8(c)
		}
	}
	panic("rank: Interleaved.Symbol found no set plane")
}

func (d *Interleaved) Rank(i int, c uint8) uint64 {
	blk, off := d.blockAndOffset(i)
	base := d.blockCounts[blk*d.sigma+int(c)]
	if off == 0 {
		return base
	}
	mask := uint64(1)<<uint(off) - 1
	return base + uint64(bitops.PopcountWord(d.planes[blk*d.sigma+int(c)]&mask))
}

func (d *Interleaved) PrefixRank(i int, c uint8) uint64 {
	var sum uint64
	for k := 0; k <= int(c); k++ {
		sum += d.Rank(i, uint8(k))
	}
	return sum
}

func (d *Interleaved) AllRanks(i int) []uint64 {
	blk, off := d.blockAndOffset(i)
	out := make([]uint64, d.sigma)
	if off == 0 {
		copy(out, d.blockCounts[blk*d.sigma:(blk+1)*d.sigma])
		return out
	}
	mask := uint64(1)<<uint(off) - 1
	for c := 0; c < d.sigma; c++ {
		out[c] = d.blockCounts[blk*d.sigma+c] + uint64(bitops.PopcountWord(d.planes[blk*d.sigma+c]&mask))
	}
	return out
}

func (d *Interleaved) AllRanksAndPrefixRanks(i int) (ranks, prefixRanks []uint64) {
	ranks = d.AllRanks(i)
	prefixRanks = prefixRanksFromAll(ranks)
	return
}

func (d *Interleaved) Prefetch(i int) {}
