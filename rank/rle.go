package rank

import "github.com/fmindex-go/fmindex/bitvector"

// RLE is the run-length rank dictionary from spec §4.3: a run-boundary
// bit vector (nestable — it can itself be bitvector.RLE, giving the
// recursive "sparse over sparse" nesting spec calls rRLE) plus, per run,
// its symbol and the exact per-symbol counts accumulated before it.
//
// The per-symbol cumulative table is O(numRuns * sigma), not a second
// nested rank dictionary over the run-value stream: recovering an exact
// occurrence count (not just a run count) from a rank dictionary over run
// values would still need per-run lengths, so nesting here is carried
// entirely by the boundary BitVector rather than by recursing into the
// run-value stream itself. Grounded on orig:rankvector/RLE.h.
type RLE struct {
	sigma      int
	n          int
	boundary   bitvector.BitVector // bit set at the first position of every run
	runSymbol  []uint8
	runStart   []int
	cumBefore  [][]uint64 // cumBefore[r][c] = count of c strictly before run r
}

// BuildRLE constructs an RLE rank dictionary over symbols, using
// boundaryBuilder (e.g. bitvector.BuildDense, or bitvector.BuildRLE for
// nested rRLE) to build the run-boundary marker.
func BuildRLE(sigma int, symbols []uint8, boundaryBuilder bitvector.Builder) (*RLE, error) {
	n := len(symbols)
	boundaryBits := make([]bool, n)
	var runSymbol []uint8
	var runStart []int
	var cumBefore [][]uint64

	running := make([]uint64, sigma)
	var prev uint8
	for i, s := range symbols {
		if int(s) >= sigma {
			return nil, ErrAlphabetExceeded
		}
		if i == 0 || s != prev {
			boundaryBits[i] = true
			runSymbol = append(runSymbol, s)
			runStart = append(runStart, i)
			row := make([]uint64, sigma)
			copy(row, running)
			cumBefore = append(cumBefore, row)
		}
		running[s]++
		prev = s
	}

	boundary, err := boundaryBuilder(n, bitvector.AlwaysOK(func(i int) bool { return boundaryBits[i] }))
	if err != nil {
		return nil, err
	}

	return &RLE{
		sigma:     sigma,
		n:         n,
		boundary:  boundary,
		runSymbol: runSymbol,
		runStart:  runStart,
		cumBefore: cumBefore,
	}, nil
}

func (d *RLE) Size() int  { return d.n }
func (d *RLE) Sigma() int { return d.sigma }

func (d *RLE) runIndexContaining(pos int) int {
	return d.boundary.Rank(pos+1) - 1
}

func (d *RLE) Symbol(i int) uint8 {
	return d.runSymbol[d.runIndexContaining(i)]
}

func (d *RLE) Rank(i int, c uint8) uint64 {
	if i == 0 {
		return 0
	}
	idx := d.runIndexContaining(i - 1)
	base := d.cumBefore[idx][c]
	if d.runSymbol[idx] == c {
		base += uint64(i - d.runStart[idx])
	}
	return base
}

func (d *RLE) PrefixRank(i int, c uint8) uint64 {
	if i == 0 {
		return 0
	}
	idx := d.runIndexContaining(i - 1)
	var base uint64
	for k := 0; k <= int(c); k++ {
		base += d.cumBefore[idx][k]
	}
	if int(d.runSymbol[idx]) <= int(c) {
		base += uint64(i - d.runStart[idx])
	}
	return base
}

func (d *RLE) AllRanks(i int) []uint64 {
	out := make([]uint64, d.sigma)
	if i == 0 {
		return out
	}
	idx := d.runIndexContaining(i - 1)
	copy(out, d.cumBefore[idx])
	out[d.runSymbol[idx]] += uint64(i - d.runStart[idx])
	return out
}

func (d *RLE) AllRanksAndPrefixRanks(i int) (ranks, prefixRanks []uint64) {
	ranks = d.AllRanks(i)
	prefixRanks = prefixRanksFromAll(ranks)
	return
}

func (d *RLE) Prefetch(i int) {
	if i < d.n {
		d.boundary.Prefetch(i + 1)
	}
}
