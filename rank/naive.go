package rank

// Naive is the reference rank dictionary from spec §4.3: an explicit
// occurrence table, one row of sigma counters per position. O(n*sigma)
// space, used here as the oracle other variants are checked against and
// as a correctness baseline for small texts, exactly the role
// orig:rankvector/Naive.h plays in the source library.
type Naive struct {
	sigma int
	n     int
	occ   [][]uint64 // occ[i][c] = count of c in symbols[0:i], for i in [0,n]
}

// BuildNaive constructs a Naive rank dictionary over symbols, an alphabet
// of size sigma.
func BuildNaive(sigma int, symbols []uint8) (*Naive, error) {
	n := len(symbols)
	occ := make([][]uint64, n+1)
	occ[0] = make([]uint64, sigma)
	for i, s := range symbols {
		if int(s) >= sigma {
			return nil, ErrAlphabetExceeded
		}
		row := make([]uint64, sigma)
		copy(row, occ[i])
		row[s]++
		occ[i+1] = row
	}
	return &Naive{sigma: sigma, n: n, occ: occ}, nil
}

func (d *Naive) Size() int  { return d.n }
func (d *Naive) Sigma() int { return d.sigma }

func (d *Naive) Symbol(i int) uint8 {
	before, after := d.occ[i], d.occ[i+1]
	for c := 0; c < d.sigma; c++ {
		if after[c] != before[c] {
			return uint8(c)
		}
	}
	panic("rank: Naive.Symbol found no differing row")
}

func (d *Naive) Rank(i int, c uint8) uint64 { return d.occ[i][c] }

func (d *Naive) PrefixRank(i int, c uint8) uint64 {
	var sum uint64
	row := d.occ[i]
	for k := 0; k <= int(c); k++ {
		sum += row[k]
	}
	return sum
}

func (d *Naive) AllRanks(i int) []uint64 {
	out := make([]uint64, d.sigma)
	copy(out, d.occ[i])
	return out
}

func (d *Naive) AllRanksAndPrefixRanks(i int) (ranks, prefixRanks []uint64) {
	ranks = d.AllRanks(i)
	prefixRanks = prefixRanksFromAll(ranks)
	return
}

func (d *Naive) Prefetch(i int) {}
