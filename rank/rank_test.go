package rank

import (
	"math/rand"
	"testing"

	"github.com/fmindex-go/fmindex/bitvector"
)

func randomSymbols(n, sigma int, seed int64) []uint8 {
	r := rand.New(rand.NewSource(seed))
	out := make([]uint8, n)
	for i := range out {
		out[i] = uint8(r.Intn(sigma))
	}
	return out
}

// runnySymbols produces long runs, to exercise RLE's favorable case.
func runnySymbols(n, sigma int, seed int64) []uint8 {
	r := rand.New(rand.NewSource(seed))
	out := make([]uint8, n)
	cur := uint8(0)
	for i := range out {
		if r.Intn(23) == 0 {
			cur = uint8(r.Intn(sigma))
		}
		out[i] = cur
	}
	return out
}

func checkDictionaryContract(t *testing.T, name string, d Dictionary, symbols []uint8, sigma int) {
	t.Helper()
	if d.Size() != len(symbols) {
		t.Fatalf("%s: Size() = %d, want %d", name, d.Size(), len(symbols))
	}
	if d.Sigma() != sigma {
		t.Fatalf("%s: Sigma() = %d, want %d", name, d.Sigma(), sigma)
	}
	for i, want := range symbols {
		if got := d.Symbol(i); got != want {
			t.Errorf("%s: Symbol(%d) = %d, want %d", name, i, got, want)
		}
	}

	occ := make([][]uint64, len(symbols)+1)
	occ[0] = make([]uint64, sigma)
	for i, s := range symbols {
		row := make([]uint64, sigma)
		copy(row, occ[i])
		row[s]++
		occ[i+1] = row
	}

	for i := 0; i <= len(symbols); i++ {
		allRanks := d.AllRanks(i)
		ranks2, prefixRanks := d.AllRanksAndPrefixRanks(i)
		var runningPrefix uint64
		for c := 0; c < sigma; c++ {
			want := occ[i][c]
			if got := d.Rank(i, uint8(c)); got != want {
				t.Fatalf("%s: Rank(%d,%d) = %d, want %d", name, i, c, got, want)
			}
			if allRanks[c] != want {
				t.Fatalf("%s: AllRanks(%d)[%d] = %d, want %d", name, i, c, allRanks[c], want)
			}
			if ranks2[c] != want {
				t.Fatalf("%s: AllRanksAndPrefixRanks ranks[%d] mismatch at i=%d", name, c, i)
			}
			runningPrefix += want
			if got := d.PrefixRank(i, uint8(c)); got != runningPrefix {
				t.Fatalf("%s: PrefixRank(%d,%d) = %d, want %d", name, i, c, got, runningPrefix)
			}
			if prefixRanks[c] != runningPrefix {
				t.Fatalf("%s: AllRanksAndPrefixRanks prefixRanks[%d] mismatch at i=%d", name, c, i)
			}
		}
		d.Prefetch(i)
	}
}

func TestNaiveContract(t *testing.T) {
	for _, n := range []int{0, 1, 5, 200} {
		symbols := randomSymbols(n, 5, int64(n))
		d, err := BuildNaive(5, symbols)
		if err != nil {
			t.Fatalf("BuildNaive(%d): %v", n, err)
		}
		checkDictionaryContract(t, "Naive", d, symbols, 5)
	}
}

func TestMultiBitvectorContract(t *testing.T) {
	for _, n := range []int{0, 1, 5, 500} {
		symbols := randomSymbols(n, 5, int64(n)+1)
		d, err := BuildMultiBitvector(5, symbols, func(n int, bit bitvector.BitFunc) (bitvector.BitVector, error) {
			return bitvector.BuildDense(n, bit)
		})
		if err != nil {
			t.Fatalf("BuildMultiBitvector(%d): %v", n, err)
		}
		checkDictionaryContract(t, "MultiBitvector", d, symbols, 5)
	}
}

func TestInterleavedContract(t *testing.T) {
	for _, n := range []int{0, 1, 63, 64, 65, 500} {
		symbols := randomSymbols(n, 5, int64(n)+2)
		d, err := BuildInterleaved(5, symbols)
		if err != nil {
			t.Fatalf("BuildInterleaved(%d): %v", n, err)
		}
		checkDictionaryContract(t, "Interleaved", d, symbols, 5)
	}
}

func TestEPRContract(t *testing.T) {
	for _, sigma := range []int{4, 5, 8} {
		for _, n := range []int{0, 1, 63, 64, 65, 500} {
			symbols := randomSymbols(n, sigma, int64(n*10+sigma))
			d, err := BuildEPR(sigma, symbols)
			if err != nil {
				t.Fatalf("BuildEPR(sigma=%d,n=%d): %v", sigma, n, err)
			}
			checkDictionaryContract(t, "EPR", d, symbols, sigma)
		}
	}
}

func TestEPR2LevelContract(t *testing.T) {
	for _, n := range []int{0, 1, 64, 500, 4000} {
		symbols := randomSymbols(n, 5, int64(n)+3)
		d, err := BuildEPR2Level(5, symbols, 256)
		if err != nil {
			t.Fatalf("BuildEPR2Level(%d): %v", n, err)
		}
		checkDictionaryContract(t, "EPR2Level", d, symbols, 5)
	}
}

func TestEPR2LevelRejectsOversizedSuperblock(t *testing.T) {
	_, err := BuildEPR2Level(5, []uint8{0, 1, 2}, 1<<20)
	if err != ErrCounterWidthExceeded {
		t.Fatalf("expected ErrCounterWidthExceeded, got %v", err)
	}
	_, err = BuildEPR2Level(5, []uint8{0, 1, 2}, 65)
	if err != ErrCounterWidthExceeded {
		t.Fatalf("expected ErrCounterWidthExceeded for non-64-multiple width, got %v", err)
	}
}

func TestWaveletContract(t *testing.T) {
	for _, sigma := range []int{2, 5, 7} {
		for _, n := range []int{0, 1, 63, 64, 500} {
			symbols := randomSymbols(n, sigma, int64(n*17+sigma))
			d, err := BuildWavelet(sigma, symbols, func(n int, bit bitvector.BitFunc) (bitvector.BitVector, error) {
				return bitvector.BuildDense(n, bit)
			})
			if err != nil {
				t.Fatalf("BuildWavelet(sigma=%d,n=%d): %v", sigma, n, err)
			}
			checkDictionaryContract(t, "Wavelet", d, symbols, sigma)
		}
	}
}

func TestRLEContract(t *testing.T) {
	denseBuilder := func(n int, bit bitvector.BitFunc) (bitvector.BitVector, error) {
		return bitvector.BuildDense(n, bit)
	}
	for _, n := range []int{0, 1, 5, 2000} {
		symbols := runnySymbols(n, 5, int64(n)+4)
		d, err := BuildRLE(5, symbols, denseBuilder)
		if err != nil {
			t.Fatalf("BuildRLE(%d): %v", n, err)
		}
		checkDictionaryContract(t, "RLE", d, symbols, 5)
	}
}

func TestRLENestedBoundary(t *testing.T) {
	symbols := runnySymbols(3000, 5, 99)
	nestedBuilder := func(n int, bit bitvector.BitFunc) (bitvector.BitVector, error) {
		return bitvector.BuildRLE(n, bit, func(n int, bit bitvector.BitFunc) (bitvector.BitVector, error) {
			return bitvector.BuildDense(n, bit)
		})
	}
	d, err := BuildRLE(5, symbols, nestedBuilder)
	if err != nil {
		t.Fatalf("BuildRLE nested: %v", err)
	}
	checkDictionaryContract(t, "RLE/nested-boundary", d, symbols, 5)
}

func TestAlphabetExceeded(t *testing.T) {
	if _, err := BuildNaive(2, []uint8{0, 1, 2}); err != ErrAlphabetExceeded {
		t.Fatalf("expected ErrAlphabetExceeded, got %v", err)
	}
	if _, err := BuildEPR(2, []uint8{0, 5}); err != ErrAlphabetExceeded {
		t.Fatalf("expected ErrAlphabetExceeded, got %v", err)
	}
}
