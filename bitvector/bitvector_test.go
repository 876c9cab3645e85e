package bitvector

import (
	"math/rand"
	"testing"
)

func naiveRank(bits []bool, i int) int {
	n := 0
	for _, b := range bits[:i] {
		if b {
			n++
		}
	}
	return n
}

func checkContract(t *testing.T, name string, bv BitVector, bits []bool) {
	t.Helper()
	if bv.Size() != len(bits) {
		t.Fatalf("%s: Size() = %d, want %d", name, bv.Size(), len(bits))
	}
	for i, want := range bits {
		if got := bv.Symbol(i); got != want {
			t.Errorf("%s: Symbol(%d) = %v, want %v", name, i, got, want)
		}
	}
	for i := 0; i <= len(bits); i++ {
		want := naiveRank(bits, i)
		if got := bv.Rank(i); got != want {
			t.Errorf("%s: Rank(%d) = %d, want %d", name, i, got, want)
		}
	}
}

func randomBits(n int, seed int64) []bool {
	r := rand.New(rand.NewSource(seed))
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = r.Intn(4) == 0 // skewed, exercises runs
	}
	return bits
}

func TestDenseRankContract(t *testing.T) {
	sizes := []int{0, 1, 63, 64, 65, 383, 384, 385, 1000, 2305}
	for _, n := range sizes {
		bits := randomBits(n, int64(n))
		dv, err := BuildDense(n, AlwaysOK(func(i int) bool { return bits[i] }))
		if err != nil {
			t.Fatalf("BuildDense(%d): %v", n, err)
		}
		checkContract(t, "Dense", dv, bits)
	}
}

func TestDenseOutOfRange(t *testing.T) {
	_, err := BuildDense(10, func(i int) (bool, bool) {
		if i >= 5 {
			return false, false
		}
		return true, true
	})
	if err != ErrOutOfRange {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestRLERankContractOverDense(t *testing.T) {
	sizes := []int{0, 1, 10, 384, 1000}
	for _, n := range sizes {
		// Long runs: a handful of switches in a big vector.
		bits := make([]bool, n)
		val := false
		for i := range bits {
			if i%137 == 0 {
				val = !val
			}
			bits[i] = val
		}
		rv, err := BuildRLE(n, AlwaysOK(func(i int) bool { return bits[i] }), func(n int, bit BitFunc) (BitVector, error) {
			return BuildDense(n, bit)
		})
		if err != nil {
			t.Fatalf("BuildRLE(%d): %v", n, err)
		}
		checkContract(t, "RLE/Dense", rv, bits)
	}
}

func TestRLENestedOverRLE(t *testing.T) {
	n := 2000
	bits := make([]bool, n)
	val := false
	for i := range bits {
		if i%53 == 0 {
			val = !val
		}
		bits[i] = val
	}
	innerBuilder := func(n int, bit BitFunc) (BitVector, error) {
		return BuildRLE(n, bit, func(n int, bit BitFunc) (BitVector, error) { return BuildDense(n, bit) })
	}
	rv, err := BuildRLE(n, AlwaysOK(func(i int) bool { return bits[i] }), innerBuilder)
	if err != nil {
		t.Fatalf("nested BuildRLE: %v", err)
	}
	checkContract(t, "RLE/RLE/Dense", rv, bits)
}

func TestDensePrefetchDoesNotPanic(t *testing.T) {
	bits := randomBits(500, 7)
	dv, _ := BuildDense(500, AlwaysOK(func(i int) bool { return bits[i] }))
	for i := 0; i < 500; i += 37 {
		dv.Prefetch(i)
	}
}
