package csa

import (
	"testing"

	"github.com/fmindex-go/fmindex/bitvector"
)

func denseBuilder(n int, bit bitvector.BitFunc) (bitvector.BitVector, error) {
	return bitvector.BuildDense(n, bit)
}

// naiveSuffixArray builds the full suffix array of s by brute-force
// comparison, used only as a test fixture.
func naiveSuffixArray(s []byte) []int {
	sa := make([]int, len(s))
	for i := range sa {
		sa[i] = i
	}
	less := func(i, j int) bool {
		a, b := sa[i], sa[j]
		for a < len(s) && b < len(s) {
			if s[a] != s[b] {
				return s[a] < s[b]
			}
			a++
			b++
		}
		return (len(s) - sa[i]) < (len(s) - sa[j])
	}
	// simple insertion sort is fine for small test fixtures
	for i := 1; i < len(sa); i++ {
		for j := i; j > 0 && less(j, j-1); j-- {
			sa[j], sa[j-1] = sa[j-1], sa[j]
		}
	}
	return sa
}

func TestBuildSASampledRoundTrips(t *testing.T) {
	text := []byte("banana$mississippi$")
	seqStarts := []int{0, 7}
	sa := naiveSuffixArray(text)

	c, err := BuildSASampled(sa, seqStarts, 3, denseBuilder)
	if err != nil {
		t.Fatalf("BuildSASampled: %v", err)
	}
	if c.Size() != len(sa) {
		t.Fatalf("Size() = %d, want %d", c.Size(), len(sa))
	}
	for i, saValue := range sa {
		want := toPosition(saValue, seqStarts)
		// Every third row is sampled, and so is every sequence-start row.
		if i%3 != 0 && want.Offset != 0 {
			if c.HasValue(i) {
				t.Errorf("row %d unexpectedly sampled", i)
			}
			continue
		}
		if !c.HasValue(i) {
			t.Fatalf("row %d expected sampled", i)
		}
		pos, err := c.Value(i)
		if err != nil {
			t.Fatalf("Value(%d): %v", i, err)
		}
		if pos != want {
			t.Errorf("row %d: Value = %+v, want %+v", i, pos, want)
		}
	}
}

func TestBuildTextSampledSamplesByOffset(t *testing.T) {
	text := []byte("banana$mississippi$")
	seqStarts := []int{0, 7}
	sa := naiveSuffixArray(text)

	c, err := BuildTextSampled(sa, seqStarts, 4, denseBuilder)
	if err != nil {
		t.Fatalf("BuildTextSampled: %v", err)
	}
	for i, saValue := range sa {
		pos := toPosition(saValue, seqStarts)
		wantSampled := pos.Offset%4 == 0
		if c.HasValue(i) != wantSampled {
			t.Fatalf("row %d: HasValue = %v, want %v (offset %d)", i, c.HasValue(i), wantSampled, pos.Offset)
		}
		if wantSampled {
			got, err := c.Value(i)
			if err != nil {
				t.Fatalf("Value(%d): %v", i, err)
			}
			if got != pos {
				t.Errorf("row %d: Value = %+v, want %+v", i, got, pos)
			}
		}
	}
}

func TestValueNotSampledReturnsErr(t *testing.T) {
	text := []byte("aaaa$")
	seqStarts := []int{0}
	sa := naiveSuffixArray(text)
	c, err := BuildSASampled(sa, seqStarts, 2, denseBuilder)
	if err != nil {
		t.Fatalf("BuildSASampled: %v", err)
	}
	for i := 0; i < c.Size(); i++ {
		if !c.HasValue(i) {
			if _, err := c.Value(i); err != ErrNotSampled {
				t.Fatalf("row %d: expected ErrNotSampled, got %v", i, err)
			}
		}
	}
}
