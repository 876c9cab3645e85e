package searchscheme

import "testing"

// pigeonholeScheme is the classic pigeonhole scheme for k=1 error over 2
// parts: search each part error-free first, allow the error in the other.
func pigeonholeScheme() Scheme {
	return Scheme{
		{Pi: []int{0, 1}, L: []int{0, 0}, U: []int{0, 1}},
		{Pi: []int{1, 0}, L: []int{0, 0}, U: []int{0, 1}},
	}
}

func TestSearchValidateAccepts(t *testing.T) {
	for i, s := range pigeonholeScheme() {
		if err := s.Validate(); err != nil {
			t.Errorf("search %d: %v", i, err)
		}
	}
}

func TestSearchValidateRejectsNonPermutation(t *testing.T) {
	s := Search{Pi: []int{0, 0}, L: []int{0, 0}, U: []int{1, 1}}
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for non-permutation Pi")
	}
}

func TestSearchValidateRejectsDecreasingBounds(t *testing.T) {
	s := Search{Pi: []int{0, 1}, L: []int{1, 0}, U: []int{1, 1}}
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for decreasing L")
	}
}

func TestSearchValidateRejectsDisconnectedPi(t *testing.T) {
	s := Search{Pi: []int{0, 2, 1}, L: []int{0, 0, 0}, U: []int{1, 1, 1}}
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for a Pi that doesn't visit a contiguous range at every step")
	}
}

func TestPigeonholeSchemeIsCompleteForOneError(t *testing.T) {
	if !IsComplete(pigeonholeScheme(), 2, 0, 1) {
		t.Fatal("pigeonhole scheme should be complete for <= 1 error over 2 parts")
	}
}

func TestSingleErrorFreeSearchIsNotComplete(t *testing.T) {
	s := Scheme{{Pi: []int{0, 1}, L: []int{0, 0}, U: []int{0, 0}}}
	if IsComplete(s, 2, 0, 1) {
		t.Fatal("an error-free-only search should not be complete for up to 1 error")
	}
}

func TestExpandPreservesFinalBounds(t *testing.T) {
	s := Search{Pi: []int{0, 1}, L: []int{0, 0}, U: []int{0, 1}}
	expanded := Expand(s, []int{2, 1})
	if len(expanded.Pi) != 3 {
		t.Fatalf("expected 3 sub-parts, got %d", len(expanded.Pi))
	}
	// Last sub-part of original part 0 (index 1 in newPi) must carry the
	// original step 0 bounds; the final sub-part (part 1) must carry step 1.
	if expanded.L[1] != 0 || expanded.U[1] != 0 {
		t.Errorf("end of part 0: L/U = %d/%d, want 0/0", expanded.L[1], expanded.U[1])
	}
	if expanded.L[2] != 0 || expanded.U[2] != 1 {
		t.Errorf("end of part 1: L/U = %d/%d, want 0/1", expanded.L[2], expanded.U[2])
	}
	if err := expanded.Validate(); err != nil {
		t.Errorf("expanded search invalid: %v", err)
	}
}

func TestExpandTwiceEqualsExpandOnceWithComposedPartition(t *testing.T) {
	s := Search{Pi: []int{0, 1}, L: []int{0, 0}, U: []int{0, 1}}
	// First expand part 0 into 2 sub-parts (identity on part 1).
	once := Expand(s, []int{2, 1})
	// Then further split the (now 3-part) search's first sub-part into 2.
	twice := Expand(once, []int{2, 1, 1})
	// Splitting part 0 into 2 then the first of those into 2 again is the
	// same as splitting part 0 into 3 directly (and part 1 untouched).
	direct := Expand(s, []int{3, 1})
	if len(twice.Pi) != len(direct.Pi) {
		t.Fatalf("length mismatch: %d vs %d", len(twice.Pi), len(direct.Pi))
	}
	for i := range direct.Pi {
		if twice.L[i] != direct.L[i] || twice.U[i] != direct.U[i] {
			t.Errorf("step %d: twice-expanded = {%d,%d}, direct = {%d,%d}", i, twice.L[i], twice.U[i], direct.L[i], direct.U[i])
		}
	}
}

func TestLimitToHammingCapsBoundsByDepth(t *testing.T) {
	s := Scheme{{Pi: []int{0, 1, 2}, L: []int{0, 0, 0}, U: []int{3, 3, 3}}}
	limited := LimitToHamming(s)
	want := []int{1, 2, 3}
	for i, u := range limited[0].U {
		if u != want[i] {
			t.Errorf("U[%d] = %d, want %d", i, u, want[i])
		}
	}
}

func TestNodeCountPrefersTighterScheme(t *testing.T) {
	partLengths := []int{5, 5}
	loose := Scheme{{Pi: []int{0, 1}, L: []int{0, 0}, U: []int{1, 1}}}
	tight := Scheme{{Pi: []int{0, 1}, L: []int{0, 0}, U: []int{0, 0}}}
	if NodeCount(tight, partLengths, 4) >= NodeCount(loose, partLengths, 4) {
		t.Error("an error-free search should cost less than one allowing an error throughout")
	}
}
