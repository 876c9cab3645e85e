package fmindex

import "testing"

func TestBuildWithConfigParallelMatchesSequential(t *testing.T) {
	sequences := [][]byte{
		[]byte("Hallo Welt"), []byte("Hallo Go"), []byte("banana"),
		[]byte("ananas"), []byte("mississippi"),
	}
	alphabet := bytesAlphabet(t, sequences)

	seq, err := BuildWithConfig(sequences, alphabet, naiveRankBuilder, denseSABuilder, BuildConfig{Workers: 1})
	if err != nil {
		t.Fatalf("BuildWithConfig(Workers:1): %v", err)
	}
	par, err := BuildWithConfig(sequences, alphabet, naiveRankBuilder, denseSABuilder, BuildConfig{Workers: 4})
	if err != nil {
		t.Fatalf("BuildWithConfig(Workers:4): %v", err)
	}

	if seq.Len() != par.Len() {
		t.Fatalf("Len() differs: sequential=%d parallel=%d", seq.Len(), par.Len())
	}
	for _, pat := range []string{"l", "an", "Hallo", "ssi"} {
		sc, pc := seq.Cursor(), par.Cursor()
		for i := len(pat) - 1; i >= 0; i-- {
			sym, _ := alphabet.Encode(pat[i])
			sc = sc.ExtendLeft(sym)
			pc = pc.ExtendLeft(sym)
		}
		if sc.Count() != pc.Count() {
			t.Errorf("pattern %q: sequential Count()=%d, parallel Count()=%d", pat, sc.Count(), pc.Count())
		}
	}
}

func TestBuildWithConfigRejectsBadSequenceRegardlessOfWorkers(t *testing.T) {
	alphabet := DNA()
	for _, workers := range []int{1, 3} {
		_, err := BuildWithConfig([][]byte{[]byte("ACGTN")}, alphabet, naiveRankBuilder, denseSABuilder, BuildConfig{Workers: workers})
		if err == nil {
			t.Errorf("workers=%d: expected an error for a byte outside the alphabet", workers)
		}
	}
}
