package fmindex

import "testing"

func TestBuildReverseLocatesReversedText(t *testing.T) {
	sequences := [][]byte{[]byte("Hallo Welt")}
	alphabet := bytesAlphabet(t, sequences)

	idx, err := BuildReverse(sequences, alphabet, naiveRankBuilder, denseSABuilder)
	if err != nil {
		t.Fatalf("BuildReverse: %v", err)
	}

	// The index is built over the reversed text, so a backward search for
	// the whole of "tleW ollaH" must find exactly one occurrence, starting
	// at offset 0 of the single sequence.
	reversed := []byte("tleW ollaH")
	cur := idx.Cursor()
	for i := len(reversed) - 1; i >= 0; i-- {
		sym, ok := alphabet.Encode(reversed[i])
		if !ok {
			t.Fatalf("byte %q not in alphabet", reversed[i])
		}
		cur = cur.ExtendLeft(sym)
	}
	if !cur.IsMatch() || cur.Count() != 1 {
		t.Fatalf("reversed text %q not found as a unique match: count=%d", reversed, cur.Count())
	}

	positions := cur.Locate()
	if len(positions) != 1 || positions[0].Offset != 0 {
		t.Fatalf("Locate() = %+v, want a single position at offset 0", positions)
	}
}

func TestBuildReverseCountsAgreeWithReversedPattern(t *testing.T) {
	sequences := [][]byte{[]byte("banana"), []byte("ananas")}
	alphabet := bytesAlphabet(t, sequences)

	idx, err := BuildReverse(sequences, alphabet, naiveRankBuilder, denseSABuilder)
	if err != nil {
		t.Fatalf("BuildReverse: %v", err)
	}

	// "ana" read backward is still "ana", so its count in the reversed
	// collection must equal its count in the forward collection.
	want := countSubstring(sequences, []byte("ana"))
	cur := idx.Cursor()
	for _, b := range []byte("ana") {
		sym, _ := alphabet.Encode(b)
		cur = cur.ExtendLeft(sym)
	}
	if cur.Count() != want {
		t.Errorf("reversed Count() = %d, want %d", cur.Count(), want)
	}
}
