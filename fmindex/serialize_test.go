package fmindex

import (
	"bytes"
	"testing"

	"github.com/fmindex-go/fmindex/rank"
	"github.com/fmindex-go/fmindex/serialize"
)

func eprRankBuilder(sigma int, symbols []Symbol) (rank.Dictionary, error) {
	return rank.BuildEPR(sigma, symbols)
}

func TestSaveLoadRoundTripsFMIndex(t *testing.T) {
	sequences := [][]byte{[]byte("Hallo Welt"), []byte("Hallo Go")}
	alphabet := bytesAlphabet(t, sequences)

	idx, err := Build(sequences, alphabet, eprRankBuilder, denseSABuilder)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var buf bytes.Buffer
	if err := Save(idx, serialize.NewWriter(&buf)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(serialize.NewReader(&buf), alphabet)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != idx.Len() {
		t.Fatalf("loaded.Len() = %d, want %d", loaded.Len(), idx.Len())
	}

	for _, pat := range []string{"l", "al", "Hallo", "o"} {
		c1, c2 := idx.Cursor(), loaded.Cursor()
		for i := len(pat) - 1; i >= 0; i-- {
			sym, _ := alphabet.Encode(pat[i])
			c1 = c1.ExtendLeft(sym)
			c2 = c2.ExtendLeft(sym)
		}
		if c1.Count() != c2.Count() {
			t.Errorf("pattern %q: original Count()=%d, loaded Count()=%d", pat, c1.Count(), c2.Count())
		}
		p1, p2 := c1.Locate(), c2.Locate()
		sortPositions(p1)
		sortPositions(p2)
		if len(p1) != len(p2) {
			t.Fatalf("pattern %q: original %d positions, loaded %d", pat, len(p1), len(p2))
		}
		for i := range p1 {
			if p1[i] != p2[i] {
				t.Errorf("pattern %q: position %d: original %+v, loaded %+v", pat, i, p1[i], p2[i])
			}
		}
	}
}

func TestSaveRejectsNonEPRDictionary(t *testing.T) {
	sequences := [][]byte{[]byte("banana")}
	alphabet := bytesAlphabet(t, sequences)
	idx, err := Build(sequences, alphabet, naiveRankBuilder, denseSABuilder)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var buf bytes.Buffer
	if err := Save(idx, serialize.NewWriter(&buf)); err != ErrUnsupportedRankDictionary {
		t.Fatalf("Save with Naive dictionary: err = %v, want ErrUnsupportedRankDictionary", err)
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("nope, not an archive at all")
	alphabet := DNA()
	_, err := Load(serialize.NewReader(buf), alphabet)
	if err != serialize.ErrBadMagic {
		t.Fatalf("Load with garbage header: err = %v, want ErrBadMagic", err)
	}
}

func TestSaveLoadBidirectionalRoundTrips(t *testing.T) {
	sequences := [][]byte{[]byte("GATTACA"), []byte("ACATTAG")}
	alphabet := bytesAlphabet(t, sequences)

	idx, err := BuildBidirectional(sequences, alphabet, eprRankBuilder, denseSABuilder)
	if err != nil {
		t.Fatalf("BuildBidirectional: %v", err)
	}

	var buf bytes.Buffer
	if err := SaveBidirectional(idx, serialize.NewWriter(&buf)); err != nil {
		t.Fatalf("SaveBidirectional: %v", err)
	}
	loaded, err := LoadBidirectional(serialize.NewReader(&buf), alphabet)
	if err != nil {
		t.Fatalf("LoadBidirectional: %v", err)
	}

	pat := "ATT"
	c1, c2 := idx.Cursor(), loaded.Cursor()
	for i := len(pat) - 1; i >= 0; i-- {
		sym, _ := alphabet.Encode(pat[i])
		c1 = c1.ExtendLeft(sym)
		c2 = c2.ExtendLeft(sym)
	}
	if c1.Count() != c2.Count() {
		t.Errorf("forward Count(): original=%d loaded=%d", c1.Count(), c2.Count())
	}

	c1r, c2r := idx.Cursor(), loaded.Cursor()
	for i := 0; i < len(pat); i++ {
		sym, _ := alphabet.Encode(pat[i])
		c1r = c1r.ExtendRight(sym)
		c2r = c2r.ExtendRight(sym)
	}
	if c1r.Count() != c2r.Count() {
		t.Errorf("reverse-extended Count(): original=%d loaded=%d", c1r.Count(), c2r.Count())
	}
}
