package fmindex

import (
	"github.com/fmindex-go/fmindex/csa"
	"github.com/fmindex-go/fmindex/rank"
)

// RankBuilder constructs a rank.Dictionary over a BWT string of the given
// alphabet size. Every rank-dictionary variant in package rank fits this
// shape once its extra construction parameters (an inner bitvector
// builder, a super-block width, ...) are captured in a closure, which is
// exactly how Build/BuildBidirectional take their dictionary flavor as a
// parameter rather than hard-coding one.
type RankBuilder func(sigma int, symbols []Symbol) (rank.Dictionary, error)

// SABuilder constructs a csa.CompressedSA from a suffix array and the
// starting offsets of each indexed sequence within the concatenated text.
type SABuilder func(sa []int, seqStarts []int) (*csa.CompressedSA, error)

// Position names a point in the original, multi-sequence input: which
// sequence, and which offset into it.
type Position = csa.Position

// FMIndex is the unidirectional succinct full-text index from spec §5:
// an FM-index over a set of indexed sequences, answering backward search
// (ExtendLeft) and locate.
type FMIndex struct {
	alphabet *Alphabet
	n        int
	bwt      rank.Dictionary
	c        []uint64
	sa       *csa.CompressedSA
}

// Alphabet returns the alphabet the index was built over.
func (idx *FMIndex) Alphabet() *Alphabet { return idx.alphabet }

// Len returns the length of the concatenated, sentinel-joined text.
func (idx *FMIndex) Len() int { return idx.n }

// Cursor returns the cursor over the empty match (the whole index).
func (idx *FMIndex) Cursor() Cursor {
	return Cursor{idx: idx, lb: 0, len: idx.n, depth: 0}
}

// Build constructs an FMIndex over sequences (raw, un-encoded bytes — one
// sentinel is appended to each automatically), rejecting forbidden bytes
// first (see validateSequences) and then encoding them with alphabet,
// which rejects any byte outside it. It is BuildWithConfig with
// DefaultConfig (sequential encoding).
func Build(sequences [][]byte, alphabet *Alphabet, rankBuilder RankBuilder, saBuilder SABuilder) (*FMIndex, error) {
	return BuildWithConfig(sequences, alphabet, rankBuilder, saBuilder, DefaultConfig())
}

// BuildWithConfig is Build with construction-time resource usage
// controlled by config (spec.md §5): config.Workers parallelizes
// sequence encoding across that many goroutines. The resulting index is
// identical regardless of config.
func BuildWithConfig(sequences [][]byte, alphabet *Alphabet, rankBuilder RankBuilder, saBuilder SABuilder, config BuildConfig) (*FMIndex, error) {
	text, seqStarts, _, err := validateAndConcatParallel(sequences, alphabet, config.Workers)
	if err != nil {
		return nil, err
	}

	sa := buildSuffixArray(text)
	bwtSymbols := buildBWT(text, sa)
	bwt, err := rankBuilder(alphabet.Sigma, bwtSymbols)
	if err != nil {
		return nil, err
	}
	c := cumulativeCounts(alphabet.Sigma, text)

	compressedSA, err := saBuilder(sa, seqStarts)
	if err != nil {
		return nil, err
	}

	return &FMIndex{alphabet: alphabet, n: len(text), bwt: bwt, c: c, sa: compressedSA}, nil
}

// Locate resolves a single suffix-array row to its (sequence, offset)
// position, LF-stepping from row until it reaches a sampled row in the
// compressed suffix array — single_locate_step applied repeatedly, per
// spec §5.
func (idx *FMIndex) Locate(row int) csa.Position {
	var steps uint32
	for !idx.sa.HasValue(row) {
		c := idx.bwt.Symbol(row)
		row = int(idx.c[c]) + int(idx.bwt.Rank(row, c))
		steps++
	}
	pos, err := idx.sa.Value(row)
	if err != nil {
		panic("fmindex: sampled row reported HasValue but Value failed: " + err.Error())
	}
	pos.Offset += steps
	return pos
}
