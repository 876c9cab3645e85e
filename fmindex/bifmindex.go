package fmindex

import (
	"github.com/fmindex-go/fmindex/csa"
	"github.com/fmindex-go/fmindex/rank"
)

// BiFMIndex is the bidirectional FM-index from spec §5: a forward rank
// dictionary (over the BWT of the text) and a reverse rank dictionary
// (over the BWT of the per-sequence-reversed text) sharing one
// compressed suffix array, letting a BiCursor extend a match on either
// end in O(1) rank queries per step.
type BiFMIndex struct {
	alphabet *Alphabet
	n        int
	forward  rank.Dictionary
	forwardC []uint64
	reverse  rank.Dictionary
	reverseC []uint64
	sa       *csa.CompressedSA
}

// Alphabet returns the alphabet the index was built over.
func (idx *BiFMIndex) Alphabet() *Alphabet { return idx.alphabet }

// Len returns the length of the concatenated, sentinel-joined text.
func (idx *BiFMIndex) Len() int { return idx.n }

// Cursor returns the bidirectional cursor over the empty match.
func (idx *BiFMIndex) Cursor() BiCursor {
	return BiCursor{idx: idx, lb: 0, lbRev: 0, len: idx.n, depth: 0}
}

// BuildBidirectional constructs a BiFMIndex over sequences, building both
// the forward and reverse rank dictionaries with rankBuilder. It is
// BuildBidirectionalWithConfig with DefaultConfig (sequential encoding).
func BuildBidirectional(sequences [][]byte, alphabet *Alphabet, rankBuilder RankBuilder, saBuilder SABuilder) (*BiFMIndex, error) {
	return BuildBidirectionalWithConfig(sequences, alphabet, rankBuilder, saBuilder, DefaultConfig())
}

// BuildBidirectionalWithConfig is BuildBidirectional with
// construction-time resource usage controlled by config, identically to
// BuildWithConfig.
func BuildBidirectionalWithConfig(sequences [][]byte, alphabet *Alphabet, rankBuilder RankBuilder, saBuilder SABuilder, config BuildConfig) (*BiFMIndex, error) {
	text, seqStarts, seqEnds, err := validateAndConcatParallel(sequences, alphabet, config.Workers)
	if err != nil {
		return nil, err
	}

	sa := buildSuffixArray(text)
	fwdBWTSymbols := buildBWT(text, sa)
	fwdDict, err := rankBuilder(alphabet.Sigma, fwdBWTSymbols)
	if err != nil {
		return nil, err
	}
	fwdC := cumulativeCounts(alphabet.Sigma, text)

	revText := reverseSequences(text, seqStarts, seqEnds)
	revSA := buildSuffixArray(revText)
	revBWTSymbols := buildBWT(revText, revSA)
	revDict, err := rankBuilder(alphabet.Sigma, revBWTSymbols)
	if err != nil {
		return nil, err
	}
	revC := cumulativeCounts(alphabet.Sigma, revText)

	compressedSA, err := saBuilder(sa, seqStarts)
	if err != nil {
		return nil, err
	}

	return &BiFMIndex{
		alphabet: alphabet,
		n:        len(text),
		forward:  fwdDict,
		forwardC: fwdC,
		reverse:  revDict,
		reverseC: revC,
		sa:       compressedSA,
	}, nil
}

// Locate resolves a forward suffix-array row to its position, identically
// to FMIndex.Locate.
func (idx *BiFMIndex) Locate(row int) Position {
	var steps uint32
	for !idx.sa.HasValue(row) {
		c := idx.forward.Symbol(row)
		row = int(idx.forwardC[c]) + int(idx.forward.Rank(row, c))
		steps++
	}
	pos, err := idx.sa.Value(row)
	if err != nil {
		panic("fmindex: sampled row reported HasValue but Value failed: " + err.Error())
	}
	pos.Offset += steps
	return pos
}
