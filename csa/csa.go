// Package csa implements the compressed suffix array from spec §4.4: a
// sampled subset of suffix-array values, addressed by (sequence id,
// offset) pairs rather than raw text positions, so the index of a
// multi-sequence collection locates into "which input, which position"
// without ever materializing the uncompressed suffix array.
package csa

import (
	"errors"
	"sort"

	"github.com/fmindex-go/fmindex/bitvector"
	"github.com/fmindex-go/fmindex/internal/conv"
)

// ErrNotSampled is returned by Value when the requested suffix-array row
// was not one of the sampled positions; callers should walk LF-steps (via
// the owning FMIndex) until they reach a sampled row instead.
var ErrNotSampled = errors.New("csa: suffix-array row is not sampled")

// Position names a single point in the original, multi-sequence input:
// sequence SeqID, Offset characters into it.
type Position struct {
	SeqID  uint32
	Offset uint32
}

// CompressedSA is the sampled suffix array. Rows where Marked.Symbol(i) is
// true have an entry in Values at index Marked.Rank(i); all other rows
// must be recovered by LF-stepping to a sampled neighbor.
type CompressedSA struct {
	n      int
	marked bitvector.BitVector
	values []Position
}

// HasValue reports whether suffix-array row i was sampled.
func (c *CompressedSA) HasValue(i int) bool {
	return c.marked.Symbol(i)
}

// Value returns the sampled (sequence, offset) pair at row i. It returns
// ErrNotSampled if row i was not sampled.
func (c *CompressedSA) Value(i int) (Position, error) {
	if !c.marked.Symbol(i) {
		return Position{}, ErrNotSampled
	}
	return c.values[c.marked.Rank(i)], nil
}

// Size returns the number of suffix-array rows (text length, including
// sentinels).
func (c *CompressedSA) Size() int { return c.n }

// SampleCount returns the number of sampled rows.
func (c *CompressedSA) SampleCount() int { return len(c.values) }

// toPosition converts a flat suffix-array value (an offset into the
// concatenated, sentinel-joined text) into a Position, via binary search
// over sorted sequence start offsets.
func toPosition(saValue int, seqStarts []int) Position {
	// seqStarts[k] is the start offset of sequence k in the concatenated
	// text; the sequence containing saValue is the last start <= saValue.
	idx := sort.Search(len(seqStarts), func(k int) bool { return seqStarts[k] > saValue }) - 1
	return Position{SeqID: conv.IntToUint32(idx), Offset: conv.IntToUint32(saValue - seqStarts[idx])}
}

// BuildSASampled builds a CompressedSA that samples every `rate`-th row of
// the suffix array itself (spec §4.4's "SA-sampled" policy), plus every
// row whose text offset is a sequence start, so an LF walk never has to
// cross a sentinel into the previous sequence: fast to build, sample
// density is uniform over SA rows rather than over text positions.
func BuildSASampled(sa []int, seqStarts []int, rate int, builder bitvector.Builder) (*CompressedSA, error) {
	if rate < 1 {
		rate = 1
	}
	n := len(sa)
	positions := make([]Position, n)
	var values []Position
	for i, saValue := range sa {
		positions[i] = toPosition(saValue, seqStarts)
	}
	sampled := func(i int) bool { return i%rate == 0 || positions[i].Offset == 0 }
	marked, err := builder(n, bitvector.AlwaysOK(sampled))
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if sampled(i) {
			values = append(values, positions[i])
		}
	}
	return &CompressedSA{n: n, marked: marked, values: values}, nil
}

// BuildTextSampled builds a CompressedSA that samples rows whose
// corresponding text offset is a multiple of `rate` (spec §4.4's
// "text-sampled" policy): sample density is uniform over text positions,
// which bounds the worst-case LF-walk length more evenly across inputs
// than SA-sampling does when sequence lengths vary widely.
func BuildTextSampled(sa []int, seqStarts []int, rate int, builder bitvector.Builder) (*CompressedSA, error) {
	if rate < 1 {
		rate = 1
	}
	n := len(sa)
	positions := make([]Position, n)
	sampledMask := make([]bool, n)
	var values []Position
	for i, saValue := range sa {
		pos := toPosition(saValue, seqStarts)
		positions[i] = pos
		if pos.Offset%uint32(rate) == 0 {
			sampledMask[i] = true
		}
	}
	marked, err := builder(n, bitvector.AlwaysOK(func(i int) bool { return sampledMask[i] }))
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if sampledMask[i] {
			values = append(values, positions[i])
		}
	}
	return &CompressedSA{n: n, marked: marked, values: values}, nil
}
