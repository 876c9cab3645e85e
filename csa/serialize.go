package csa

import (
	"errors"
	"fmt"

	"github.com/fmindex-go/fmindex/bitvector"
	"github.com/fmindex-go/fmindex/internal/conv"
	"github.com/fmindex-go/fmindex/serialize"
)

// ErrUnsupportedMarkedVector is returned by WriteTo when a
// CompressedSA's marker bit vector is not a *bitvector.Dense: the CSA is
// stored as its row count, the marker bit vector's raw words, the sampled
// (seqID, offset) values and the sample count, which this package
// implements against the one BitVector that already exposes its raw
// words (see bitvector.Dense.Words); an RLE-backed CompressedSA has
// no equivalent raw-word representation to memcpy and is out of scope
// for this archive format.
var ErrUnsupportedMarkedVector = errors.New("csa: serialize only supports a *bitvector.Dense marker vector")

const typeTagCompressedSA uint32 = 0x43534131 // "CSA1"

// WriteTo writes c to w in the archive format from spec.md §6: a
// sub-object with fields [n, marker bit vector (bitpacked), values
// (seqID/offset pairs), sample count].
func (c *CompressedSA) WriteTo(w *serialize.Writer) error {
	dense, ok := c.marked.(*bitvector.Dense)
	if !ok {
		return ErrUnsupportedMarkedVector
	}

	w.BeginObject(typeTagCompressedSA, 4)
	w.Int(uint64(c.n))
	w.BitpackedWords(dense.Words())
	flat := make([]uint64, 0, len(c.values)*2)
	for _, p := range c.values {
		flat = append(flat, uint64(p.SeqID), uint64(p.Offset))
	}
	w.Uint64Array(flat)
	w.Int(uint64(len(c.values)))
	return w.Err()
}

// ReadCompressedSA reads a CompressedSA written by WriteTo.
func ReadCompressedSA(r *serialize.Reader) (*CompressedSA, error) {
	_, numFields := r.BeginObject()
	if err := r.Err(); err != nil {
		return nil, err
	}
	if numFields != 4 {
		return nil, fmt.Errorf("csa: expected 4 fields, archive declares %d", numFields)
	}
	n := int(r.Int())
	words := r.BitpackedWords()
	flat := r.Uint64Array()
	sampleCount := int(r.Int())
	if err := r.Err(); err != nil {
		return nil, err
	}

	if len(flat) != sampleCount*2 {
		return nil, fmt.Errorf("csa: value array length %d inconsistent with sample count %d", len(flat), sampleCount)
	}
	values := make([]Position, sampleCount)
	for i := range values {
		values[i] = Position{SeqID: conv.Uint64ToUint32(flat[2*i]), Offset: conv.Uint64ToUint32(flat[2*i+1])}
	}

	marked := bitvector.FromWords(n, words)
	return &CompressedSA{n: n, marked: marked, values: values}, nil
}
