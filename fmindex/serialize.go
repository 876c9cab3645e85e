package fmindex

import (
	"errors"
	"fmt"

	"github.com/fmindex-go/fmindex/csa"
	"github.com/fmindex-go/fmindex/rank"
	"github.com/fmindex-go/fmindex/serialize"
)

// ErrUnsupportedRankDictionary is returned by Save when the index's rank
// dictionary is not a *rank.EPR: spec.md §6 names the rank-dictionary as
// the first thing an FM-index file contains, but only EPR has a
// concrete bit-packed, memcpy-as-is layout to archive (see
// rank.EPR.WriteTo) — the other variants (Naive, MultiBitvector,
// Wavelet, RLE, ...) would each need their own WriteTo/Read pair before
// this function could support them, left for a future addition rather
// than invented here without a grounded layout.
var ErrUnsupportedRankDictionary = errors.New("fmindex: Save only supports a *rank.EPR rank dictionary")

const typeTagFMIndex uint32 = 0x464d4931 // "FMI1"
const typeTagBiFMIndex uint32 = 0x464d4932 // "FMI2"

// Save writes idx to w in the archive format from spec.md §6: header,
// then rank-dictionary, C-array, CSA in that order.
func Save(idx *FMIndex, w *serialize.Writer) error {
	bwt, ok := idx.bwt.(*rank.EPR)
	if !ok {
		return ErrUnsupportedRankDictionary
	}
	w.Header()
	w.BeginObject(typeTagFMIndex, 3)
	w.BeginSubObject()
	if err := bwt.WriteTo(w); err != nil {
		return err
	}
	w.Uint64Array(idx.c)
	w.BeginSubObject()
	if err := idx.sa.WriteTo(w); err != nil {
		return err
	}
	return w.Err()
}

// Load reads an FMIndex written by Save.
func Load(r *serialize.Reader, alphabet *Alphabet) (*FMIndex, error) {
	r.Header()
	_, numFields := r.BeginObject()
	if err := r.Err(); err != nil {
		return nil, err
	}
	if numFields != 3 {
		return nil, fmt.Errorf("fmindex: expected 3 fields, archive declares %d", numFields)
	}
	r.BeginSubObject()
	bwt, err := rank.ReadEPR(r)
	if err != nil {
		return nil, err
	}
	c := r.Uint64Array()
	r.BeginSubObject()
	sa, err := csa.ReadCompressedSA(r)
	if err != nil {
		return nil, err
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return &FMIndex{alphabet: alphabet, n: bwt.Size(), bwt: bwt, c: c, sa: sa}, nil
}

// SaveBidirectional writes idx to w: header, forward rank-dictionary,
// forward C-array, reverse rank-dictionary, reverse C-array, CSA — spec
// .md §6's "bidirectional index file adds a second rank-dictionary after
// the first".
func SaveBidirectional(idx *BiFMIndex, w *serialize.Writer) error {
	fwd, ok := idx.forward.(*rank.EPR)
	if !ok {
		return ErrUnsupportedRankDictionary
	}
	rev, ok := idx.reverse.(*rank.EPR)
	if !ok {
		return ErrUnsupportedRankDictionary
	}
	w.Header()
	w.BeginObject(typeTagBiFMIndex, 5)
	w.BeginSubObject()
	if err := fwd.WriteTo(w); err != nil {
		return err
	}
	w.Uint64Array(idx.forwardC)
	w.BeginSubObject()
	if err := rev.WriteTo(w); err != nil {
		return err
	}
	w.Uint64Array(idx.reverseC)
	w.BeginSubObject()
	if err := idx.sa.WriteTo(w); err != nil {
		return err
	}
	return w.Err()
}

// LoadBidirectional reads a BiFMIndex written by SaveBidirectional.
func LoadBidirectional(r *serialize.Reader, alphabet *Alphabet) (*BiFMIndex, error) {
	r.Header()
	_, numFields := r.BeginObject()
	if err := r.Err(); err != nil {
		return nil, err
	}
	if numFields != 5 {
		return nil, fmt.Errorf("fmindex: expected 5 fields, archive declares %d", numFields)
	}
	r.BeginSubObject()
	fwd, err := rank.ReadEPR(r)
	if err != nil {
		return nil, err
	}
	fwdC := r.Uint64Array()
	r.BeginSubObject()
	rev, err := rank.ReadEPR(r)
	if err != nil {
		return nil, err
	}
	revC := r.Uint64Array()
	r.BeginSubObject()
	sa, err := csa.ReadCompressedSA(r)
	if err != nil {
		return nil, err
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return &BiFMIndex{
		alphabet: alphabet,
		n:        fwd.Size(),
		forward:  fwd,
		forwardC: fwdC,
		reverse:  rev,
		reverseC: revC,
		sa:       sa,
	}, nil
}
