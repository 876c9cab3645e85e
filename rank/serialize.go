package rank

import (
	"fmt"

	"github.com/fmindex-go/fmindex/serialize"
)

const typeTagEPR uint32 = 0x45505231 // "EPR1"

// WriteTo writes d to w in the archive format from spec.md §6: EPR's
// bitplane blocks are exactly the "bit-packed payloads (EPR blocks)"
// the spec calls out as memcpy'd-as-is-with-an-endianness-tag, rather
// than going through the field-by-field integer path every other
// counter in this package uses.
func (d *EPR) WriteTo(w *serialize.Writer) error {
	w.BeginObject(typeTagEPR, 5)
	w.Int(uint64(d.sigma))
	w.Int(uint64(d.n))
	w.Int(uint64(d.k))
	w.BeginArrayOfSubObject(len(d.planes))
	for _, plane := range d.planes {
		w.BitpackedWords(plane)
	}
	w.Uint64Array(d.blockCounts)
	return w.Err()
}

// ReadEPR reads an EPR rank dictionary written by WriteTo.
func ReadEPR(r *serialize.Reader) (*EPR, error) {
	_, numFields := r.BeginObject()
	if err := r.Err(); err != nil {
		return nil, err
	}
	if numFields != 5 {
		return nil, fmt.Errorf("rank: expected 5 fields for EPR, archive declares %d", numFields)
	}
	sigma := int(r.Int())
	n := int(r.Int())
	k := int(r.Int())
	numPlanes := r.BeginArrayOfSubObject()
	planes := make([][]uint64, numPlanes)
	for i := range planes {
		planes[i] = r.BitpackedWords()
	}
	blockCounts := r.Uint64Array()
	if err := r.Err(); err != nil {
		return nil, err
	}
	return &EPR{sigma: sigma, n: n, k: k, planes: planes, blockCounts: blockCounts}, nil
}
