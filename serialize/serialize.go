// Package serialize implements the on-disk archive format from spec.md
// §6: a little-endian, tagged format where every object writes a type
// tag, a field count, and then each field tagged with its own kind
// (integer / byte-array / sub-object / array-of-sub-object), so a reader
// can validate structure as it walks the file instead of trusting the
// writer's layout blindly.
//
// There is no third-party binary-archive library anywhere in the
// retrieval pack (no protobuf, no cap'n proto, no msgpack in any
// example's go.mod), so this package is built directly on
// encoding/binary, the stdlib tool spec.md's byte-level format already
// names ("fixed-width in their declared size", "length-prefixed by a
// uint64") almost verbatim.
package serialize

import (
	"encoding/binary"
	"errors"
	"io"
)

// Sentinel errors surfaced at load time (spec.md §7 failure kind 2): the
// target object is left in its zero value, never partially populated.
var (
	ErrBadMagic       = errors.New("serialize: bad magic")
	ErrVersionTooNew  = errors.New("serialize: file version is newer than this reader supports")
	ErrEndianMismatch = errors.New("serialize: file endianness tag does not match this reader")
	ErrTruncated      = errors.New("serialize: unexpected end of file")
	ErrBadTag         = errors.New("serialize: unexpected field kind tag")
)

// FieldKind tags the shape of one field inside an object, written
// immediately before the field's payload.
type FieldKind uint32

const (
	KindInt FieldKind = iota
	KindBytes
	KindSubObject
	KindArrayOfSubObject
)

// Endian tags the byte order bit-packed payloads (EPR bitplane words) are
// written in. The format is little-endian throughout except these
// payloads, which are memcpy'd as-is from the host's native word layout
// and must declare which layout that was.
type Endian uint32

const (
	LittleEndian Endian = iota
	BigEndian
)

// nativeEndian is LittleEndian on every platform this module targets
// (amd64, arm64); it is a constant, not detected at run time.
const nativeEndian = LittleEndian

// magic identifies an fmindex-go archive; version is bumped on any
// incompatible layout change.
var magic = [4]byte{'F', 'M', 'I', 'X'}

const formatVersion uint32 = 1

// Writer appends tagged fields to an underlying io.Writer in the order
// spec.md §6 describes. Callers open one Writer per archive; Header must
// be called exactly once, before any object is written.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Err returns the first error encountered by any Write* call, or nil.
// Every Write* method is a no-op once Err is non-nil, so callers may
// chain calls and check Err once at the end.
func (w *Writer) Err() error { return w.err }

// Header writes the file magic and version, once per archive.
func (w *Writer) Header() {
	if w.err != nil {
		return
	}
	if _, w.err = w.w.Write(magic[:]); w.err != nil {
		return
	}
	w.writeRaw(formatVersion)
}

// BeginObject writes a type tag and the number of fields the object has,
// per spec.md §6's "a type tag (uint32), the number of inner fields
// (uint32)".
func (w *Writer) BeginObject(typeTag uint32, numFields int) {
	w.writeRaw(typeTag)
	w.writeRaw(uint32(numFields))
}

// Int writes one integer field: its kind tag, then the value fixed-width
// in its own declared size (uint64 here; narrower integers are widened
// by the caller's own type, matching "integers are written fixed-width
// in their declared size" applied at the Go type boundary).
func (w *Writer) Int(v uint64) {
	w.writeRaw(KindInt)
	w.writeRaw(v)
}

// Bytes writes one length-prefixed byte-array field.
func (w *Writer) Bytes(b []byte) {
	w.writeRaw(KindBytes)
	w.writeRaw(uint64(len(b)))
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(b)
}

// Uint64Array writes a fixed-size array of uint64, length-prefixed by a
// uint64 per spec.md §6, each element fixed-width little-endian.
func (w *Writer) Uint64Array(vals []uint64) {
	w.writeRaw(KindBytes)
	w.writeRaw(uint64(len(vals)))
	for _, v := range vals {
		if w.err != nil {
			return
		}
		w.writeRaw(v)
	}
}

// BitpackedWords writes a raw slice of uint64 words memcpy'd as-is (EPR
// bitplane blocks), tagged with the endianness they were written in
// (always nativeEndian from this writer) so a reader on the opposite
// endianness can refuse to load rather than silently misinterpret the
// bits.
func (w *Writer) BitpackedWords(words []uint64) {
	w.writeRaw(KindBytes)
	w.writeRaw(nativeEndian)
	w.writeRaw(uint64(len(words)))
	for _, word := range words {
		if w.err != nil {
			return
		}
		w.writeRaw(word)
	}
}

// BeginSubObject marks the start of a nested object field (the caller
// then calls BeginObject/fields/... for the nested object itself).
func (w *Writer) BeginSubObject() { w.writeRaw(KindSubObject) }

// BeginArrayOfSubObject marks the start of an array-of-objects field,
// writing the element count up front.
func (w *Writer) BeginArrayOfSubObject(count int) {
	w.writeRaw(KindArrayOfSubObject)
	w.writeRaw(uint64(count))
}

func (w *Writer) writeRaw(v any) {
	if w.err != nil {
		return
	}
	w.err = binary.Write(w.w, binary.LittleEndian, v)
}

// Reader parses a tagged archive written by Writer, validating structure
// as it goes: every unexpected tag or truncation surfaces its specific
// sentinel error immediately rather than continuing over corrupt state.
type Reader struct {
	r   io.Reader
	err error
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader { return &Reader{r: r} }

// Err returns the first error encountered by any Read* call, or nil.
func (r *Reader) Err() error { return r.err }

// Header reads and validates the file magic and version.
func (r *Reader) Header() {
	if r.err != nil {
		return
	}
	var got [4]byte
	if !r.readFull(got[:]) {
		return
	}
	if got != magic {
		r.err = ErrBadMagic
		return
	}
	var version uint32
	r.readRaw(&version)
	if r.err != nil {
		return
	}
	if version > formatVersion {
		r.err = ErrVersionTooNew
	}
}

// BeginObject reads a type tag and field count.
func (r *Reader) BeginObject() (typeTag uint32, numFields int) {
	var tag, n uint32
	r.readRaw(&tag)
	r.readRaw(&n)
	return tag, int(n)
}

// Int reads one integer field, checking its kind tag matches.
func (r *Reader) Int() uint64 {
	if !r.expectKind(KindInt) {
		return 0
	}
	var v uint64
	r.readRaw(&v)
	return v
}

// Bytes reads one length-prefixed byte-array field.
func (r *Reader) Bytes() []byte {
	if !r.expectKind(KindBytes) {
		return nil
	}
	var n uint64
	r.readRaw(&n)
	if r.err != nil {
		return nil
	}
	buf := make([]byte, n)
	if !r.readFull(buf) {
		return nil
	}
	return buf
}

// Uint64Array reads a fixed-size array of uint64 written by
// Writer.Uint64Array.
func (r *Reader) Uint64Array() []uint64 {
	if !r.expectKind(KindBytes) {
		return nil
	}
	var n uint64
	r.readRaw(&n)
	out := make([]uint64, n)
	for i := range out {
		if r.err != nil {
			return nil
		}
		r.readRaw(&out[i])
	}
	return out
}

// BitpackedWords reads a raw uint64 word slice written by
// Writer.BitpackedWords, refusing to load it if the file's endianness
// tag does not match this reader's native endianness.
func (r *Reader) BitpackedWords() []uint64 {
	if !r.expectKind(KindBytes) {
		return nil
	}
	var endian Endian
	r.readRaw(&endian)
	if r.err != nil {
		return nil
	}
	if endian != nativeEndian {
		r.err = ErrEndianMismatch
		return nil
	}
	var n uint64
	r.readRaw(&n)
	out := make([]uint64, n)
	for i := range out {
		if r.err != nil {
			return nil
		}
		r.readRaw(&out[i])
	}
	return out
}

// BeginSubObject consumes the sub-object field marker.
func (r *Reader) BeginSubObject() {
	r.expectKind(KindSubObject)
}

// BeginArrayOfSubObject consumes the array-of-objects field marker and
// returns the element count.
func (r *Reader) BeginArrayOfSubObject() int {
	if !r.expectKind(KindArrayOfSubObject) {
		return 0
	}
	var n uint64
	r.readRaw(&n)
	return int(n)
}

func (r *Reader) expectKind(want FieldKind) bool {
	if r.err != nil {
		return false
	}
	var got FieldKind
	r.readRaw(&got)
	if r.err != nil {
		return false
	}
	if got != want {
		r.err = ErrBadTag
		return false
	}
	return true
}

func (r *Reader) readRaw(v any) {
	if r.err != nil {
		return
	}
	r.err = binary.Read(r.r, binary.LittleEndian, v)
	if errors.Is(r.err, io.EOF) || errors.Is(r.err, io.ErrUnexpectedEOF) {
		r.err = ErrTruncated
	}
}

func (r *Reader) readFull(buf []byte) bool {
	_, err := io.ReadFull(r.r, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			r.err = ErrTruncated
		} else {
			r.err = err
		}
		return false
	}
	return true
}
