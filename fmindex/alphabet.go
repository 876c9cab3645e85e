package fmindex

import "fmt"

// Symbol is an alphabet code in [0, Alphabet.Sigma).
type Symbol = uint8

// SentinelSymbol is the code reserved for the end-of-sequence marker every
// indexed sequence is terminated with, per spec §5's requirement that
// each input end in a unique-enough separator for suffix-array
// construction to be well defined. It always sorts before every other
// symbol.
const SentinelSymbol Symbol = 0

// Alphabet maps the caller's raw bytes to the dense [0, Sigma) codes the
// rank dictionaries operate on.
type Alphabet struct {
	Sigma  int
	toCode [256]int8 // -1 if not in the alphabet
	toByte []byte    // toByte[c] for c in [1, Sigma)
}

// NewAlphabet builds an Alphabet over the given bytes (deduplicated,
// sorted), reserving code 0 for SentinelSymbol. Sigma is the number of
// distinct bytes plus one.
func NewAlphabet(bytes []byte) (*Alphabet, error) {
	seen := map[byte]bool{}
	var uniq []byte
	for _, b := range bytes {
		if !seen[b] {
			seen[b] = true
			uniq = append(uniq, b)
		}
	}
	// simple insertion sort: alphabets are tiny (DNA, protein, ascii)
	for i := 1; i < len(uniq); i++ {
		for j := i; j > 0 && uniq[j] < uniq[j-1]; j-- {
			uniq[j], uniq[j-1] = uniq[j-1], uniq[j]
		}
	}

	a := &Alphabet{Sigma: len(uniq) + 1, toByte: make([]byte, len(uniq)+1)}
	for i := range a.toCode {
		a.toCode[i] = -1
	}
	for i, b := range uniq {
		code := int8(i + 1)
		a.toCode[b] = code
		a.toByte[code] = b
	}
	return a, nil
}

// Encode converts a raw byte to its Symbol code. ok is false if b is not
// in the alphabet.
func (a *Alphabet) Encode(b byte) (Symbol, bool) {
	c := a.toCode[b]
	if c < 0 {
		return 0, false
	}
	return Symbol(c), true
}

// EncodeSequence encodes every byte of s, appending SentinelSymbol.
func (a *Alphabet) EncodeSequence(s []byte) ([]Symbol, error) {
	out := make([]Symbol, len(s)+1)
	for i, b := range s {
		c, ok := a.Encode(b)
		if !ok {
			return nil, fmt.Errorf("fmindex: byte %q at offset %d is not in the alphabet", b, i)
		}
		out[i] = c
	}
	out[len(s)] = SentinelSymbol
	return out, nil
}

// Decode converts a Symbol back to its raw byte. Decoding SentinelSymbol
// is a precondition violation (callers should have stripped sentinels
// already) and panics.
func (a *Alphabet) Decode(c Symbol) byte {
	if c == SentinelSymbol {
		panic("fmindex: attempted to decode the sentinel symbol")
	}
	return a.toByte[c]
}

// DNA is the 4-letter nucleotide alphabet plus sentinel (Sigma == 5).
func DNA() *Alphabet {
	a, _ := NewAlphabet([]byte("ACGT"))
	return a
}

// Protein is the 20 standard amino-acid codes plus sentinel (Sigma == 21).
func Protein() *Alphabet {
	a, _ := NewAlphabet([]byte("ACDEFGHIKLMNPQRSTVWY"))
	return a
}
