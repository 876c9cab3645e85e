package fmindex

import (
	"errors"
	"fmt"
	"sync"

	"github.com/coregx/ahocorasick"
	"github.com/fmindex-go/fmindex/internal/workerpool"
)

// ErrForbiddenByte is returned when an input sequence contains a raw byte
// that is never valid inside a sequence payload (record-format
// punctuation that usually means the caller handed in a whole FASTA/FASTQ
// record instead of its payload).
var ErrForbiddenByte = errors.New("fmindex: sequence contains a forbidden byte")

// forbiddenBytes are bytes that must never appear inside a sequence
// payload handed to Build/BuildBidirectional: record-format punctuation
// ('>' FASTA header marker, newlines, NUL) that strongly suggests the
// caller passed in an un-parsed record rather than its payload.
var forbiddenBytes = [][]byte{{'>'}, {'\n'}, {'\r'}, {0}}

var forbiddenAutomaton *ahocorasick.Automaton

func init() {
	builder := ahocorasick.NewBuilder()
	for _, p := range forbiddenBytes {
		builder.AddPattern(p)
	}
	auto, err := builder.Build()
	if err != nil {
		panic("fmindex: failed to build the forbidden-byte automaton: " + err.Error())
	}
	forbiddenAutomaton = auto
}

// validateSequences scans every sequence for forbidden bytes in a single
// multi-pattern pass per sequence, rather than a per-byte scan repeated
// once per forbidden byte.
func validateSequences(sequences [][]byte) error {
	for i, seq := range sequences {
		if forbiddenAutomaton.IsMatch(seq) {
			return fmt.Errorf("%w: sequence %d", ErrForbiddenByte, i)
		}
	}
	return nil
}

// validateAndConcat validates, encodes and concatenates sequences into
// one Symbol stream, each terminated by SentinelSymbol, returning the
// start and end offsets of each sequence within the concatenation (end is
// one past the sequence's sentinel, so the sentinel sits at end-1).
// Encoding runs sequentially on the
// calling goroutine; see validateAndConcatParallel for the
// worker-pool-backed variant Build/BuildBidirectional use when
// BuildConfig.Workers > 1.
func validateAndConcat(sequences [][]byte, alphabet *Alphabet) (text []Symbol, seqStarts, seqEnds []int, err error) {
	return validateAndConcatParallel(sequences, alphabet, 1)
}

// validateAndConcatParallel is validateAndConcat generalized over a
// worker count: sequence lengths are computed up front so every
// sequence's final offset in the concatenated text is known before any
// encoding happens, then each worker encodes a contiguous run of
// sequences directly into its disjoint slice of the pre-sized text
// array, per spec.md §5's "written to disjoint ranges of a pre-sized
// array; no synchronization beyond a single join at the end."
func validateAndConcatParallel(sequences [][]byte, alphabet *Alphabet, workers int) (text []Symbol, seqStarts, seqEnds []int, err error) {
	if err := validateSequences(sequences); err != nil {
		return nil, nil, nil, err
	}

	seqStarts = make([]int, len(sequences))
	seqEnds = make([]int, len(sequences))
	var total int
	for i, seq := range sequences {
		seqStarts[i] = total
		total += len(seq) + 1
		seqEnds[i] = total
	}
	text = make([]Symbol, total)

	var firstErr error
	var errMu sync.Mutex
	recordErr := func(e error) {
		errMu.Lock()
		if firstErr == nil {
			firstErr = e
		}
		errMu.Unlock()
	}

	workerpool.Run(len(sequences), workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			encoded, encErr := alphabet.EncodeSequence(sequences[i])
			if encErr != nil {
				recordErr(fmt.Errorf("sequence %d: %w", i, encErr))
				return
			}
			copy(text[seqStarts[i]:seqEnds[i]], encoded)
		}
	})
	if firstErr != nil {
		return nil, nil, nil, firstErr
	}
	return text, seqStarts, seqEnds, nil
}
