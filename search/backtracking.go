package search

import (
	"github.com/fmindex-go/fmindex"
	"github.com/fmindex-go/fmindex/internal/sparse"
)

// Backtracking enumerates every occurrence of each query within k edit
// errors (substitution, insertion, deletion) by exhaustively exploring
// the FM-index's backward-search tree, without any search scheme. It is
// the reference driver spec §4.8 and §8 call out: a scheme marked
// complete for (0,k) must, under any driver, produce the same set of
// occurrences this driver finds (modulo multiplicity for overlapping
// error distributions). Grounded on
// orig:fmindex-collection/search/searchBacktracking.h's recursive form.
func Backtracking(idx *fmindex.FMIndex, queries [][]fmindex.Symbol, k int, cb Callback) {
	for qid, query := range queries {
		if !backtrackRec(qid, idx.Cursor(), query, len(query)-1, 0, k, cb) {
			return
		}
	}
}

// backtrackRec walks query backward (last symbol to first, matching the
// FM-index's backward-search direction). At every step it tries a
// match/substitution (extend by some symbol, charging 1 error unless it
// is the expected query symbol), then — while errors remain — a deletion
// (a text symbol absent from the query: extend without consuming a query
// position) and an insertion (a query symbol absent from the text:
// consume a query position without extending).
func backtrackRec(qid int, cur fmindex.Cursor, query []fmindex.Symbol, pos, errorsUsed, k int, cb Callback) bool {
	if pos < 0 {
		return cb(qid, cur, errorsUsed)
	}

	children := cur.ExtendLeftAll()
	for sym, child := range children {
		if !child.IsMatch() {
			continue
		}
		cost := 1
		if fmindex.Symbol(sym) == query[pos] {
			cost = 0
		}
		if errorsUsed+cost > k {
			continue
		}
		if !backtrackRec(qid, child, query, pos-1, errorsUsed+cost, k, cb) {
			return false
		}
	}

	if errorsUsed < k {
		for sym, child := range children {
			if !child.IsMatch() {
				continue
			}
			if !backtrackRec(qid, child, query, pos, errorsUsed+1, k, cb) {
				return false
			}
		}
		if !backtrackRec(qid, cur, query, pos-1, errorsUsed+1, k, cb) {
			return false
		}
	}
	return true
}

// btFrame is one pending (cursor, query position, errors used) state in
// BacktrackingBuffered's iterative frontier.
type btFrame struct {
	cur        fmindex.Cursor
	pos        int
	errorsUsed int
}

// BacktrackingBuffered is Backtracking's iterative counterpart: instead
// of recursing, it keeps two caller-supplied work buffers — one holding
// the current frontier, one for the frontier its expansion produces —
// and swaps them level by level, so repeated calls across many queries
// never allocate past each buffer's first high-water mark. Both buffers
// are cleared at the start and end of every call. Grounded on the same
// source as Backtracking, restructured around internal/sparse.Buffer's
// O(1)-clear idiom.
func BacktrackingBuffered(idx *fmindex.FMIndex, queries [][]fmindex.Symbol, k int, current, next *sparse.Buffer[btFrame], cb Callback) {
	for qid, query := range queries {
		current.Clear()
		next.Clear()
		current.Push(btFrame{cur: idx.Cursor(), pos: len(query) - 1, errorsUsed: 0})

		aborted := false
		for !current.IsEmpty() && !aborted {
			for _, f := range current.Items() {
				if f.pos < 0 {
					if !cb(qid, f.cur, f.errorsUsed) {
						aborted = true
						break
					}
					continue
				}
				children := f.cur.ExtendLeftAll()
				for sym, child := range children {
					if !child.IsMatch() {
						continue
					}
					cost := 1
					if fmindex.Symbol(sym) == query[f.pos] {
						cost = 0
					}
					if f.errorsUsed+cost <= k {
						next.Push(btFrame{cur: child, pos: f.pos - 1, errorsUsed: f.errorsUsed + cost})
					}
				}
				if f.errorsUsed < k {
					for sym, child := range children {
						if !child.IsMatch() {
							continue
						}
						next.Push(btFrame{cur: child, pos: f.pos, errorsUsed: f.errorsUsed + 1})
					}
					next.Push(btFrame{cur: f.cur, pos: f.pos - 1, errorsUsed: f.errorsUsed + 1})
				}
			}
			current.Clear()
			current, next = next, current
		}
		current.Clear()
		next.Clear()
		if aborted {
			return
		}
	}
}
