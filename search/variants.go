package search

import (
	"github.com/fmindex-go/fmindex"
	"github.com/fmindex-go/fmindex/searchscheme"
)

// SearchN is Pseudo, stopping each query's exploration once n
// occurrences have been reported for it (counting cursor.Count() per
// callback, since one cursor interval can represent several rows). The
// cap is checked between callbacks, not within one: a single cursor
// interval that by itself contains more than the remaining budget is
// still reported whole, since every driver in this package reports
// matches as cursor intervals rather than enumerating individual rows.
func SearchN(idx *fmindex.BiFMIndex, queries [][]fmindex.Symbol, scheme searchscheme.Scheme, mode Mode, n int, cb BiCallback) {
	for qid, query := range queries {
		reported := 0
		wrapped := func(q int, cur fmindex.BiCursor, errors int) bool {
			if reported >= n {
				return false
			}
			keep := cb(q, cur, errors)
			reported += cur.Count()
			return keep && reported < n
		}
		Pseudo(idx, [][]fmindex.Symbol{query}, scheme, mode, reindex(qid, wrapped))
	}
}

// reindex wraps a BiCallback so it always reports the given qid
// regardless of the (always-0) index Pseudo assigns when driven with a
// single-query slice, letting callers of SearchN/SearchBest see the
// original query's position in their input slice.
func reindex(qid int, cb BiCallback) BiCallback {
	return func(_ int, cur fmindex.BiCursor, errors int) bool {
		return cb(qid, cur, errors)
	}
}

// SearchBest takes schemes indexed by error count — schemesByErrors[k]
// must be a Scheme complete for (0,k) — and reports, for each query,
// only the matches found at the lowest k for which any match exists.
// Grounded on orig:fmindex-collection/search/search_best.h's
// increasing-k early-exit strategy.
func SearchBest(idx *fmindex.BiFMIndex, queries [][]fmindex.Symbol, schemesByErrors []searchscheme.Scheme, mode Mode, cb BiCallback) {
	for qid, query := range queries {
		for k := 0; k < len(schemesByErrors); k++ {
			found := false
			wrapped := func(q int, cur fmindex.BiCursor, errors int) bool {
				found = true
				return cb(q, cur, errors)
			}
			Pseudo(idx, [][]fmindex.Symbol{query}, schemesByErrors[k], mode, reindex(qid, wrapped))
			if found {
				break
			}
		}
	}
}

// SearchBestN is SearchBest capped at n occurrences per query, applied
// within whichever error level first yields a match.
func SearchBestN(idx *fmindex.BiFMIndex, queries [][]fmindex.Symbol, schemesByErrors []searchscheme.Scheme, mode Mode, n int, cb BiCallback) {
	for qid, query := range queries {
		for k := 0; k < len(schemesByErrors); k++ {
			found := false
			reported := 0
			wrapped := func(q int, cur fmindex.BiCursor, errors int) bool {
				if reported >= n {
					return false
				}
				found = true
				keep := cb(q, cur, errors)
				reported += cur.Count()
				return keep && reported < n
			}
			Pseudo(idx, [][]fmindex.Symbol{query}, schemesByErrors[k], mode, reindex(qid, wrapped))
			if found {
				break
			}
		}
	}
}

// SearchNoErrors is the exact-match fast path: a single backward walk
// with no branching, reporting a result only if every symbol matched.
func SearchNoErrors(idx *fmindex.BiFMIndex, queries [][]fmindex.Symbol, cb BiCallback) {
	for qid, query := range queries {
		cur := idx.Cursor()
		ok := true
		for i := len(query) - 1; i >= 0 && ok; i-- {
			cur = cur.ExtendLeft(query[i])
			ok = cur.IsMatch()
		}
		if ok {
			cb(qid, cur, 0)
		}
	}
}

// SearchOneError is the Hamming-1 fast path: a single backtracking walk
// allowing at most one substitution, skipping the general edit-distance
// machinery SearchN/Pseudo need for insertions and deletions.
func SearchOneError(idx *fmindex.BiFMIndex, queries [][]fmindex.Symbol, cb BiCallback) {
	for qid, query := range queries {
		if !oneErrorRec(qid, idx.Cursor(), query, len(query)-1, 0, cb) {
			return
		}
	}
}

func oneErrorRec(qid int, cur fmindex.BiCursor, query []fmindex.Symbol, pos, errorsUsed int, cb BiCallback) bool {
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
		if errorsUsed+cost > 1 {
			continue
		}
		if !oneErrorRec(qid, child, query, pos-1, errorsUsed+cost, cb) {
			return false
		}
	}
	return true
}
