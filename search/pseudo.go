package search

import (
	"github.com/fmindex-go/fmindex"
	"github.com/fmindex-go/fmindex/searchscheme"
)

// Pseudo walks a BiFMIndex one scheme part at a time, in each Search's π
// order: a part below the range already covered is consumed by
// extending left (right-to-left within the part), a part above it by
// extending right (left-to-right within the part) — the "junction where
// π's direction changes" spec §4.8 describes. A part's accumulated
// error count is checked against that step's [L,U] bound once the whole
// part has been consumed; within a part, errorsUsed is capped by U[step]
// as an (intentionally coarser than per-character) pruning bound, since
// per-character L/U checks have no meaning for a multi-character part.
// Grounded on orig:fmindex-collection/search/search_pseudo.h.
func Pseudo(idx *fmindex.BiFMIndex, queries [][]fmindex.Symbol, scheme searchscheme.Scheme, mode Mode, cb BiCallback) {
	for qid, query := range queries {
		if len(scheme) == 0 {
			continue
		}
		bounds := partBounds(len(query), scheme[0].NumParts())
		for _, s := range scheme {
			if !pseudoSearch(qid, idx.Cursor(), query, bounds, s, 0, -1, -1, 0, mode, cb) {
				return
			}
		}
	}
}

// pseudoSearch advances one Search one part (one step of s.Pi) at a
// time. coveredLo/coveredHi track the contiguous range of part indices
// already visited (searchscheme.Search.Validate guarantees every prefix
// of Pi stays contiguous), so step i's direction is decided purely by
// whether Pi[i] is below coveredLo or above coveredHi.
func pseudoSearch(qid int, cur fmindex.BiCursor, query []fmindex.Symbol, bounds [][2]int, s searchscheme.Search, step, coveredLo, coveredHi, errorsUsed int, mode Mode, cb BiCallback) bool {
	if step == len(s.Pi) {
		return cb(qid, cur, errorsUsed)
	}
	part := s.Pi[step]
	lo, hi := bounds[part][0], bounds[part][1]
	extendLeft := step > 0 && part < coveredLo

	return extendPartRec(cur, lo, hi, extendLeft, query, errorsUsed, s.U[step], mode, func(cur2 fmindex.BiCursor, errs2 int) bool {
		if errs2 < s.L[step] {
			return true
		}
		newLo, newHi := coveredLo, coveredHi
		switch {
		case step == 0:
			newLo, newHi = part, part
		case extendLeft:
			newLo = part
		default:
			newHi = part
		}
		return pseudoSearch(qid, cur2, query, bounds, s, step+1, newLo, newHi, errs2, mode, cb)
	})
}

// extendPartRec consumes the characters of [lo,hi) in the given
// direction, trying match/substitution at every character and — in Edit
// mode, while errorsUsed stays under maxU — deletion (extend without
// consuming a character) and insertion (consume a character without
// extending). cont is invoked once the whole part has been consumed.
func extendPartRec(cur fmindex.BiCursor, lo, hi int, extendLeft bool, query []fmindex.Symbol, errorsUsed, maxU int, mode Mode, cont func(fmindex.BiCursor, int) bool) bool {
	if lo == hi {
		return cont(cur, errorsUsed)
	}
	if errorsUsed > maxU {
		return true
	}

	var idx int
	var children []fmindex.BiCursor
	if extendLeft {
		idx = hi - 1
		children = cur.ExtendLeftAll()
	} else {
		idx = lo
		children = cur.ExtendRightAll()
	}

	for sym, child := range children {
		if !child.IsMatch() {
			continue
		}
		cost := 1
		if fmindex.Symbol(sym) == query[idx] {
			cost = 0
		}
		if errorsUsed+cost > maxU {
			continue
		}
		nlo, nhi := lo, hi
		if extendLeft {
			nhi--
		} else {
			nlo++
		}
		if !extendPartRec(child, nlo, nhi, extendLeft, query, errorsUsed+cost, maxU, mode, cont) {
			return false
		}
	}

	if mode == Edit && errorsUsed < maxU {
		for sym, child := range children {
			if !child.IsMatch() {
				continue
			}
			if !extendPartRec(child, lo, hi, extendLeft, query, errorsUsed+1, maxU, mode, cont) {
				return false
			}
		}
		nlo, nhi := lo, hi
		if extendLeft {
			nhi--
		} else {
			nlo++
		}
		if !extendPartRec(cur, nlo, nhi, extendLeft, query, errorsUsed+1, maxU, mode, cont) {
			return false
		}
	}
	return true
}
