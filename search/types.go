// Package search implements the search drivers of spec §4.8: functions
// that walk an FM-index's cursor tree — either without a scheme
// (Backtracking, the reference every scheme-based driver is checked
// against) or steered by a searchscheme.Scheme (Pseudo, NG and its named
// variants) — reporting every occurrence of each query within an error
// budget through a callback.
package search

import "github.com/fmindex-go/fmindex"

// Callback is invoked for every terminal node a single-direction driver
// reaches: queryID identifies which query produced it, cur is the
// matching cursor (Count/Locate expose the occurrences it represents),
// and errors is the number of edit operations consumed to reach it.
//
// Returning false aborts the driver call that invoked the callback: no
// further branch or query is explored and the driver returns — spec §5's
// "callback may throw to abort" contract, expressed without exceptions.
type Callback func(queryID int, cur fmindex.Cursor, errors int) bool

// BiCallback is Callback's counterpart for drivers that walk a
// BiFMIndex with BiCursor.
type BiCallback func(queryID int, cur fmindex.BiCursor, errors int) bool

// Mode selects whether a scheme-driven driver allows insertions and
// deletions in addition to substitutions (Edit) or restricts itself to
// substitutions only (Hamming) — the compile-time mode parameter spec
// §4.8 calls for, expressed here as a runtime option since Go has no
// template instantiation.
type Mode int

const (
	Hamming Mode = iota
	Edit
)

// partBounds divides a pattern of length patternLen into numParts
// contiguous, nearly-equal parts (the first patternLen%numParts parts
// get one extra symbol), returning each part's half-open [start,end)
// range of pattern indices. This is the same equal-split convention
// searchscheme.NodeCount's partLengths parameter assumes.
func partBounds(patternLen, numParts int) [][2]int {
	bounds := make([][2]int, numParts)
	base := patternLen / numParts
	rem := patternLen % numParts
	pos := 0
	for i := 0; i < numParts; i++ {
		length := base
		if i < rem {
			length++
		}
		bounds[i] = [2]int{pos, pos + length}
		pos += length
	}
	return bounds
}
