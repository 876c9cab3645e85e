// Package searchscheme implements the search-scheme algebra of spec §4.6:
// a Search is one ordered traversal of a pattern's positions together
// with per-depth error bounds, a Scheme is a set of Searches meant to
// jointly cover a whole error class, and this package provides the
// validity/completeness/expansion/cost operations that let a Scheme be
// checked and adapted to a concrete pattern length.
package searchscheme

import (
	"errors"
	"fmt"
)

// ErrInvalidSearch is returned by Validate when a Search violates its
// structural invariants (see Search.Validate's doc for the list).
var ErrInvalidSearch = errors.New("searchscheme: invalid search")

// Search is one root-to-leaf traversal order over a pattern's parts
// (spec §4.6): Pi is a permutation of [0, len(Pi)), and L/U give, for
// each step in Pi's order, the lower/upper bound on the number of errors
// accumulated so far.
type Search struct {
	Pi []int
	L  []int
	U  []int
}

// NumParts returns the number of pattern parts this search is defined
// over.
func (s Search) NumParts() int { return len(s.Pi) }

// Validate checks the structural invariants spec §4.6 requires of a
// Search:
//   - Pi, L, U have equal, nonzero length
//   - Pi is a permutation of [0, len(Pi))
//   - L and U are non-decreasing over the traversal order
//   - L[i] <= U[i] at every step
//   - the connectivity property: at every step, the parts visited so far
//     (by Pi) form a contiguous range of part indices
func (s Search) Validate() error {
	n := len(s.Pi)
	if n == 0 {
		return fmt.Errorf("%w: empty search", ErrInvalidSearch)
	}
	if len(s.L) != n || len(s.U) != n {
		return fmt.Errorf("%w: Pi/L/U length mismatch", ErrInvalidSearch)
	}

	seen := make([]bool, n)
	for _, p := range s.Pi {
		if p < 0 || p >= n || seen[p] {
			return fmt.Errorf("%w: Pi is not a permutation of [0,%d)", ErrInvalidSearch, n)
		}
		seen[p] = true
	}

	for i := 0; i < n; i++ {
		if s.L[i] > s.U[i] {
			return fmt.Errorf("%w: L[%d] > U[%d]", ErrInvalidSearch, i, i)
		}
		if i > 0 {
			if s.L[i] < s.L[i-1] {
				return fmt.Errorf("%w: L is not non-decreasing at step %d", ErrInvalidSearch, i)
			}
			if s.U[i] < s.U[i-1] {
				return fmt.Errorf("%w: U is not non-decreasing at step %d", ErrInvalidSearch, i)
			}
		}
	}

	minVisited, maxVisited := s.Pi[0], s.Pi[0]
	for i := 1; i < n; i++ {
		p := s.Pi[i]
		if p < minVisited {
			minVisited = p
		}
		if p > maxVisited {
			maxVisited = p
		}
		if maxVisited-minVisited != i {
			return fmt.Errorf("%w: connectivity property violated at step %d", ErrInvalidSearch, i)
		}
	}
	return nil
}

// Scheme is a list of Searches meant to jointly search a pattern up to
// some number of errors.
type Scheme []Search

// Validate validates every Search in the scheme.
func (sc Scheme) Validate() error {
	for i, s := range sc {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("search %d: %w", i, err)
		}
	}
	return nil
}
