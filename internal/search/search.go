package search

import "github.com/acmatch/diosolve/internal/model"

// RowSearch produces the multiset selection for one row of a system
// under active enumeration (spec.md §4.5, §4.6). A Solver holds exactly
// one RowSearch for its whole lifetime, chosen once at precompute time
// by whether the system classified as simple or complex.
type RowSearch interface {
	// EmitFirst computes the feasible size window for rows[idx] against
	// the current bag and emits its lexicographically smallest
	// selection. It returns false, leaving the bag untouched, if the
	// row cannot be satisfied from the current bag at all.
	EmitFirst(rows []*model.Row, bag *model.ColumnBag, idx int) bool

	// Advance mutates rows[idx]'s selection in place to the next one in
	// canonical order (spec.md §4.5), trying larger sizes once the
	// current size is exhausted. It returns false, restoring the bag to
	// its pre-row state, once rows[idx]'s whole size window is spent.
	Advance(rows []*model.Row, bag *model.ColumnBag, idx int) bool
}

// New returns the RowSearch appropriate for a system, as classified by
// precompute.Run.
func New(complex bool) RowSearch {
	if complex {
		return complexSearch{}
	}

	return simpleSearch{}
}
