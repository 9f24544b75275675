// Package search implements the per-row multiset enumeration strategies
// (spec.md §4.4-§4.6) that the public solver's backtracking driver
// drives one row at a time.
package search

import "github.com/acmatch/diosolve/internal/model"

// Viable reports whether rows[from:] can still be completed from the
// current column bag (spec.md §4.4). It is a necessary, not sufficient,
// precondition checked before a row's first-visit emission: if it
// fails, the row need not even attempt to search.
//
// Walking i from from up to len(rows)-2, it accumulates L, the running
// total of MinProduct over rows[from:i+1], and, once L is nonzero,
// requires some prefix of the bag (in insertion order, restricted to
// values at least rows[i].Coeff) to sum to at least L. Rows are sorted
// by descending Coeff, so every row counted in L has a coefficient of
// at least rows[i].Coeff. The last row is never checked: it absorbs
// whatever remains.
func Viable(rows []*model.Row, bag *model.ColumnBag, from int) bool {
	n := len(rows)
	if n <= 1 {
		return true
	}

	var runningMin int32
	for i := from; i <= n-2; i++ {
		runningMin += rows[i].MinProduct
		if runningMin == 0 {
			continue
		}

		coeff := rows[i].Coeff
		var prefix int32
		ok := false
		for _, v := range bag.Values {
			if v < coeff {
				continue
			}
			prefix += v
			if prefix >= runningMin {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	return true
}
