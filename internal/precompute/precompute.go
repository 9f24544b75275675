// Package precompute implements the one-time transition a Solver makes
// from OPEN to CLOSED (spec.md §4.2): validating the declared totals,
// sorting rows into search order, recording the inverse permutation,
// accumulating the min/max "leave" figures the driver needs for
// pruning, classifying the system as simple or complex, and — for
// complex systems — building the solubility tables.
package precompute

import (
	"golang.org/x/exp/slices"

	"github.com/acmatch/diosolve/dioerr"
	"github.com/acmatch/diosolve/internal/model"
)

// System is the frozen, sorted state a solver searches over once
// precomputation succeeds.
type System struct {
	Rows []*model.Row
	Bag  *model.ColumnBag

	// RowPermute maps a row's original insertion index (Row.Name) to
	// its position in Rows after sorting.
	RowPermute []int

	Complex bool
}

// Run performs spec.md §4.2 steps 1-7 in order. rows must be supplied
// in original insertion order with Name already set to that order; bag
// is the column multiset. On success it returns the frozen System; on
// infeasibility it returns a nil System and one of dioerr's
// infeasibility sentinels.
func Run(rows []*model.Row, bag *model.ColumnBag) (*System, error) {
	dioerr.Precondition(len(rows) > 0, "at least one row is required")
	dioerr.Precondition(bag.Len() > 0, "at least one column is required")

	sumMin, sumMax := resolveBoundsAndProducts(rows, bag.Sum)
	if sumMin > bag.Sum || sumMax < bag.Sum {
		return nil, dioerr.Wrap("precompute.Run: declared row bounds", dioerr.ErrTrivialInfeasible)
	}

	sortRows(rows)
	permute := invertPermutation(rows)
	accumulateLeaves(rows, bag.Len())

	sys := &System{Rows: rows, Bag: bag, RowPermute: permute}
	sys.Complex = classify(rows, bag.Max)

	if sys.Complex {
		model.BuildSolubility(rows, bag.Max)

		for _, v := range bag.Values {
			if rows[0].Soluble.IsInsoluble(v) {
				return nil, dioerr.Wrap("precompute.Run: column value", dioerr.ErrRowZeroInsoluble)
			}
		}
	}

	return sys, nil
}

// resolveBoundsAndProducts replaces an UNBOUNDED MaxSize with the
// column total, computes MinProduct/MaxProduct for every row, and
// returns their sums (spec.md §4.2 step 2-3).
func resolveBoundsAndProducts(rows []*model.Row, columnSum int32) (sumMin, sumMax int32) {
	for _, r := range rows {
		if r.MaxSize == model.Unbounded {
			r.MaxSize = columnSum
		}
		r.MinProduct = r.MinSize * r.Coeff
		r.MaxProduct = r.MaxSize * r.Coeff
		sumMin += r.MinProduct
		sumMax += r.MaxProduct
	}

	return sumMin, sumMax
}

// sortRows orders rows by descending Coeff, ties broken by ascending
// MaxSize (spec.md §4.2 step 4).
func sortRows(rows []*model.Row) {
	slices.SortFunc(rows, func(a, b *model.Row) int {
		if a.Coeff != b.Coeff {
			return int(b.Coeff - a.Coeff)
		}
		return int(a.MaxSize - b.MaxSize)
	})
}

// invertPermutation records, for each row's original Name, its new
// sorted position.
func invertPermutation(rows []*model.Row) []int {
	permute := make([]int, len(rows))
	for i, r := range rows {
		permute[r.Name] = i
	}

	return permute
}

// accumulateLeaves walks rows from last to first, setting MinLeave and
// MaxLeave to the running sum of MinProduct/MaxProduct over every row
// strictly after it, and allocates each row's Selection vector
// (spec.md §4.2 step 5).
func accumulateLeaves(rows []*model.Row, columnCount int) {
	var minTotal, maxTotal int32

	for i := len(rows) - 1; i >= 0; i-- {
		r := rows[i]
		r.MinLeave = minTotal
		r.MaxLeave = maxTotal
		r.Selection = make([]model.Select, columnCount)

		minTotal += r.MinProduct
		maxTotal += r.MaxProduct
	}
}

// classify decides simple vs. complex (spec.md §4.2 step 6): the
// system is simple iff the last sorted row (smallest coefficient) has
// Coeff == 1 and MaxSize >= maxColumnValue.
func classify(rows []*model.Row, maxColumnValue int32) bool {
	last := rows[len(rows)-1]

	return !(last.Coeff == 1 && last.MaxSize >= maxColumnValue)
}
