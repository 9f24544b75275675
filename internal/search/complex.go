package search

import (
	"github.com/acmatch/diosolve/internal/arith"
	"github.com/acmatch/diosolve/internal/model"
)

// complexSearch implements RowSearch for systems that need the
// solubility table: each row carries a mandatory Base share before any
// discretionary Extra, and every trial Extra must leave its column
// feasible for the row after it (spec.md §4.6).
type complexSearch struct{}

func (complexSearch) EmitFirst(rows []*model.Row, bag *model.ColumnBag, idx int) bool {
	if !Viable(rows, bag, idx) {
		return false
	}

	row := rows[idx]
	next := rows[idx+1].Soluble
	coeff := row.Coeff

	var minSum, maxSum, columnTotal int32
	for j, v := range bag.Values {
		min, max := row.Soluble.Min(v), row.Soluble.Max(v)
		row.Selection[j].Base = min
		row.Selection[j].MaxExtra = max - min
		minSum += min
		maxSum += max
		columnTotal += v
	}

	minSize := row.MinSize
	if minSum > minSize {
		minSize = minSum
	}
	if cd := arith.CeilDiv(columnTotal-row.MaxLeave, coeff); cd > minSize {
		minSize = cd
	}

	maxSize := row.MaxSize
	if maxSum < maxSize {
		maxSize = maxSum
	}
	if fd := arith.FloorDiv(columnTotal-row.MinLeave, coeff); fd < maxSize {
		maxSize = fd
	}

	if minSize > maxSize {
		return false
	}

	for j := range row.Selection {
		bag.Values[j] -= row.Selection[j].Base * coeff
	}

	row.CurrentSize = minSize - minSum
	row.CurrentMaxSize = maxSize - minSum

	for size := row.CurrentSize; size <= row.CurrentMaxSize; size++ {
		if fillComplex(row, bag, next, 0, size) {
			row.CurrentSize = size

			return true
		}
	}

	restoreBase(row, bag)

	return false
}

func (complexSearch) Advance(rows []*model.Row, bag *model.ColumnBag, idx int) bool {
	row := rows[idx]
	next := rows[idx+1].Soluble

	if scanAndShiftComplex(row, bag, next) {
		return true
	}

	for size := row.CurrentSize + 1; size <= row.CurrentMaxSize; size++ {
		if fillComplex(row, bag, next, 0, size) {
			row.CurrentSize = size

			return true
		}
	}

	restoreBase(row, bag)

	return false
}

// restoreBase undoes a row's mandatory base shares, per spec.md §4.6's
// "on final failure for this row" step.
func restoreBase(row *model.Row, bag *model.ColumnBag) {
	coeff := row.Coeff
	for j := range row.Selection {
		sel := &row.Selection[j]
		bag.Values[j] += sel.Base * coeff
		sel.Base = 0
		sel.Extra = 0
		sel.MaxExtra = 0
	}
}

// fillComplex emits the smallest-lex selection of undone units across
// columns[start:], as planFill computes it, committing it only if a
// fully feasible plan exists.
func fillComplex(row *model.Row, bag *model.ColumnBag, next *model.SolubleTable, start int, undone int32) bool {
	extras, ok := planFill(row, bag, next, start, undone)
	if !ok {
		return false
	}

	applyFill(row, bag, start, extras)

	return true
}

// planFill computes, without mutating row or bag, the greedy
// column-by-column assignment of undone units across columns[start:].
// A column that cannot take its full discretionary capacity (the
// "stop short" column, per spec.md §4.6) must leave a feasible residual
// for the row after this one; planFill fails if none does.
func planFill(row *model.Row, bag *model.ColumnBag, next *model.SolubleTable, start int, undone int32) ([]int32, bool) {
	coeff := row.Coeff
	extras := make([]int32, len(row.Selection)-start)
	remaining := undone

	for i, j := 0, start; j < len(row.Selection); i, j = i+1, j+1 {
		cap := row.Selection[j].MaxExtra
		t := remaining
		if cap < t {
			t = cap
		}
		extras[i] = t

		if t > 0 && t < cap {
			residual := bag.Values[j] - t*coeff
			if next.IsInsoluble(residual) {
				return nil, false
			}
		}

		remaining -= t
	}

	return extras, remaining == 0
}

// applyFill commits a plan produced by planFill.
func applyFill(row *model.Row, bag *model.ColumnBag, start int, extras []int32) {
	coeff := row.Coeff
	for i, j := 0, start; j < len(row.Selection); i, j = i+1, j+1 {
		t := extras[i]
		row.Selection[j].Extra = t
		if t > 0 {
			bag.Values[j] -= t * coeff
		}
	}
}

// scanAndShiftComplex is scanAndShift generalized with the solubility
// checks spec.md §4.6 adds: a lift at column j walks candidate amounts
// e = 1, 2, ... up to its capacity, accepting the first whose residual
// is soluble and whose remainder can still be distributed, greedily
// from column 0, across the released columns before it. It returns
// false, having released every column
// back to its base, if no such lift exists anywhere.
func scanAndShiftComplex(row *model.Row, bag *model.ColumnBag, next *model.SolubleTable) bool {
	if row.CurrentSize == 0 {
		return false
	}

	coeff := row.Coeff
	var undone int32

	for j := range row.Selection {
		sel := &row.Selection[j]
		t := sel.Extra

		if undone > 0 && t < sel.MaxExtra {
			cap := sel.MaxExtra - t
			if undone < cap {
				cap = undone
			}

			for e := int32(1); e <= cap; e++ {
				residual := bag.Values[j] - e*coeff
				if next.IsInsoluble(residual) {
					continue
				}

				// The released columns before j take the remainder;
				// planFill exhausts it before reaching column j.
				extras, ok := planFill(row, bag, next, 0, undone-e)
				if !ok {
					continue
				}

				sel.Extra = t + e
				bag.Values[j] = residual
				for k := 0; k < j; k++ {
					row.Selection[k].Extra = extras[k]
					bag.Values[k] -= extras[k] * coeff
				}

				return true
			}
		}

		if t > 0 {
			sel.Extra = 0
			undone += t
			bag.Values[j] += t * coeff
		}
	}

	return false
}
