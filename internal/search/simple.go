package search

import (
	"github.com/acmatch/diosolve/internal/arith"
	"github.com/acmatch/diosolve/internal/model"
)

// simpleSearch implements RowSearch for systems whose last sorted row
// has coeff 1 and a MaxSize of at least the largest column value: every
// column value is individually absorbable by that row, so no
// solubility table is needed (spec.md §4.5).
type simpleSearch struct{}

func (simpleSearch) EmitFirst(rows []*model.Row, bag *model.ColumnBag, idx int) bool {
	if !Viable(rows, bag, idx) {
		return false
	}

	row := rows[idx]
	coeff := row.Coeff

	var maxSum, columnTotal int32
	for j, v := range bag.Values {
		me := v / coeff
		row.Selection[j].MaxExtra = me
		maxSum += me
		columnTotal += v
	}

	minSize := row.MinSize
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

	row.CurrentSize = minSize
	row.CurrentMaxSize = maxSize
	fillForward(row, bag, 0, minSize)

	return true
}

func (simpleSearch) Advance(rows []*model.Row, bag *model.ColumnBag, idx int) bool {
	row := rows[idx]

	if scanAndShift(row, bag) {
		return true
	}

	if row.CurrentSize == row.CurrentMaxSize {
		return false
	}

	row.CurrentSize++
	fillForward(row, bag, 0, row.CurrentSize)

	return true
}

// fillForward emits the smallest-lex selection of undone units across
// columns[start:], assigning every column in range explicitly (zeroing
// any left over from a previous, larger selection at this row).
func fillForward(row *model.Row, bag *model.ColumnBag, start int, undone int32) {
	coeff := row.Coeff
	for j := start; j < len(row.Selection); j++ {
		sel := &row.Selection[j]

		t := int32(0)
		if undone > 0 {
			t = undone
			if sel.MaxExtra < t {
				t = sel.MaxExtra
			}
		}

		sel.Extra = t
		undone -= t
		if t != 0 {
			bag.Values[j] -= t * coeff
		}
	}
}

// scanAndShift implements spec.md §4.5's Advance scan: release each
// column's extra into a running undone counter until a column is found
// whose extra can still be incremented, then refill what remains,
// greedily from column 0, into the released columns before it; columns
// after it keep their extras. It returns
// false, having released every column back to zero, if no such column
// exists.
func scanAndShift(row *model.Row, bag *model.ColumnBag) bool {
	if row.CurrentSize == 0 {
		return false
	}

	coeff := row.Coeff
	var undone int32

	for j := range row.Selection {
		sel := &row.Selection[j]
		t := sel.Extra

		if undone > 0 && t < sel.MaxExtra {
			sel.Extra = t + 1
			undone--
			bag.Values[j] -= coeff

			// Columns before j were all released above and together
			// have room for every remaining unit.
			for k := 0; undone > 0; k++ {
				prev := &row.Selection[k]
				e := undone
				if prev.MaxExtra < e {
					e = prev.MaxExtra
				}
				prev.Extra = e
				undone -= e
				bag.Values[k] -= e * coeff
			}

			return true
		}

		if t > 0 {
			sel.Extra = 0
			undone += t
			bag.Values[j] += t * coeff
		}
	}

	return false
}
