package model

// BuildSolubility fills in the solubility table (spec.md §4.3) for
// every row of rows, which must already be sorted into descending
// coefficient order (ties by ascending MaxSize). It is the dynamic
// programming step of the complex path: rows[i].Soluble[v] answers,
// for residual column magnitude v, the min/max number of copies of
// rows[i].Coeff that a feasible completion of rows[i:] can consume.
func BuildSolubility(rows []*Row, maxColumnValue int32) {
	n := len(rows)

	buildBaseRow(rows[n-1], maxColumnValue)

	for i := n - 2; i >= 0; i-- {
		buildRow(rows[i], rows[i+1].Soluble, maxColumnValue)
	}
}

// buildBaseRow handles the last sorted row (spec.md §4.3 "Base row"):
// it can absorb any exact multiple of its own coefficient, up to its
// declared size bound.
func buildBaseRow(row *Row, maxColumnValue int32) {
	table := NewSolubleTable(maxColumnValue)
	table.Set(0, 0, 0)

	for count := int32(1); count <= row.MaxSize; count++ {
		v := count * row.Coeff
		if v > maxColumnValue {
			break
		}
		table.Set(v, count, count)
	}

	row.Soluble = table
}

// buildRow computes row.Soluble from the already-computed solubility
// table of the row immediately after it in sorted order (spec.md §4.3
// recurrence).
func buildRow(row *Row, prev *SolubleTable, maxColumnValue int32) {
	coeff := row.Coeff
	maxSize := row.MaxSize
	next := NewSolubleTable(maxColumnValue)

	for v := int32(0); v <= maxColumnValue; v++ {
		zeroFeasible := !prev.IsInsoluble(v)

		t := v - coeff
		oneOrMoreFeasible := t >= 0 && !next.IsInsoluble(t) && next.Min(t) < maxSize

		if oneOrMoreFeasible {
			var min int32
			if zeroFeasible {
				min = 0
			} else {
				min = next.Min(t) + 1
			}

			var max int32
			if next.Max(t) < maxSize {
				max = next.Max(t) + 1
			} else {
				max = scanMaxCount(prev, v, coeff, maxSize)
			}

			next.Set(v, min, max)
			continue
		}

		if zeroFeasible {
			next.Set(v, 0, 0)
		} else {
			next.MarkInsoluble(v)
		}
	}

	row.Soluble = next
}

// scanMaxCount resolves the tie noted in spec.md §4.3: when the
// (v-coeff) position already saturates at maxSize, walk the counts
// from maxSize down to 1 (equivalently k = v-count*coeff ascending
// from v-maxSize*coeff) until the suffix's own table (prev) can absorb
// what remains, reducing the achievable count by one for every
// consecutive infeasible position encountered.
func scanMaxCount(prev *SolubleTable, v, coeff, maxSize int32) int32 {
	newMax := maxSize

	for count := maxSize; count >= 1; count-- {
		k := v - count*coeff
		if k < 0 || prev.IsInsoluble(k) {
			newMax--
			continue
		}
		break
	}

	return newMax
}
