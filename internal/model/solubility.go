package model

import "github.com/bits-and-blooms/bitset"

// SolubleTable answers, for a row and a residual column magnitude v,
// the minimum and maximum number of copies of that row's coefficient
// that a feasible completion of the row's suffix can consume from v
// (spec.md §4.3). Rather than a magic -1 "insoluble" integer, presence
// is tracked with a bitset (spec.md §9 Design Notes) so no arithmetic
// is ever accidentally performed on a sentinel value.
type SolubleTable struct {
	insoluble *bitset.BitSet
	min       []int32
	max       []int32
}

// NewSolubleTable allocates a table indexed 0..maxColumnValue, with
// every entry marked insoluble until set.
func NewSolubleTable(maxColumnValue int32) *SolubleTable {
	size := uint(maxColumnValue) + 1
	t := &SolubleTable{
		insoluble: bitset.New(size),
		min:       make([]int32, size),
		max:       make([]int32, size),
	}
	t.insoluble.SetAll()

	return t
}

// Set records that magnitude v is soluble with the given min/max
// counts, clearing its insoluble bit.
func (t *SolubleTable) Set(v int32, min, max int32) {
	idx := uint(v)
	t.insoluble.Clear(idx)
	t.min[idx] = min
	t.max[idx] = max
}

// MarkInsoluble records that no completion exists for magnitude v.
func (t *SolubleTable) MarkInsoluble(v int32) {
	t.insoluble.Set(uint(v))
}

// IsInsoluble reports whether magnitude v has no feasible completion.
func (t *SolubleTable) IsInsoluble(v int32) bool {
	return t.insoluble.Test(uint(v))
}

// Min returns the minimum feasible count for magnitude v. The result
// is meaningful only when IsInsoluble(v) is false.
func (t *SolubleTable) Min(v int32) int32 {
	return t.min[v]
}

// Max returns the maximum feasible count for magnitude v. The result
// is meaningful only when IsInsoluble(v) is false.
func (t *SolubleTable) Max(v int32) int32 {
	return t.max[v]
}
