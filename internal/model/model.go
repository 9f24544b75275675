// Package model holds the data model of the enumeration engine: rows,
// the column multiset, per-cell selection state, and the solubility
// table used by the complex search path.
//
// Types here are mutated in place by precompute and search; callers of
// the public solver package never see them directly.
package model

import "math"

// Unbounded is the sentinel maxSize value meaning "no declared upper
// bound". It is replaced by the column total during precomputation and
// is otherwise never used in arithmetic.
const Unbounded int32 = math.MaxInt32

// Select is the per-row, per-column selection state (spec.md §3).
// Base is the solubility-forced mandatory share (always 0 for a simple
// system); Extra is the discretionary share chosen by the current
// search position; MaxExtra bounds Extra for this activation of the
// row.
type Select struct {
	Base     int32
	Extra    int32
	MaxExtra int32
}

// Row is one declared row of the system, indexed by its sorted
// position once the system is CLOSED. Name records the caller's
// original insertion index so solutions can be reported back in
// caller order via the row permutation kept by the solver.
type Row struct {
	Name int

	Coeff   int32
	MinSize int32
	MaxSize int32

	MinProduct int32
	MaxProduct int32

	// MinLeave/MaxLeave are the sum of MinProduct/MaxProduct over every
	// row strictly after this one in sorted order.
	MinLeave int32
	MaxLeave int32

	// CurrentSize/CurrentMaxSize bound the size of the multiset
	// selection under active enumeration for this row.
	CurrentSize    int32
	CurrentMaxSize int32

	Selection []Select

	// Soluble is non-nil only for complex systems; it is built once at
	// CLOSED time and read-only thereafter.
	Soluble *SolubleTable
}

// ColumnBag is the ordered multiset of column values (spec.md §3). It
// is mutated during the complex search path (base shares are
// subtracted before a row's search and restored on that row's final
// failure) and otherwise externally constant once CLOSED.
type ColumnBag struct {
	Values []int32

	Sum int32
	Max int32
}

// NewColumnBag returns an empty column bag.
func NewColumnBag() *ColumnBag {
	return &ColumnBag{}
}

// Insert appends value to the bag, maintaining the cached Sum and Max.
func (b *ColumnBag) Insert(value int32) {
	b.Values = append(b.Values, value)
	b.Sum += value
	if value > b.Max {
		b.Max = value
	}
}

// Len reports the number of columns in the bag.
func (b *ColumnBag) Len() int {
	return len(b.Values)
}
