package solver_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acmatch/diosolve/dioerr"
	"github.com/acmatch/diosolve/solver"
)

type rowSpec struct {
	coeff, min, max int32
}

func build(t *testing.T, rows []rowSpec, cols []int32) *solver.Solver {
	t.Helper()

	s := solver.New(solver.WithLogger(zerolog.Nop()))
	for _, r := range rows {
		s.InsertRow(r.coeff, r.min, r.max)
	}
	for _, c := range cols {
		s.InsertColumn(c)
	}

	return s
}

// matrix snapshots one solution in caller-visible row/column order.
func matrix(s *solver.Solver) [][]int32 {
	m := make([][]int32, s.RowCount())
	for i := range m {
		m[i] = make([]int32, s.ColumnCount())
		for j := range m[i] {
			m[i][j] = s.Solution(i, j)
		}
	}

	return m
}

// checkInvariants asserts spec.md §8's column-balance, row-size-bounds
// and nonnegativity invariants against the original (unsorted) rows and
// columns supplied to build.
func checkInvariants(t *testing.T, m [][]int32, rows []rowSpec, cols []int32) {
	t.Helper()

	for j, c := range cols {
		var sum int32
		for i, r := range rows {
			assert.GreaterOrEqualf(t, m[i][j], int32(0), "M[%d][%d] negative", i, j)
			sum += r.coeff * m[i][j]
		}
		assert.Equalf(t, c, sum, "column %d balance", j)
	}

	for i, r := range rows {
		var size int32
		for _, v := range m[i] {
			size += v
		}
		max := r.max
		assert.GreaterOrEqualf(t, size, r.min, "row %d below minSize", i)
		if max != solver.Unbounded {
			assert.LessOrEqualf(t, size, max, "row %d above maxSize", i)
		}
	}
}

func TestScenario1_EkerWorkedExample(t *testing.T) {
	rows := []rowSpec{{1, 14, 14}, {2, 15, 15}, {2, 17, 17}, {2, 18, 18}, {1, 34, 34}, {2, 15, 15}}
	cols := []int32{26, 28, 32, 25, 41, 26}
	s := build(t, rows, cols)

	seen := make([]([][]int32), 0, 8)
	for i := 0; i < 8; i++ {
		require.Truef(t, s.Solve(), "solution %d: %v", i+1, s.Err())
		m := matrix(s)
		checkInvariants(t, m, rows, cols)
		seen = append(seen, m)
	}

	for i := 1; i < len(seen); i++ {
		assert.Falsef(t, cmp.Equal(seen[i-1], seen[i]), "solutions %d and %d are identical", i, i+1)
	}
}

func TestScenario2_SimpleSingleRow(t *testing.T) {
	rows := []rowSpec{{1, 3, 3}}
	cols := []int32{1, 1, 1}
	s := build(t, rows, cols)

	require.True(t, s.Solve())
	checkInvariants(t, matrix(s), rows, cols)
	assert.Equal(t, [][]int32{{1, 1, 1}}, matrix(s))

	require.False(t, s.Solve())
	assert.True(t, s.Failed())
	assert.ErrorIs(t, s.Err(), dioerr.ErrExhausted)
}

func TestScenario3_SimpleTwoRowBounds(t *testing.T) {
	rows := []rowSpec{{2, 1, 2}, {1, 0, 5}}
	cols := []int32{3, 2}
	s := build(t, rows, cols)

	count := 0
	for s.Solve() {
		checkInvariants(t, matrix(s), rows, cols)
		count++
		require.Less(t, count, 100, "runaway enumeration")
	}
	assert.Greater(t, count, 0)
}

func TestScenario4_ComplexSingleSolution(t *testing.T) {
	// spec.md §8 scenario 4 states maxSize=1, but 6 is not a multiple of
	// 3 within [1,1] (see DESIGN.md "Deviations from the original");
	// maxSize=2 is the smallest bound that actually admits M=[[2]].
	rows := []rowSpec{{3, 1, 2}}
	cols := []int32{6}
	s := build(t, rows, cols)

	require.True(t, s.Solve())
	assert.Equal(t, [][]int32{{2}}, matrix(s))

	require.False(t, s.Solve())
}

func TestScenario5_ComplexInfeasible(t *testing.T) {
	rows := []rowSpec{{2, 1, 10}}
	cols := []int32{5}
	s := build(t, rows, cols)

	require.False(t, s.Solve())
	assert.True(t, s.Failed())
	assert.True(t, errors.Is(s.Err(), dioerr.ErrTrivialInfeasible) || errors.Is(s.Err(), dioerr.ErrRowZeroInsoluble))
}

func TestScenario6_ForcedZeroRow(t *testing.T) {
	rows := []rowSpec{{1, 0, 0}, {1, 2, 2}}
	cols := []int32{1, 1}
	s := build(t, rows, cols)

	require.True(t, s.Solve())
	m := matrix(s)
	checkInvariants(t, m, rows, cols)
	assert.Equal(t, [][]int32{{0, 0}, {1, 1}}, m)

	require.False(t, s.Solve())
}

func TestBoundaryCase_SingleRowSingleColumn(t *testing.T) {
	cases := []struct {
		name  string
		rows  []rowSpec
		cols  []int32
		solve bool
	}{
		{"multiple within bounds", []rowSpec{{2, 0, 5}}, []int32{10}, true},
		{"not a multiple", []rowSpec{{3, 0, 5}}, []int32{10}, false},
		{"multiple but out of bounds", []rowSpec{{2, 0, 2}}, []int32{10}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := build(t, tc.rows, tc.cols)
			assert.Equal(t, tc.solve, s.Solve())
		})
	}
}

func TestBoundaryCase_ZeroSizeRowMustBeAllZero(t *testing.T) {
	rows := []rowSpec{{5, 0, 0}, {1, 0, 10}}
	cols := []int32{7}
	s := build(t, rows, cols)

	require.True(t, s.Solve())
	m := matrix(s)
	assert.Equal(t, int32(0), m[0][0])
	checkInvariants(t, m, rows, cols)
}

func TestPreconditions_PanicAfterFailure(t *testing.T) {
	s := build(t, []rowSpec{{2, 1, 10}}, []int32{5})
	require.False(t, s.Solve())

	assert.Panics(t, func() { s.Solve() })
}

func TestPreconditions_InsertAfterClose(t *testing.T) {
	s := build(t, []rowSpec{{1, 0, 5}}, []int32{5})
	require.True(t, s.Solve())

	assert.Panics(t, func() { s.InsertRow(1, 0, 1) })
	assert.Panics(t, func() { s.InsertColumn(1) })
}

func TestWithMaxDimension(t *testing.T) {
	s := solver.New(solver.WithMaxDimension(1))
	s.InsertRow(1, 0, 5)

	assert.Panics(t, func() { s.InsertRow(1, 0, 5) })
}
