package solver_test

import (
	"fmt"

	"github.com/acmatch/diosolve/solver"
)

// ExampleSolver walks spec.md §8 scenario 6: a row pinned to size zero
// contributes nothing, so the second row must absorb every column
// unit alone.
func ExampleSolver() {
	s := solver.New()
	s.InsertRow(1, 0, 0)
	s.InsertRow(1, 2, 2)
	s.InsertColumn(1)
	s.InsertColumn(1)

	if !s.Solve() {
		fmt.Println("no solution")
		return
	}

	for i := 0; i < s.RowCount(); i++ {
		for j := 0; j < s.ColumnCount(); j++ {
			fmt.Print(s.Solution(i, j), " ")
		}
	}
	fmt.Println()

	// Output:
	// 0 0 1 1
}
