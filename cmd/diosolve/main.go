// Package main is the shipped driver for the diosolve enumeration
// engine: it assembles the six-row, six-column AC-matching system from
// spec.md §8 scenario 1 (Eker's worked example), requests eight
// solutions in sequence, and renders each as a matrix.
//
// The entry point is out of scope for the enumeration core itself
// (spec.md §1): it exists only to give the core a runnable
// collaborator.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/acmatch/diosolve/solver"
)

func main() {
	requested := flag.Int("count", 8, "number of solutions to request before stopping")
	verbose := flag.Bool("verbose", false, "log solver phase transitions to stderr")
	version := flag.Bool("version", false, "print the solver package version and exit")
	flag.Parse()

	if *version {
		fmt.Println(solver.Version.String())
		return
	}

	logger := zerolog.Nop()
	if *verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	s := solver.New(solver.WithLogger(logger))
	buildEkerExample(s)

	for n := 0; n < *requested; n++ {
		if !s.Solve() {
			fmt.Printf("exhausted after %d solution(s): %v\n", n, s.Err())
			return
		}
		printSolution(s, n+1)
	}
}

// buildEkerExample declares the six-row, six-column system from
// spec.md §8 scenario 1: R = [(1,14,14), (2,15,15), (2,17,17),
// (2,18,18), (1,34,34), (2,15,15)], C = [26,28,32,25,41,26].
func buildEkerExample(s *solver.Solver) {
	rows := [][3]int32{
		{1, 14, 14},
		{2, 15, 15},
		{2, 17, 17},
		{2, 18, 18},
		{1, 34, 34},
		{2, 15, 15},
	}
	for _, r := range rows {
		s.InsertRow(r[0], r[1], r[2])
	}

	for _, c := range []int32{26, 28, 32, 25, 41, 26} {
		s.InsertColumn(c)
	}
}

func printSolution(s *solver.Solver, n int) {
	fmt.Printf("solution %d:\n", n)
	for i := 0; i < s.RowCount(); i++ {
		fmt.Print("  ")
		for j := 0; j < s.ColumnCount(); j++ {
			fmt.Printf("%3d ", s.Solution(i, j))
		}
		fmt.Println()
	}
}
