// Package diosolve enumerates the nonnegative integer matrices M
// satisfying a constrained linear Diophantine system: given rows with
// a coefficient and a size bound, and a bag of positive column values,
// find every M where each column's entries, weighted by their rows'
// coefficients, sum to that column's value and each row's entries sum
// to a size within its declared bounds.
//
// The algorithm is Steven Eker's for single elementary
// associative-commutative matching, as used by the Maude term rewriting
// system to enumerate the ways an AC/ACU operator's arguments can be
// partitioned across a set of matching subproblems:
//
//	Steven Eker, "Single Elementary Associative-Commutative Matching",
//	Journal of Automated Reasoning 28(1), 2002.
//
// The public surface lives in the solver subpackage; a runnable driver
// is under cmd/diosolve.
//
//	go get github.com/acmatch/diosolve/solver
package diosolve
