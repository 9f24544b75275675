// Package solver is the public surface of the enumeration engine
// (spec.md §4.1, §6): a single stateful Solver that walks OPEN → CLOSED
// → ENUMERATING, backed by the internal precompute, search and model
// packages.
package solver

import (
	"github.com/blang/semver/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/acmatch/diosolve/dioerr"
	"github.com/acmatch/diosolve/internal/model"
	"github.com/acmatch/diosolve/internal/precompute"
	"github.com/acmatch/diosolve/internal/search"
)

// Version identifies this package's implementation of the enumeration
// contract, independent of the module's own release tag.
var Version = semver.MustParse("0.1.0")

// Unbounded is the sentinel maxSize a row may declare to mean "no
// upper bound"; precomputation replaces it with the column total.
const Unbounded = model.Unbounded

type phase int

const (
	open phase = iota
	closed
	enumerating
)

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithLogger overrides the package's default logger for one Solver.
// Every log line the Solver emits carries its instance id, so logs
// from concurrently-driven Solvers in the same process stay
// distinguishable.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Solver) { s.logger = l }
}

// WithMaxDimension caps the number of rows and the number of columns
// the Solver will accept. Row coefficients, column values and their
// products are int32 (spec.md §1 Non-goals: overflow beyond 32-bit
// signed is the caller's responsibility); this option is a cheap guard
// against accidentally building a system whose internal sums could
// approach that range, not a substitute for validating individual
// values.
func WithMaxDimension(n int) Option {
	return func(s *Solver) { s.maxDimension = n }
}

// Solver enumerates nonnegative integer matrices satisfying a
// constrained linear Diophantine system (spec.md §1-§2). It is not
// safe for concurrent use: the column bag and per-row search state are
// mutated in place (spec.md §5).
type Solver struct {
	id     string
	logger zerolog.Logger

	phase  phase
	failed bool
	err    error

	rows []*model.Row
	bag  *model.ColumnBag

	sys      *precompute.System
	strategy search.RowSearch

	idx       int
	findFirst bool
	hasSolved bool

	maxDimension int
}

// New returns an empty Solver in the OPEN phase.
func New(opts ...Option) *Solver {
	s := &Solver{
		id:     uuid.New().String(),
		logger: log,
		bag:    model.NewColumnBag(),
		phase:  open,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With().Str("solver_id", s.id).Logger()

	return s
}

// InsertRow appends a row with the given coefficient and size bounds
// (spec.md §4.1, §6). Valid only in OPEN; coeff must be positive and
// 0 ≤ minSize ≤ maxSize (maxSize may be Unbounded).
func (s *Solver) InsertRow(coeff, minSize, maxSize int32) {
	dioerr.Precondition(s.phase == open, "insertRow called outside OPEN")
	dioerr.Precondition(coeff > 0, "row coefficient must be positive")
	dioerr.Precondition(minSize >= 0, "row minSize must be nonnegative")
	dioerr.Precondition(minSize <= maxSize, "row minSize must not exceed maxSize")
	dioerr.Precondition(s.maxDimension == 0 || len(s.rows) < s.maxDimension, "row count exceeds configured maximum")

	s.rows = append(s.rows, &model.Row{
		Name:    len(s.rows),
		Coeff:   coeff,
		MinSize: minSize,
		MaxSize: maxSize,
	})
}

// InsertColumn appends a positive column value. Valid only in OPEN.
func (s *Solver) InsertColumn(value int32) {
	dioerr.Precondition(s.phase == open, "insertColumn called outside OPEN")
	dioerr.Precondition(value > 0, "column value must be positive")
	dioerr.Precondition(s.maxDimension == 0 || s.bag.Len() < s.maxDimension, "column count exceeds configured maximum")

	s.bag.Insert(value)
}

// RowCount reports the number of declared rows.
func (s *Solver) RowCount() int { return len(s.rows) }

// ColumnCount reports the number of declared columns.
func (s *Solver) ColumnCount() int { return s.bag.Len() }

// Failed reports whether the Solver has reached a terminal state
// (spec.md §3 Invariants): either precomputation rejected the system,
// or the search space is exhausted. No further successful Solve may
// follow.
func (s *Solver) Failed() bool { return s.failed }

// Err returns the reason the Solver last failed, or nil if it has not
// failed. It distinguishes precomputation infeasibility from search
// exhaustion via dioerr's sentinels.
func (s *Solver) Err() error { return s.err }

// Solve advances the Solver to its next solution (spec.md §4.1, §4.7).
// On the first call it runs precomputation, transitioning OPEN→CLOSED;
// on every call thereafter it resumes the backtracking search from the
// last row it successfully placed. It returns true, with Solution
// defined for the caller's original row/column indices, or false, with
// Failed and Err set, once the system is infeasible or exhausted.
// Solutions come in a fixed, reproducible order, but that order is
// not part of the contract and callers should not rely on it.
//
// Calling Solve after Failed is a precondition violation.
func (s *Solver) Solve() bool {
	dioerr.Precondition(!s.failed, "solve called after failure")

	if s.phase == open {
		if !s.precompute() {
			return false
		}
	} else {
		dioerr.Precondition(s.phase == enumerating, "solve called with no rows or columns declared")
		s.idx = s.lastDriverRow()
		s.findFirst = false
	}

	if !s.run() {
		s.fail(dioerr.ErrExhausted)
		return false
	}

	s.phase = enumerating
	s.hasSolved = true
	s.fillLastRow()
	s.logger.Debug().Str("event", "solution").Send()

	return true
}

// Solution returns Mᵢⱼ for the caller's original row index i and
// column index j (spec.md §4.1). Valid only after Solve has returned
// true.
func (s *Solver) Solution(row, col int) int32 {
	dioerr.Precondition(s.phase == enumerating, "solution queried with no current solution")
	dioerr.Precondition(row >= 0 && row < len(s.rows), "row index out of range")
	dioerr.Precondition(col >= 0 && col < s.bag.Len(), "column index out of range")

	r := s.sys.Rows[s.sys.RowPermute[row]]
	sel := r.Selection[col]

	return sel.Base + sel.Extra
}

func (s *Solver) precompute() bool {
	sys, err := precompute.Run(s.rows, s.bag)
	if err != nil {
		s.fail(err)
		s.logger.Warn().Err(err).Msg("precomputation rejected system")
		return false
	}

	s.sys = sys
	s.strategy = search.New(sys.Complex)
	s.phase = closed
	s.idx = 0
	s.findFirst = true

	return true
}

func (s *Solver) fail(err error) {
	s.failed = true
	s.err = err
}

// lastDriverRow returns the row index the driver was sitting on when
// it last reported success: P = n-2, or 0 when there is nothing to
// retreat past (n ≤ 2).
func (s *Solver) lastDriverRow() int {
	if p := len(s.sys.Rows) - 2; p > 0 {
		return p
	}

	return 0
}

// run is the backtracking driver (spec.md §4.7): an explicit
// forward/backward walk over row indices [0, n-2], not a recursion, so
// the search depth it can sustain is bounded only by available memory
// rather than by goroutine stack size.
func (s *Solver) run() bool {
	rows := s.sys.Rows
	if len(rows) == 1 {
		return !s.hasSolved
	}

	p := len(rows) - 2

	for {
		var ok bool
		if s.findFirst {
			ok = s.strategy.EmitFirst(rows, s.sys.Bag, s.idx)
		} else {
			ok = s.strategy.Advance(rows, s.sys.Bag, s.idx)
		}

		if ok {
			if s.idx == p {
				return true
			}

			s.idx++
			s.findFirst = true

			continue
		}

		if s.idx == 0 {
			return false
		}

		s.idx--
		s.findFirst = false
	}
}

// fillLastRow performs the trivial closed-form fill of the smallest
// (last sorted) row (spec.md §4.7).
func (s *Solver) fillLastRow() {
	rows := s.sys.Rows
	last := rows[len(rows)-1]
	bag := s.sys.Bag

	if s.sys.Complex {
		for j, v := range bag.Values {
			last.Selection[j].Extra = last.Soluble.Min(v)
		}

		return
	}

	for j, v := range bag.Values {
		last.Selection[j].Extra = v
	}
}
