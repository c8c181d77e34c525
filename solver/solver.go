package solver

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Stats are statistics about the resolution of the problem.
// They are provided for information purpose only.
type Stats struct {
	NbDecisions int // How many speculative assignments were made
	NbConflicts int // How many falsified clauses were met
	NbLearned   int // How many clauses were learned
	NbImplied   int // How many assignments unit propagation forced
}

// An Answer is the terminal result of a solve: Sat with the satisfying
// valuation, or Unsat.
type Answer struct {
	Status Status
	Model  *Valuation // nil unless Status is Sat
}

// String renders the answer: "SAT" followed by one
// "<atom>: <true|false>@<level>" line per assigned atom; any other status
// renders as that status alone.
func (a *Answer) String() string {
	if a.Status != Sat {
		return a.Status.String()
	}
	lines := lo.Map(a.Model.Assignments(), func(as Assignment, _ int) string {
		return fmt.Sprintf("%d: %t@%d", as.Atom, as.Value, as.Level)
	})
	return strings.Join(append([]string{Sat.String()}, lines...), "\n")
}

// A Solver decides the satisfiability of a formula. It is the main data
// structure; all of its state is scoped to one solving session, so distinct
// solvers are independent of each other.
type Solver struct {
	formula   *Formula
	valuation *Valuation
	level     int
	logger    logrus.FieldLogger
	Stats     Stats // Statistics about the solving process.
}

// An Option configures a solver at construction time.
type Option func(*Solver)

// WithLogger makes the solver report progress on the given logger, at debug
// level. By default nothing is logged.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Solver) { s.logger = logger }
}

// New makes a solver for the given formula. The formula itself is left
// untouched: the solver works on its own clause list, so the same formula
// can be handed to several solvers.
func New(f *Formula, opts ...Option) *Solver {
	clauses := make([]*Clause, f.NumClauses())
	copy(clauses, f.clauses)
	s := &Solver{
		formula:   &Formula{clauses: clauses, maxAtom: f.maxAtom},
		valuation: NewValuation(f.NumVars()),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		s.logger = discard
	}
	return s
}

// chooseLit returns the first literal, scanning clauses in formula order and
// lits in clause order, whose atom is unassigned. It returns 0 when every
// literal of every clause is assigned, which signals termination: atoms
// absent from all clauses never block it.
func (s *Solver) chooseLit() Lit {
	for _, c := range s.formula.clauses {
		for _, lit := range c.lits {
			if _, ok := s.valuation.Evaluate(lit); !ok {
				return lit
			}
		}
	}
	return 0
}

// Solve runs the conflict-driven search to completion and returns the answer.
// The search is deterministic: the same formula always yields the same answer
// and, when Sat, the same model.
//
// ctx is checked once per decision; a solve on a formula that is too hard can
// be abandoned through cancellation or a deadline, in which case the error is
// the context's. A non-context error wraps ErrInternal and means the solver's
// own bookkeeping failed.
func (s *Solver) Solve(ctx context.Context) (*Answer, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lit := s.chooseLit()
		if lit == 0 {
			s.logger.WithField("assigned", s.valuation.NumAssigned()).Debug("all clauses satisfied")
			return &Answer{Status: Sat, Model: s.valuation.Clone()}, nil
		}
		s.Stats.NbDecisions++
		s.valuation.Assign(lit, Decided(s.level))
		s.logger.WithField("level", s.level).Debugf("decided %d", lit.Int())
		conflict := s.propagate(s.level)
		if conflict == noClause {
			s.level++
			continue
		}
		s.Stats.NbConflicts++
		learned, btLevel, err := s.analyze(conflict, s.level)
		if err != nil {
			return nil, err
		}
		s.formula.Append(learned)
		s.Stats.NbLearned++
		s.logger.WithField("level", s.level).Debugf("conflict on clause %d, learned %q, backjumping to %d", conflict, learned.CNF(), btLevel)
		s.backtrackTo(btLevel)
		s.level = btLevel
		if s.propagate(s.level) != noClause {
			return &Answer{Status: Unsat}, nil
		}
	}
}
