package solver

import "github.com/pkg/errors"

// ErrInternal reports that propagation or analysis bookkeeping broke one of
// the solver's invariants. It indicates a bug in the solver, not a property
// of the input; a solve that returns it cannot be trusted or resumed.
var ErrInternal = errors.New("internal solver error")

// analyze derives a learned clause from the falsified clause, walking the
// implication structure backward until exactly one literal from the current
// level remains (first UIP). It returns the learned clause and the level to
// backtrack to: the minimum reason level among the learned clause's literals.
//
// The conflict clause itself is not mutated; resolution works on a copy.
func (s *Solver) analyze(conflict ClauseID, lvl int) (*Clause, int, error) {
	learned := s.formula.Clause(conflict).copyClause()
	for {
		nbCurLvl := 0
		antecedent := noClause
		for _, lit := range learned.lits {
			r, ok := s.valuation.Reason(lit.Atom())
			if !ok || r.Level() != lvl {
				continue
			}
			nbCurLvl++
			// Later lits overwrite earlier ones, so among several
			// implied current-level lits the last one scanned is
			// the one resolved against.
			if ante, implied := r.Antecedent(); implied {
				antecedent = ante
			}
		}
		if nbCurLvl == 0 {
			return nil, 0, errors.Wrapf(ErrInternal, "conflict at level %d with no literal from that level", lvl)
		}
		if nbCurLvl == 1 {
			break
		}
		if antecedent == noClause {
			// At most one decision exists per level, so two or more
			// current-level lits always include an implied one.
			return nil, 0, errors.Wrapf(ErrInternal, "%d current-level literals but no antecedent to resolve with", nbCurLvl)
		}
		learned.resolve(s.formula.Clause(antecedent))
	}
	btLevel := lvl
	for _, lit := range learned.lits {
		r, ok := s.valuation.Reason(lit.Atom())
		if !ok {
			return nil, 0, errors.Wrapf(ErrInternal, "unassigned literal %d in learned clause", lit.Int())
		}
		if r.Level() < btLevel {
			btLevel = r.Level()
		}
	}
	return learned, btLevel, nil
}

// backtrackTo unassigns every atom bound at a reason level >= lvl. This is
// the sole mechanism removing entries from the valuation; the target level
// may be far below the level the conflict occurred at.
func (s *Solver) backtrackTo(lvl int) {
	s.valuation.unassignIf(func(r Reason) bool { return r.Level() >= lvl })
}
