package solver

// classify returns c's status under v and, when the status is Unit, the
// single unassigned literal. A true literal anywhere makes the clause Sat
// regardless of anything else; with no true literal, the nb of unassigned
// literals (0, 1 or more) decides between Unsat, Unit and Many.
func classify(c *Clause, v *Valuation) (Status, Lit) {
	var unit Lit
	unassigned := 0
	for _, lit := range c.lits {
		val, ok := v.Evaluate(lit)
		if !ok {
			unassigned++
			unit = lit
			continue
		}
		if val {
			return Sat, 0
		}
	}
	switch unassigned {
	case 0:
		return Unsat, 0
	case 1:
		return Unit, unit
	default:
		return Many, 0
	}
}

// propagate runs unit propagation at decision level lvl until a fixpoint is
// reached or some clause is falsified. The whole formula, learned clauses
// included, is rescanned in formula order as long as a scan produced a new
// assignment. Returns the id of the falsified clause, or noClause.
func (s *Solver) propagate(lvl int) ClauseID {
	for changed := true; changed; {
		changed = false
		for id := 0; id < s.formula.NumClauses(); id++ {
			c := s.formula.Clause(ClauseID(id))
			switch status, unit := classify(c, s.valuation); status {
			case Unsat:
				return ClauseID(id)
			case Unit:
				s.valuation.Assign(unit, ImpliedAt(lvl, ClauseID(id)))
				s.Stats.NbImplied++
				changed = true
			}
		}
	}
	return noClause
}
