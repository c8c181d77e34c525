package solver

import "fmt"

// A ClauseID is the position of a clause in a Formula. Since a Formula is
// append-only, a ClauseID stays valid for as long as the formula lives,
// which lets reasons reference their antecedent by id instead of by pointer.
type ClauseID int

// noClause is the id used when no clause is involved (no conflict, no antecedent).
const noClause = ClauseID(-1)

// A Formula is an append-only collection of clauses, interpreted as their
// conjunction. Input clauses occupy the initial positions; the solver appends
// learned clauses after them. Clauses are never deleted or reordered.
type Formula struct {
	clauses []*Clause
	maxAtom Atom
}

// NewFormula returns a formula made of the given clauses.
func NewFormula(clauses []*Clause) *Formula {
	f := &Formula{clauses: clauses}
	for _, c := range clauses {
		if a := c.MaxAtom(); a > f.maxAtom {
			f.maxAtom = a
		}
	}
	return f
}

// NumVars returns the biggest atom mentioned in the formula, or 0 for an
// empty formula. Any header-declared count is ignored: this is always
// recomputed from the actual clauses.
func (f *Formula) NumVars() int {
	return int(f.maxAtom)
}

// NumClauses returns the nb of clauses in the formula, learned ones included.
func (f *Formula) NumClauses() int {
	return len(f.clauses)
}

// Clause returns the clause with the given id.
func (f *Formula) Clause(id ClauseID) *Clause {
	return f.clauses[id]
}

// Append adds c at the end of the formula and returns its id.
func (f *Formula) Append(c *Clause) ClauseID {
	if a := c.MaxAtom(); a > f.maxAtom {
		f.maxAtom = a
	}
	f.clauses = append(f.clauses, c)
	return ClauseID(len(f.clauses) - 1)
}

// Verify reports whether every clause of f contains at least one literal
// made true by v.
func (f *Formula) Verify(v *Valuation) bool {
	for _, c := range f.clauses {
		sat := false
		for _, lit := range c.lits {
			if val, ok := v.Evaluate(lit); ok && val {
				sat = true
				break
			}
		}
		if !sat {
			return false
		}
	}
	return true
}

// CNF returns a DIMACS CNF representation of the formula.
func (f *Formula) CNF() string {
	res := fmt.Sprintf("p cnf %d %d\n", f.NumVars(), f.NumClauses())
	for _, clause := range f.clauses {
		res += fmt.Sprintf("%s\n", clause.CNF())
	}
	return res
}
