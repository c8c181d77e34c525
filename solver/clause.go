package solver

import "fmt"

// A Clause is a disjunction of literals.
type Clause struct {
	lits []Lit
}

// NewClause returns a clause whose lits are given as an argument.
// A clause is semantically a set of literals, so a literal given several
// times with the same sign is kept once; complementary literals are both
// kept (the clause is then a tautology).
func NewClause(lits []Lit) *Clause {
	uniq := lits[:0]
	for _, lit := range lits {
		dup := false
		for _, kept := range uniq {
			if kept == lit {
				dup = true
				break
			}
		}
		if !dup {
			uniq = append(uniq, lit)
		}
	}
	return &Clause{lits: uniq}
}

// Len returns the nb of lits in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// Get returns the ith literal from the clause.
func (c *Clause) Get(i int) Lit {
	return c.lits[i]
}

// MaxAtom returns the biggest atom mentioned in the clause, or 0 if the
// clause is empty.
func (c *Clause) MaxAtom() Atom {
	var max Atom
	for _, lit := range c.lits {
		if a := lit.Atom(); a > max {
			max = a
		}
	}
	return max
}

// copyClause returns a clause holding the same lits as c, sharing nothing.
func (c *Clause) copyClause() *Clause {
	lits := make([]Lit, len(c.lits))
	copy(lits, c.lits)
	return &Clause{lits: lits}
}

// index returns the position of l in c, or -1.
func (c *Clause) index(l Lit) int {
	for i, lit := range c.lits {
		if lit == l {
			return i
		}
	}
	return -1
}

// removeAt removes the ith lit by swapping in the last one.
// Clause order is not semantically meaningful, so this is fine.
func (c *Clause) removeAt(i int) {
	last := len(c.lits) - 1
	c.lits[i] = c.lits[last]
	c.lits = c.lits[:last]
}

// resolve merges other's lits into c, in place. Every complementary pair
// found between the two clauses is cancelled, not just a single pivot:
// a lit already in c is skipped, a lit whose negation is in c removes that
// negation, anything else is appended.
func (c *Clause) resolve(other *Clause) {
	for _, lit := range other.lits {
		if c.index(lit) != -1 {
			continue
		}
		if i := c.index(lit.Negation()); i != -1 {
			c.removeAt(i)
			continue
		}
		c.lits = append(c.lits, lit)
	}
}

// CNF returns a DIMACS CNF representation of the clause.
func (c *Clause) CNF() string {
	res := ""
	for _, lit := range c.lits {
		res += fmt.Sprintf("%d ", lit.Int())
	}
	return fmt.Sprintf("%s0", res)
}
