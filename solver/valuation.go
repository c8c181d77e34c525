package solver

// A Reason records why an atom holds its current value: either it was picked
// speculatively at some decision level, or unit propagation forced it and the
// antecedent names the clause that did.
type Reason struct {
	level      int
	antecedent ClauseID
	implied    bool
}

// Decided returns the reason for a speculative assignment at the given level.
func Decided(level int) Reason {
	return Reason{level: level, antecedent: noClause}
}

// ImpliedAt returns the reason for an assignment forced by unit propagation
// at the given level, with the clause that forced it.
func ImpliedAt(level int, antecedent ClauseID) Reason {
	return Reason{level: level, antecedent: antecedent, implied: true}
}

// Level returns the decision level the assignment was made at.
func (r Reason) Level() int {
	return r.level
}

// Antecedent returns the clause that forced the assignment, and whether the
// assignment was forced at all (false for decisions).
func (r Reason) Antecedent() (ClauseID, bool) {
	return r.antecedent, r.implied
}

type binding struct {
	value  bool
	reason Reason
	bound  bool
}

// A Valuation is a partial assignment of truth values to atoms, each entry
// carrying the reason it was made. Entries are added by decisions and by
// propagation and removed only by backtracking.
type Valuation struct {
	bindings []binding // indexed by atom; entry 0 is unused
}

// NewValuation returns an empty valuation covering atoms 1..numVars.
func NewValuation(numVars int) *Valuation {
	return &Valuation{bindings: make([]binding, numVars+1)}
}

// Evaluate returns the value of l under v. The second return value is false
// when l's atom is unassigned, in which case the first is meaningless.
func (v *Valuation) Evaluate(l Lit) (value, assigned bool) {
	b := v.bindings[l.Atom()]
	if !b.bound {
		return false, false
	}
	return b.value == l.IsPositive(), true
}

// Assign records l's atom as true or false according to l's polarity.
// The caller must guarantee the atom is currently unassigned.
func (v *Valuation) Assign(l Lit, r Reason) {
	v.bindings[l.Atom()] = binding{value: l.IsPositive(), reason: r, bound: true}
}

// Reason returns the reason a holds its value, and whether a is assigned.
func (v *Valuation) Reason(a Atom) (Reason, bool) {
	b := v.bindings[a]
	return b.reason, b.bound
}

// unassignIf removes every assignment whose reason matches pred.
// Backtracking is the only caller.
func (v *Valuation) unassignIf(pred func(Reason) bool) {
	for i := range v.bindings {
		if v.bindings[i].bound && pred(v.bindings[i].reason) {
			v.bindings[i] = binding{}
		}
	}
}

// NumAssigned returns the nb of atoms currently assigned.
func (v *Valuation) NumAssigned() int {
	n := 0
	for _, b := range v.bindings {
		if b.bound {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of v.
func (v *Valuation) Clone() *Valuation {
	bindings := make([]binding, len(v.bindings))
	copy(bindings, v.bindings)
	return &Valuation{bindings: bindings}
}

// An Assignment is one assigned atom of a valuation, with the level it was
// assigned at.
type Assignment struct {
	Atom  Atom
	Value bool
	Level int
}

// Assignments returns the assigned atoms of v in increasing atom order.
func (v *Valuation) Assignments() []Assignment {
	res := make([]Assignment, 0, len(v.bindings))
	for i := 1; i < len(v.bindings); i++ {
		if b := v.bindings[i]; b.bound {
			res = append(res, Assignment{Atom: Atom(i), Value: b.value, Level: b.reason.Level()})
		}
	}
	return res
}
