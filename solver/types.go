package solver

// Describes basic types and constants that are used in the solver

// Status is the status of a given problem or clause at a given moment.
type Status byte

const (
	// Indet means the problem is not proven sat or unsat yet.
	Indet = Status(iota)
	// Sat means the problem or clause is satisfied.
	Sat
	// Unsat means the problem or clause is unsatisfied.
	Unsat
	// Unit is a constant meaning the clause contains only one unassigned literal.
	Unit
	// Many is a constant meaning the clause contains at least 2 unassigned literals.
	Many
)

func (s Status) String() string {
	switch s {
	case Indet:
		return "INDETERMINATE"
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	case Unit:
		return "UNIT"
	case Many:
		return "MANY"
	default:
		panic("invalid status")
	}
}

// An Atom identifies a boolean variable. Atoms start at 1; index 0 is
// reserved so that an Atom can index directly into atom-indexed slices.
type Atom int32

// A Lit is a signed literal: its magnitude is an Atom, its sign the polarity.
// The CNF literal -3 is the Lit -3. Zero is not a valid Lit.
type Lit int32

// IntToLit converts a CNF literal to a Lit.
func IntToLit(i int) Lit {
	return Lit(i)
}

// Atom returns the atom of l.
func (l Lit) Atom() Atom {
	if l < 0 {
		return Atom(-l)
	}
	return Atom(l)
}

// Int returns the equivalent CNF literal.
func (l Lit) Int() int {
	return int(l)
}

// IsPositive is true iff l asserts its atom true.
func (l Lit) IsPositive() bool {
	return l > 0
}

// Negation returns -l, i.e the positive version of l if it is negative,
// or the negative version otherwise.
func (l Lit) Negation() Lit {
	return -l
}
