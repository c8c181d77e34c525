/*
Package solver gives access to a conflict-driven SAT solver.
Its input can be either a DIMACS CNF stream or a solver.Formula object,
containing the set of clauses to be solved.

The solver.Solver decides whether the formula is satisfiable or not.
In the former case, it provides a model: a valuation of the formula's atoms
that makes every clause true, each assignment tagged with the decision level
it was made at.

Describing a problem

A problem can be described in two ways:

1. parse a DIMACS stream (io.Reader). If the io.Reader produces the following content:

    p cnf 3 3
    1 2 0
    -1 2 0
    -2 0

the programmer can create the Formula by doing:

    f, err := solver.ParseCNF(r)

2. create the equivalent list of lists of literals:

    f := solver.ParseSlice([][]int{{1, 2}, {-1, 2}, {-2}})

Solving a problem

Solving is a single call. The context is consulted once per decision, so a
deadline or cancellation set on it abandons a search that runs too long:

    answer, err := solver.New(f).Solve(context.Background())

The search keeps every clause it learns: on long-running instances memory
grows without bound, since no clause is ever deleted.
*/
package solver
