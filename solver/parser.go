package solver

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseCNF parses a DIMACS CNF problem and returns the corresponding formula.
//
// Lines are handled independently. Blank lines, lines starting with 'p', 'c'
// or '%', and lines that are exactly "0" are ignored; in particular the
// "p cnf <vars> <clauses>" header is accepted but never trusted, counts are
// always recomputed from the clauses themselves. Every other line is a clause:
// whitespace-separated signed integers, terminated by the first 0 token.
func ParseCNF(r io.Reader) (*Formula, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var clauses []*Clause
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line == "0" {
			continue
		}
		switch line[0] {
		case 'p', 'c', '%':
			continue
		}
		var lits []Lit
		for _, tok := range strings.Fields(line) {
			val, err := strconv.Atoi(tok)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid literal %q", tok)
			}
			if val == 0 {
				break
			}
			lits = append(lits, IntToLit(val))
		}
		if len(lits) > 0 {
			clauses = append(clauses, NewClause(lits))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read CNF")
	}
	return NewFormula(clauses), nil
}

// ParseSlice parses a slice of slices of CNF literals and returns the
// equivalent formula. The argument is supposed to be a well-formed CNF.
func ParseSlice(cnf [][]int) *Formula {
	clauses := make([]*Clause, len(cnf))
	for i, line := range cnf {
		lits := make([]Lit, len(line))
		for j, val := range line {
			if val == 0 {
				panic("null literal in clause")
			}
			lits[j] = IntToLit(val)
		}
		clauses[i] = NewClause(lits)
	}
	return NewFormula(clauses)
}
