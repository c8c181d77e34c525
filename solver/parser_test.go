package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCNF(t *testing.T) {
	cnf := `c a comment
p cnf 100 42
% legacy end-of-file marker
1 2 0
 -1 2 0
0

-2 0
`
	f, err := ParseCNF(strings.NewReader(cnf))
	require.NoError(t, err)
	assert.Equal(t, 3, f.NumClauses())
	// The header declares 100 vars but counts are recomputed from the clauses.
	assert.Equal(t, 2, f.NumVars())
	assert.Equal(t, "1 2 0", f.Clause(0).CNF())
	assert.Equal(t, "-2 0", f.Clause(2).CNF())
}

func TestParseCNFStopsAtTerminator(t *testing.T) {
	f, err := ParseCNF(strings.NewReader("1 2 0 3 4\n"))
	require.NoError(t, err)
	require.Equal(t, 1, f.NumClauses())
	assert.Equal(t, "1 2 0", f.Clause(0).CNF())
	assert.Equal(t, 2, f.NumVars())
}

func TestParseCNFMissingTerminator(t *testing.T) {
	f, err := ParseCNF(strings.NewReader("1 -2\n"))
	require.NoError(t, err)
	require.Equal(t, 1, f.NumClauses())
	assert.Equal(t, "1 -2 0", f.Clause(0).CNF())
}

func TestParseCNFBadToken(t *testing.T) {
	_, err := ParseCNF(strings.NewReader("1 two 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"two"`)
}

func TestParseCNFEmpty(t *testing.T) {
	f, err := ParseCNF(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, f.NumClauses())
	assert.Equal(t, 0, f.NumVars())
}

func TestParseSlice(t *testing.T) {
	f := ParseSlice([][]int{{1, 2, 3}, {-1}, {-2}, {-3}})
	assert.Equal(t, 4, f.NumClauses())
	assert.Equal(t, 3, f.NumVars())
}

func TestParseSliceNullLiteral(t *testing.T) {
	assert.Panics(t, func() { ParseSlice([][]int{{1, 0}}) })
}

func TestFormulaCNF(t *testing.T) {
	f := ParseSlice([][]int{{1, 2}, {-2}})
	assert.Equal(t, "p cnf 2 2\n1 2 0\n-2 0\n", f.CNF())
}
