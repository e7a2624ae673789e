package peg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nested lists of letters, counting the letters
func listGrammar(t *testing.T, g *Grammar[int]) (*Rules[int], Parser[int]) {
	t.Helper()
	r := g.Rules()
	list, err := r.Define("list", g.Then(g.MustRegex(`\(`), g.ZeroOrMore(r.Ref("item")), g.MustRegex(`\)`)))
	require.NoError(t, err)
	_, err = r.Define("item", g.Cond(`\(`, r.Ref("list")).
		OrElse(g.Action("[a-z]", func(_ string, n int) int { return n + 1 })))
	require.NoError(t, err)
	return r, list
}

func TestRules(t *testing.T) {
	g := New[int]()
	r, list := listGrammar(t, g)
	require.NoError(t, r.Resolve())
	assert.Equal(t, []string{"item", "list"}, r.Names(), "names are recorded on first reference")

	tests := []struct {
		input   string
		matched bool
		index   int
		letters int
	}{
		{"()", true, 2, 0},
		{"(a(bc)d)", true, 8, 4},
		{"((()))x", true, 6, 0},
		{"(a(b)", false, 0, 0},
		{"a", false, 0, 0},
	}
	for _, tt := range tests {
		res, ok, err := g.MatchString(list, tt.input, 0)
		require.NoError(t, err)
		assert.Equal(t, tt.matched, ok, tt.input)
		if ok {
			assert.Equal(t, tt.index, res.Index, tt.input)
			assert.Equal(t, tt.letters, res.Attr, tt.input)
		}
	}
}

func TestRules_Errors(t *testing.T) {
	g := New[int]()
	r := g.Rules()

	_, err := r.Define("a", g.Then(g.MustRegex("a"), r.Ref("b"), r.Ref("c")))
	require.NoError(t, err)
	_, err = r.Define("a", g.Success())
	assert.ErrorIs(t, err, ErrDuplicateRule)

	err = r.Resolve()
	assert.ErrorIs(t, err, ErrUndefinedRule)
	assert.Contains(t, err.Error(), ": b")
	assert.Contains(t, err.Error(), ": c")

	// parsing through an undefined rule is fatal
	_, _, err = g.MatchString(r.Ref("a"), "ab", 0)
	assert.ErrorIs(t, err, ErrUnresolvedRule)

	_, err = r.Define("b", g.Success())
	require.NoError(t, err)
	_, err = r.Define("c", g.Success())
	require.NoError(t, err)
	require.NoError(t, r.Resolve())
}
