package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/sift/errors"
	"github.com/teranos/sift/query/parser"
	"github.com/teranos/sift/query/rewrite"
)

func TestCompile_EndToEnd(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		wantAST        string
		wantStandalone []string
		wantExcluded   []string
		wantRequires   map[string][]string
	}{
		{
			name:         "conjunction",
			input:        "a AND b",
			wantAST:      "AND(TERM(a), TERM(b))",
			wantRequires: map[string][]string{"a": {"b"}},
		},
		{
			name:         "conjunction over disjunction distributes",
			input:        "a AND (b OR c)",
			wantAST:      "OR(AND(TERM(a), TERM(b)), AND(TERM(a), TERM(c)))",
			wantRequires: map[string][]string{"a": {"b", "c"}},
		},
		{
			name:         "negation",
			input:        "NOT a",
			wantAST:      "NOT(TERM(a))",
			wantExcluded: []string{"a"},
		},
		{
			name:           "disjunction",
			input:          "a OR b",
			wantAST:        "OR(TERM(a), TERM(b))",
			wantStandalone: []string{"a", "b"},
		},
		{
			name:         "literal stays distinct from folded word",
			input:        "{ABC} AND abc",
			wantAST:      "AND(TERM({ABC}), TERM(abc))",
			wantRequires: map[string][]string{"abc": {"{ABC}"}},
		},
		{
			name:           "comments stripped before parsing",
			input:          "apple <<<seasonal\ncheck>>> OR pear",
			wantAST:        "OR(TERM(apple), TERM(pear))",
			wantStandalone: []string{"apple", "pear"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compile(tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.Converged)

			assert.Equal(t, tt.wantAST, result.AST.String())
			if tt.wantStandalone == nil {
				assert.Empty(t, result.Summary.Standalone)
			} else {
				assert.Equal(t, tt.wantStandalone, result.Summary.Standalone)
			}
			if tt.wantExcluded == nil {
				assert.Empty(t, result.Summary.Excluded)
			} else {
				assert.Equal(t, tt.wantExcluded, result.Summary.Excluded)
			}
			if tt.wantRequires == nil {
				assert.Empty(t, result.Summary.Requires)
			} else {
				assert.Equal(t, tt.wantRequires, result.Summary.Requires)
			}
		})
	}
}

func TestCompile_SyntaxErrorPath(t *testing.T) {
	result, err := Compile("a AND")
	require.Error(t, err)
	assert.Nil(t, result, "no partial result on syntax errors")

	var serr *parser.SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 5, serr.Pos.Offset)
}

func TestCompile_NonConvergenceIsNotFatal(t *testing.T) {
	opts := DefaultOptions()
	opts.PassLimit = 1

	result, err := CompileWithOptions("(a OR b) AND (c OR d)", opts)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Converged)
	assert.NotNil(t, result.AST)
	assert.NotNil(t, result.Summary)
}

func TestCompile_NodeBudgetIsFatal(t *testing.T) {
	opts := DefaultOptions()
	opts.NodeLimit = 3

	result, err := CompileWithOptions("(a OR b) AND (c OR d)", opts)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, rewrite.ErrResourceExceeded))
}

func TestCompile_CustomDelimiters(t *testing.T) {
	opts := DefaultOptions()
	opts.LiteralOpen = "[["
	opts.LiteralClose = "]]"
	opts.CommentOpen = "/*"
	opts.CommentClose = "*/"

	result, err := CompileWithOptions("[[Keep]] AND b /* note */", opts)
	require.NoError(t, err)
	assert.Equal(t, "AND(TERM([[Keep]]), TERM(b))", result.AST.String())
}

func TestCompile_CaseFoldDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.CaseFold = false

	result, err := CompileWithOptions("Apple OR Pear", opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "Pear"}, result.Summary.Standalone)
}

func TestParse_ReturnsRawTree(t *testing.T) {
	// Parse keeps the binary left-leaning chain; Compile flattens it.
	raw, err := Parse("a AND b AND c")
	require.NoError(t, err)
	assert.Equal(t, "AND(AND(TERM(a), TERM(b)), TERM(c))", raw.String())

	compiled, err := Compile("a AND b AND c")
	require.NoError(t, err)
	assert.Equal(t, "AND(TERM(a), TERM(b), TERM(c))", compiled.AST.String())
}

func TestCompile_IndependentInvocations(t *testing.T) {
	// Pipelines share no state; concurrent compiles must not interfere.
	const workers = 8
	done := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			_, err := Compile("(a OR b) AND (c OR d) AND NOT e")
			done <- err
		}()
	}
	for i := 0; i < workers; i++ {
		assert.NoError(t, <-done)
	}
}
