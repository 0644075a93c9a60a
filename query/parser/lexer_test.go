package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, input string) []token {
	t.Helper()
	tokens, err := newLexer(input, DefaultOptions()).tokenize()
	require.Nil(t, err)
	return tokens
}

func kinds(tokens []token) []tokenKind {
	out := make([]tokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.kind
	}
	return out
}

func TestTokenize_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []tokenKind
	}{
		{
			name:  "words and keywords",
			input: "apple AND banana OR NOT cherry",
			want:  []tokenKind{tokenWord, tokenAnd, tokenWord, tokenOr, tokenNot, tokenWord, tokenEOF},
		},
		{
			name:  "keywords are case-insensitive",
			input: "a and b or not c",
			want:  []tokenKind{tokenWord, tokenAnd, tokenWord, tokenOr, tokenNot, tokenWord, tokenEOF},
		},
		{
			name:  "near operator",
			input: "a NEAR/10 b near/3f c",
			want:  []tokenKind{tokenWord, tokenNear, tokenWord, tokenNear, tokenWord, tokenEOF},
		},
		{
			name:  "near without distance is a plain word",
			input: "NEAR a",
			want:  []tokenKind{tokenWord, tokenWord, tokenEOF},
		},
		{
			name:  "parens",
			input: "(a)",
			want:  []tokenKind{tokenLParen, tokenWord, tokenRParen, tokenEOF},
		},
		{
			name:  "phrase and literal",
			input: `"some phrase" {Exact}`,
			want:  []tokenKind{tokenPhrase, tokenLiteral, tokenEOF},
		},
		{
			name:  "whitespace only",
			input: " \t\r\n ",
			want:  []tokenKind{tokenEOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kinds(lexAll(t, tt.input)))
		})
	}
}

func TestTokenize_Values(t *testing.T) {
	t.Run("phrase strips quotes and resolves escapes", func(t *testing.T) {
		tokens := lexAll(t, `"say \"hi\" now"`)
		require.Equal(t, tokenPhrase, tokens[0].kind)
		assert.Equal(t, `say "hi" now`, tokens[0].value)
		assert.Equal(t, `"say \"hi\" now"`, tokens[0].raw)
	})

	t.Run("literal keeps delimiters and case", func(t *testing.T) {
		tokens := lexAll(t, "{MiXeD Case}")
		require.Equal(t, tokenLiteral, tokens[0].kind)
		assert.Equal(t, "{MiXeD Case}", tokens[0].value)
	})

	t.Run("word may contain braces mid-token", func(t *testing.T) {
		tokens := lexAll(t, "foo{bar}")
		require.Equal(t, tokenWord, tokens[0].kind)
		assert.Equal(t, "foo{bar}", tokens[0].value)
	})

	t.Run("word stops at paren and quote", func(t *testing.T) {
		tokens := lexAll(t, `ab(cd "ef gh"`)
		assert.Equal(t,
			[]tokenKind{tokenWord, tokenLParen, tokenWord, tokenPhrase, tokenEOF},
			kinds(tokens),
		)
		assert.Equal(t, "ab", tokens[0].value)
		assert.Equal(t, "cd", tokens[2].value)
	})
}

func TestTokenize_Positions(t *testing.T) {
	tokens := lexAll(t, "ab\n cd")

	require.Len(t, tokens, 3)
	assert.Equal(t, Position{Line: 1, Character: 0, Offset: 0}, tokens[0].pos)
	assert.Equal(t, Position{Line: 2, Character: 1, Offset: 4}, tokens[1].pos)
	assert.Equal(t, Position{Line: 2, Character: 3, Offset: 6}, tokens[2].pos)
}

func TestTokenize_UnterminatedPhrase(t *testing.T) {
	_, err := newLexer(`a "unclosed`, DefaultOptions()).tokenize()
	require.NotNil(t, err)
	assert.Equal(t, "unterminated quoted phrase", err.Message)
	assert.Equal(t, 2, err.Pos.Offset)
}

func TestTokenize_UnterminatedLiteral(t *testing.T) {
	_, err := newLexer("{open", DefaultOptions()).tokenize()
	require.NotNil(t, err)
	assert.Equal(t, "unterminated literal", err.Message)
	assert.Equal(t, 0, err.Pos.Offset)
}

func TestTokenize_CustomLiteralDelimiters(t *testing.T) {
	opts := DefaultOptions()
	opts.LiteralOpen = "[["
	opts.LiteralClose = "]]"

	tokens, err := newLexer("[[Keep Case]] and b", opts).tokenize()
	require.Nil(t, err)
	require.Equal(t, tokenLiteral, tokens[0].kind)
	assert.Equal(t, "[[Keep Case]]", tokens[0].value)
	assert.Equal(t, tokenAnd, tokens[1].kind)
}
