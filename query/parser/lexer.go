package parser

import (
	"regexp"
	"strings"
)

// tokenKind classifies lexer output
type tokenKind int

const (
	tokenWord    tokenKind = iota // bare word
	tokenPhrase                   // quoted phrase, quotes stripped
	tokenLiteral                  // exact-match literal, delimiters kept
	tokenAnd
	tokenOr
	tokenNot
	tokenNear // NEAR/<digits>[f], collapsed to AND by the parser
	tokenLParen
	tokenRParen
	tokenEOF
)

func (k tokenKind) String() string {
	switch k {
	case tokenWord:
		return "word"
	case tokenPhrase:
		return "phrase"
	case tokenLiteral:
		return "literal"
	case tokenAnd:
		return "AND"
	case tokenOr:
		return "OR"
	case tokenNot:
		return "NOT"
	case tokenNear:
		return "NEAR"
	case tokenLParen:
		return "("
	case tokenRParen:
		return ")"
	case tokenEOF:
		return "end of query"
	}
	return "unknown"
}

// token is a single lexeme with its start position
type token struct {
	kind  tokenKind
	value string // decoded value (escapes resolved, quotes stripped)
	raw   string // original source text
	pos   Position
}

// nearPattern matches the proximity operator, e.g. NEAR/10 or near/3f
var nearPattern = regexp.MustCompile(`(?i)^NEAR/[0-9]+F?$`)

// lexer scans query text into tokens. Word characters are everything
// except whitespace, parentheses, and double quotes; literal delimiters
// win over word scanning only at a token's first character, matching
// the alternative order of the grammar.
type lexer struct {
	input   string
	opts    Options
	tracker *positionTracker
}

func newLexer(input string, opts Options) *lexer {
	return &lexer{
		input:   input,
		opts:    opts,
		tracker: newPositionTracker(),
	}
}

// tokenize scans the entire input, returning tokens terminated by EOF
func (l *lexer) tokenize() ([]token, *SyntaxError) {
	var tokens []token

	for {
		l.skipWhitespace()
		rest := l.rest()
		if rest == "" {
			break
		}
		start := l.tracker.current()

		switch {
		case rest[0] == '(':
			tokens = append(tokens, token{kind: tokenLParen, value: "(", raw: "(", pos: start})
			l.tracker.advance("(")

		case rest[0] == ')':
			tokens = append(tokens, token{kind: tokenRParen, value: ")", raw: ")", pos: start})
			l.tracker.advance(")")

		case strings.HasPrefix(rest, l.opts.LiteralOpen):
			tok, err := l.scanLiteral(start)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case rest[0] == '"':
			tok, err := l.scanPhrase(start)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		default:
			tokens = append(tokens, l.scanWord(start))
		}
	}

	tokens = append(tokens, token{kind: tokenEOF, pos: l.tracker.current()})
	return tokens, nil
}

func (l *lexer) rest() string {
	return l.input[l.tracker.offset:]
}

func (l *lexer) skipWhitespace() {
	rest := l.rest()
	i := 0
	for i < len(rest) {
		switch rest[i] {
		case ' ', '\t', '\r', '\n':
			i++
		default:
			l.tracker.advance(rest[:i])
			return
		}
	}
	l.tracker.advance(rest)
}

// scanLiteral consumes an exact-match literal including its delimiters
func (l *lexer) scanLiteral(start Position) (token, *SyntaxError) {
	rest := l.rest()
	inner := rest[len(l.opts.LiteralOpen):]
	end := strings.Index(inner, l.opts.LiteralClose)
	if end < 0 {
		return token{}, NewSyntaxError("unterminated literal").
			WithPosition(start).
			WithToken(l.opts.LiteralOpen).
			WithExpected("closing " + l.opts.LiteralClose).
			WithSuggestion("close the literal with " + l.opts.LiteralClose)
	}

	raw := rest[:len(l.opts.LiteralOpen)+end+len(l.opts.LiteralClose)]
	l.tracker.advance(raw)
	// Value keeps the delimiters and the original case
	return token{kind: tokenLiteral, value: raw, raw: raw, pos: start}, nil
}

// scanPhrase consumes a quoted phrase, resolving backslash escapes
func (l *lexer) scanPhrase(start Position) (token, *SyntaxError) {
	rest := l.rest()
	var value strings.Builder
	i := 1 // skip opening quote
	for i < len(rest) {
		switch rest[i] {
		case '\\':
			if i+1 < len(rest) {
				value.WriteByte(rest[i+1])
				i += 2
				continue
			}
			i++
		case '"':
			raw := rest[:i+1]
			l.tracker.advance(raw)
			return token{kind: tokenPhrase, value: value.String(), raw: raw, pos: start}, nil
		default:
			value.WriteByte(rest[i])
			i++
		}
	}

	return token{}, NewSyntaxError("unterminated quoted phrase").
		WithPosition(start).
		WithToken(`"`).
		WithExpected(`closing "`).
		WithSuggestion(`close the phrase with "`)
}

// scanWord consumes a maximal run of word characters and classifies
// operator keywords case-insensitively
func (l *lexer) scanWord(start Position) token {
	rest := l.rest()
	i := 0
	for i < len(rest) {
		c := rest[i]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '(' || c == ')' || c == '"' {
			break
		}
		i++
	}
	raw := rest[:i]
	l.tracker.advance(raw)

	switch {
	case strings.EqualFold(raw, "AND"):
		return token{kind: tokenAnd, value: raw, raw: raw, pos: start}
	case strings.EqualFold(raw, "OR"):
		return token{kind: tokenOr, value: raw, raw: raw, pos: start}
	case strings.EqualFold(raw, "NOT"):
		return token{kind: tokenNot, value: raw, raw: raw, pos: start}
	case nearPattern.MatchString(raw):
		return token{kind: tokenNear, value: raw, raw: raw, pos: start}
	}
	return token{kind: tokenWord, value: raw, raw: raw, pos: start}
}
