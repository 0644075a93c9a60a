// Package parser turns boolean query text into an abstract syntax tree.
//
// Grammar, tightest binding first:
//
//	NOT expr               unary, right-associative
//	expr NEAR/<d>[f] expr  proximity, collapsed to AND
//	expr AND expr          left-associative
//	expr OR expr           left-associative
//
// Atoms are bare words, quoted phrases, {literals}, and parenthesized
// sub-expressions. Keywords are case-insensitive. Binary operators fold
// into strictly binary left-leaning chains; the rewrite engine flattens
// them afterwards. Annotation blocks (<<<...>>>) are stripped before
// tokenization, so error positions refer to the stripped text.
package parser

import (
	"strconv"
	"strings"

	"github.com/teranos/sift/query/ast"
)

// Parse compiles query text into an AST using the default options
func Parse(input string) (*ast.Node, error) {
	return ParseWithOptions(input, DefaultOptions())
}

// ParseWithOptions compiles query text into an AST. On malformed input it
// returns a *SyntaxError carrying the failure position; no partial tree
// is returned on that path.
func ParseWithOptions(input string, opts Options) (*ast.Node, error) {
	stripped := StripComments(input, opts.CommentOpen, opts.CommentClose)

	lex := newLexer(stripped, opts)
	tokens, lexErr := lex.tokenize()
	if lexErr != nil {
		return nil, lexErr
	}

	p := &parser{tokens: tokens, opts: opts}
	if p.peek().kind == tokenEOF {
		return nil, NewSyntaxError("empty query").
			WithPosition(p.peek().pos).
			WithExpected("a term or '('")
	}

	root, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if trailing := p.peek(); trailing.kind != tokenEOF {
		serr := NewSyntaxError("unexpected trailing input").
			WithPosition(trailing.pos).
			WithToken(trailing.raw).
			WithExpected("end of query")
		if trailing.kind == tokenRParen {
			serr.Message = "unbalanced parentheses"
			serr.WithSuggestion("remove the extra ')' or add a matching '('")
		}
		return nil, serr
	}

	return root, nil
}

type parser struct {
	tokens []token
	pos    int
	opts   Options
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}
	return tok
}

// parseExpression parses at the loosest precedence level
func (p *parser) parseExpression() (*ast.Node, error) {
	return p.parseOr()
}

func (p *parser) parseOr() (*ast.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokenOr {
		op := p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, p.missingOperand(op, err)
		}
		left = ast.Or(left, right)
	}
	return left, nil
}

func (p *parser) parseAnd() (*ast.Node, error) {
	left, err := p.parseNear()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokenAnd {
		op := p.next()
		right, err := p.parseNear()
		if err != nil {
			return nil, p.missingOperand(op, err)
		}
		left = ast.And(left, right)
	}
	return left, nil
}

// parseNear handles the proximity operator. The distance operand is
// discarded; NEAR groups exactly like AND.
func (p *parser) parseNear() (*ast.Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokenNear {
		op := p.next()
		right, err := p.parseNot()
		if err != nil {
			return nil, p.missingOperand(op, err)
		}
		left = ast.And(left, right)
	}
	return left, nil
}

func (p *parser) parseNot() (*ast.Node, error) {
	if p.peek().kind != tokenNot {
		return p.parseAtom()
	}
	op := p.next()
	child, err := p.parseNot()
	if err != nil {
		return nil, p.missingOperand(op, err)
	}
	return ast.Not(child), nil
}

func (p *parser) parseAtom() (*ast.Node, error) {
	tok := p.peek()
	switch tok.kind {
	case tokenWord, tokenPhrase:
		p.next()
		value := tok.value
		if p.opts.CaseFold {
			value = strings.ToLower(value)
		}
		return ast.Term(value, false), nil

	case tokenLiteral:
		p.next()
		// Literals keep original case regardless of CaseFold
		return ast.Term(tok.value, true), nil

	case tokenLParen:
		open := p.next()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if closing := p.peek(); closing.kind != tokenRParen {
			return nil, NewSyntaxError("missing closing parenthesis").
				WithPosition(closing.pos).
				WithToken(closing.raw).
				WithExpected("')'").
				WithSuggestion("close the group opened at line " + strconv.Itoa(open.pos.Line) + ", column " + strconv.Itoa(open.pos.Character+1))
		}
		p.next()
		return inner, nil

	case tokenEOF:
		return nil, NewSyntaxError("unexpected end of query").
			WithPosition(tok.pos).
			WithExpected("a term or '('")

	default:
		return nil, NewSyntaxError("unexpected token").
			WithPosition(tok.pos).
			WithToken(tok.raw).
			WithExpected("a term or '('")
	}
}

// missingOperand rewords an atom-level failure that directly follows an
// operator, so "a AND" reads as a dangling operator rather than a bare
// end-of-query error.
func (p *parser) missingOperand(op token, err error) error {
	serr, ok := err.(*SyntaxError)
	if !ok {
		return err
	}
	if serr.Message == "unexpected end of query" || serr.Message == "unexpected token" {
		serr.Message = "operator " + strings.ToUpper(op.value) + " is missing an operand"
	}
	return serr
}
