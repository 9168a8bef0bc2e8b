package parser

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	fol "github.com/fno2010/first-order-cal"
	"github.com/fno2010/first-order-cal/ast"
	"github.com/fno2010/first-order-cal/scanner"
)

// ParseTokens builds a formula tree from a token sequence as produced by
// Tokenize. A missing trailing EOF token is assumed after the last token.
//
// Binary connectives are handled by precedence climbing over the operator
// table of g; all other productions are parsed by recursive descent.
func (g *Grammar) ParseTokens(tokens []fol.Token) (ast.Expression, error) {
	p := &parser{g: g, tokens: tokens}
	if n := len(tokens); n == 0 || tokens[n-1].TokType() != scanner.EOF {
		var end uint64
		if n > 0 {
			end = tokens[n-1].Span().To()
		}
		p.tokens = append(tokens[:n:n], scanner.MakeDefaultToken(scanner.EOF, "", fol.Span{end, end}))
	}
	e, err := p.expression(ast.PrecIff)
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.TokType() != scanner.EOF {
		return nil, p.unexpected(t, "a connective")
	}
	tracer().Debugf("parsed %s", e)
	return e, nil
}

// parser holds the state of a single parse. It is not shared.
type parser struct {
	g      *Grammar
	tokens []fol.Token // terminated by EOF
	pos    int
}

func (p *parser) peek() fol.Token {
	return p.tokens[p.pos]
}

func (p *parser) advance() fol.Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(typ fol.TokType) (fol.Token, error) {
	t := p.peek()
	if t.TokType() != typ {
		return t, p.unexpected(t, TokenName(typ))
	}
	return p.advance(), nil
}

func (p *parser) unexpected(t fol.Token, expected string) error {
	err := &fol.SyntaxError{
		Offset:   t.Span().From(),
		Found:    t.Lexeme(),
		Expected: expected,
	}
	tracer().Debugf("%v", err)
	return err
}

// expression parses operands joined by connectives binding at least as
// strong as minPrec.
//
//    exp ::= unary { op exp }
//
func (p *parser) expression(minPrec int) (ast.Expression, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.g.Operator(p.peek().TokType())
		if !ok || op.Prec < minPrec {
			return left, nil
		}
		p.advance()
		next := op.Prec + 1
		if op.RightAssoc {
			next = op.Prec
		}
		right, err := p.expression(next)
		if err != nil {
			return nil, err
		}
		left = op.build(left, right)
	}
}

// unary ::= Not unary | primary
func (p *parser) unary() (ast.Expression, error) {
	if p.peek().TokType() == NOT {
		p.advance()
		inner, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Not{Inner: inner}, nil
	}
	return p.primary()
}

// primary ::= Exist '[' VAR ',' exp ']'
//           | Any '[' VAR ',' exp ']'
//           | '(' exp ')'
//           | PRED '[' var_list ']'
func (p *parser) primary() (ast.Expression, error) {
	t := p.peek()
	switch t.TokType() {
	case EXIST, ANY:
		p.advance()
		v, body, err := p.quantified()
		if err != nil {
			return nil, err
		}
		if t.TokType() == EXIST {
			return &ast.Exists{Var: v, Body: body}, nil
		}
		return &ast.ForAll{Var: v, Body: body}, nil
	case LPAREN:
		p.advance()
		e, err := p.expression(ast.PrecIff)
		if err != nil {
			return nil, err
		}
		if _, err = p.expect(RPAREN); err != nil {
			return nil, err
		}
		return e, nil
	case PRED:
		p.advance()
		args, err := p.varList()
		if err != nil {
			return nil, err
		}
		return &ast.Predicate{Name: t.Lexeme(), Args: args}, nil
	}
	return nil, p.unexpected(t, "a formula")
}

// quantified parses the bracketed part of a quantifier: '[' VAR ',' exp ']'
func (p *parser) quantified() (string, ast.Expression, error) {
	if _, err := p.expect(LBRACKET); err != nil {
		return "", nil, err
	}
	v, err := p.expect(VAR)
	if err != nil {
		return "", nil, err
	}
	if _, err = p.expect(COMMA); err != nil {
		return "", nil, err
	}
	body, err := p.expression(ast.PrecIff)
	if err != nil {
		return "", nil, err
	}
	if _, err = p.expect(RBRACKET); err != nil {
		return "", nil, err
	}
	return v.Lexeme(), body, nil
}

// varList parses '[' VAR { ',' VAR } ']'
func (p *parser) varList() ([]ast.Term, error) {
	if _, err := p.expect(LBRACKET); err != nil {
		return nil, err
	}
	var args []ast.Term
	for {
		v, err := p.expect(VAR)
		if err != nil {
			return nil, err
		}
		args = append(args, ast.Variable(v.Lexeme()))
		if p.peek().TokType() != COMMA {
			break
		}
		p.advance()
	}
	if _, err := p.expect(RBRACKET); err != nil {
		return nil, err
	}
	return args, nil
}
