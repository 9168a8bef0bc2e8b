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

// Operator describes a binary connective of the formula language.
type Operator struct {
	Token      fol.TokType
	Prec       int  // binding strength, see ast.PrecIff … ast.PrecAnd
	RightAssoc bool // groups to the right
	build      func(l, r ast.Expression) ast.Expression
}

// Grammar holds everything needed to read statements: the compiled lexer and
// the operator table. A Grammar is immutable after NewGrammar returns and may
// be shared between goroutines.
type Grammar struct {
	lexer     *scanner.LMAdapter
	operators map[fol.TokType]Operator
}

// NewGrammar compiles the lexer and sets up the operator table.
func NewGrammar() (*Grammar, error) {
	tracer().Infof("Creating lexer")
	lexer, err := Lexer()
	if err != nil {
		return nil, err
	}
	g := &Grammar{
		lexer:     lexer,
		operators: make(map[fol.TokType]Operator),
	}
	g.op(IFF, ast.PrecIff, true, func(l, r ast.Expression) ast.Expression {
		return &ast.Iff{Left: l, Right: r}
	})
	g.op(IMPLIES, ast.PrecImplies, true, func(l, r ast.Expression) ast.Expression {
		return &ast.Implies{Left: l, Right: r}
	})
	g.op(OR, ast.PrecOr, false, func(l, r ast.Expression) ast.Expression {
		return &ast.Or{Left: l, Right: r}
	})
	g.op(AND, ast.PrecAnd, false, func(l, r ast.Expression) ast.Expression {
		return &ast.And{Left: l, Right: r}
	})
	return g, nil
}

func (g *Grammar) op(t fol.TokType, prec int, right bool, build func(l, r ast.Expression) ast.Expression) {
	g.operators[t] = Operator{Token: t, Prec: prec, RightAssoc: right, build: build}
}

// Operator returns the table entry for a binary connective token.
func (g *Grammar) Operator(t fol.TokType) (Operator, bool) {
	op, ok := g.operators[t]
	return op, ok
}

// Tokenize splits a statement into tokens. The last token is always of type
// scanner.EOF. If a character matches no token pattern, a *fol.LexicalError
// is returned.
func (g *Grammar) Tokenize(source string) ([]fol.Token, error) {
	scan, err := g.lexer.Scanner(source)
	if err != nil {
		return nil, err
	}
	scan.SetErrorHandler(func(e error) {
		tracer().Debugf("lexical error: %v", e)
	})
	tokens := make([]fol.Token, 0, 16)
	for {
		token := scan.NextToken()
		switch token.TokType() {
		case scanner.Error:
			return nil, &fol.LexicalError{Offset: token.Span().From(), Text: token.Lexeme()}
		case scanner.EOF:
			return append(tokens, token), nil
		}
		tokens = append(tokens, token)
	}
}

// Parse tokenizes and parses a statement. Errors are of type *fol.LexicalError
// or *fol.SyntaxError.
func (g *Grammar) Parse(source string) (ast.Expression, error) {
	tokens, err := g.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return g.ParseTokens(tokens)
}
