package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
)

// Binding strength of connectives, lowest to highest. The parser's operator
// table uses the same levels, therefore printed formulas read back into the
// same tree.
const (
	PrecIff     = 1
	PrecImplies = 2
	PrecOr      = 3
	PrecAnd     = 4
	PrecNot     = 5
	PrecAtom    = 6 // predicates, quantifiers
)

// Spelling of connectives and quantifiers in the surface syntax.
const (
	KeywordExists = "Exist"
	KeywordForAll = "Any"
	KeywordAnd    = "And"
	KeywordOr     = "Or"
	KeywordNot    = "Not"
	SymbolImplies = "=>"
	SymbolIff     = "<=>"
)

// Precedence returns the binding strength of the top-level node of e.
func Precedence(e Expression) int {
	switch e.(type) {
	case *Iff:
		return PrecIff
	case *Implies:
		return PrecImplies
	case *Or:
		return PrecOr
	case *And:
		return PrecAnd
	case *Not:
		return PrecNot
	}
	return PrecAtom
}

// RightAssociative is true for the connectives which group to the right,
// i.e. '=>' and '<=>'.
func RightAssociative(prec int) bool {
	return prec == PrecIff || prec == PrecImplies
}

// Render prints e in surface syntax. Parentheses are inserted only where the
// binding strength or associativity of connectives requires them.
func Render(e Expression) string {
	var b strings.Builder
	render(&b, e)
	return b.String()
}

func render(b *strings.Builder, e Expression) {
	switch n := e.(type) {
	case *Predicate:
		b.WriteString(n.Name)
		b.WriteByte('[')
		for i, arg := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.String())
		}
		b.WriteByte(']')
	case *Not:
		b.WriteString(KeywordNot)
		b.WriteByte(' ')
		renderOperand(b, n.Inner, Precedence(n.Inner) < PrecNot)
	case *And:
		renderBinary(b, n.Left, KeywordAnd, n.Right, PrecAnd)
	case *Or:
		renderBinary(b, n.Left, KeywordOr, n.Right, PrecOr)
	case *Implies:
		renderBinary(b, n.Left, SymbolImplies, n.Right, PrecImplies)
	case *Iff:
		renderBinary(b, n.Left, SymbolIff, n.Right, PrecIff)
	case *Exists:
		renderQuantifier(b, KeywordExists, n.Var, n.Body)
	case *ForAll:
		renderQuantifier(b, KeywordForAll, n.Var, n.Body)
	case nil:
		b.WriteString("<nil>")
	}
}

func renderBinary(b *strings.Builder, left Expression, op string, right Expression, prec int) {
	lp, rp := Precedence(left), Precedence(right)
	renderOperand(b, left, lp < prec || (lp == prec && RightAssociative(prec)))
	b.WriteByte(' ')
	b.WriteString(op)
	b.WriteByte(' ')
	renderOperand(b, right, rp < prec || (rp == prec && !RightAssociative(prec)))
}

func renderQuantifier(b *strings.Builder, keyword, v string, body Expression) {
	b.WriteString(keyword)
	b.WriteByte('[')
	b.WriteString(v)
	b.WriteString(", ")
	render(b, body)
	b.WriteByte(']')
}

func renderOperand(b *strings.Builder, e Expression, parens bool) {
	if parens {
		b.WriteByte('(')
		render(b, e)
		b.WriteByte(')')
		return
	}
	render(b, e)
}
