package cnf

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "github.com/fno2010/first-order-cal/ast"

// MoveNotInward pushes negations down to the predicates:
//
//    Not Exist[v, E]  ↦  Any[v, Not E]
//    Not Any[v, E]    ↦  Exist[v, Not E]
//    Not (A And B)    ↦  Not A Or Not B
//    Not (A Or B)     ↦  Not A And Not B
//    Not Not E        ↦  E
//
// Afterwards every Not has a predicate as its operand.
func MoveNotInward(e ast.Expression) ast.Expression {
	switch n := e.(type) {
	case *ast.Not:
		return negate(n)
	case *ast.And:
		n.Left = MoveNotInward(n.Left)
		n.Right = MoveNotInward(n.Right)
	case *ast.Or:
		n.Left = MoveNotInward(n.Left)
		n.Right = MoveNotInward(n.Right)
	case *ast.Exists:
		n.Body = MoveNotInward(n.Body)
	case *ast.ForAll:
		n.Body = MoveNotInward(n.Body)
	}
	return e
}

// negate applies one law to a negation and continues inward with the result.
func negate(n *ast.Not) ast.Expression {
	switch inner := n.Inner.(type) {
	case *ast.Exists:
		return MoveNotInward(&ast.ForAll{Var: inner.Var, Body: &ast.Not{Inner: inner.Body}})
	case *ast.ForAll:
		return MoveNotInward(&ast.Exists{Var: inner.Var, Body: &ast.Not{Inner: inner.Body}})
	case *ast.And:
		return MoveNotInward(&ast.Or{
			Left:  &ast.Not{Inner: inner.Left},
			Right: &ast.Not{Inner: inner.Right},
		})
	case *ast.Or:
		return MoveNotInward(&ast.And{
			Left:  &ast.Not{Inner: inner.Left},
			Right: &ast.Not{Inner: inner.Right},
		})
	case *ast.Not:
		return MoveNotInward(inner.Inner)
	case *ast.Predicate:
		return n
	}
	tracer().Errorf("negation of %s: implications have to be eliminated first", ast.Kind(n.Inner))
	n.Inner = MoveNotInward(n.Inner)
	return n
}
