package cnf

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "github.com/fno2010/first-order-cal/ast"

// EliminateImplication rewrites implications and equivalences in terms of
// Not, And and Or:
//
//    A => B   ↦  Not A Or B
//    A <=> B  ↦  (A => B) And (B => A)  ↦  (Not A Or B) And (Not B Or A)
//
// The operands of an equivalence occur twice in the result; the second
// occurrence is a clone.
func EliminateImplication(e ast.Expression) ast.Expression {
	switch n := e.(type) {
	case *ast.Implies:
		return EliminateImplication(&ast.Or{
			Left:  &ast.Not{Inner: n.Left},
			Right: n.Right,
		})
	case *ast.Iff:
		return EliminateImplication(&ast.And{
			Left:  &ast.Implies{Left: n.Left, Right: n.Right},
			Right: &ast.Implies{Left: ast.Clone(n.Right), Right: ast.Clone(n.Left)},
		})
	case *ast.Not:
		n.Inner = EliminateImplication(n.Inner)
	case *ast.And:
		n.Left = EliminateImplication(n.Left)
		n.Right = EliminateImplication(n.Right)
	case *ast.Or:
		n.Left = EliminateImplication(n.Left)
		n.Right = EliminateImplication(n.Right)
	case *ast.Exists:
		n.Body = EliminateImplication(n.Body)
	case *ast.ForAll:
		n.Body = EliminateImplication(n.Body)
	}
	return e
}
