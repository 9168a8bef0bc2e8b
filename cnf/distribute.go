package cnf

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "github.com/fno2010/first-order-cal/ast"

// DistributeCNF distributes disjunctions over conjunctions:
//
//    A Or (B And C)  ↦  (A Or B) And (A Or C)
//    (A And B) Or C  ↦  (A Or C) And (B Or C)
//
// The input has to be free of quantifiers and implications, with negations
// in front of predicates only. The result is a conjunction of clauses.
// Operands which end up in more than one clause are cloned.
func DistributeCNF(e ast.Expression) ast.Expression {
	switch n := e.(type) {
	case *ast.And:
		n.Left = DistributeCNF(n.Left)
		n.Right = DistributeCNF(n.Right)
	case *ast.Or:
		return distributeOr(DistributeCNF(n.Left), DistributeCNF(n.Right))
	}
	return e
}

// distributeOr builds the CNF of l Or r from l and r, both already in CNF.
func distributeOr(l, r ast.Expression) ast.Expression {
	if and, ok := l.(*ast.And); ok {
		tracer().Debugf("distribute: (%s) Or %s", and, r)
		return &ast.And{
			Left:  distributeOr(and.Left, r),
			Right: distributeOr(and.Right, ast.Clone(r)),
		}
	}
	if and, ok := r.(*ast.And); ok {
		tracer().Debugf("distribute: %s Or (%s)", l, and)
		return &ast.And{
			Left:  distributeOr(l, and.Left),
			Right: distributeOr(ast.Clone(l), and.Right),
		}
	}
	return &ast.Or{Left: l, Right: r}
}
