package cnf

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "github.com/fno2010/first-order-cal/ast"

// Predicates for the post-conditions of the passes.

// IsImplicationFree is true if e contains neither '=>' nor '<=>'.
func IsImplicationFree(e ast.Expression) bool {
	return !ast.Contains(e, func(n ast.Expression) bool {
		switch n.(type) {
		case *ast.Implies, *ast.Iff:
			return true
		}
		return false
	})
}

// IsNegationNormal is true if every negation in e applies to a predicate.
func IsNegationNormal(e ast.Expression) bool {
	return !ast.Contains(e, func(n ast.Expression) bool {
		if not, ok := n.(*ast.Not); ok {
			_, isPred := not.Inner.(*ast.Predicate)
			return !isPred
		}
		return false
	})
}

// IsStandardized is true if no two quantifiers of e bind the same name.
func IsStandardized(e ast.Expression) bool {
	seen := make(map[string]bool)
	return !ast.Contains(e, func(n ast.Expression) bool {
		var v string
		switch q := n.(type) {
		case *ast.Exists:
			v = q.Var
		case *ast.ForAll:
			v = q.Var
		default:
			return false
		}
		if seen[v] {
			return true
		}
		seen[v] = true
		return false
	})
}

// IsSkolemized is true if e has no existential quantifier.
func IsSkolemized(e ast.Expression) bool {
	return !ast.Contains(e, func(n ast.Expression) bool {
		_, ok := n.(*ast.Exists)
		return ok
	})
}

// IsQuantifierFree is true if e has no quantifier at all.
func IsQuantifierFree(e ast.Expression) bool {
	return !ast.Contains(e, func(n ast.Expression) bool {
		switch n.(type) {
		case *ast.Exists, *ast.ForAll:
			return true
		}
		return false
	})
}

// IsLiteral is true for a predicate or a negated predicate.
func IsLiteral(e ast.Expression) bool {
	switch n := e.(type) {
	case *ast.Predicate:
		return true
	case *ast.Not:
		_, ok := n.Inner.(*ast.Predicate)
		return ok
	}
	return false
}

// IsCNF is true if e is a conjunction of disjunctions of literals.
func IsCNF(e ast.Expression) bool {
	if and, ok := e.(*ast.And); ok {
		return IsCNF(and.Left) && IsCNF(and.Right)
	}
	return isClause(e)
}

func isClause(e ast.Expression) bool {
	if or, ok := e.(*ast.Or); ok {
		return isClause(or.Left) && isClause(or.Right)
	}
	return IsLiteral(e)
}
