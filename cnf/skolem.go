package cnf

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/fno2010/first-order-cal/ast"
)

// SkolemName returns the name of the skolem function replacing existential
// variable v, e.g. _Y for y.
func SkolemName(v string) string {
	return "_" + strings.ToUpper(v)
}

// Skolemize removes existential quantifiers. Every occurrence of an
// existential variable is replaced by a skolem term: a function of the
// universal variables in whose scope the quantifier appears, outermost first.
//
//	Any[x, Exist[y, P[x, y]]]  ↦  Any[x, P[x, _Y(x)]]
//	Exist[x, P[x]]             ↦  P[_X]
//
// Universal quantifiers are left in place. Names of skolem functions are
// unique within e: if two variables map to the same name, as xy and xY do,
// the later one gets a numeric suffix, e.g. _XY1.
func Skolemize(e ast.Expression) ast.Expression {
	sk := &skolemizer{
		scope:  arraylist.New(),
		issued: treeset.NewWithStringComparator(),
	}
	return sk.visit(e, make(map[string]ast.Term))
}

type skolemizer struct {
	scope  *arraylist.List // universal variables of enclosing quantifiers, outermost first
	issued *treeset.Set    // skolem names handed out so far
}

func (sk *skolemizer) scopeVars() []string {
	vars := make([]string, 0, sk.scope.Size())
	for _, v := range sk.scope.Values() {
		vars = append(vars, v.(string))
	}
	return vars
}

// visit substitutes in place and returns the root of the rewritten sub-tree.
func (sk *skolemizer) visit(e ast.Expression, subst map[string]ast.Term) ast.Expression {
	switch n := e.(type) {
	case *ast.Predicate:
		for i, arg := range n.Args {
			if name, isvar := ast.IsVariable(arg); isvar {
				if t, ok := subst[name]; ok {
					n.Args[i] = t.CloneTerm()
				}
			}
		}
	case *ast.Not:
		n.Inner = sk.visit(n.Inner, subst)
	case *ast.And:
		n.Left = sk.visit(n.Left, subst)
		n.Right = sk.visit(n.Right, subst)
	case *ast.Or:
		n.Left = sk.visit(n.Left, subst)
		n.Right = sk.visit(n.Right, subst)
	case *ast.Implies:
		n.Left = sk.visit(n.Left, subst)
		n.Right = sk.visit(n.Right, subst)
	case *ast.Iff:
		n.Left = sk.visit(n.Left, subst)
		n.Right = sk.visit(n.Right, subst)
	case *ast.ForAll:
		outer, shadows := subst[n.Var]
		delete(subst, n.Var)
		sk.scope.Add(n.Var)
		n.Body = sk.visit(n.Body, subst)
		sk.scope.Remove(sk.scope.Size() - 1)
		if shadows {
			subst[n.Var] = outer
		}
	case *ast.Exists:
		name := freshLabel(SkolemName(n.Var), sk.issued, NumericSuffixes)
		sk.issued.Add(name)
		t := &ast.SkolemApplication{Function: name, Args: sk.scopeVars()}
		tracer().Debugf("skolemize: %s ↦ %s", n.Var, t)
		outer, shadows := subst[n.Var]
		subst[n.Var] = t
		body := sk.visit(n.Body, subst)
		if shadows {
			subst[n.Var] = outer
		} else {
			delete(subst, n.Var)
		}
		return body
	}
	return e
}
