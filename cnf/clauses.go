package cnf

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/fno2010/first-order-cal/ast"
)

// Clause is a disjunction of literals.
type Clause []ast.Expression

func (c Clause) String() string {
	lits := make([]string, len(c))
	for i, l := range c {
		lits[i] = ast.Render(l)
	}
	return strings.Join(lits, " Or ")
}

// Clauses flattens a tree in CNF into its clauses, left to right. Literals
// are the nodes of the tree, not copies. Returns nil if e is not in CNF.
func Clauses(e ast.Expression) []Clause {
	if !IsCNF(e) {
		return nil
	}
	var clauses []Clause
	var conjuncts func(ast.Expression)
	conjuncts = func(e ast.Expression) {
		if and, ok := e.(*ast.And); ok {
			conjuncts(and.Left)
			conjuncts(and.Right)
			return
		}
		clauses = append(clauses, disjuncts(e, nil))
	}
	conjuncts(e)
	return clauses
}

func disjuncts(e ast.Expression, c Clause) Clause {
	if or, ok := e.(*ast.Or); ok {
		c = disjuncts(or.Left, c)
		return disjuncts(or.Right, c)
	}
	return append(c, e)
}
