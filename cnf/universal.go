package cnf

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "github.com/fno2010/first-order-cal/ast"

// DropUniversalQuantifiers removes all universal quantifiers. Their variables
// stay in place and are read as implicitly universally quantified.
func DropUniversalQuantifiers(e ast.Expression) ast.Expression {
	switch n := e.(type) {
	case *ast.ForAll:
		return DropUniversalQuantifiers(n.Body)
	case *ast.Not:
		n.Inner = DropUniversalQuantifiers(n.Inner)
	case *ast.And:
		n.Left = DropUniversalQuantifiers(n.Left)
		n.Right = DropUniversalQuantifiers(n.Right)
	case *ast.Or:
		n.Left = DropUniversalQuantifiers(n.Left)
		n.Right = DropUniversalQuantifiers(n.Right)
	}
	return e
}
