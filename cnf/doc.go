/*
Package cnf implements the conversion of first-order formulas into conjunctive
normal form.

The conversion consists of six passes, to be applied in this order:

    EliminateImplication      A => B   ↦  Not A Or B
                              A <=> B  ↦  (A => B) And (B => A)
    MoveNotInward             De Morgan, quantifier duality, double negation
    StandardizeVariables      every quantifier binds a distinct variable
    Skolemize                 Exist[y, …] ↦ … _Y(x1, …, xn) …
    DropUniversalQuantifiers  Any[x, E] ↦ E
    DistributeCNF             A Or (B And C)  ↦  (A Or B) And (A Or C)

Every pass walks the whole tree depth-first and returns the (possibly new) root.
Passes rewrite nodes in place where this is possible; whenever a sub-tree has
to occur twice it is cloned. A pass assumes the post-conditions of all earlier
passes; calling passes out of order is undefined.

No simplification is done: neither factoring nor removal of tautologies or
duplicate clauses. Distribution may grow the tree exponentially.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cnf

import (
	"github.com/fno2010/first-order-cal/ast"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fol.cnf'.
func tracer() tracing.Trace {
	return tracing.Select("fol.cnf")
}

// Pass is the signature of a normalization pass.
type Pass func(ast.Expression) ast.Expression

// Convert applies all six passes to e, in order.
func Convert(e ast.Expression) ast.Expression {
	for _, pass := range []Pass{
		EliminateImplication,
		MoveNotInward,
		StandardizeVariables,
		Skolemize,
		DropUniversalQuantifiers,
		DistributeCNF,
	} {
		e = pass(e)
	}
	return e
}
