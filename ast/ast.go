/*
Package ast defines the trees for first-order logic formulas.

An Expression is one of

    *Predicate   Name[t1, t2, …]
    *Not         Not E
    *And         L And R
    *Or          L Or R
    *Implies     L => R
    *Iff         L <=> R
    *Exists      Exist[v, E]
    *ForAll      Any[v, E]

The set of node types is closed: every client, in particular the normalization
passes of package cnf, switches over exactly these types. Predicate arguments
are Terms, either plain variables or, after skolemization, skolem applications.

Trees are owned by a single caller. Whenever a sub-tree has to appear twice,
it has to be duplicated with Clone; two parents must never share a child.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fol.ast'.
func tracer() tracing.Trace {
	return tracing.Select("fol.ast")
}

// Expression is a node of a formula tree.
type Expression interface {
	String() string
	expr()
}

// Predicate is an atomic formula Name[args].
type Predicate struct {
	Name string
	Args []Term
}

// Not is a negation.
type Not struct {
	Inner Expression
}

// And is a conjunction.
type And struct {
	Left, Right Expression
}

// Or is a disjunction.
type Or struct {
	Left, Right Expression
}

// Implies is an implication Left => Right.
type Implies struct {
	Left, Right Expression
}

// Iff is an equivalence Left <=> Right.
type Iff struct {
	Left, Right Expression
}

// Exists is an existential quantifier over Var.
type Exists struct {
	Var  string
	Body Expression
}

// ForAll is a universal quantifier over Var.
type ForAll struct {
	Var  string
	Body Expression
}

func (*Predicate) expr() {}
func (*Not) expr()       {}
func (*And) expr()       {}
func (*Or) expr()        {}
func (*Implies) expr()   {}
func (*Iff) expr()       {}
func (*Exists) expr()    {}
func (*ForAll) expr()    {}

func (e *Predicate) String() string { return Render(e) }
func (e *Not) String() string       { return Render(e) }
func (e *And) String() string       { return Render(e) }
func (e *Or) String() string        { return Render(e) }
func (e *Implies) String() string   { return Render(e) }
func (e *Iff) String() string       { return Render(e) }
func (e *Exists) String() string    { return Render(e) }
func (e *ForAll) String() string    { return Render(e) }

// Pred creates a predicate with plain variables as arguments.
func Pred(name string, vars ...string) *Predicate {
	p := &Predicate{Name: name, Args: make([]Term, len(vars))}
	for i, v := range vars {
		p.Args[i] = Variable(v)
	}
	return p
}

// Kind returns a short name for the type of node e, e.g. "and".
func Kind(e Expression) string {
	switch e.(type) {
	case *Predicate:
		return "pred"
	case *Not:
		return "not"
	case *And:
		return "and"
	case *Or:
		return "or"
	case *Implies:
		return "implic"
	case *Iff:
		return "equal"
	case *Exists:
		return "exist"
	case *ForAll:
		return "any"
	case nil:
		return "nil"
	}
	tracer().Errorf("unknown expression type %T", e)
	return "?"
}

// Children returns the direct sub-expressions of e, left to right.
func Children(e Expression) []Expression {
	switch n := e.(type) {
	case *Not:
		return []Expression{n.Inner}
	case *And:
		return []Expression{n.Left, n.Right}
	case *Or:
		return []Expression{n.Left, n.Right}
	case *Implies:
		return []Expression{n.Left, n.Right}
	case *Iff:
		return []Expression{n.Left, n.Right}
	case *Exists:
		return []Expression{n.Body}
	case *ForAll:
		return []Expression{n.Body}
	}
	return nil
}

// Walk visits e and all of its sub-expressions depth-first, parents before
// children. If visit returns false, the children of the node are skipped.
func Walk(e Expression, visit func(Expression) bool) {
	if e == nil || !visit(e) {
		return
	}
	for _, c := range Children(e) {
		Walk(c, visit)
	}
}

// Contains reports whether some node in e satisfies pred.
func Contains(e Expression, pred func(Expression) bool) bool {
	found := false
	Walk(e, func(n Expression) bool {
		if found {
			return false
		}
		if pred(n) {
			found = true
		}
		return !found
	})
	return found
}
