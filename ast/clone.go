package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Clone creates a deep copy of e. The copy does not share any node or argument
// list with e.
func Clone(e Expression) Expression {
	switch n := e.(type) {
	case *Predicate:
		args := make([]Term, len(n.Args))
		for i, a := range n.Args {
			args[i] = a.CloneTerm()
		}
		return &Predicate{Name: n.Name, Args: args}
	case *Not:
		return &Not{Inner: Clone(n.Inner)}
	case *And:
		return &And{Left: Clone(n.Left), Right: Clone(n.Right)}
	case *Or:
		return &Or{Left: Clone(n.Left), Right: Clone(n.Right)}
	case *Implies:
		return &Implies{Left: Clone(n.Left), Right: Clone(n.Right)}
	case *Iff:
		return &Iff{Left: Clone(n.Left), Right: Clone(n.Right)}
	case *Exists:
		return &Exists{Var: n.Var, Body: Clone(n.Body)}
	case *ForAll:
		return &ForAll{Var: n.Var, Body: Clone(n.Body)}
	}
	return nil
}

// Equal reports whether a and b are structurally equal trees.
func Equal(a, b Expression) bool {
	switch x := a.(type) {
	case *Predicate:
		y, ok := b.(*Predicate)
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !equalTerms(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case *Not:
		y, ok := b.(*Not)
		return ok && Equal(x.Inner, y.Inner)
	case *And:
		y, ok := b.(*And)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Or:
		y, ok := b.(*Or)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Implies:
		y, ok := b.(*Implies)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Iff:
		y, ok := b.(*Iff)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Exists:
		y, ok := b.(*Exists)
		return ok && x.Var == y.Var && Equal(x.Body, y.Body)
	case *ForAll:
		y, ok := b.(*ForAll)
		return ok && x.Var == y.Var && Equal(x.Body, y.Body)
	case nil:
		return b == nil
	}
	return false
}

func equalTerms(a, b Term) bool {
	switch x := a.(type) {
	case Variable:
		y, ok := b.(Variable)
		return ok && x == y
	case *SkolemApplication:
		y, ok := b.(*SkolemApplication)
		if !ok || x.Function != y.Function || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if x.Args[i] != y.Args[i] {
				return false
			}
		}
		return true
	}
	return false
}
