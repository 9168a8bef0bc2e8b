package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "strings"

// Term is an argument of a predicate: either a Variable or, after
// skolemization, a SkolemApplication. Both render as a single token within
// the argument list of a predicate.
type Term interface {
	String() string
	CloneTerm() Term
	term()
}

// Variable is a reference to a variable by name.
type Variable string

// SkolemApplication is a skolem function applied to the universally quantified
// variables in whose scope the eliminated existential variable appeared,
// outermost first. A skolem constant has no arguments.
type SkolemApplication struct {
	Function string
	Args     []string
}

func (Variable) term()           {}
func (*SkolemApplication) term() {}

func (v Variable) String() string {
	return string(v)
}

// CloneTerm is part of interface Term.
func (v Variable) CloneTerm() Term {
	return v
}

// String renders a skolem application as _F(x, y), or _F for constants.
func (s *SkolemApplication) String() string {
	if len(s.Args) == 0 {
		return s.Function
	}
	return s.Function + "(" + strings.Join(s.Args, ", ") + ")"
}

// CloneTerm is part of interface Term.
func (s *SkolemApplication) CloneTerm() Term {
	return &SkolemApplication{
		Function: s.Function,
		Args:     append([]string(nil), s.Args...),
	}
}

// IsVariable returns the name of t if t is a plain variable.
func IsVariable(t Term) (string, bool) {
	if v, ok := t.(Variable); ok {
		return string(v), true
	}
	return "", false
}
