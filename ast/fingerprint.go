package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/cnf/structhash"
)

// shape is a reflection-friendly mirror of a tree, used for hashing.
type shape struct {
	Kind  string
	Label string   // predicate name or bound variable
	Args  []string // rendered terms of a predicate
	Sub   []shape
}

func shapeOf(e Expression) shape {
	s := shape{Kind: Kind(e)}
	switch n := e.(type) {
	case *Predicate:
		s.Label = n.Name
		s.Args = make([]string, len(n.Args))
		for i, a := range n.Args {
			if _, isvar := IsVariable(a); isvar {
				s.Args[i] = a.String()
			} else {
				s.Args[i] = "#" + a.String() // keep skolem terms apart from variables
			}
		}
	case *Exists:
		s.Label = n.Var
	case *ForAll:
		s.Label = n.Var
	}
	for _, c := range Children(e) {
		s.Sub = append(s.Sub, shapeOf(c))
	}
	return s
}

// Fingerprint returns a hash of the structure of e. Structurally equal trees
// have equal fingerprints.
func Fingerprint(e Expression) string {
	h, err := structhash.Hash(shapeOf(e), 1)
	if err != nil {
		tracer().Errorf("cannot hash expression: %v", err)
		return ""
	}
	return h
}
