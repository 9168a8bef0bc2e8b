package cnf

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/fno2010/first-order-cal/ast"
)

// SuffixOrder selects how numeric suffixes of variable names are compared when
// a fresh label is derived.
type SuffixOrder int

const (
	// NumericSuffixes compares suffixes as numbers: x10 comes after x9.
	NumericSuffixes SuffixOrder = iota
	// LexicalSuffixes compares suffixes as text: x9 comes after x10. This is
	// how earlier versions labelled variables; with ten or more renamings of
	// one variable, fresh labels may collide with labels already in use.
	LexicalSuffixes
)

// StandardizeVariables renames variables such that every quantifier binds a
// name distinct from all other quantifiers and from free variables, with
// suffixes compared numerically.
func StandardizeVariables(e ast.Expression) ast.Expression {
	return StandardizeVariablesWith(e, NumericSuffixes)
}

// StandardizeVariablesWith renames variables such that every quantifier binds
// a name distinct from all other quantifiers and from free variables.
//
// The tree is walked left to right. A quantifier keeps its variable if the
// name has not been used yet, otherwise it receives a fresh label: the name
// stripped of trailing digits, followed by one more than the highest suffix in
// use for that prefix (x, x1, x2, …). Bound occurrences follow their
// quantifier. A free variable colliding with a name already in use is
// relabelled the same way, consistently for all its occurrences.
func StandardizeVariablesWith(e ast.Expression, order SuffixOrder) ast.Expression {
	s := &standardizer{
		used:  treeset.NewWithStringComparator(),
		free:  make(map[string]string),
		order: order,
	}
	s.visit(e, make(map[string]string))
	return e
}

type standardizer struct {
	used  *treeset.Set      // names introduced so far, bound or free
	free  map[string]string // relabelling of free variables
	order SuffixOrder
}

// visit renames in place. bound maps variables of enclosing quantifiers to
// their new names.
func (s *standardizer) visit(e ast.Expression, bound map[string]string) {
	switch n := e.(type) {
	case *ast.Predicate:
		for i, arg := range n.Args {
			name, isvar := ast.IsVariable(arg)
			if !isvar {
				continue
			}
			if label, ok := bound[name]; ok {
				n.Args[i] = ast.Variable(label)
			} else {
				n.Args[i] = ast.Variable(s.freeLabel(name))
			}
		}
	case *ast.Not:
		s.visit(n.Inner, bound)
	case *ast.And:
		s.visit(n.Left, bound)
		s.visit(n.Right, bound)
	case *ast.Or:
		s.visit(n.Left, bound)
		s.visit(n.Right, bound)
	case *ast.Implies:
		s.visit(n.Left, bound)
		s.visit(n.Right, bound)
	case *ast.Iff:
		s.visit(n.Left, bound)
		s.visit(n.Right, bound)
	case *ast.Exists:
		n.Var = s.quantifier(n.Var, n.Body, bound)
	case *ast.ForAll:
		n.Var = s.quantifier(n.Var, n.Body, bound)
	}
}

// quantifier labels the variable of a quantifier, visits its body and returns
// the new label.
func (s *standardizer) quantifier(v string, body ast.Expression, bound map[string]string) string {
	label := freshLabel(v, s.used, s.order)
	s.used.Add(label)
	if label != v {
		tracer().Debugf("standardize: %s ↦ %s", v, label)
	}
	outer, shadows := bound[v]
	bound[v] = label
	s.visit(body, bound)
	if shadows {
		bound[v] = outer
	} else {
		delete(bound, v)
	}
	return label
}

func (s *standardizer) freeLabel(v string) string {
	if label, ok := s.free[v]; ok {
		return label
	}
	label := freshLabel(v, s.used, s.order)
	s.used.Add(label)
	s.free[v] = label
	return label
}

// freshLabel returns v if it is not in use, otherwise the prefix of v
// followed by a suffix one larger than any suffix in use for this prefix.
func freshLabel(v string, used *treeset.Set, order SuffixOrder) string {
	if !used.Contains(v) {
		return v
	}
	prefix, suffix := splitSuffix(v)
	it := used.Iterator()
	for it.Next() {
		name := it.Value().(string)
		if len(name) <= len(prefix) || !strings.HasPrefix(name, prefix) {
			continue
		}
		other := name[len(prefix):]
		if !isDigits(other) {
			continue
		}
		if order.less(suffix, other) {
			suffix = other
		}
	}
	if suffix == "" {
		return prefix + "1"
	}
	return prefix + increment(suffix)
}

func (order SuffixOrder) less(a, b string) bool {
	if order == LexicalSuffixes {
		return a < b
	}
	a, b = strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// splitSuffix splits x12 into x and 12.
func splitSuffix(v string) (string, string) {
	i := len(v)
	for i > 0 && v[i-1] >= '0' && v[i-1] <= '9' {
		i--
	}
	return v[:i], v[i:]
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// increment adds 1 to a decimal number given as a string of digits, dropping
// leading zeros.
func increment(digits string) string {
	d := []byte(strings.TrimLeft(digits, "0"))
	i := len(d) - 1
	for ; i >= 0 && d[i] == '9'; i-- {
		d[i] = '0'
	}
	if i < 0 {
		return "1" + string(d)
	}
	d[i]++
	return string(d)
}
