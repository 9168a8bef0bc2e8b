package ast

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fol.ast")
	defer teardown()
	//
	P, Q, R := Pred("P", "x"), Pred("Q", "x", "y"), Pred("R", "y")
	for _, c := range []struct {
		e        Expression
		expected string
	}{
		{P, "P[x]"},
		{Q, "Q[x, y]"},
		{&Not{Inner: P}, "Not P[x]"},
		{&Not{Inner: &Not{Inner: P}}, "Not Not P[x]"},
		{&Not{Inner: &And{Left: P, Right: R}}, "Not (P[x] And R[y])"},
		{&And{Left: &Or{Left: P, Right: Q}, Right: R}, "(P[x] Or Q[x, y]) And R[y]"},
		{&Or{Left: &And{Left: P, Right: Q}, Right: R}, "P[x] And Q[x, y] Or R[y]"},
		{&And{Left: &And{Left: P, Right: Q}, Right: R}, "P[x] And Q[x, y] And R[y]"},
		{&And{Left: P, Right: &And{Left: Q, Right: R}}, "P[x] And (Q[x, y] And R[y])"},
		{&Implies{Left: P, Right: &Implies{Left: Q, Right: R}}, "P[x] => Q[x, y] => R[y]"},
		{&Implies{Left: &Implies{Left: P, Right: Q}, Right: R}, "(P[x] => Q[x, y]) => R[y]"},
		{&Iff{Left: &Iff{Left: P, Right: Q}, Right: R}, "(P[x] <=> Q[x, y]) <=> R[y]"},
		{&Iff{Left: P, Right: &Implies{Left: Q, Right: R}}, "P[x] <=> Q[x, y] => R[y]"},
		{&Exists{Var: "y", Body: &Or{Left: Q, Right: R}}, "Exist[y, Q[x, y] Or R[y]]"},
		{&Not{Inner: &ForAll{Var: "x", Body: P}}, "Not Any[x, P[x]]"},
		{&And{Left: &ForAll{Var: "x", Body: P}, Right: R}, "Any[x, P[x]] And R[y]"},
		{
			&Predicate{Name: "P", Args: []Term{
				Variable("x"),
				&SkolemApplication{Function: "_Y", Args: []string{"x", "z"}},
				&SkolemApplication{Function: "_C"},
			}},
			"P[x, _Y(x, z), _C]",
		},
	} {
		if got := Render(c.e); got != c.expected {
			t.Errorf("expected %q, got %q", c.expected, got)
		}
	}
}

func TestClone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fol.ast")
	defer teardown()
	//
	sk := &SkolemApplication{Function: "_Y", Args: []string{"x"}}
	orig := &ForAll{Var: "x", Body: &Or{
		Left:  &Not{Inner: Pred("P", "x")},
		Right: &Predicate{Name: "Q", Args: []Term{Variable("x"), sk}},
	}}
	copied := Clone(orig)
	if !Equal(orig, copied) {
		t.Fatalf("clone %s differs from %s", copied, orig)
	}
	cp := copied.(*ForAll)
	cp.Var = "z"
	or := cp.Body.(*Or)
	or.Left.(*Not).Inner.(*Predicate).Args[0] = Variable("z")
	q := or.Right.(*Predicate)
	q.Name = "S"
	q.Args[1].(*SkolemApplication).Args[0] = "z"
	if got := Render(orig); got != "Any[x, Not P[x] Or Q[x, _Y(x)]]" {
		t.Errorf("changing the clone changed the original: %s", got)
	}
	if got := Render(copied); got != "Any[z, Not P[z] Or S[x, _Y(z)]]" {
		t.Errorf("unexpected clone after change: %s", got)
	}
}

func TestEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fol.ast")
	defer teardown()
	//
	a := &And{Left: Pred("P", "x"), Right: Pred("Q", "y")}
	for _, c := range []struct {
		b     Expression
		equal bool
	}{
		{&And{Left: Pred("P", "x"), Right: Pred("Q", "y")}, true},
		{&Or{Left: Pred("P", "x"), Right: Pred("Q", "y")}, false},
		{&And{Left: Pred("P", "x"), Right: Pred("Q", "z")}, false},
		{&And{Left: Pred("P", "x"), Right: Pred("Q", "y", "y")}, false},
		{&And{Left: Pred("Q", "y"), Right: Pred("P", "x")}, false},
		{&And{Left: Pred("P", "x"), Right: &Predicate{Name: "Q", Args: []Term{
			&SkolemApplication{Function: "y"},
		}}}, false},
		{nil, false},
	} {
		if got := Equal(a, c.b); got != c.equal {
			t.Errorf("Equal(%s, %v) = %v", a, c.b, got)
		}
	}
	if !Equal(nil, nil) {
		t.Errorf("nil trees expected to be equal")
	}
}

func TestWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fol.ast")
	defer teardown()
	//
	e := &Implies{
		Left:  &Exists{Var: "x", Body: Pred("P", "x")},
		Right: &Not{Inner: &And{Left: Pred("Q", "x"), Right: Pred("R", "x")}},
	}
	var kinds []string
	Walk(e, func(n Expression) bool {
		kinds = append(kinds, Kind(n))
		return true
	})
	expected := []string{"implic", "exist", "pred", "not", "and", "pred", "pred"}
	if len(kinds) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, kinds)
	}
	for i := range kinds {
		if kinds[i] != expected[i] {
			t.Errorf("node #%d: expected %s, got %s", i, expected[i], kinds[i])
		}
	}
	count := 0
	Walk(e, func(n Expression) bool {
		count++
		_, isNot := n.(*Not)
		return !isNot
	})
	if count != 4 {
		t.Errorf("expected walk to skip below negation, visited %d nodes", count)
	}
	if !Contains(e, func(n Expression) bool { return Kind(n) == "and" }) {
		t.Errorf("expected to find conjunction in %s", e)
	}
	if Contains(e, func(n Expression) bool { return Kind(n) == "any" }) {
		t.Errorf("found universal quantifier in %s", e)
	}
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fol.ast")
	defer teardown()
	//
	e := &ForAll{Var: "x", Body: &Or{Left: Pred("P", "x"), Right: Pred("Q", "x")}}
	fp := Fingerprint(e)
	if fp == "" {
		t.Fatalf("empty fingerprint")
	}
	if other := Fingerprint(Clone(e)); other != fp {
		t.Errorf("clone has fingerprint %s, expected %s", other, fp)
	}
	for _, d := range []Expression{
		&ForAll{Var: "y", Body: &Or{Left: Pred("P", "x"), Right: Pred("Q", "x")}},
		&ForAll{Var: "x", Body: &And{Left: Pred("P", "x"), Right: Pred("Q", "x")}},
		&ForAll{Var: "x", Body: &Or{Left: Pred("Q", "x"), Right: Pred("P", "x")}},
		&Exists{Var: "x", Body: &Or{Left: Pred("P", "x"), Right: Pred("Q", "x")}},
		&ForAll{Var: "x", Body: &Or{Left: Pred("P", "x"), Right: &Predicate{
			Name: "Q", Args: []Term{&SkolemApplication{Function: "x"}},
		}}},
	} {
		if Fingerprint(d) == fp {
			t.Errorf("%s and %s share a fingerprint", d, e)
		}
	}
}
