package pipeline

import (
	"errors"
	"testing"

	fol "github.com/fno2010/first-order-cal"
	"github.com/fno2010/first-order-cal/ast"
	"github.com/fno2010/first-order-cal/cnf"
	"github.com/fno2010/first-order-cal/parser"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func grammar(t *testing.T) *parser.Grammar {
	g, err := parser.NewGrammar()
	if err != nil {
		t.Fatalf("cannot create grammar: %v", err)
	}
	return g
}

func TestStageOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fol.pipeline")
	defer teardown()
	//
	trace, err := Evaluate(grammar(t), "P[x]")
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{Original, EliminateImplication, MoveNotInward,
		StandardizeVariables, Skolemize, DropUniversalQuantifiers, DistributeCNF}
	if len(trace.Snapshots) != len(expected) {
		t.Fatalf("expected %d snapshots, got %d", len(expected), len(trace.Snapshots))
	}
	for i, s := range trace.Snapshots {
		if s.Stage != expected[i] {
			t.Errorf("snapshot #%d: expected stage %s, got %s", i, expected[i], s.Stage)
		}
		if s.Rendered != "P[x]" {
			t.Errorf("stage %s: expected P[x], got %s", s.Stage, s.Rendered)
		}
		if s.Changed {
			t.Errorf("stage %s reports a change for P[x]", s.Stage)
		}
		if s.Tree != nil {
			t.Errorf("stage %s keeps a tree without being asked to", s.Stage)
		}
	}
	if len(Stages()) != len(expected)-1 {
		t.Errorf("expected %d stages, got %d", len(expected)-1, len(Stages()))
	}
}

func TestScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fol.pipeline")
	defer teardown()
	//
	g := grammar(t)
	for _, c := range []struct {
		statement string
		stage     string
		atStage   string
		final     string
	}{
		{"P[x] => Q[x]", EliminateImplication, "Not P[x] Or Q[x]", "Not P[x] Or Q[x]"},
		{"Exist[x, P[x]]", Skolemize, "P[_X]", "P[_X]"},
		{"Any[x, Exist[y, P[x,y]]]", Skolemize, "Any[x, P[x, _Y(x)]]", "P[x, _Y(x)]"},
		{"Any[x, Exist[y, P[x,y]]]", DropUniversalQuantifiers, "P[x, _Y(x)]", "P[x, _Y(x)]"},
		{"Not (P[x] And Q[x])", MoveNotInward, "Not P[x] Or Not Q[x]", "Not P[x] Or Not Q[x]"},
		{"Any[x, P[x]] & Any[x, Q[x]]", StandardizeVariables,
			"Any[x, P[x]] And Any[x1, Q[x1]]", "P[x] And Q[x1]"},
		{"P[x] Or (Q[x] And R[x])", DistributeCNF,
			"(P[x] Or Q[x]) And (P[x] Or R[x])", "(P[x] Or Q[x]) And (P[x] Or R[x])"},
	} {
		trace, err := Evaluate(g, c.statement)
		if err != nil {
			t.Errorf("%q: %v", c.statement, err)
			continue
		}
		snap, ok := trace.Snapshot(c.stage)
		if !ok {
			t.Fatalf("no snapshot for stage %s", c.stage)
		}
		if snap.Rendered != c.atStage {
			t.Errorf("%q after %s: expected %q, got %q", c.statement, c.stage, c.atStage, snap.Rendered)
		}
		if got := ast.Render(trace.Final()); got != c.final {
			t.Errorf("%q: expected CNF %q, got %q", c.statement, c.final, got)
		}
		last := trace.Snapshots[len(trace.Snapshots)-1]
		if last.Rendered != c.final {
			t.Errorf("%q: last snapshot %q differs from final tree", c.statement, last.Rendered)
		}
	}
}

func TestChanged(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fol.pipeline")
	defer teardown()
	//
	trace, err := Evaluate(grammar(t), "P[x] => Q[x]")
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range trace.Snapshots {
		expected := s.Stage == EliminateImplication
		if s.Changed != expected {
			t.Errorf("stage %s: expected changed = %v", s.Stage, expected)
		}
	}
}

func TestDiagnostics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fol.pipeline")
	defer teardown()
	//
	g := grammar(t)
	for _, c := range []struct {
		statement string
		kind      fol.DiagnosticKind
		offset    uint64
	}{
		{"P[x] Q[y]", fol.Syntactic, 5},
		{"P[x] @ Q[y]", fol.Lexical, 5},
		{"Any[x, P[x]", fol.Syntactic, 11},
	} {
		trace, err := Evaluate(g, c.statement)
		if trace != nil {
			t.Errorf("%q: expected no trace for malformed statement", c.statement)
		}
		var d fol.Diagnostic
		if !errors.As(err, &d) {
			t.Errorf("%q: expected diagnostic, got %v", c.statement, err)
			continue
		}
		if d.Kind() != c.kind || d.Pos() != c.offset {
			t.Errorf("%q: expected %s at %d, got %s at %d", c.statement, c.kind, c.offset, d.Kind(), d.Pos())
		}
	}
	// a failed statement does not affect the next one
	trace, err := Evaluate(g, "Exist[x, P[x]]")
	if err != nil {
		t.Fatal(err)
	}
	if got := ast.Render(trace.Final()); got != "P[_X]" {
		t.Errorf("expected P[_X] after failed statements, got %s", got)
	}
	if _, err := Evaluate(nil, "P[x]"); err == nil {
		t.Errorf("expected error for missing grammar")
	}
}

func TestKeepTrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fol.pipeline")
	defer teardown()
	//
	trace, err := Evaluate(grammar(t), "Any[x, Exist[y, P[x, y] => Q[y]]]", KeepTrees(true))
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range trace.Snapshots {
		if s.Tree == nil {
			t.Fatalf("stage %s: no tree kept", s.Stage)
		}
		if got := ast.Render(s.Tree); got != s.Rendered {
			t.Errorf("stage %s: tree %q differs from rendering %q", s.Stage, got, s.Rendered)
		}
		if s.Tree == trace.Final() {
			t.Errorf("stage %s: snapshot shares the final tree", s.Stage)
		}
	}
	orig, _ := trace.Snapshot(Original)
	if _, ok := orig.Tree.(*ast.ForAll); !ok {
		t.Errorf("original tree has been rewritten: %s", orig.Tree)
	}
	if orig.Rendered != "Any[x, Exist[y, P[x, y] => Q[y]]]" {
		t.Errorf("unexpected rendering of original: %s", orig.Rendered)
	}
}

func TestClauses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fol.pipeline")
	defer teardown()
	//
	trace, err := Evaluate(grammar(t), "P[x] <=> Q[x]")
	if err != nil {
		t.Fatal(err)
	}
	clauses := trace.Clauses()
	expected := []string{"Not P[x] Or Q[x]", "Not Q[x] Or P[x]"}
	if len(clauses) != len(expected) {
		t.Fatalf("expected %d clauses, got %v", len(expected), clauses)
	}
	for i, c := range clauses {
		if c.String() != expected[i] {
			t.Errorf("clause #%d: expected %q, got %q", i, expected[i], c)
		}
	}
}

func TestSuffixOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fol.pipeline")
	defer teardown()
	//
	g := grammar(t)
	statement := "Any[x, P[x]] And Any[x9, Q[x9]] And Any[x10, R[x10]] And Any[x, S[x]]"
	numeric, err := Evaluate(g, statement)
	if err != nil {
		t.Fatal(err)
	}
	if got := ast.Render(numeric.Final()); got != "P[x] And Q[x9] And R[x10] And S[x11]" {
		t.Errorf("numeric suffixes: unexpected %s", got)
	}
	lexical, err := Evaluate(g, statement, SuffixOrder(cnf.LexicalSuffixes))
	if err != nil {
		t.Fatal(err)
	}
	if got := ast.Render(lexical.Final()); got != "P[x] And Q[x9] And R[x10] And S[x10]" {
		t.Errorf("lexical suffixes: unexpected %s", got)
	}
}
