package pipeline

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"

	"github.com/fno2010/first-order-cal/ast"
	"github.com/fno2010/first-order-cal/cnf"
	"github.com/fno2010/first-order-cal/parser"
)

// Names of the stages, in the order they are run. Original is the parsed tree.
const (
	Original                 = "Original"
	EliminateImplication     = "EliminateImplication"
	MoveNotInward            = "MoveNotInward"
	StandardizeVariables     = "StandardizeVariables"
	Skolemize                = "Skolemize"
	DropUniversalQuantifiers = "DropUniversalQuantifiers"
	DistributeCNF            = "DistributeCNF"
)

// Stage is a named pass.
type Stage struct {
	Name string
	Pass cnf.Pass
}

// Stages returns the passes run by Evaluate, in order.
func Stages() []Stage {
	return stages(defaults())
}

func stages(o *options) []Stage {
	return []Stage{
		{EliminateImplication, cnf.EliminateImplication},
		{MoveNotInward, cnf.MoveNotInward},
		{StandardizeVariables, func(e ast.Expression) ast.Expression {
			return cnf.StandardizeVariablesWith(e, o.order)
		}},
		{Skolemize, cnf.Skolemize},
		{DropUniversalQuantifiers, cnf.DropUniversalQuantifiers},
		{DistributeCNF, cnf.DistributeCNF},
	}
}

// Snapshot is the state of a formula after a stage.
type Snapshot struct {
	Stage       string
	Rendered    string         // printed form of the tree
	Fingerprint string         // structural hash, see ast.Fingerprint
	Changed     bool           // stage altered the tree
	Tree        ast.Expression // deep copy, only with option KeepTrees
}

// Trace is the result of evaluating a statement.
type Trace struct {
	Statement string
	Snapshots []Snapshot // Original first, then one per stage
	final     ast.Expression
}

// Final returns the tree in conjunctive normal form.
func (tr *Trace) Final() ast.Expression {
	return tr.final
}

// Clauses returns the clauses of the final tree.
func (tr *Trace) Clauses() []cnf.Clause {
	return cnf.Clauses(tr.final)
}

// Snapshot returns the snapshot taken after the named stage.
func (tr *Trace) Snapshot(stage string) (Snapshot, bool) {
	for _, s := range tr.Snapshots {
		if s.Stage == stage {
			return s, true
		}
	}
	return Snapshot{}, false
}

// --- Options ---------------------------------------------------------------

type options struct {
	keepTrees bool
	order     cnf.SuffixOrder
}

func defaults() *options {
	return &options{order: cnf.NumericSuffixes}
}

// Option configures a call to Evaluate.
type Option func(*options)

// KeepTrees makes every snapshot hold a deep copy of the tree. Without it,
// snapshots carry the rendered form only.
func KeepTrees(keep bool) Option {
	return func(o *options) {
		o.keepTrees = keep
	}
}

// SuffixOrder selects how variable suffixes are compared when standardizing
// variables apart.
func SuffixOrder(order cnf.SuffixOrder) Option {
	return func(o *options) {
		o.order = order
	}
}

// --- Evaluation ------------------------------------------------------------

// Evaluate reads a statement and runs it through all stages.
//
// If the statement cannot be read, the error is a fol.Diagnostic
// (*fol.LexicalError or *fol.SyntaxError) and no stage is run.
func Evaluate(g *parser.Grammar, statement string, opts ...Option) (*Trace, error) {
	if g == nil {
		return nil, errors.New("pipeline: no grammar")
	}
	o := defaults()
	for _, opt := range opts {
		opt(o)
	}
	tree, err := g.Parse(statement)
	if err != nil {
		tracer().Infof("cannot read %q: %v", statement, err)
		return nil, err
	}
	tr := &Trace{Statement: statement}
	prev := tr.snapshot(Original, tree, "", o)
	for _, stage := range stages(o) {
		tree = stage.Pass(tree)
		prev = tr.snapshot(stage.Name, tree, prev, o)
	}
	tr.final = tree
	return tr, nil
}

// snapshot records tree after stage and returns its fingerprint.
func (tr *Trace) snapshot(stage string, tree ast.Expression, prev string, o *options) string {
	s := Snapshot{
		Stage:       stage,
		Rendered:    ast.Render(tree),
		Fingerprint: ast.Fingerprint(tree),
	}
	s.Changed = prev != "" && s.Fingerprint != prev
	if o.keepTrees {
		s.Tree = ast.Clone(tree)
	}
	tracer().Debugf("%s: %s", stage, s.Rendered)
	tr.Snapshots = append(tr.Snapshots, s)
	return s.Fingerprint
}
