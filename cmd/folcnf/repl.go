package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	fol "github.com/fno2010/first-order-cal"
	"github.com/fno2010/first-order-cal/cnf"
	"github.com/fno2010/first-order-cal/parser"
	"github.com/fno2010/first-order-cal/pipeline"
	"github.com/pterm/pterm"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// example is shown by command 'example'.
const example = "Any[x, Any[y, (Person[x] & Person[y] & " +
	"Exist[z, Parent[x,z] & Parent[y,z]])=>(Couple[x,y] & Couple[y,x])]]"

const usage = `
Enter a first-order logic statement to convert it to conjunctive normal form.

Commands:
help, h     get help
quit, q     quit
example, e  show an example

Format:
exist:        Exist[var, exp]
any:          Any[var, exp]
and:          exp1 And exp2  /  exp1 & exp2
or:           exp1 Or exp2   /  exp1 | exp2
not:          Not exp        /  ~ exp
implication:  exp1 => exp2
equivalence:  exp1 <=> exp2
predicate:    Name[var1, var2, ...]
`

// Command is a control command of the interactive mode.
type Command int

const (
	NoCommand Command = iota
	HelpCommand
	QuitCommand
	ExampleCommand
)

// command recognizes control commands. Every other line is a statement.
func command(line string) Command {
	switch line {
	case "help", "h":
		return HelpCommand
	case "quit", "q":
		return QuitCommand
	case "example", "e":
		return ExampleCommand
	}
	return NoCommand
}

// Intp is our interpreter object
type Intp struct {
	G    *parser.Grammar
	cfg  *Config
	repl *readline.Instance
}

func (intp *Intp) options() []pipeline.Option {
	if intp.cfg.Lexical {
		return []pipeline.Option{pipeline.SuffixOrder(cnf.LexicalSuffixes)}
	}
	return nil
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, _ := intp.Eval(line)
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command or evaluates a statement, given on a line by
// itself. It returns true if the user asked to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	switch command(line) {
	case QuitCommand:
		return true, nil
	case HelpCommand:
		pterm.Print(usage)
		return false, nil
	case ExampleCommand:
		pterm.Println("> " + example)
		line = example
	}
	trace, err := pipeline.Evaluate(intp.G, line, intp.options()...)
	if err != nil {
		intp.printDiagnostic(line, err)
		return false, err
	}
	intp.printTrace(trace)
	return false, nil
}

func (intp *Intp) printDiagnostic(statement string, err error) {
	var d fol.Diagnostic
	if !errors.As(err, &d) {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Println(fol.Caret(statement, d))
	pterm.Error.Println(d.Kind().String())
	tracer().Debugf("%v", err)
}

func (intp *Intp) printTrace(trace *pipeline.Trace) {
	prev := ""
	for i, snap := range trace.Snapshots {
		text := snap.Rendered
		if intp.cfg.Diff && i > 0 && snap.Changed {
			text = stageDiff(prev, snap.Rendered)
		}
		pterm.Info.Println(fmt.Sprintf("%-25s %s", snap.Stage+":", text))
		prev = snap.Rendered
	}
	if intp.cfg.Tree {
		pterm.DefaultTree.WithRoot(clauseTree(trace.Clauses())).Render()
	}
}

// stageDiff shows the changes from one rendering to the next, coloured for a
// terminal.
func stageDiff(from, to string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}

// clauseTree arranges clauses for display as a tree: the conjunction at the
// root, one node per clause, the literals below.
func clauseTree(clauses []cnf.Clause) pterm.TreeNode {
	ll := pterm.LeveledList{pterm.LeveledListItem{Level: 0, Text: "CNF"}}
	for i, c := range clauses {
		ll = append(ll, pterm.LeveledListItem{
			Level: 1,
			Text:  fmt.Sprintf("clause %d", i+1),
		})
		for _, lit := range c {
			ll = append(ll, pterm.LeveledListItem{
				Level: 2,
				Text:  lit.String(),
			})
		}
	}
	tracer().Debugf("|ll| = %d", len(ll))
	return pterm.NewTreeFromLeveledList(ll)
}
