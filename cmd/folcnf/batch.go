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
	"io"
	"strings"

	fol "github.com/fno2010/first-order-cal"
	"github.com/fno2010/first-order-cal/pipeline"
	"github.com/goccy/go-yaml"
)

// Result is the outcome of one statement in batch mode, as written in YAML
// format.
type Result struct {
	Statement string        `yaml:"statement"`
	Stages    []StageResult `yaml:"stages,omitempty"`
	Clauses   []string      `yaml:"clauses,omitempty"`
	Error     *ErrorResult  `yaml:"error,omitempty"`
}

// StageResult is the formula after a stage.
type StageResult struct {
	Stage   string `yaml:"stage"`
	Formula string `yaml:"formula"`
	Changed bool   `yaml:"changed"`
}

// ErrorResult describes a statement which could not be read.
type ErrorResult struct {
	Kind    string `yaml:"kind"`
	Offset  uint64 `yaml:"offset"`
	Message string `yaml:"message"`
}

// evaluate runs a statement and collects the outcome.
func (intp *Intp) evaluate(statement string) Result {
	res := Result{Statement: statement}
	trace, err := pipeline.Evaluate(intp.G, statement, intp.options()...)
	if err != nil {
		res.Error = &ErrorResult{Message: err.Error()}
		var d fol.Diagnostic
		if errors.As(err, &d) {
			res.Error.Kind = d.Kind().String()
			res.Error.Offset = d.Pos()
		}
		return res
	}
	for _, snap := range trace.Snapshots {
		res.Stages = append(res.Stages, StageResult{
			Stage:   snap.Stage,
			Formula: snap.Rendered,
			Changed: snap.Changed,
		})
	}
	for _, c := range trace.Clauses() {
		res.Clauses = append(res.Clauses, c.String())
	}
	return res
}

// Batch reads statements from r, one per line, and writes the results to w.
// Empty lines and lines starting with '#' are skipped. It returns the number
// of statements which could not be read.
func (intp *Intp) Batch(r io.Reader, w io.Writer) (int, error) {
	failed := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res := intp.evaluate(line)
		if res.Error != nil {
			failed++
		}
		var err error
		if intp.cfg.Format == FormatYAML {
			err = writeYAML(w, res)
		} else {
			err = writeText(w, res)
		}
		if err != nil {
			return failed, err
		}
	}
	if err := scanner.Err(); err != nil {
		return failed, fmt.Errorf("cannot read statements: %w", err)
	}
	return failed, nil
}

func writeText(w io.Writer, res Result) error {
	var b strings.Builder
	if res.Error != nil {
		if res.Error.Kind != "" {
			b.WriteString(caretLine(res))
			b.WriteByte('\n')
			b.WriteString(res.Error.Kind)
		} else {
			b.WriteString(res.Statement)
			b.WriteByte('\n')
			b.WriteString(res.Error.Message)
		}
		b.WriteString("\n\n")
		_, err := io.WriteString(w, b.String())
		return err
	}
	for _, s := range res.Stages {
		fmt.Fprintf(&b, "%-25s %s\n", s.Stage+":", s.Formula)
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

func caretLine(res Result) string {
	var d fol.Diagnostic
	switch res.Error.Kind {
	case fol.Lexical.String():
		d = &fol.LexicalError{Offset: res.Error.Offset}
	default:
		d = &fol.SyntaxError{Offset: res.Error.Offset}
	}
	return fol.Caret(res.Statement, d)
}

func writeYAML(w io.Writer, res Result) error {
	out, err := yaml.Marshal(res)
	if err != nil {
		return fmt.Errorf("cannot encode result: %w", err)
	}
	if _, err = io.WriteString(w, "---\n"); err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
