package fol

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// DiagnosticKind tells lexical errors from syntax errors.
type DiagnosticKind int

const (
	Lexical DiagnosticKind = iota + 1
	Syntactic
)

func (k DiagnosticKind) String() string {
	switch k {
	case Lexical:
		return "Lexical Error"
	case Syntactic:
		return "Syntax Error"
	}
	return "Error"
}

// Diagnostic is an error raised while reading a statement. It reports the byte
// offset into the statement where reading stopped. A diagnostic is terminal for
// its statement: no partial tree exists.
type Diagnostic interface {
	error
	Pos() uint64
	Kind() DiagnosticKind
}

// LexicalError is raised when no token pattern matches at Offset.
type LexicalError struct {
	Offset uint64
	Text   string // unmatched input, starting at Offset
}

var _ Diagnostic = (*LexicalError)(nil)

func (e *LexicalError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("lexical error at %d", e.Offset)
	}
	return fmt.Sprintf("lexical error at %d: unexpected %q", e.Offset, firstRune(e.Text))
}

// Pos is part of interface Diagnostic.
func (e *LexicalError) Pos() uint64 { return e.Offset }

// Kind is part of interface Diagnostic.
func (e *LexicalError) Kind() DiagnosticKind { return Lexical }

// SyntaxError is raised when the token stream cannot be reduced to a formula.
// Offset is the start of the unexpected token, or the length of the statement
// if input ended prematurely.
type SyntaxError struct {
	Offset   uint64
	Found    string // lexeme of the unexpected token, empty at end of input
	Expected string // optional hint
}

var _ Diagnostic = (*SyntaxError)(nil)

func (e *SyntaxError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "syntax error at %d", e.Offset)
	if e.Found == "" {
		b.WriteString(": unexpected end of input")
	} else {
		fmt.Fprintf(&b, ": unexpected %q", e.Found)
	}
	if e.Expected != "" {
		fmt.Fprintf(&b, ", expected %s", e.Expected)
	}
	return b.String()
}

// Pos is part of interface Diagnostic.
func (e *SyntaxError) Pos() uint64 { return e.Offset }

// Kind is part of interface Diagnostic.
func (e *SyntaxError) Kind() DiagnosticKind { return Syntactic }

// Caret returns the statement and a second line with a caret placed below the
// offending position, for display on a terminal.
//
//    P[x] @ Q[y]
//         ^
//
func Caret(statement string, d Diagnostic) string {
	pos := int(d.Pos())
	if pos > len(statement) {
		pos = len(statement)
	}
	// count runes, not bytes, so that the caret lines up on a terminal
	col := len([]rune(statement[:pos]))
	return statement + "\n" + strings.Repeat(" ", col) + "^"
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
