package scanner

import (
	"fmt"

	fol "github.com/fno2010/first-order-cal"
	"github.com/npillmayer/schuko/tracing"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// tracer traces with key 'fol.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("fol.scanner")
}

// Token types with a fixed meaning for every tokenizer. Token types of a
// language have to be positive.
const (
	EOF   fol.TokType = -1 // end of input
	Error fol.TokType = -2 // no pattern matched; scanning stopped
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() fol.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the LexMachine scanner.
type DefaultToken struct {
	kind   fol.TokType
	lexeme string
	Val    interface{}
	span   fol.Span
}

var _ fol.Token = DefaultToken{}

// MakeDefaultToken creates a token of type typ for a lexeme found at span.
func MakeDefaultToken(typ fol.TokType, lexeme string, span fol.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() fol.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() fol.Span {
	return t.span
}

func (t DefaultToken) String() string {
	switch t.kind {
	case EOF:
		return fmt.Sprintf("<eof>@%d", t.span.From())
	case Error:
		return fmt.Sprintf("<error %q>@%d", t.lexeme, t.span.From())
	}
	return fmt.Sprintf("%q/%d@%d", t.lexeme, t.kind, t.span.From())
}
