package scanner

import (
	"strings"

	fol "github.com/fno2010/first-order-cal"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// lexmachine adapter

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
// After construction it is read-only and may be shared between goroutines.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', '=>', …), a list of keywords ("Exist", "And", …) and a
// map for translating token strings to their values.
//
// Keywords are matched case-sensitive and take priority over patterns added by
// init if both match a lexeme of the same length.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(name), MakeToken(name, tokenIds[name]))
	}
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, input: input, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
//
// LMScanner does not recover from unmatched input: the first position where no
// pattern matches results in a token of type Error, and every call after that
// returns the same token.
type LMScanner struct {
	scanner *lexmachine.Scanner
	input   string
	failed  *DefaultToken
	Error   func(error)
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface.
func (lms *LMScanner) NextToken() fol.Token {
	if lms.failed != nil {
		return *lms.failed
	}
	if lms.scanner == nil {
		return MakeDefaultToken(EOF, "", fol.Span{0, 0})
	}
	tok, err, eof := lms.scanner.Next()
	if err != nil {
		lms.Error(err)
		lms.failed = lms.errorToken(err)
		return *lms.failed
	}
	if eof {
		end := uint64(len(lms.input))
		return MakeDefaultToken(EOF, "", fol.Span{end, end})
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	from := uint64(token.TC)
	return MakeDefaultToken(
		fol.TokType(token.Type),
		string(token.Lexeme),
		fol.Span{from, from + uint64(len(token.Lexeme))},
	)
}

// errorToken packs a scanning error into a token positioned at the first
// byte which could not be consumed.
func (lms *LMScanner) errorToken(err error) *DefaultToken {
	pos := lms.scanner.TC
	if ui, is := err.(*machines.UnconsumedInput); is {
		pos = ui.StartTC
	}
	if pos > len(lms.input) {
		pos = len(lms.input)
	}
	t := MakeDefaultToken(Error, lms.input[pos:], fol.Span{uint64(pos), uint64(len(lms.input))})
	t.Val = err
	return &t
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
