package fol

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Constants for the first-order logic
// language are defined by package parser.
type TokType int

// Tokens represent input tokens. They are produced by a scanner and
// reflect terminals of the formula language.
//
// An example would be a token for a predicate symbol:
//
//	TokType = PRED        // identifier for this kind of tokens
//	Lexeme  = "Parent"    // lexeme how it appeared in the input stream
//	Span    = 7…13        // occured from byte position 7 in the input stream
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. A span
// denotes a start position and the position just behind the end, both as
// byte offsets into the statement.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
