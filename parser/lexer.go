package parser

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	fol "github.com/fno2010/first-order-cal"
	"github.com/fno2010/first-order-cal/scanner"
	"github.com/timtadh/lexmachine"
)

// Token types of the formula language.
const (
	VAR fol.TokType = iota + 1
	PRED
	EXIST
	ANY
	AND
	OR
	NOT
	IMPLIES
	IFF
	LBRACKET
	RBRACKET
	COMMA
	LPAREN
	RPAREN
)

// The tokens representing literal lexemes
var literals = []string{"[", "]", ",", "(", ")", "&", "|", "~", "=>", "<=>"}

// The keyword tokens. They would otherwise be scanned as VAR or PRED.
var keywords = []string{"Exist", "Any", "And", "Or", "Not"}

// tokenIds maps token names and lexemes to token types.
var tokenIds = map[string]int{
	"VAR":   int(VAR),
	"PRED":  int(PRED),
	"Exist": int(EXIST),
	"Any":   int(ANY),
	"And":   int(AND),
	"Or":    int(OR),
	"Not":   int(NOT),
	"&":     int(AND),
	"|":     int(OR),
	"~":     int(NOT),
	"=>":    int(IMPLIES),
	"<=>":   int(IFF),
	"[":     int(LBRACKET),
	"]":     int(RBRACKET),
	",":     int(COMMA),
	"(":     int(LPAREN),
	")":     int(RPAREN),
}

var tokenNames = map[fol.TokType]string{
	VAR:           "variable",
	PRED:          "predicate",
	EXIST:         "'Exist'",
	ANY:           "'Any'",
	AND:           "'And'",
	OR:            "'Or'",
	NOT:           "'Not'",
	IMPLIES:       "'=>'",
	IFF:           "'<=>'",
	LBRACKET:      "'['",
	RBRACKET:      "']'",
	COMMA:         "','",
	LPAREN:        "'('",
	RPAREN:        "')'",
	scanner.EOF:   "end of input",
	scanner.Error: "invalid input",
}

// TokenName returns a human readable name for a token type.
func TokenName(t fol.TokType) string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", t)
}

// Lexer creates a new lexmachine lexer for the formula language.
func Lexer() (*scanner.LMAdapter, error) {
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[a-z]([a-z]|[A-Z]|[0-9])*`), makeToken("VAR"))
		lexer.Add([]byte(`[A-Z]([a-z]|[A-Z]|[0-9])*`), makeToken("PRED"))
		lexer.Add([]byte(`( |\t)+`), scanner.Skip)
	}
	adapter, err := scanner.NewLMAdapter(init, literals, keywords, tokenIds)
	if err != nil {
		return nil, fmt.Errorf("cannot create lexer: %w", err)
	}
	return adapter, nil
}

func makeToken(s string) lexmachine.Action {
	id, ok := tokenIds[s]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", s))
	}
	return scanner.MakeToken(s, id)
}
