/*
Package parser reads first-order logic statements into formula trees.

Grammar

    exp      ::=  Exist '[' VAR ',' exp ']'
               |  Any '[' VAR ',' exp ']'
               |  Not exp
               |  exp And exp
               |  exp Or exp
               |  exp '=>' exp
               |  exp '<=>' exp
               |  '(' exp ')'
               |  PRED '[' var_list ']'
    var_list ::=  VAR  |  var_list ',' VAR

The grammar alone is ambiguous for mixed connectives. Ambiguities are resolved
by an explicit operator table, lowest to highest binding strength:

    <=>    right-associative
    =>     right-associative
    Or     left-associative
    And    left-associative
    Not    prefix

Quantifier bodies extend to the matching ']'. '&', '|' and '~' are accepted
as synonyms for And, Or and Not.

Usage

A Grammar is created once and may then be used for any number of statements,
concurrently if need be:

    g, err := parser.NewGrammar()
    …
    tree, err := g.Parse("Any[x, P[x] => Q[x]]")
    if d, ok := err.(fol.Diagnostic); ok {
        fmt.Println(fol.Caret(input, d))
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fol.parser'
func tracer() tracing.Trace {
	return tracing.Select("fol.parser")
}
