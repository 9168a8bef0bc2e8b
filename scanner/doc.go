/*
Package scanner provides an adapter to use the lexmachine scanner generator as a
tokenizer for the formula parser.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine has to be initialized by providing keywords and regular expressions.
Package scanner is very opinionated on how to do the setup of lexmachine.

	var literals []string       // The tokens representing literal strings
	var keywords []string       // The keyword tokens
	var tokenIds map[string]int // A map from the token names to their int IDs

	init := func(lexer *lexmachine.Lexer) {
		// initialize lexmachine with all the necessary regular expressions
		//
		// scanner.Skip      is a pre-defined action which ignores the scanned match
		// scanner.MakeToken is a pre-defined action which wraps a scanned match into a
		//                   fol.Token
	}

Keywords are added to the lexer before init is called, literals afterwards.
For lexemes of equal length lexmachine prefers the pattern added first, so
keywords will win over identifier patterns declared in init.

	LM, err := NewLMAdapter(init, literals, keywords, tokenIds)
	if err != nil {
		// do error handling
	}

A scanner is instantiated for each concrete input sequence. Scanners are cheap,
the compiled DFA is shared and never modified after NewLMAdapter returns.

	scan, err := LM.Scanner("input string to tokenize")
	for {
		token := scan.NextToken()
		if token.TokType() == scanner.EOF || token.TokType() == scanner.Error {
			break
		}
		…
	}

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner
