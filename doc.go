/*
Package fol converts first-order logic formulas into conjunctive normal form.

Formulas are written in a small ASCII syntax:

    Exist[var, exp]             existential quantifier
    Any[var, exp]               universal quantifier
    exp1 And exp2  |  exp1 & exp2
    exp1 Or exp2   |  exp1 | exp2
    Not exp        |  ~ exp
    exp1 => exp2                implication
    exp1 <=> exp2               equivalence
    Name[arg1, arg2, ...]       predicate (Name starts uppercase)

and normalized by the textbook pipeline: eliminate implications, move negation
inwards, standardize variables apart, skolemize, drop universal quantifiers and
distribute disjunction over conjunction. Package structure is as follows:

■ scanner: Package scanner wraps the lexmachine DFA generator into a tokenizer.

■ parser: Package parser holds the grammar of the formula language and a
precedence-climbing parser producing abstract syntax trees.

■ ast: Package ast defines formula trees, terms, cloning and the printer.

■ cnf: Package cnf implements the six normalization passes.

■ pipeline: Package pipeline runs parser and passes for a statement and records
the tree after each stage.

■ cmd/folcnf: Command folcnf is an interactive and batch front end to package
pipeline.

The base package contains token, span and diagnostic types which are used
throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fol
