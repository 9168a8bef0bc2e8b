/*
Command folcnf converts first-order logic statements to conjunctive normal
form and shows every intermediate stage.

Started on a terminal, folcnf prompts for statements. The commands help (h),
quit (q) and example (e) are recognized; every other line is read as a
statement. With input redirected, or with file arguments, statements are read
one per line and results are written as text or as a stream of YAML documents.

	folcnf [-trace level] [-config file] [-init file] [-diff] [-tree]
	       [-format text|yaml] [-lexical] [file ...]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fol.cmd'
func tracer() tracing.Trace {
	return tracing.Select("fol.cmd")
}

// traceKeys lists the trace keys of all packages of this module.
var traceKeys = []string{
	"fol.scanner",
	"fol.parser",
	"fol.ast",
	"fol.cnf",
	"fol.pipeline",
	"fol.cmd",
}

func setTraceLevel(l tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
}
