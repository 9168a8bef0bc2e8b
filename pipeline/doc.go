/*
Package pipeline evaluates statements: it reads a formula and runs it through
the normalization passes of package cnf, recording a snapshot of the tree
after every stage.

	g, _ := parser.NewGrammar()
	trace, err := pipeline.Evaluate(g, "Any[x, Exist[y, P[x, y]]]")
	if err != nil {
	    var d fol.Diagnostic
	    if errors.As(err, &d) {
	        fmt.Println(fol.Caret(statement, d))
	    }
	}
	for _, snap := range trace.Snapshots {
	    fmt.Printf("%s: %s\n", snap.Stage, snap.Rendered)
	}

Every call to Evaluate works on a fresh token stream and a fresh tree, so a
malformed statement never affects later calls. A Grammar may be shared by
concurrent calls.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pipeline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fol.pipeline'.
func tracer() tracing.Trace {
	return tracing.Select("fol.pipeline")
}
