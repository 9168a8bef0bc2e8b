package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"flag"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/fno2010/first-order-cal/parser"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// main() starts an interactive CLI if standard input is a terminal and no
// files are given. Otherwise statements are read line by line from the files
// or from standard input.
func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	f := newFlags("folcnf")
	cfg, err := f.configure(args)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	setTraceLevel(tracing.TraceLevelFromString(cfg.Trace))
	tracer().Infof("Trace level is %s", cfg.Trace)
	//
	// the grammar is built once and used for all statements
	g, err := parser.NewGrammar()
	if err != nil {
		tracer().Errorf("%v", err)
		return 3
	}
	intp := &Intp{G: g, cfg: cfg}
	if files := f.Args(); len(files) > 0 {
		return intp.batchFiles(files)
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		if failed, err := intp.Batch(os.Stdin, os.Stdout); err != nil || failed > 0 {
			if err != nil {
				tracer().Errorf("%v", err)
			}
			return 1
		}
		return 0
	}
	//
	// set up REPL
	intp.repl, err = readline.New("> ")
	if err != nil {
		tracer().Errorf("%v", err)
		return 3
	}
	defer intp.repl.Close()
	pterm.Info.Println("Welcome to the first-order logic parser")
	pterm.Print(usage)
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(cfg.Init)
	intp.REPL()
	return 0
}

// batchFiles evaluates the statements of the given files.
func (intp *Intp) batchFiles(files []string) int {
	status := 0
	for _, name := range files {
		in, err := os.Open(name)
		if err != nil {
			tracer().Errorf("%v", err)
			status = 1
			continue
		}
		failed, err := intp.Batch(in, os.Stdout)
		in.Close()
		if err != nil {
			tracer().Errorf("%s: %v", name, err)
		}
		if err != nil || failed > 0 {
			status = 1
		}
	}
	return status
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
