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

	"github.com/goccy/go-yaml"
)

// Output formats for batch mode.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds the settings of a run. It may be loaded from a YAML file:
//
//    trace: Debug
//    init: statements.txt
//    diff: true
//    tree: false
//    format: yaml
//    lexical: false
//
type Config struct {
	Trace   string `yaml:"trace"`
	Init    string `yaml:"init"`
	Diff    bool   `yaml:"diff"`
	Tree    bool   `yaml:"tree"`
	Format  string `yaml:"format"`
	Lexical bool   `yaml:"lexical"` // compare variable suffixes as text
}

func defaultConfig() *Config {
	return &Config{
		Trace:  "Info",
		Format: FormatText,
	}
}

// loadConfig reads a YAML configuration file. Settings missing from the file
// keep their defaults.
func loadConfig(filename string) (*Config, error) {
	cfg := defaultConfig()
	if filename == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config %s: %w", filename, err)
	}
	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Format {
	case FormatText, FormatYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q", cfg.Format)
}

// flags are the command line options. They override settings from a config
// file if given explicitly.
type flags struct {
	set     *flag.FlagSet
	config  *string
	trace   *string
	init    *string
	diff    *bool
	tree    *bool
	format  *string
	lexical *bool
}

func newFlags(name string) *flags {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	return &flags{
		set:     set,
		config:  set.String("config", "", "Configuration file (YAML)"),
		trace:   set.String("trace", "Info", "Trace level [Debug|Info|Error]"),
		init:    set.String("init", "", "Statements to evaluate before the prompt"),
		diff:    set.Bool("diff", false, "Show changes from stage to stage"),
		tree:    set.Bool("tree", false, "Show the clauses of the result as a tree"),
		format:  set.String("format", FormatText, "Batch output format [text|yaml]"),
		lexical: set.Bool("lexical", false, "Compare variable suffixes as text (legacy)"),
	}
}

// configure parses the command line and returns the resulting configuration.
func (f *flags) configure(args []string) (*Config, error) {
	if err := f.set.Parse(args); err != nil {
		return nil, err
	}
	cfg, err := loadConfig(*f.config)
	if err != nil {
		return nil, err
	}
	f.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "trace":
			cfg.Trace = *f.trace
		case "init":
			cfg.Init = *f.init
		case "diff":
			cfg.Diff = *f.diff
		case "tree":
			cfg.Tree = *f.tree
		case "format":
			cfg.Format = *f.format
		case "lexical":
			cfg.Lexical = *f.lexical
		}
	})
	if err = cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Args returns the arguments remaining after the flags.
func (f *flags) Args() []string {
	return f.set.Args()
}
