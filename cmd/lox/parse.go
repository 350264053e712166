package main

import (
	"encoding/json"
	"fmt"

	"git.sr.ht/~sircmpwn/getopt"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/driver"
)

// runParse prints the canonical form of every declaration that parses, or a
// JSON array of their trees with -j.
func (c *cli) runParse(args []string) int {
	opts, optind, err := getopt.Getopts(append([]string{"parse"}, args...), "j")
	if err != nil {
		fmt.Fprintf(c.stderr, "lox parse: %v\n", err)
		return 1
	}
	asJSON := false
	for _, opt := range opts {
		if opt.Option == 'j' {
			asJSON = true
		}
	}
	rest := args[optind-1:]
	if len(rest) != 1 {
		fmt.Fprintln(c.stderr, "usage: lox parse [-j] <file>")
		return 1
	}

	src, err := c.loadSource(rest[0])
	if err != nil {
		fmt.Fprintf(c.stderr, "lox: %v\n", err)
		return 1
	}
	program := driver.Compile(src, c.config.ParserOptions()...)
	diagnostics := program.Diagnostics()
	for _, d := range diagnostics {
		c.report(d)
	}

	declarations := make([]ast.Declaration, 0, len(program.Results))
	for _, result := range program.Results {
		if result.OK() {
			declarations = append(declarations, result.Declaration)
		}
	}
	if asJSON {
		data, err := json.MarshalIndent(declarations, "", "  ")
		if err != nil {
			fmt.Fprintf(c.stderr, "lox: encode ast: %v\n", err)
			return 1
		}
		fmt.Fprintln(c.stdout, string(data))
	} else {
		for _, decl := range declarations {
			fmt.Fprintln(c.stdout, decl.String())
		}
	}
	if len(diagnostics) > 0 {
		return 1
	}
	return 0
}
