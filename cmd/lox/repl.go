package main

import (
	"bufio"
	"fmt"
	"strings"

	"lox/interpreter-go/pkg/driver"
)

const replPrompt = ">>> "

// runREPL evaluates stdin line by line against one shared environment until
// end of input. Errors are reported and the session continues.
func (c *cli) runREPL(args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(c.stderr, "lox repl does not take arguments (received %s)\n", strings.Join(args, " "))
		return 1
	}
	interp := c.newInterpreter()
	scanner := bufio.NewScanner(c.stdin)
	line := 0
	for {
		fmt.Fprint(c.stdout, replPrompt)
		if !scanner.Scan() {
			break
		}
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		program := driver.Compile(&driver.Source{Name: fmt.Sprintf("<repl:%d>", line), Text: text, Line: line}, c.config.ParserOptions()...)
		if c.config.EchoAST {
			c.echo(program)
		}
		program.Run(interp, c.report)
	}
	fmt.Fprintln(c.stdout)
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(c.stderr, "lox: read input: %v\n", err)
		return 1
	}
	return 0
}
