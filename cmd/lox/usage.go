package main

import (
	"fmt"
	"io"
)

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `usage: lox [options] <command> [args]

commands:
  run [file]         run a script (defaults to the entry in lox.yml)
  repl               start an interactive session
  parse [-j] <file>  print the parsed declarations (-j for JSON)
  version            print the version
  help               show this message

options:
  -c FILE   use FILE instead of the nearest lox.yml
  -C DIR    change to DIR before doing anything else
  -d        enable debug logging
  -r REV    read the script from git revision REV
  -h        show this message
  -V        print the version
`)
}
