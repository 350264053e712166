package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"

	"lox/interpreter-go/pkg/driver"
	"lox/interpreter-go/pkg/interpreter"
	"lox/interpreter-go/pkg/logging"
)

const cliToolVersion = "lox 0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	return newCLI(os.Stdin, os.Stdout, os.Stderr).run(args)
}

type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	workDir    string
	revision   string
	debug      bool

	config   *driver.Config
	logger   *slog.Logger
	errColor *color.Color
	astColor *color.Color
}

func newCLI(stdin io.Reader, stdout, stderr io.Writer) *cli {
	return &cli{
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		errColor: color.New(color.FgRed),
		astColor: color.New(color.Faint),
	}
}

func (c *cli) run(args []string) int {
	opts, optind, err := getopt.Getopts(append([]string{"lox"}, args...), "c:C:dhVr:")
	if err != nil {
		fmt.Fprintf(c.stderr, "lox: %v\n", err)
		printUsage(c.stderr)
		return 1
	}
	rest := args[optind-1:]
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			c.configPath = opt.Value
		case 'C':
			c.workDir = opt.Value
		case 'd':
			c.debug = true
		case 'r':
			c.revision = opt.Value
		case 'h':
			printUsage(c.stdout)
			return 0
		case 'V':
			fmt.Fprintln(c.stdout, cliToolVersion)
			return 0
		}
	}

	if len(rest) == 0 {
		printUsage(c.stderr)
		return 1
	}

	switch rest[0] {
	case "help":
		printUsage(c.stdout)
		return 0
	case "version":
		fmt.Fprintln(c.stdout, cliToolVersion)
		return 0
	}

	if err := c.setup(); err != nil {
		fmt.Fprintf(c.stderr, "lox: %v\n", err)
		return 1
	}

	switch rest[0] {
	case "run":
		return c.runScript(rest[1:])
	case "repl":
		return c.runREPL(rest[1:])
	case "parse":
		return c.runParse(rest[1:])
	default:
		fmt.Fprintf(c.stderr, "lox: unknown command %q\n", rest[0])
		printUsage(c.stderr)
		return 1
	}
}

// setup applies -C, loads lox.yml and builds the logger and colour settings.
func (c *cli) setup() error {
	if c.workDir != "" {
		if err := os.Chdir(c.workDir); err != nil {
			return fmt.Errorf("chdir %s: %w", c.workDir, err)
		}
	}

	var err error
	if c.configPath != "" {
		c.config, err = driver.LoadConfig(c.configPath)
	} else {
		c.config, err = driver.LoadConfigFrom(".")
	}
	if err != nil {
		return err
	}

	if level := strings.TrimSpace(os.Getenv("LOX_LOG_LEVEL")); level != "" {
		if _, err := logging.ParseLevel(level); err != nil {
			return err
		}
		c.config.Log.Level = level
	}
	if c.debug {
		c.config.Log.Level = "debug"
	}
	c.logger = logging.New(c.config.Logging(c.stderr))
	c.logger.Debug("configuration loaded", "path", c.config.Path, "color", string(c.config.Color), "max_depth", c.config.MaxDepth)

	switch c.config.Color {
	case driver.ColorAlways:
		c.errColor.EnableColor()
		c.astColor.EnableColor()
	case driver.ColorNever:
		c.errColor.DisableColor()
		c.astColor.DisableColor()
	}
	return nil
}

func (c *cli) report(d interpreter.Diagnostic) {
	c.errColor.Fprintln(c.stderr, d.String())
}

func (c *cli) newInterpreter() *interpreter.Interpreter {
	return interpreter.New(
		interpreter.WithStdout(c.stdout),
		interpreter.WithReporter(c.report),
		interpreter.WithLogger(c.logger),
	)
}

func (c *cli) loadSource(path string) (*driver.Source, error) {
	if c.revision != "" {
		return driver.LoadGitSource(path, c.revision)
	}
	return driver.LoadSource(path)
}

func (c *cli) runScript(args []string) int {
	if len(args) > 1 {
		fmt.Fprintf(c.stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
		return 1
	}
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		entry, err := c.config.EntryPath()
		if err != nil {
			fmt.Fprintln(c.stderr, "lox run requires a source file or an entry in lox.yml")
			return 1
		}
		path = entry
	}

	src, err := c.loadSource(path)
	if err != nil {
		fmt.Fprintf(c.stderr, "lox: %v\n", err)
		return 1
	}
	c.logger.Debug("running script", "source", src.Name, "revision", src.Revision)

	program := driver.Compile(src, c.config.ParserOptions()...)
	if c.config.EchoAST {
		c.echo(program)
	}
	interp := c.newInterpreter()
	summary := program.Run(interp, c.report)
	c.logger.Debug("run finished",
		"executed", summary.Executed,
		"syntax_errors", summary.SyntaxErrors,
		"runtime_errors", summary.RuntimeErrors,
		"globals", interp.GlobalEnvironment().Keys(),
	)
	if summary.Failed() {
		return 1
	}
	return 0
}

func (c *cli) echo(program *driver.Program) {
	for _, result := range program.Results {
		if result.OK() {
			c.astColor.Fprintf(c.stderr, "; %s\n", result.Declaration)
		}
	}
}
