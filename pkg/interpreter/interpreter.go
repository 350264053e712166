package interpreter

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/logging"
	"lox/interpreter-go/pkg/runtime"
)

// Interpreter evaluates parsed declarations against a global environment.
type Interpreter struct {
	global *runtime.Environment
	stdout io.Writer
	report func(Diagnostic)
	logger *slog.Logger
}

type Option func(*Interpreter)

// WithStdout redirects print statement output.
func WithStdout(w io.Writer) Option {
	return func(i *Interpreter) {
		if w != nil {
			i.stdout = w
		}
	}
}

// WithReporter installs the sink for syntax and runtime diagnostics produced
// by Run. The default writes each diagnostic to stderr.
func WithReporter(report func(Diagnostic)) Option {
	return func(i *Interpreter) {
		if report != nil {
			i.report = report
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(i *Interpreter) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithEnvironment evaluates against env instead of a fresh global frame.
func WithEnvironment(env *runtime.Environment) Option {
	return func(i *Interpreter) {
		if env != nil {
			i.global = env
		}
	}
}

// New returns an interpreter with an empty global environment.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		global: runtime.NewEnvironment(nil),
		stdout: os.Stdout,
		report: func(d Diagnostic) { fmt.Fprintln(os.Stderr, d.String()) },
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// GlobalEnvironment returns the interpreter's global environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// Evaluate reduces expr to a value in the global environment.
func (i *Interpreter) Evaluate(expr ast.Expression) (runtime.Value, error) {
	return i.evaluateExpression(expr, i.global)
}

// Execute runs one declaration. Effects that happened before a runtime error
// are kept.
func (i *Interpreter) Execute(decl ast.Declaration) (runtime.Value, error) {
	return i.evaluateDeclaration(decl, i.global)
}

// isTruthy treats only false and nil as false.
func isTruthy(val runtime.Value) bool {
	switch v := val.(type) {
	case runtime.BoolValue:
		return v.Val
	case runtime.NilValue:
		return false
	default:
		return true
	}
}

// valuesEqual compares same-kind pairs by value; mixed kinds are never equal.
func valuesEqual(left runtime.Value, right runtime.Value) bool {
	switch lv := left.(type) {
	case runtime.StringValue:
		if rv, ok := right.(runtime.StringValue); ok {
			return lv.Val == rv.Val
		}
	case runtime.BoolValue:
		if rv, ok := right.(runtime.BoolValue); ok {
			return lv.Val == rv.Val
		}
	case runtime.NumberValue:
		if rv, ok := right.(runtime.NumberValue); ok {
			return lv.Val == rv.Val
		}
	case runtime.NilValue:
		_, ok := right.(runtime.NilValue)
		return ok
	}
	return false
}
