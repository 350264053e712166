package interpreter

import (
	"errors"
	"fmt"

	"lox/interpreter-go/pkg/parser"
	"lox/interpreter-go/pkg/scanner"
	"lox/interpreter-go/pkg/token"
)

type DiagnosticKind string

const (
	DiagnosticScan    DiagnosticKind = "scan"
	DiagnosticSyntax  DiagnosticKind = "syntax"
	DiagnosticRuntime DiagnosticKind = "runtime"
)

// Diagnostic is one user-facing error line.
type Diagnostic struct {
	Kind    DiagnosticKind
	Line    int
	Context string
	Message string
}

// String renders `[Line n] Error <context>: <message>`.
func (d Diagnostic) String() string {
	if d.Context == "" {
		return fmt.Sprintf("[Line %d] Error: %s", d.Line, d.Message)
	}
	return fmt.Sprintf("[Line %d] Error %s: %s", d.Line, d.Context, d.Message)
}

// DescribeParseError locates a syntax error at its offending token.
func DescribeParseError(err *parser.ParseError) Diagnostic {
	context := fmt.Sprintf("at '%s'", err.Token.Lexeme())
	if err.Token.Kind == token.EOF {
		context = "at end"
	}
	return Diagnostic{Kind: DiagnosticSyntax, Line: err.Token.Line, Context: context, Message: err.Message}
}

// DescribeRuntimeError attributes a runtime error to the declaration that
// started on line.
func DescribeRuntimeError(err *RuntimeError, line int) Diagnostic {
	d := Diagnostic{Kind: DiagnosticRuntime, Line: line, Message: err.Message}
	if err.Expression != nil {
		d.Context = `in "` + err.Expression.String() + `"`
	}
	return d
}

func DescribeScanError(err *scanner.Error) Diagnostic {
	return Diagnostic{Kind: DiagnosticScan, Line: err.Line, Message: err.Message}
}

func describeSyntaxFailure(err error, line int) Diagnostic {
	var perr *parser.ParseError
	if errors.As(err, &perr) {
		return DescribeParseError(perr)
	}
	return Diagnostic{Kind: DiagnosticSyntax, Line: line, Message: err.Error()}
}

func describeRuntimeFailure(err error, line int) Diagnostic {
	var rerr *RuntimeError
	if errors.As(err, &rerr) {
		return DescribeRuntimeError(rerr, line)
	}
	return Diagnostic{Kind: DiagnosticRuntime, Line: line, Message: err.Error()}
}
