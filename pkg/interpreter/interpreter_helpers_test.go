package interpreter

import (
	"bytes"
	"testing"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/parser"
	"lox/interpreter-go/pkg/runtime"
	"lox/interpreter-go/pkg/scanner"
)

type harness struct {
	interp      *Interpreter
	stdout      *bytes.Buffer
	diagnostics []Diagnostic
}

func newHarness() *harness {
	h := &harness{stdout: &bytes.Buffer{}}
	h.interp = New(
		WithStdout(h.stdout),
		WithReporter(func(d Diagnostic) { h.diagnostics = append(h.diagnostics, d) }),
	)
	return h
}

func (h *harness) run(t *testing.T, src string) RunSummary {
	t.Helper()
	tokens, errs := scanner.Scan(src)
	if len(errs) != 0 {
		t.Fatalf("scan %q: %v", src, errs)
	}
	return h.interp.Run(parser.ParseTokens(tokens))
}

func mustEvaluate(t *testing.T, interp *Interpreter, expr ast.Expression) runtime.Value {
	t.Helper()
	val, err := interp.Evaluate(expr)
	if err != nil {
		t.Fatalf("evaluate %s: %v", expr, err)
	}
	return val
}

func evaluateSource(t *testing.T, interp *Interpreter, src string) (runtime.Value, error) {
	t.Helper()
	tokens, errs := scanner.Scan(src + ";")
	if len(errs) != 0 {
		t.Fatalf("scan %q: %v", src, errs)
	}
	results := parser.ParseTokens(tokens)
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("parse %q: %#v", src, results)
	}
	decl, ok := results[0].Declaration.(*ast.StatementDeclaration)
	if !ok {
		t.Fatalf("expected statement declaration, got %T", results[0].Declaration)
	}
	stmt, ok := decl.Statement.(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected expression statement, got %T", decl.Statement)
	}
	return interp.Evaluate(stmt.Expression)
}
