package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"lox/interpreter-go/pkg/logging"
	"lox/interpreter-go/pkg/parser"
	"lox/interpreter-go/pkg/scanner"
)

func TestRunPrintsAndContinuesAfterErrors(t *testing.T) {
	h := newHarness()
	summary := h.run(t, `print 1 + 2;
print "a" + 1;
var x = "ok";
print x
print x;
print 1 / 2;`)

	if got := h.stdout.String(); got != "3\n\"ok\"\n0.5\n" {
		t.Fatalf("unexpected stdout %q", got)
	}
	if summary.Executed != 4 || summary.RuntimeErrors != 1 || summary.SyntaxErrors != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if !summary.Failed() {
		t.Fatalf("expected summary to report failure")
	}
	if len(h.diagnostics) != 2 {
		t.Fatalf("expected 2 diagnostics, got %v", h.diagnostics)
	}
	if got := h.diagnostics[0].String(); got != `[Line 2] Error in ""a" + 1": cannot add non-numeric types` {
		t.Fatalf("unexpected runtime diagnostic %q", got)
	}
	if got := h.diagnostics[1].String(); got != "[Line 5] Error at 'print': statements must end with a semicolon" {
		t.Fatalf("unexpected syntax diagnostic %q", got)
	}
}

func TestRunExpressionStatementPrintsNothing(t *testing.T) {
	h := newHarness()
	summary := h.run(t, "var x = 1; x;")
	if h.stdout.Len() != 0 {
		t.Fatalf("expected no output, got %q", h.stdout.String())
	}
	if summary.Executed != 2 || summary.Failed() {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestRunUnassignedVariable(t *testing.T) {
	h := newHarness()
	h.run(t, "var x;\nx;")
	if len(h.diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", h.diagnostics)
	}
	d := h.diagnostics[0]
	if d.Kind != DiagnosticRuntime || d.Line != 2 {
		t.Fatalf("unexpected diagnostic %#v", d)
	}
	if d.Message != "variable `x` has does not have a value" {
		t.Fatalf("unexpected message %q", d.Message)
	}
}

func TestRunReportsSyntaxErrorAtEnd(t *testing.T) {
	h := newHarness()
	h.run(t, "print 1")
	if len(h.diagnostics) != 1 || h.diagnostics[0].String() != "[Line 1] Error at end: statements must end with a semicolon" {
		t.Fatalf("unexpected diagnostics %v", h.diagnostics)
	}
}

func TestRunSharesEnvironmentAcrossCalls(t *testing.T) {
	h := newHarness()
	h.run(t, "var greeting = \"hi\";")
	h.run(t, "print greeting;")
	if got := h.stdout.String(); got != "\"hi\"\n" {
		t.Fatalf("unexpected stdout %q", got)
	}
}

func TestRunLogsDeclarations(t *testing.T) {
	var logs bytes.Buffer
	var out bytes.Buffer
	interp := New(
		WithStdout(&out),
		WithLogger(logging.New(logging.Config{Level: logging.LevelDebug, Output: &logs})),
		WithReporter(func(Diagnostic) {}),
	)
	tokens, _ := scanner.Scan("print 1;")
	interp.Run(parser.ParseTokens(tokens))
	if !strings.Contains(logs.String(), "execute declaration") || !strings.Contains(logs.String(), "print 1;") {
		t.Fatalf("expected debug log, got %q", logs.String())
	}
}

func TestDescribeScanError(t *testing.T) {
	_, errs := scanner.Scan("\n@")
	if len(errs) != 1 {
		t.Fatalf("expected one scan error, got %v", errs)
	}
	d := DescribeScanError(errs[0])
	if d.Kind != DiagnosticScan || !strings.HasPrefix(d.String(), "[Line 2] Error: ") {
		t.Fatalf("unexpected diagnostic %q", d.String())
	}
}
