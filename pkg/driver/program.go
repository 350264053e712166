package driver

import (
	"errors"

	"lox/interpreter-go/pkg/interpreter"
	"lox/interpreter-go/pkg/parser"
	"lox/interpreter-go/pkg/scanner"
)

// Program is a scanned and parsed source.
type Program struct {
	Source     *Source
	ScanErrors []*scanner.Error
	Results    []parser.Result
}

// Compile scans and parses src. Errors are kept on the program rather than
// returned so that well-formed declarations can still run.
func Compile(src *Source, opts ...parser.Option) *Program {
	tokens, scanErrs := scanner.ScanFrom(src.Text, src.Line)
	return &Program{
		Source:     src,
		ScanErrors: scanErrs,
		Results:    parser.New(tokens, opts...).Parse(),
	}
}

// Diagnostics returns the scan and syntax diagnostics of the program in
// source order of discovery.
func (p *Program) Diagnostics() []interpreter.Diagnostic {
	var out []interpreter.Diagnostic
	for _, err := range p.ScanErrors {
		out = append(out, interpreter.DescribeScanError(err))
	}
	for _, result := range p.Results {
		if result.Err == nil {
			continue
		}
		var perr *parser.ParseError
		if errors.As(result.Err, &perr) {
			out = append(out, interpreter.DescribeParseError(perr))
		}
	}
	return out
}

// Run reports scan errors through report and executes the parsed
// declarations with interp. Scan errors count as syntax errors.
func (p *Program) Run(interp *interpreter.Interpreter, report func(interpreter.Diagnostic)) interpreter.RunSummary {
	for _, err := range p.ScanErrors {
		report(interpreter.DescribeScanError(err))
	}
	summary := interp.Run(p.Results)
	summary.SyntaxErrors += len(p.ScanErrors)
	return summary
}
