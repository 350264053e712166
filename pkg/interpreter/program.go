package interpreter

import (
	"fmt"

	"lox/interpreter-go/pkg/parser"
	"lox/interpreter-go/pkg/runtime"
)

// RunSummary counts the outcomes of a Run.
type RunSummary struct {
	Executed      int
	SyntaxErrors  int
	RuntimeErrors int
}

// Failed reports whether any diagnostic was produced.
func (s RunSummary) Failed() bool {
	return s.SyntaxErrors > 0 || s.RuntimeErrors > 0
}

// Run executes results in order. Syntax failures and runtime errors are sent
// to the reporter and execution continues with the next declaration.
func (i *Interpreter) Run(results []parser.Result) RunSummary {
	var summary RunSummary
	for _, result := range results {
		if result.Err != nil {
			summary.SyntaxErrors++
			i.report(describeSyntaxFailure(result.Err, result.Line))
			continue
		}
		i.logger.Debug("execute declaration", "line", result.Line, "declaration", result.Declaration.String())
		val, err := i.Execute(result.Declaration)
		if err != nil {
			summary.RuntimeErrors++
			i.logger.Debug("runtime error", "line", result.Line, "error", err)
			i.report(describeRuntimeFailure(err, result.Line))
			continue
		}
		summary.Executed++
		if val != nil && !runtime.IsVoid(val) {
			fmt.Fprintln(i.stdout, FormatValue(val))
		}
	}
	return summary
}
