package interpreter

import "lox/interpreter-go/pkg/ast"

// RuntimeError reports a failed evaluation together with the expression that
// was being evaluated.
type RuntimeError struct {
	Message    string
	Expression ast.Expression
}

func newRuntimeError(expr ast.Expression, message string) *RuntimeError {
	return &RuntimeError{Message: message, Expression: expr}
}

func (e *RuntimeError) Error() string {
	if e.Expression == nil {
		return e.Message
	}
	return e.Message + ` in "` + e.Expression.String() + `"`
}
