package interpreter

import (
	"fmt"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateDeclaration(node ast.Declaration, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.VarDeclaration:
		env.Declare(n.Name)
		return runtime.VoidValue{}, nil
	case *ast.VarDefinition:
		val, err := i.evaluateExpression(n.Value, env)
		if err != nil {
			return nil, err
		}
		env.Bind(n.Name, val)
		return runtime.VoidValue{}, nil
	case *ast.StatementDeclaration:
		return i.evaluateStatement(n.Statement, env)
	default:
		return nil, fmt.Errorf("unsupported declaration node %T", node)
	}
}

func (i *Interpreter) evaluateStatement(node ast.Statement, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.ExpressionStatement:
		if _, err := i.evaluateExpression(n.Expression, env); err != nil {
			return nil, err
		}
		return runtime.VoidValue{}, nil
	case *ast.PrintStatement:
		val, err := i.evaluateExpression(n.Expression, env)
		if err != nil {
			return nil, err
		}
		if _, err := fmt.Fprintln(i.stdout, FormatValue(val)); err != nil {
			return nil, fmt.Errorf("print: %w", err)
		}
		return runtime.VoidValue{}, nil
	default:
		return nil, fmt.Errorf("unsupported statement node %T", node)
	}
}
