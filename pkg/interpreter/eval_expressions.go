package interpreter

import (
	"fmt"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.NumberLiteral:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.NilLiteral:
		return runtime.NilValue{}, nil
	case *ast.GroupingExpression:
		return i.evaluateExpression(n.Expression, env)
	case *ast.UnaryExpression:
		return i.evaluateUnaryExpression(n, env)
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n, env)
	case *ast.TernaryExpression:
		return i.evaluateTernaryExpression(n, env)
	case *ast.VariableExpression:
		return i.evaluateVariableExpression(n, env)
	default:
		return nil, fmt.Errorf("unsupported expression node %T", node)
	}
}

func (i *Interpreter) evaluateUnaryExpression(expr *ast.UnaryExpression, env *runtime.Environment) (runtime.Value, error) {
	operand, err := i.evaluateExpression(expr.Operand, env)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case ast.UnaryOperatorNot:
		return runtime.BoolValue{Val: !isTruthy(operand)}, nil
	case ast.UnaryOperatorNegate:
		if num, ok := operand.(runtime.NumberValue); ok {
			return runtime.NumberValue{Val: -num.Val}, nil
		}
		return nil, newRuntimeError(expr, "cannot negate non-numerical value")
	default:
		return nil, fmt.Errorf("unsupported unary operator %s", expr.Operator)
	}
}

// evaluateBinaryExpression always evaluates both operands left to right
// before applying the operator.
func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	leftVal, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	rightVal, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}

	switch expr.Operator {
	case ast.BinaryOperatorComma:
		return rightVal, nil
	case ast.BinaryOperatorPlus, ast.BinaryOperatorMinus, ast.BinaryOperatorMultiply, ast.BinaryOperatorDivide:
		val, msg := evaluateArithmetic(expr.Operator, leftVal, rightVal)
		if msg != "" {
			return nil, newRuntimeError(expr, msg)
		}
		return val, nil
	case ast.BinaryOperatorLess, ast.BinaryOperatorLessEqual, ast.BinaryOperatorGreater, ast.BinaryOperatorGreaterEqual:
		val, msg := evaluateComparison(expr.Operator, leftVal, rightVal)
		if msg != "" {
			return nil, newRuntimeError(expr, msg)
		}
		return val, nil
	case ast.BinaryOperatorEqual:
		return runtime.BoolValue{Val: valuesEqual(leftVal, rightVal)}, nil
	case ast.BinaryOperatorNotEqual:
		return runtime.BoolValue{Val: !valuesEqual(leftVal, rightVal)}, nil
	default:
		return nil, fmt.Errorf("unsupported binary operator %s", expr.Operator)
	}
}

// evaluateTernaryExpression evaluates only the selected branch.
func (i *Interpreter) evaluateTernaryExpression(expr *ast.TernaryExpression, env *runtime.Environment) (runtime.Value, error) {
	condition, err := i.evaluateExpression(expr.Condition, env)
	if err != nil {
		return nil, err
	}
	if isTruthy(condition) {
		return i.evaluateExpression(expr.ThenBranch, env)
	}
	return i.evaluateExpression(expr.ElseBranch, env)
}

func (i *Interpreter) evaluateVariableExpression(expr *ast.VariableExpression, env *runtime.Environment) (runtime.Value, error) {
	val, ok := env.Lookup(expr.Name)
	if !ok {
		return nil, newRuntimeError(expr, fmt.Sprintf("unknown variable `%s`", expr.Name))
	}
	if runtime.IsVoid(val) {
		return nil, newRuntimeError(expr, fmt.Sprintf("variable `%s` has does not have a value", expr.Name))
	}
	return val, nil
}
