package interpreter

import (
	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

// evaluateArithmetic returns a non-empty message when the operands are not
// valid for op.
func evaluateArithmetic(op ast.BinaryOperator, left runtime.Value, right runtime.Value) (runtime.Value, string) {
	switch lv := left.(type) {
	case runtime.NumberValue:
		rv, ok := right.(runtime.NumberValue)
		if !ok {
			return nil, arithmeticMismatch(op)
		}
		switch op {
		case ast.BinaryOperatorPlus:
			return runtime.NumberValue{Val: lv.Val + rv.Val}, ""
		case ast.BinaryOperatorMinus:
			return runtime.NumberValue{Val: lv.Val - rv.Val}, ""
		case ast.BinaryOperatorMultiply:
			return runtime.NumberValue{Val: lv.Val * rv.Val}, ""
		case ast.BinaryOperatorDivide:
			if rv.Val == 0 {
				return nil, "cannot divide by 0"
			}
			return runtime.NumberValue{Val: lv.Val / rv.Val}, ""
		}
	case runtime.StringValue:
		if op == ast.BinaryOperatorPlus {
			if rv, ok := right.(runtime.StringValue); ok {
				return runtime.StringValue{Val: lv.Val + rv.Val}, ""
			}
		}
	}
	return nil, arithmeticMismatch(op)
}

func arithmeticMismatch(op ast.BinaryOperator) string {
	switch op {
	case ast.BinaryOperatorPlus:
		return "cannot add non-numeric types"
	case ast.BinaryOperatorMinus:
		return "cannot subtract non-numeric types"
	case ast.BinaryOperatorMultiply:
		return "cannot multiply non-numeric types"
	case ast.BinaryOperatorDivide:
		return "cannot divide non-numeric types"
	default:
		return "unsupported arithmetic operator " + string(op)
	}
}

func evaluateComparison(op ast.BinaryOperator, left runtime.Value, right runtime.Value) (runtime.Value, string) {
	lv, lok := left.(runtime.NumberValue)
	rv, rok := right.(runtime.NumberValue)
	if !lok || !rok {
		return nil, "cannot compare non-numeric types"
	}
	switch op {
	case ast.BinaryOperatorLess:
		return runtime.BoolValue{Val: lv.Val < rv.Val}, ""
	case ast.BinaryOperatorLessEqual:
		return runtime.BoolValue{Val: lv.Val <= rv.Val}, ""
	case ast.BinaryOperatorGreater:
		return runtime.BoolValue{Val: lv.Val > rv.Val}, ""
	case ast.BinaryOperatorGreaterEqual:
		return runtime.BoolValue{Val: lv.Val >= rv.Val}, ""
	default:
		return nil, "unsupported comparison operator " + string(op)
	}
}
