package parser

import (
	"fmt"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/token"
)

var unaryOperators = map[token.Kind]ast.UnaryOperator{
	token.Bang:  ast.UnaryOperatorNot,
	token.Minus: ast.UnaryOperatorNegate,
}

var binaryOperators = map[token.Kind]ast.BinaryOperator{
	token.EqualEqual:   ast.BinaryOperatorEqual,
	token.BangEqual:    ast.BinaryOperatorNotEqual,
	token.Less:         ast.BinaryOperatorLess,
	token.LessEqual:    ast.BinaryOperatorLessEqual,
	token.Greater:      ast.BinaryOperatorGreater,
	token.GreaterEqual: ast.BinaryOperatorGreaterEqual,
	token.Plus:         ast.BinaryOperatorPlus,
	token.Minus:        ast.BinaryOperatorMinus,
	token.Star:         ast.BinaryOperatorMultiply,
	token.Slash:        ast.BinaryOperatorDivide,
	token.Comma:        ast.BinaryOperatorComma,
}

// unaryOperator panics on kinds the grammar never routes here.
func unaryOperator(kind token.Kind) ast.UnaryOperator {
	op, ok := unaryOperators[kind]
	if !ok {
		panic(fmt.Sprintf("parser: %v is not a unary operator", kind))
	}
	return op
}

// binaryOperator panics on kinds the grammar never routes here.
func binaryOperator(kind token.Kind) ast.BinaryOperator {
	op, ok := binaryOperators[kind]
	if !ok {
		panic(fmt.Sprintf("parser: %v is not a binary operator", kind))
	}
	return op
}
