package ast

// Literal helpers.

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func Num(value float64) *NumberLiteral {
	return NewNumberLiteral(value)
}

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}

func Nil() *NilLiteral {
	return NewNilLiteral()
}

// Expression helpers.

func ID(name string) *VariableExpression {
	return NewVariableExpression(name)
}

func Group(inner Expression) *GroupingExpression {
	return NewGroupingExpression(inner)
}

func Un(operator UnaryOperator, operand Expression) *UnaryExpression {
	return NewUnaryExpression(operator, operand)
}

func Bin(operator BinaryOperator, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(operator, left, right)
}

func Tern(condition, thenBranch, elseBranch Expression) *TernaryExpression {
	return NewTernaryExpression(condition, thenBranch, elseBranch)
}

// Statement and declaration helpers.

func ExprStmt(expr Expression) *StatementDeclaration {
	return NewStatementDeclaration(NewExpressionStatement(expr))
}

func Print(expr Expression) *StatementDeclaration {
	return NewStatementDeclaration(NewPrintStatement(expr))
}

func Var(name string) *VarDeclaration {
	return NewVarDeclaration(name)
}

func VarInit(name string, value Expression) *VarDefinition {
	return NewVarDefinition(name, value)
}
