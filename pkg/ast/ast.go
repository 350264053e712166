package ast

import (
	"fmt"
	"math"
	"strconv"
)

type NodeType string

const (
	NodeStringLiteral        NodeType = "StringLiteral"
	NodeNumberLiteral        NodeType = "NumberLiteral"
	NodeBooleanLiteral       NodeType = "BooleanLiteral"
	NodeNilLiteral           NodeType = "NilLiteral"
	NodeGroupingExpression   NodeType = "GroupingExpression"
	NodeUnaryExpression      NodeType = "UnaryExpression"
	NodeBinaryExpression     NodeType = "BinaryExpression"
	NodeTernaryExpression    NodeType = "TernaryExpression"
	NodeVariableExpression   NodeType = "VariableExpression"
	NodeExpressionStatement  NodeType = "ExpressionStatement"
	NodePrintStatement       NodeType = "PrintStatement"
	NodeVarDeclaration       NodeType = "VarDeclaration"
	NodeVarDefinition        NodeType = "VarDefinition"
	NodeStatementDeclaration NodeType = "StatementDeclaration"
)

// Node is implemented by every syntax tree element. String renders the
// canonical source form of the node.
type Node interface {
	NodeType() NodeType
	String() string
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

type Declaration interface {
	Node
	declarationNode()
}

type declarationMarker struct{}

func (declarationMarker) declarationNode() {}

// Literals

type StringLiteral struct {
	nodeImpl
	expressionMarker

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

func (l *StringLiteral) String() string {
	return `"` + l.Value + `"`
}

type NumberLiteral struct {
	nodeImpl
	expressionMarker

	Value float64 `json:"value"`
}

func NewNumberLiteral(value float64) *NumberLiteral {
	return &NumberLiteral{nodeImpl: newNodeImpl(NodeNumberLiteral), Value: value}
}

func (l *NumberLiteral) String() string {
	return FormatNumber(l.Value)
}

type BooleanLiteral struct {
	nodeImpl
	expressionMarker

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

func (l *BooleanLiteral) String() string {
	return strconv.FormatBool(l.Value)
}

type NilLiteral struct {
	nodeImpl
	expressionMarker
}

func NewNilLiteral() *NilLiteral {
	return &NilLiteral{nodeImpl: newNodeImpl(NodeNilLiteral)}
}

func (*NilLiteral) String() string {
	return "nil"
}

// FormatNumber renders a float in its shortest natural decimal form.
func FormatNumber(value float64) string {
	switch {
	case math.IsInf(value, 1):
		return "inf"
	case math.IsInf(value, -1):
		return "-inf"
	case math.IsNaN(value):
		return "NaN"
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Expressions

type GroupingExpression struct {
	nodeImpl
	expressionMarker

	Expression Expression `json:"expression"`
}

func NewGroupingExpression(inner Expression) *GroupingExpression {
	return &GroupingExpression{nodeImpl: newNodeImpl(NodeGroupingExpression), Expression: inner}
}

func (g *GroupingExpression) String() string {
	return fmt.Sprintf("(%s)", g.Expression)
}

type UnaryOperator string

const (
	UnaryOperatorNot    UnaryOperator = "!"
	UnaryOperatorNegate UnaryOperator = "-"
)

type UnaryExpression struct {
	nodeImpl
	expressionMarker

	Operator UnaryOperator `json:"operator"`
	Operand  Expression    `json:"operand"`
}

func NewUnaryExpression(operator UnaryOperator, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Operator: operator, Operand: operand}
}

func (u *UnaryExpression) String() string {
	return string(u.Operator) + u.Operand.String()
}

type BinaryOperator string

const (
	BinaryOperatorEqual        BinaryOperator = "=="
	BinaryOperatorNotEqual     BinaryOperator = "!="
	BinaryOperatorLess         BinaryOperator = "<"
	BinaryOperatorLessEqual    BinaryOperator = "<="
	BinaryOperatorGreater      BinaryOperator = ">"
	BinaryOperatorGreaterEqual BinaryOperator = ">="
	BinaryOperatorPlus         BinaryOperator = "+"
	BinaryOperatorMinus        BinaryOperator = "-"
	BinaryOperatorMultiply     BinaryOperator = "*"
	BinaryOperatorDivide       BinaryOperator = "/"
	BinaryOperatorComma        BinaryOperator = ","
)

type BinaryExpression struct {
	nodeImpl
	expressionMarker

	Operator BinaryOperator `json:"operator"`
	Left     Expression     `json:"left"`
	Right    Expression     `json:"right"`
}

func NewBinaryExpression(operator BinaryOperator, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}

func (b *BinaryExpression) String() string {
	return fmt.Sprintf("%s %s %s", b.Left, b.Operator, b.Right)
}

type TernaryExpression struct {
	nodeImpl
	expressionMarker

	Condition  Expression `json:"condition"`
	ThenBranch Expression `json:"thenBranch"`
	ElseBranch Expression `json:"elseBranch"`
}

func NewTernaryExpression(condition, thenBranch, elseBranch Expression) *TernaryExpression {
	return &TernaryExpression{
		nodeImpl:   newNodeImpl(NodeTernaryExpression),
		Condition:  condition,
		ThenBranch: thenBranch,
		ElseBranch: elseBranch,
	}
}

func (t *TernaryExpression) String() string {
	return fmt.Sprintf("%s ? %s : %s", t.Condition, t.ThenBranch, t.ElseBranch)
}

type VariableExpression struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
}

func NewVariableExpression(name string) *VariableExpression {
	return &VariableExpression{nodeImpl: newNodeImpl(NodeVariableExpression), Name: name}
}

func (v *VariableExpression) String() string {
	return v.Name
}

// Statements

type ExpressionStatement struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewExpressionStatement(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{nodeImpl: newNodeImpl(NodeExpressionStatement), Expression: expr}
}

func (s *ExpressionStatement) String() string {
	return s.Expression.String() + ";"
}

type PrintStatement struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewPrintStatement(expr Expression) *PrintStatement {
	return &PrintStatement{nodeImpl: newNodeImpl(NodePrintStatement), Expression: expr}
}

func (s *PrintStatement) String() string {
	return "print " + s.Expression.String() + ";"
}
