package parser

import (
	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/token"
)

var (
	equalityOperators   = []token.Kind{token.EqualEqual, token.BangEqual}
	comparisonOperators = []token.Kind{token.Less, token.LessEqual, token.Greater, token.GreaterEqual}
	termOperators       = []token.Kind{token.Plus, token.Minus}
	factorOperators     = []token.Kind{token.Star, token.Slash}
)

func (p *Parser) parseExpression() (ast.Expression, error) {
	if err := p.descend(); err != nil {
		return nil, err
	}
	defer p.ascend()
	return p.parseComma()
}

func (p *Parser) parseComma() (ast.Expression, error) {
	expr, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	for p.match(token.Comma) {
		op := binaryOperator(p.previous().Kind)
		right, err := p.parseTernary()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinaryExpression(op, expr, right)
	}
	return expr, nil
}

// parseTernary reads the middle branch at comma level and the else branch at
// equality level, so `a ? b, c : d` is one ternary while `a ? b : c ? d : e`
// is a syntax error.
func (p *Parser) parseTernary() (ast.Expression, error) {
	condition, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	if !p.match(token.QuestionMark) {
		return condition, nil
	}
	thenBranch, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.match(token.Colon) {
		return nil, p.errorAtCurrent(msgUnterminatedTernary)
	}
	elseBranch, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	return ast.NewTernaryExpression(condition, thenBranch, elseBranch), nil
}

func (p *Parser) parseEquality() (ast.Expression, error) {
	return p.parseBinaryLevel(p.parseComparison, equalityOperators)
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	return p.parseBinaryLevel(p.parseTerm, comparisonOperators)
}

func (p *Parser) parseTerm() (ast.Expression, error) {
	return p.parseBinaryLevel(p.parseFactor, termOperators)
}

func (p *Parser) parseFactor() (ast.Expression, error) {
	return p.parseBinaryLevel(p.parseUnary, factorOperators)
}

// parseBinaryLevel folds a left-associative chain of operands produced by next.
func (p *Parser) parseBinaryLevel(next func() (ast.Expression, error), operators []token.Kind) (ast.Expression, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(operators...) {
		op := binaryOperator(p.previous().Kind)
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinaryExpression(op, expr, right)
	}
	return expr, nil
}

// parseUnary takes a single operator and a primary operand, so `!!x` and
// `--1` need parentheses.
func (p *Parser) parseUnary() (ast.Expression, error) {
	if !p.match(token.Bang, token.Minus) {
		return p.parsePrimary()
	}
	op := unaryOperator(p.previous().Kind)
	operand, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return ast.NewUnaryExpression(op, operand), nil
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch {
	case p.match(token.False):
		return ast.NewBooleanLiteral(false), nil
	case p.match(token.True):
		return ast.NewBooleanLiteral(true), nil
	case p.match(token.Nil):
		return ast.NewNilLiteral(), nil
	case p.match(token.Number):
		return ast.NewNumberLiteral(p.previous().Number), nil
	case p.match(token.String):
		return ast.NewStringLiteral(p.previous().Text), nil
	case p.match(token.Identifier):
		return ast.NewVariableExpression(p.previous().Text), nil
	case p.match(token.LeftParen):
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if !p.match(token.RightParen) {
			return nil, p.errorAtCurrent(msgMissingCloseParen)
		}
		return ast.NewGroupingExpression(inner), nil
	}
	return nil, p.errorAtCurrent(msgInvalidPrimary)
}
