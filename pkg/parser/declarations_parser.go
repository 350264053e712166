package parser

import (
	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/token"
)

func (p *Parser) parseDeclaration() (ast.Declaration, error) {
	if p.match(token.Var) {
		return p.parseVarDeclaration()
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return ast.NewStatementDeclaration(stmt), nil
}

func (p *Parser) parseVarDeclaration() (ast.Declaration, error) {
	if !p.match(token.Identifier) {
		return nil, p.errorAtCurrent(msgInvalidVarName)
	}
	name := p.previous().Text
	if p.match(token.Semicolon) {
		return ast.NewVarDeclaration(name), nil
	}
	if !p.match(token.Equal) {
		return nil, p.errorAtCurrent(msgInvalidVarInit)
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.match(token.Semicolon) {
		return nil, p.errorAtCurrent(msgVarInitSemicolon)
	}
	return ast.NewVarDefinition(name, value), nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	isPrint := p.match(token.Print)
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.match(token.Semicolon) {
		return nil, p.errorAtCurrent(msgStatementSemicolon)
	}
	if isPrint {
		return ast.NewPrintStatement(expr), nil
	}
	return ast.NewExpressionStatement(expr), nil
}
