package parser

import (
	"fmt"

	"lox/interpreter-go/pkg/token"
)

const (
	msgInvalidVarName      = "variable names must be valid identifiers"
	msgInvalidVarInit      = "invalid variable initialization"
	msgVarInitSemicolon    = "variable initializations must end with a semicolon"
	msgStatementSemicolon  = "statements must end with a semicolon"
	msgUnterminatedTernary = "unterminated ternary operator"
	msgMissingCloseParen   = "missing closing parenthesis"
	msgInvalidPrimary      = "unable to parse primary expression"
	msgDepthExceeded       = "expression nesting exceeds depth limit"
)

// ParseError is a syntax error anchored at the offending token.
type ParseError struct {
	Message string
	Token   token.Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d at '%s': %s", e.Token.Line, e.Token.Lexeme(), e.Message)
}

// Line returns the source line of the offending token.
func (e *ParseError) Line() int {
	return e.Token.Line
}

func (p *Parser) errorAtCurrent(message string) *ParseError {
	return &ParseError{Message: message, Token: p.peek()}
}
