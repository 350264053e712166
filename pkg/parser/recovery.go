package parser

import "lox/interpreter-go/pkg/token"

// synchronize skips to the next declaration boundary after a syntax error in
// the unit that began at start. It stops right after a consumed ';', before a
// token that opens a declaration or statement, or at EOF. At least one token
// is consumed when the failed unit consumed none, so the parse loop always
// makes progress. EOF itself is never consumed.
func (p *Parser) synchronize(start int) {
	if p.current == start && !p.atEnd() {
		p.advance()
	}
	for !p.atEnd() {
		if p.current > start && p.previous().Kind == token.Semicolon {
			return
		}
		if startsDeclaration(p.peek().Kind) {
			return
		}
		p.advance()
	}
}

func startsDeclaration(kind token.Kind) bool {
	switch kind {
	case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
		return true
	default:
		return false
	}
}
