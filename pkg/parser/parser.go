package parser

import (
	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/token"
)

// DefaultMaxDepth bounds expression nesting when no WithMaxDepth option is given.
const DefaultMaxDepth = 256

// Result is the outcome of parsing one top-level declaration. Exactly one of
// Declaration and Err is set.
type Result struct {
	Declaration ast.Declaration
	Err         error
	Line        int
}

// OK reports whether the declaration parsed successfully.
func (r Result) OK() bool {
	return r.Err == nil
}

// Parser is a recursive-descent parser over a scanned token stream.
type Parser struct {
	tokens   []token.Token
	current  int
	depth    int
	maxDepth int
}

type Option func(*Parser)

// WithMaxDepth sets the maximum expression nesting depth. Values below one
// restore the default.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		if depth < 1 {
			depth = DefaultMaxDepth
		}
		p.maxDepth = depth
	}
}

// New constructs a parser over tokens. The stream is expected to end with an
// EOF token; a missing terminator is treated as if one were present.
func New(tokens []token.Token, opts ...Option) *Parser {
	p := &Parser{tokens: tokens, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseTokens parses tokens with default options.
func ParseTokens(tokens []token.Token) []Result {
	return New(tokens).Parse()
}

// Parse consumes the whole stream and returns one result per declaration in
// source order. Syntax errors are recorded and parsing resumes at the next
// declaration boundary.
func (p *Parser) Parse() []Result {
	var results []Result
	for !p.atEnd() {
		start := p.current
		line := p.peek().Line
		p.depth = 0
		decl, err := p.parseDeclaration()
		if err != nil {
			results = append(results, Result{Err: err, Line: line})
			p.synchronize(start)
			continue
		}
		results = append(results, Result{Declaration: decl, Line: line})
	}
	return results
}

// Primitives. Every grammar rule is built from these.

func (p *Parser) peek() token.Token {
	if p.current < len(p.tokens) {
		return p.tokens[p.current]
	}
	line := 1
	if n := len(p.tokens); n > 0 {
		line = p.tokens[n-1].Line
	}
	return token.New(token.EOF, line)
}

func (p *Parser) previous() token.Token {
	if p.current == 0 {
		return p.peek()
	}
	return p.tokens[p.current-1]
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kinds ...token.Kind) bool {
	if p.atEnd() {
		return false
	}
	current := p.peek().Kind
	for _, kind := range kinds {
		if current == kind {
			return true
		}
	}
	return false
}

func (p *Parser) match(kinds ...token.Kind) bool {
	if !p.check(kinds...) {
		return false
	}
	p.advance()
	return true
}

func (p *Parser) descend() error {
	if p.depth >= p.maxDepth {
		return p.errorAtCurrent(msgDepthExceeded)
	}
	p.depth++
	return nil
}

func (p *Parser) ascend() {
	if p.depth > 0 {
		p.depth--
	}
}
