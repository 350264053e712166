// Package scanner turns Lox source text into the token stream consumed by the
// parser. Scanning never stops at the first problem: bad input is recorded as
// an Error and the scanner resumes with the next character.
package scanner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"lox/interpreter-go/pkg/token"
)

// Error describes a lexical problem at a source line.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

type scanner struct {
	src    []rune
	pos    int
	line   int
	tokens []token.Token
	errs   []*Error
}

// Scan tokenizes src. The returned slice always ends with exactly one EOF token.
func Scan(src string) ([]token.Token, []*Error) {
	return ScanFrom(src, 1)
}

// ScanFrom tokenizes src as if its first character sat on line first.
func ScanFrom(src string, first int) ([]token.Token, []*Error) {
	if first < 1 {
		first = 1
	}
	s := &scanner{src: []rune(src), line: first}
	for !s.done() {
		s.scanToken()
	}
	s.add(token.New(token.EOF, s.line))
	return s.tokens, s.errs
}

func (s *scanner) done() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() rune {
	if s.done() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) peekNext() rune {
	if s.pos+1 >= len(s.src) {
		return 0
	}
	return s.src[s.pos+1]
}

func (s *scanner) advance() rune {
	r := s.src[s.pos]
	s.pos++
	return r
}

func (s *scanner) match(expected rune) bool {
	if s.done() || s.src[s.pos] != expected {
		return false
	}
	s.pos++
	return true
}

func (s *scanner) add(tok token.Token) {
	s.tokens = append(s.tokens, tok)
}

func (s *scanner) addKind(kind token.Kind) {
	s.add(token.New(kind, s.line))
}

func (s *scanner) errorf(format string, args ...any) {
	s.errs = append(s.errs, &Error{Line: s.line, Message: fmt.Sprintf(format, args...)})
}

// either picks the two-character kind when the next rune is '='.
func (s *scanner) either(single, double token.Kind) token.Kind {
	if s.match('=') {
		return double
	}
	return single
}

func (s *scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.addKind(token.LeftParen)
	case ')':
		s.addKind(token.RightParen)
	case '{':
		s.addKind(token.LeftBrace)
	case '}':
		s.addKind(token.RightBrace)
	case ',':
		s.addKind(token.Comma)
	case '.':
		s.addKind(token.Dot)
	case '-':
		s.addKind(token.Minus)
	case '+':
		s.addKind(token.Plus)
	case ';':
		s.addKind(token.Semicolon)
	case '*':
		s.addKind(token.Star)
	case '?':
		s.addKind(token.QuestionMark)
	case ':':
		s.addKind(token.Colon)
	case '!':
		s.addKind(s.either(token.Bang, token.BangEqual))
	case '=':
		s.addKind(s.either(token.Equal, token.EqualEqual))
	case '<':
		s.addKind(s.either(token.Less, token.LessEqual))
	case '>':
		s.addKind(s.either(token.Greater, token.GreaterEqual))
	case '/':
		if s.match('/') {
			for !s.done() && s.peek() != '\n' {
				s.advance()
			}
			return
		}
		s.addKind(token.Slash)
	case ' ', '\r', '\t':
	case '\n':
		s.line++
	case '"':
		s.scanString()
	default:
		switch {
		case isDigit(c):
			s.scanNumber()
		case isAlpha(c):
			s.scanIdentifier()
		default:
			s.errorf("unexpected character %q", c)
		}
	}
}

func (s *scanner) scanString() {
	startLine := s.line
	var b strings.Builder
	for !s.done() && s.peek() != '"' {
		r := s.advance()
		if r == '\n' {
			s.line++
		}
		b.WriteRune(r)
	}
	if s.done() {
		s.errs = append(s.errs, &Error{Line: startLine, Message: "unterminated string literal"})
		return
	}
	s.advance()
	s.add(token.Str(b.String(), startLine))
}

func (s *scanner) scanNumber() {
	start := s.pos - 1
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	text := string(s.src[start:s.pos])
	value, err := strconv.ParseFloat(text, 64)
	// Literals too large for a float64 keep the ±Inf that ParseFloat returns.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		s.errorf("invalid number literal %s", text)
		return
	}
	s.add(token.Num(value, s.line))
}

func (s *scanner) scanIdentifier() {
	start := s.pos - 1
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	word := string(s.src[start:s.pos])
	if kind, ok := token.Keyword(word); ok {
		s.addKind(kind)
		return
	}
	s.add(token.Ident(word, s.line))
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
