package token

import (
	"fmt"
	"strconv"
)

// Kind identifies the lexical category of a token.
type Kind int

const (
	// Single-character tokens.
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star
	QuestionMark
	Colon

	// One or two character tokens.
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literals.
	Identifier
	String
	Number

	// Keywords.
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	EOF
)

var kindNames = map[Kind]string{
	LeftParen:    "'('",
	RightParen:   "')'",
	LeftBrace:    "'{'",
	RightBrace:   "'}'",
	Comma:        "','",
	Dot:          "'.'",
	Minus:        "'-'",
	Plus:         "'+'",
	Semicolon:    "';'",
	Slash:        "'/'",
	Star:         "'*'",
	QuestionMark: "'?'",
	Colon:        "':'",
	Bang:         "'!'",
	BangEqual:    "'!='",
	Equal:        "'='",
	EqualEqual:   "'=='",
	Greater:      "'>'",
	GreaterEqual: "'>='",
	Less:         "'<'",
	LessEqual:    "'<='",
	Identifier:   "identifier",
	String:       "string",
	Number:       "number",
	And:          "'and'",
	Class:        "'class'",
	Else:         "'else'",
	False:        "'false'",
	Fun:          "'fun'",
	For:          "'for'",
	If:           "'if'",
	Nil:          "'nil'",
	Or:           "'or'",
	Print:        "'print'",
	Return:       "'return'",
	Super:        "'super'",
	This:         "'this'",
	True:         "'true'",
	Var:          "'var'",
	While:        "'while'",
	EOF:          "<EOF>",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown_kind_%d", int(k))
}

var keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"fun":    Fun,
	"for":    For,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// Keyword reports the keyword kind for word, if it is reserved.
func Keyword(word string) (Kind, bool) {
	kind, ok := keywords[word]
	return kind, ok
}

// Token is a classified lexical unit. Text holds the identifier name or the
// decoded string contents; Number holds the decoded numeric value.
type Token struct {
	Kind   Kind
	Line   int
	Text   string
	Number float64
}

func New(kind Kind, line int) Token {
	return Token{Kind: kind, Line: line}
}

func Ident(name string, line int) Token {
	return Token{Kind: Identifier, Line: line, Text: name}
}

func Str(contents string, line int) Token {
	return Token{Kind: String, Line: line, Text: contents}
}

func Num(value float64, line int) Token {
	return Token{Kind: Number, Line: line, Number: value}
}

// Lexeme renders the token the way it appears in diagnostics.
func (t Token) Lexeme() string {
	switch t.Kind {
	case Identifier:
		return t.Text
	case String:
		return strconv.Quote(t.Text)
	case Number:
		return strconv.FormatFloat(t.Number, 'f', -1, 64)
	case EOF:
		return "end"
	default:
		name := t.Kind.String()
		if len(name) >= 2 && name[0] == '\'' {
			return name[1 : len(name)-1]
		}
		return name
	}
}

func (t Token) String() string {
	return fmt.Sprintf("%s, Line %d", t.Lexeme(), t.Line)
}
