package token

import (
	"fmt"
)

// Token represents a lexical token.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
}

func NewToken(t TokenType, lexeme string, line, column int) Token {
	return Token{
		Type:   t,
		Lexeme: lexeme,
		Line:   line,
		Column: column,
	}
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
}

// GoString implements fmt.GoStringer.
func (t Token) GoString() string {
	return fmt.Sprintf("{Type: %s, Lexeme: %q, Line: %d, Column: %d}", t.Type, t.Lexeme, t.Line, t.Column)
}

var _ fmt.Stringer = (*Token)(nil)
var _ fmt.GoStringer = (*Token)(nil)
