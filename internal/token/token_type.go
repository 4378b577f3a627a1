package token

import "strconv"

type TokenType uint8

const (
	LEFT_PAREN TokenType = iota
	RIGHT_PAREN
	PLUS
	MINUS
	// STAR and SLASH are reserved operators; the scanner never produces them.
	STAR
	SLASH
	NUMBER
	SPACE
	EOF
)

var tokenTypeNames = [...]string{
	LEFT_PAREN:  "LEFT_PAREN",
	RIGHT_PAREN: "RIGHT_PAREN",
	PLUS:        "PLUS",
	MINUS:       "MINUS",
	STAR:        "STAR",
	SLASH:       "SLASH",
	NUMBER:      "NUMBER",
	SPACE:       "SPACE",
	EOF:         "EOF",
}

// String implements fmt.Stringer.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}

// IsOperator reports whether t starts a prefix operation.
func (t TokenType) IsOperator() bool {
	switch t {
	case PLUS, MINUS, STAR, SLASH:
		return true
	}
	return false
}
