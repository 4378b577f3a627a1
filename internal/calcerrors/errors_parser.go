package calcerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/lispcalc/internal/token"
)

var (
	ErrParseUnexpectedToken            = errors.New("Expect expression.")
	ErrParseExpectedSpaceAfterOperator = errors.New("Expect space after operator.")
	ErrParseExpectedRightParenToken    = errors.New("Expect ')' after expression.")
	ErrParseExpectedEnd                = errors.New("Expect end of expression.")
	ErrParseNumberTooLarge             = errors.New("Number literal too large.")
)

func NewParseError(tok *token.Token, cause error) error {
	return &ParserError{tok: *tok, cause: cause}
}

type ParserError struct {
	tok   token.Token
	cause error
}

// Error implements error.
func (p *ParserError) Error() string {
	where := "at end"
	if p.tok.Type != token.EOF {
		where = fmt.Sprintf("at '%s'", p.tok.Lexeme)
	}
	return fmt.Sprintf("[line %d] Error %s: %v", p.tok.Line, where, p.cause)
}

func (p *ParserError) Unwrap() error {
	return p.cause
}

// Kind reports NumericError for literals out of range, SyntaxError otherwise.
func (p *ParserError) Kind() Kind {
	if errors.Is(p.cause, ErrParseNumberTooLarge) {
		return NumericError
	}
	return SyntaxError
}

func (p *ParserError) Position() (line, column int) {
	return p.tok.Line, p.tok.Column
}

var _ error = (*ParserError)(nil)
var _ unwrapInterface = (*ParserError)(nil)
var _ kindedError = (*ParserError)(nil)
