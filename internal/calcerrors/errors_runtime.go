package calcerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/lispcalc/internal/token"
)

var (
	ErrRuntimeUnknownOperation = errors.New("Unknown operation.")
	ErrRuntimeOverflow         = errors.New("Addition overflows unsigned 32-bit range.")
	ErrRuntimeUnderflow        = errors.New("Subtraction underflows below zero.")
)

func ErrRuntimeMissingOperand(operator string) error {
	return fmt.Errorf("Operator '%s' requires at least one operand.", operator)
}

func NewRuntimeError(tok *token.Token, cause error) error {
	return &RuntimeError{*tok, cause}
}

type RuntimeError struct {
	tok   token.Token
	cause error
}

// Error implements error.
func (r *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Error at '%s': %v", r.tok.Line, r.tok.Lexeme, r.cause)
}

func (r *RuntimeError) Unwrap() error {
	return r.cause
}

// Kind reports NumericError for range violations, EvaluationError otherwise.
func (r *RuntimeError) Kind() Kind {
	if errors.Is(r.cause, ErrRuntimeOverflow) || errors.Is(r.cause, ErrRuntimeUnderflow) {
		return NumericError
	}
	return EvaluationError
}

func (r *RuntimeError) Position() (line, column int) {
	return r.tok.Line, r.tok.Column
}

var _ error = (*RuntimeError)(nil)
var _ unwrapInterface = (*RuntimeError)(nil)
var _ kindedError = (*RuntimeError)(nil)
