package calcerrors

import "errors"

// Kind classifies a pipeline failure.
type Kind uint8

const (
	// LexicalError: an input character matches no token class.
	LexicalError Kind = iota + 1
	// SyntaxError: the token sequence does not match the grammar.
	SyntaxError
	// NumericError: a literal does not fit, or arithmetic leaves the unsigned range.
	NumericError
	// EvaluationError: an operator has no reduction rule.
	EvaluationError
)

func (k Kind) String() string {
	switch k {
	case LexicalError:
		return "LexicalError"
	case SyntaxError:
		return "SyntaxError"
	case NumericError:
		return "NumericError"
	case EvaluationError:
		return "EvaluationError"
	}
	return "UnknownError"
}

// KindOf returns the kind of the first positioned pipeline error in err's chain.
func KindOf(err error) (Kind, bool) {
	var ke kindedError
	if errors.As(err, &ke) {
		return ke.Kind(), true
	}
	return 0, false
}

// PositionOf returns the best-effort source position carried by err.
func PositionOf(err error) (line, column int, ok bool) {
	var ke kindedError
	if errors.As(err, &ke) {
		line, column = ke.Position()
		return line, column, true
	}
	return 0, 0, false
}
