package interpreter

import (
	"github.com/leonardinius/lispcalc/internal/calcerrors"
	"github.com/leonardinius/lispcalc/internal/parser"
	"github.com/leonardinius/lispcalc/internal/token"
)

type Interpreter interface {
	// Interpret interprets the given expression.
	// Returns the stringified result of the expression and an error if any.
	// The error is nil if the expression is valid.
	//
	// Not thread safe.
	// Resets internal state on Interpret.
	Interpret(expr parser.Expr) (string, error)

	// Evaluate evaluates the given expression.
	// Returns the result of the expression and an error if any.
	//
	// Not thread safe.
	// Resets internal state on Evaluate.
	Evaluate(expr parser.Expr) (Value, error)
}

type interpreter struct {
	opts *interpreterOpts
	err  error
}

func NewInterpreter(options ...InterpreterOption) Interpreter {
	return &interpreter{opts: newInterpreterOpts(options...)}
}

// Interpret implements Interpreter.
func (i *interpreter) Interpret(expr parser.Expr) (string, error) {
	if value, err := i.Evaluate(expr); err != nil {
		return "", err
	} else {
		return i.stringify(value), nil
	}
}

// Evaluate implements Interpreter.
func (i *interpreter) Evaluate(expr parser.Expr) (Value, error) {
	i.reset()

	return i.evaluate(expr)
}

func (i *interpreter) stringify(v Value) string {
	return v.String()
}

// VisitBinary implements parser.Visitor.
// Operands are evaluated left to right; separator values only delimit and
// take no part in the fold.
func (i *interpreter) VisitBinary(expr *parser.Binary) any {
	values := make([]uint32, 0, len(expr.Operands))
	for _, operand := range expr.Operands {
		v, err := i.evaluate(operand)
		if err != nil {
			return nil
		}
		if n, ok := v.(ValueNumber); ok {
			values = append(values, uint32(n))
		}
	}

	i.opts.logger.Trace().
		Str("operator", expr.Operator.Lexeme).
		Uints32("operands", values).
		Msg("fold")

	switch expr.Operator.Type {
	case token.PLUS:
		return i.sum(&expr.Operator, values)
	case token.MINUS:
		return i.difference(&expr.Operator, values)
	}

	return i.reportError(&expr.Operator, calcerrors.ErrRuntimeUnknownOperation)
}

// VisitGrouping implements parser.Visitor.
func (i *interpreter) VisitGrouping(expr *parser.Grouping) any {
	if v, err := i.evaluate(expr.Expression); err == nil {
		return v
	}
	return nil
}

// VisitLiteral implements parser.Visitor.
func (i *interpreter) VisitLiteral(expr *parser.Literal) any {
	return ValueNumber(expr.Value)
}

// VisitSeparator implements parser.Visitor.
func (i *interpreter) VisitSeparator(expr *parser.Separator) any {
	return ValueSeparator(expr.Text)
}

func (i *interpreter) sum(tok *token.Token, values []uint32) any {
	var total uint32
	for _, v := range values {
		next, ok := addChecked(total, v)
		if !ok && i.opts.arithmetic == ArithmeticChecked {
			return i.reportError(tok, calcerrors.ErrRuntimeOverflow)
		}
		total = next
	}
	return ValueNumber(total)
}

func (i *interpreter) difference(tok *token.Token, values []uint32) any {
	if len(values) == 0 {
		return i.reportError(tok, calcerrors.ErrRuntimeMissingOperand(tok.Lexeme))
	}

	total := values[0]
	for _, v := range values[1:] {
		next, ok := subChecked(total, v)
		if !ok && i.opts.arithmetic == ArithmeticChecked {
			return i.reportError(tok, calcerrors.ErrRuntimeUnderflow)
		}
		total = next
	}
	return ValueNumber(total)
}

func (i *interpreter) evaluate(expr parser.Expr) (Value, error) {
	if i.hasErr() {
		return nil, i.err
	}
	if expr == nil {
		i.unreachable()
	}

	value := expr.Accept(i)
	if i.hasErr() {
		return nil, i.err
	}

	return value.(Value), nil
}

func (i *interpreter) unreachable() {
	panic("unreachable")
}

func (i *interpreter) hasErr() bool {
	return i.err != nil
}

func (i *interpreter) reportError(tok *token.Token, err error) any {
	i.err = calcerrors.NewRuntimeError(tok, err)
	return nil
}

func (i *interpreter) reset() {
	i.err = nil
}

var _ parser.Visitor[any] = (*interpreter)(nil)
var _ Interpreter = (*interpreter)(nil)
