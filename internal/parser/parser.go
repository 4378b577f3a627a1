package parser

import (
	"fmt"
	"strconv"

	"github.com/leonardinius/lispcalc/internal/calcerrors"
	"github.com/leonardinius/lispcalc/internal/token"
)

var nilExpr Expr = nil

type Parser interface {
	// Parse consumes the whole token sequence and returns a single expression.
	// There is no error recovery: the first error aborts parsing and no
	// partial tree is returned.
	Parse() (Expr, error)
}

type parser struct {
	tokens  []token.Token
	current int
	err     error
}

func NewParser(tokens []token.Token) Parser {
	if len(tokens) == 0 {
		panic("tokens cannot be empty")
	}
	if tokens[len(tokens)-1].Type != token.EOF {
		panic("tokens must end with EOF")
	}

	return &parser{
		tokens:  tokens,
		current: 0,
	}
}

// GoString implements fmt.GoStringer.
func (p *parser) GoString() string {
	return fmt.Sprintf("parser{tokens: %#v, current: %d, err: %#v}", p.tokens, p.current, p.err)
}

// String implements fmt.Stringer.
func (p *parser) String() string {
	return fmt.Sprintf("parser{tokens: %d, err: %v}", len(p.tokens), p.err)
}

// Parse implements Parser.
func (p *parser) Parse() (Expr, error) {
	expr := p.expression()
	if p.err == nil {
		p.end()
	}

	if p.err != nil {
		return nilExpr, p.err
	}

	return expr, nil
}

// end accepts trailing spaces and requires EOF after them.
func (p *parser) end() {
	for p.match(token.SPACE) {
	}

	if !p.isAtEnd() {
		p.reportExprError(calcerrors.ErrParseExpectedEnd)
	}
}

func (p *parser) expression() Expr {
	p.skipLeadingSpaces()
	return p.term()
}

// skipLeadingSpaces drops spaces in front of a number, group or operation.
// Spaces followed by nothing else still parse as a separator.
func (p *parser) skipLeadingSpaces() {
	next := p.current
	for p.tokens[next].Type == token.SPACE {
		next++
	}
	if next == p.current {
		return
	}

	tokType := p.tokens[next].Type
	if tokType == token.NUMBER || tokType == token.LEFT_PAREN || tokType.IsOperator() {
		p.current = next
	}
}

// term, factor and unary are precedence tiers; the language has no precedence
// distinctions yet, so each one delegates to the next.
func (p *parser) term() Expr {
	return p.factor()
}

func (p *parser) factor() Expr {
	return p.unary()
}

func (p *parser) unary() Expr {
	return p.primary()
}

func (p *parser) primary() Expr {
	if p.match(token.SPACE) {
		return &Separator{Text: p.previous().Lexeme}
	}

	if p.match(token.NUMBER) {
		return p.literal(p.previous())
	}

	if p.match(token.LEFT_PAREN) {
		return p.grouping()
	}

	if !p.isDone() && p.peek().Type.IsOperator() {
		return p.operation(p.advance())
	}

	return p.reportExprError(calcerrors.ErrParseUnexpectedToken)
}

func (p *parser) literal(tok *token.Token) Expr {
	value, err := strconv.ParseUint(tok.Lexeme, 10, 32)
	if err != nil {
		return p.reportTokenExprError(tok, calcerrors.ErrParseNumberTooLarge)
	}

	return &Literal{Value: uint32(value), Token: *tok}
}

// grouping parses the rest of a group; the opening paren is already consumed.
func (p *parser) grouping() Expr {
	expr := p.expression()
	if p.err != nil {
		return nilExpr
	}

	if !p.match(token.RIGHT_PAREN) {
		return p.reportExprError(calcerrors.ErrParseExpectedRightParenToken)
	}

	return &Grouping{Expression: expr}
}

// operation parses "op SPACE operands" where operands is any mix of numbers
// and groups separated by spaces.
func (p *parser) operation(operator *token.Token) Expr {
	op := *operator

	if !p.match(token.SPACE) {
		return p.reportExprError(calcerrors.ErrParseExpectedSpaceAfterOperator)
	}

	var operands []Expr
	for p.err == nil {
		if p.match(token.SPACE) {
			continue
		}

		operand, ok := p.operand()
		if !ok {
			break
		}
		operands = append(operands, operand)
	}

	if p.err != nil {
		return nilExpr
	}

	return &Binary{Operator: op, Operands: operands}
}

func (p *parser) operand() (Expr, bool) {
	if p.match(token.NUMBER) {
		return p.literal(p.previous()), true
	}

	if p.match(token.LEFT_PAREN) {
		return p.grouping(), true
	}

	return nilExpr, false
}

func (p *parser) match(tokType token.TokenType) bool {
	if p.check(tokType) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) check(tokenType token.TokenType) bool {
	return !p.isDone() && p.peek().Type == tokenType
}

func (p *parser) peek() *token.Token {
	return &p.tokens[p.current]
}

func (p *parser) previous() *token.Token {
	return &p.tokens[p.current-1]
}

func (p *parser) advance() *token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *parser) isDone() bool {
	// at the end, OR, have errors
	return p.isAtEnd() || p.err != nil
}

func (p *parser) reportExprError(err error) Expr {
	return p.reportTokenExprError(p.peek(), err)
}

func (p *parser) reportTokenExprError(tok *token.Token, err error) Expr {
	if p.err != nil {
		return nilExpr
	}
	p.err = calcerrors.NewParseError(tok, err)
	return nilExpr
}

var _ Parser = (*parser)(nil)
var _ fmt.Stringer = (*parser)(nil)
var _ fmt.GoStringer = (*parser)(nil)
