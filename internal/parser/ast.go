package parser

import "github.com/leonardinius/lispcalc/internal/token"

// Visitor is the interface that wraps the Visit methods.
//
// Every expression variant has exactly one method, so an implementation
// handles the whole closed set.
type Visitor[R any] interface {
	VisitBinary(expr *Binary) R
	VisitGrouping(expr *Grouping) R
	VisitLiteral(expr *Literal) R
	VisitSeparator(expr *Separator) R
}

// Expr is a node of the expression tree. The set of implementations is closed.
type Expr interface {
	Accept(v Visitor[any]) any
	exprNode()
}

// Binary is a prefix operation over an ordered list of operands.
type Binary struct {
	Operator token.Token
	Operands []Expr
}

var _ Expr = (*Binary)(nil)

func (e *Binary) Accept(v Visitor[any]) any {
	return v.VisitBinary(e)
}

// Grouping is a parenthesized sub-expression.
type Grouping struct {
	Expression Expr
}

var _ Expr = (*Grouping)(nil)

func (e *Grouping) Accept(v Visitor[any]) any {
	return v.VisitGrouping(e)
}

type Literal struct {
	Value uint32
	Token token.Token
}

var _ Expr = (*Literal)(nil)

func (e *Literal) Accept(v Visitor[any]) any {
	return v.VisitLiteral(e)
}

// Separator is a whitespace leaf; it evaluates to its own text.
type Separator struct {
	Text string
}

var _ Expr = (*Separator)(nil)

func (e *Separator) Accept(v Visitor[any]) any {
	return v.VisitSeparator(e)
}

func (*Binary) exprNode()    {}
func (*Grouping) exprNode()  {}
func (*Literal) exprNode()   {}
func (*Separator) exprNode() {}
