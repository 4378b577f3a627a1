package parser

import (
	"fmt"
	"strings"
)

// RPNPrinter renders a tree in reverse polish notation, e.g. "2 3 +".
// Groupings are transparent.
type RPNPrinter struct{}

func NewRPNPrinter() *RPNPrinter {
	return &RPNPrinter{}
}

// VisitBinary implements Visitor.
func (p *RPNPrinter) VisitBinary(expr *Binary) any {
	return p.reverse(expr.Operator.Lexeme, expr.Operands...)
}

// VisitGrouping implements Visitor.
func (p *RPNPrinter) VisitGrouping(expr *Grouping) any {
	return p.reverse("", expr.Expression)
}

// VisitLiteral implements Visitor.
func (p *RPNPrinter) VisitLiteral(expr *Literal) any {
	return fmt.Sprintf("%d", expr.Value)
}

// VisitSeparator implements Visitor.
func (p *RPNPrinter) VisitSeparator(expr *Separator) any {
	return "<space>"
}

func (p *RPNPrinter) reverse(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	for _, expr := range exprs {
		_, _ = out.WriteString(fmt.Sprintf("%v", expr.Accept(p)))
		_, _ = out.WriteString(" ")
	}
	_, _ = out.WriteString(name)
	v := out.String()
	return strings.TrimSuffix(v, " ")
}

func (p *RPNPrinter) Print(expr Expr) string {
	if expr == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v", expr.Accept(p))
}

var _ Visitor[any] = (*RPNPrinter)(nil)
