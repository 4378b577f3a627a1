package parser

import (
	"fmt"
	"strings"
)

// AstPrinter renders a tree as an s-expression, e.g. "(+ 2 (group 3))".
type AstPrinter struct{}

func NewAstPrinter() *AstPrinter {
	return &AstPrinter{}
}

// VisitBinary implements Visitor.
func (p *AstPrinter) VisitBinary(expr *Binary) any {
	return p.parenthesize(expr.Operator.Lexeme, expr.Operands...)
}

// VisitGrouping implements Visitor.
func (p *AstPrinter) VisitGrouping(expr *Grouping) any {
	return p.parenthesize("group", expr.Expression)
}

// VisitLiteral implements Visitor.
func (p *AstPrinter) VisitLiteral(expr *Literal) any {
	return fmt.Sprintf("%d", expr.Value)
}

// VisitSeparator implements Visitor.
func (p *AstPrinter) VisitSeparator(expr *Separator) any {
	return "<space>"
}

func (p *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	_, _ = out.WriteString("(")
	_, _ = out.WriteString(name)
	for _, expr := range exprs {
		_, _ = out.WriteString(" ")
		_, _ = out.WriteString(p.asStr(expr))
	}
	_, _ = out.WriteString(")")
	return out.String()
}

func (p *AstPrinter) Print(expr Expr) string {
	return p.asStr(expr)
}

func (p *AstPrinter) asStr(expr Expr) string {
	if expr == nil {
		return "<nil>"
	}

	return expr.Accept(p).(string)
}

var _ Visitor[any] = (*AstPrinter)(nil)
