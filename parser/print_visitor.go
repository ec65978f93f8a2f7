/*
File    : golox/parser/print_visitor.go
*/
package parser

import (
	"bytes"

	"github.com/golox-lang/golox/lexer"
)

// PrintVisitor renders expressions in a prefix-parenthesized form, used by
// tests and the `parse` driver mode:
//
//	Literal     -> its display form ("1.0", "true", "nil", raw string)
//	Unary       -> (op right)
//	Binary      -> (op left right)
//	Grouping    -> (group e)
//	Identifier  -> the identifier text
//	Assignment  -> (= name value)
type PrintVisitor struct {
	Buf bytes.Buffer
}

// Print renders the given expression and returns the result.
func (p *PrintVisitor) Print(expr ExpressionNode) string {
	p.Buf.Reset()
	expr.Accept(p)
	return p.Buf.String()
}

// parenthesize writes "(name expr...)" with one space between parts.
func (p *PrintVisitor) parenthesize(name string, exprs ...ExpressionNode) {
	p.Buf.WriteString("(")
	p.Buf.WriteString(name)
	for _, expr := range exprs {
		p.Buf.WriteString(" ")
		expr.Accept(p)
	}
	p.Buf.WriteString(")")
}

// VisitRootNode renders each statement's source-like form; the printer is
// primarily an expression printer, so statements fall back to Literal().
func (p *PrintVisitor) VisitRootNode(node *RootNode) {
	p.Buf.WriteString(node.Literal())
}

// VisitNumberLiteralExpressionNode renders a number literal in the token
// literal form: always containing a '.', integers as "N.0".
func (p *PrintVisitor) VisitNumberLiteralExpressionNode(node *NumberLiteralExpressionNode) {
	p.Buf.WriteString(lexer.FormatNumberLiteral(node.Value))
}

// VisitStringLiteralExpressionNode renders the raw string content without
// quotes.
func (p *PrintVisitor) VisitStringLiteralExpressionNode(node *StringLiteralExpressionNode) {
	p.Buf.WriteString(node.Value)
}

// VisitBooleanLiteralExpressionNode renders "true" or "false".
func (p *PrintVisitor) VisitBooleanLiteralExpressionNode(node *BooleanLiteralExpressionNode) {
	if node.Value {
		p.Buf.WriteString("true")
	} else {
		p.Buf.WriteString("false")
	}
}

// VisitNilLiteralExpressionNode renders "nil".
func (p *PrintVisitor) VisitNilLiteralExpressionNode(node *NilLiteralExpressionNode) {
	p.Buf.WriteString("nil")
}

// VisitGroupingExpressionNode renders "(group e)".
func (p *PrintVisitor) VisitGroupingExpressionNode(node *GroupingExpressionNode) {
	p.parenthesize("group", node.Expr)
}

// VisitUnaryExpressionNode renders "(op right)".
func (p *PrintVisitor) VisitUnaryExpressionNode(node *UnaryExpressionNode) {
	p.parenthesize(node.Operator.Lexeme, node.Right)
}

// VisitBinaryExpressionNode renders "(op left right)".
func (p *PrintVisitor) VisitBinaryExpressionNode(node *BinaryExpressionNode) {
	p.parenthesize(node.Operator.Lexeme, node.Left, node.Right)
}

// VisitIdentifierExpressionNode renders the identifier text.
func (p *PrintVisitor) VisitIdentifierExpressionNode(node *IdentifierExpressionNode) {
	p.Buf.WriteString(node.Name())
}

// VisitAssignmentExpressionNode renders "(= name value)".
func (p *PrintVisitor) VisitAssignmentExpressionNode(node *AssignmentExpressionNode) {
	p.Buf.WriteString("(= ")
	p.Buf.WriteString(node.Name.Text)
	p.Buf.WriteString(" ")
	node.Value.Accept(p)
	p.Buf.WriteString(")")
}

// VisitExpressionStatementNode renders the inner expression.
func (p *PrintVisitor) VisitExpressionStatementNode(node *ExpressionStatementNode) {
	node.Expr.Accept(p)
}

// VisitPrintStatementNode renders "(print e)".
func (p *PrintVisitor) VisitPrintStatementNode(node *PrintStatementNode) {
	p.parenthesize("print", node.Expr)
}

// VisitDeclarativeStatementNode renders "(var name)" or "(var name init)".
func (p *PrintVisitor) VisitDeclarativeStatementNode(node *DeclarativeStatementNode) {
	if node.Initializer == nil {
		p.Buf.WriteString("(var " + node.Name.Text + ")")
		return
	}
	p.Buf.WriteString("(var " + node.Name.Text + " ")
	node.Initializer.Accept(p)
	p.Buf.WriteString(")")
}

// VisitBlockStatementNode renders "(block stmt...)".
func (p *PrintVisitor) VisitBlockStatementNode(node *BlockStatementNode) {
	p.Buf.WriteString("(block")
	for _, stmt := range node.Statements {
		p.Buf.WriteString(" ")
		stmt.Accept(p)
	}
	p.Buf.WriteString(")")
}
