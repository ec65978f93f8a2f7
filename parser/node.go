/*
File    : golox/parser/node.go
*/
package parser

import (
	"github.com/golox-lang/golox/lexer"
)

// NodeVisitor implements the Visitor design pattern for traversing the
// Abstract Syntax Tree (AST). Each Visit method processes a specific node
// type, enabling operations like printing or transformation. The evaluator
// does not use the visitor; it dispatches with type switches directly.
type NodeVisitor interface {
	VisitRootNode(node *RootNode) // Entry point for visiting the entire program

	// Literal value visitors - handle primitive data types
	VisitNumberLiteralExpressionNode(node *NumberLiteralExpressionNode)   // Number literals: 42, 3.14
	VisitStringLiteralExpressionNode(node *StringLiteralExpressionNode)   // String literals: "hello"
	VisitBooleanLiteralExpressionNode(node *BooleanLiteralExpressionNode) // Boolean literals: true, false
	VisitNilLiteralExpressionNode(node *NilLiteralExpressionNode)         // Nil literal

	// Expression visitors - handle operations and computations
	VisitGroupingExpressionNode(node *GroupingExpressionNode)     // Parenthesized expressions: (expr)
	VisitUnaryExpressionNode(node *UnaryExpressionNode)           // Unary operations: -, !
	VisitBinaryExpressionNode(node *BinaryExpressionNode)         // Binary operations: +, -, *, /, comparisons
	VisitIdentifierExpressionNode(node *IdentifierExpressionNode) // Variable reads: x, myVar
	VisitAssignmentExpressionNode(node *AssignmentExpressionNode) // Assignments: x = 10

	// Statement visitors
	VisitExpressionStatementNode(node *ExpressionStatementNode)   // Expression statements: expr;
	VisitPrintStatementNode(node *PrintStatementNode)             // Print statements: print expr;
	VisitDeclarativeStatementNode(node *DeclarativeStatementNode) // Variable declarations: var x = 10;
	VisitBlockStatementNode(node *BlockStatementNode)             // Code blocks: { stmt1; stmt2; }
}

// Node: base interface for all nodes of the AST
// Literal(): returns the source-like string representation of the node
// Accept(): accepts a visitor
type Node interface {
	Literal() string
	Accept(visitor NodeVisitor)
}

// StatementNode: base interface for all statement nodes
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes
// Every expression is also a statement (an expression statement).
type ExpressionNode interface {
	Node
	StatementNode
	Expression()
}

// RootNode: represents the root of the AST (the program node)
// Statements: list of top-level statements in the program
type RootNode struct {
	Statements []StatementNode
}

// RootNode.Literal(): string representation of the whole program
func (root *RootNode) Literal() string {
	res := ""
	for _, stmt := range root.Statements {
		res += stmt.Literal()
	}
	return res
}

// RootNode.Accept(): accepts a visitor (eg PrintVisitor)
func (root *RootNode) Accept(visitor NodeVisitor) {
	visitor.VisitRootNode(root)
}

// NumberLiteralExpressionNode: represents a number literal
// Example: 42, 3.14
type NumberLiteralExpressionNode struct {
	Token lexer.Token // The NUMBER token with lexeme and parsed value
	Value float64     // The numeric value
}

func (node *NumberLiteralExpressionNode) Literal() string {
	return node.Token.Lexeme
}

func (node *NumberLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitNumberLiteralExpressionNode(node)
}

func (node *NumberLiteralExpressionNode) Statement() {}

func (node *NumberLiteralExpressionNode) Expression() {}

// StringLiteralExpressionNode: represents a string literal
// Example: "hello world"
type StringLiteralExpressionNode struct {
	Token lexer.Token // The STRING token
	Value string      // The content between the quotes
}

func (node *StringLiteralExpressionNode) Literal() string {
	return node.Token.Lexeme
}

func (node *StringLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitStringLiteralExpressionNode(node)
}

func (node *StringLiteralExpressionNode) Statement() {}

func (node *StringLiteralExpressionNode) Expression() {}

// BooleanLiteralExpressionNode: represents a boolean literal value
// Example: true or false
type BooleanLiteralExpressionNode struct {
	Token lexer.Token // The TRUE/FALSE keyword token
	Value bool        // The boolean value
}

func (node *BooleanLiteralExpressionNode) Literal() string {
	return node.Token.Lexeme
}

func (node *BooleanLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBooleanLiteralExpressionNode(node)
}

func (node *BooleanLiteralExpressionNode) Statement() {}

func (node *BooleanLiteralExpressionNode) Expression() {}

// NilLiteralExpressionNode: represents the nil literal
type NilLiteralExpressionNode struct {
	Token lexer.Token // The NIL keyword token
}

func (node *NilLiteralExpressionNode) Literal() string {
	return node.Token.Lexeme
}

func (node *NilLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitNilLiteralExpressionNode(node)
}

func (node *NilLiteralExpressionNode) Statement() {}

func (node *NilLiteralExpressionNode) Expression() {}

// GroupingExpressionNode: represents an expression wrapped in parentheses
// for precedence control
// Example: (2 + 3) * 4
type GroupingExpressionNode struct {
	Token lexer.Token    // The '(' token that introduced the grouping
	Expr  ExpressionNode // The inner expression
}

func (node *GroupingExpressionNode) Literal() string {
	return "(" + node.Expr.Literal() + ")"
}

func (node *GroupingExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitGroupingExpressionNode(node)
}

func (node *GroupingExpressionNode) Statement() {}

func (node *GroupingExpressionNode) Expression() {}

// UnaryExpressionNode: represents a unary operation with one operand.
// The operator token supplies the line number for runtime errors.
// Example: -x, !flag
type UnaryExpressionNode struct {
	Operator lexer.Token    // The unary operator token (- or !)
	Right    ExpressionNode // The operand expression
}

func (node *UnaryExpressionNode) Literal() string {
	return node.Operator.Lexeme + node.Right.Literal()
}

func (node *UnaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitUnaryExpressionNode(node)
}

func (node *UnaryExpressionNode) Statement() {}

func (node *UnaryExpressionNode) Expression() {}

// BinaryExpressionNode: represents a binary operation with two operands.
// The operator token supplies the line number for runtime errors, not the
// operand lines.
// Example: 2 + 3, x * y, a <= b
type BinaryExpressionNode struct {
	Operator lexer.Token    // The binary operator token
	Left     ExpressionNode // Left operand expression
	Right    ExpressionNode // Right operand expression
}

func (node *BinaryExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operator.Lexeme + " " + node.Right.Literal()
}

func (node *BinaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBinaryExpressionNode(node)
}

func (node *BinaryExpressionNode) Statement() {}

func (node *BinaryExpressionNode) Expression() {}

// IdentifierExpressionNode: represents a variable read
// Example: x, myVar
type IdentifierExpressionNode struct {
	Token lexer.Token // The IDENTIFIER token; Text holds the name
}

// Name returns the identifier text.
func (node *IdentifierExpressionNode) Name() string {
	return node.Token.Text
}

func (node *IdentifierExpressionNode) Literal() string {
	return node.Token.Text
}

func (node *IdentifierExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitIdentifierExpressionNode(node)
}

func (node *IdentifierExpressionNode) Statement() {}

func (node *IdentifierExpressionNode) Expression() {}

// AssignmentExpressionNode: represents a variable assignment expression.
// The parser builds one by rewriting a Variable left-hand side; any other
// LHS is an "Invalid assignment target." parse error. Assignment is
// right-associative and yields the assigned value, so chains compose.
// Example: x = 10, a = b = 2
type AssignmentExpressionNode struct {
	Name  lexer.Token    // The IDENTIFIER token being assigned to
	Value ExpressionNode // The expression being assigned
}

func (node *AssignmentExpressionNode) Literal() string {
	return node.Name.Text + " = " + node.Value.Literal()
}

func (node *AssignmentExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitAssignmentExpressionNode(node)
}

func (node *AssignmentExpressionNode) Statement() {}

func (node *AssignmentExpressionNode) Expression() {}

// ExpressionStatementNode: an expression evaluated for its side effects,
// result discarded
// Example: a = 5;
type ExpressionStatementNode struct {
	Expr ExpressionNode
}

func (node *ExpressionStatementNode) Literal() string {
	return node.Expr.Literal() + ";"
}

func (node *ExpressionStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitExpressionStatementNode(node)
}

func (node *ExpressionStatementNode) Statement() {}

// PrintStatementNode: evaluates an expression and writes its display form
// followed by a newline
// Example: print 1 + 2;
type PrintStatementNode struct {
	Expr ExpressionNode
}

func (node *PrintStatementNode) Literal() string {
	return "print " + node.Expr.Literal() + ";"
}

func (node *PrintStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitPrintStatementNode(node)
}

func (node *PrintStatementNode) Statement() {}

// DeclarativeStatementNode: represents a variable declaration statement.
// The initializer is optional; a declaration without one binds nil.
// Example: var x = 10;  var y;
type DeclarativeStatementNode struct {
	Name        lexer.Token    // The IDENTIFIER token being declared
	Initializer ExpressionNode // The initialization expression, or nil
}

func (node *DeclarativeStatementNode) Literal() string {
	if node.Initializer == nil {
		return "var " + node.Name.Text + ";"
	}
	return "var " + node.Name.Text + " = " + node.Initializer.Literal() + ";"
}

func (node *DeclarativeStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitDeclarativeStatementNode(node)
}

func (node *DeclarativeStatementNode) Statement() {}

// BlockStatementNode: represents a block of statements enclosed in braces.
// Execution runs the statements in a fresh child scope that is discarded
// when the block exits.
// Example: { var a = 1; print a; }
type BlockStatementNode struct {
	Statements []StatementNode // List of statements in the block
}

func (node *BlockStatementNode) Literal() string {
	str := "{"
	for _, stmt := range node.Statements {
		str += stmt.Literal()
	}
	str += "}"
	return str
}

func (node *BlockStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitBlockStatementNode(node)
}

func (node *BlockStatementNode) Statement() {}
