/*
File    : golox/parser/parser.go
*/

/*
Package parser implements a recursive-descent parser for the Lox language.

The parser converts a token slice produced by the lexer into an Abstract
Syntax Tree (AST). It handles:
- Expressions (assignment, equality, comparison, term, factor, unary, primary)
- Statements (variable declarations, print, blocks, expression statements)
- Operator precedence and associativity (assignment is right-associative)
- Panic-mode recovery: after a syntax fault the parser synchronizes to the
  next statement boundary and keeps going

Key Features:
- The token slice includes trivia (whitespace, tabs, newlines, comments);
  every matching helper skips trivia transparently before looking ahead
- Error collection (doesn't panic on first error); the first recorded
  error is what the driver surfaces
- Two entry points: Parse for programs, ParseExpression for single
  expressions (the `parse` and `evaluate` driver modes)
*/
package parser

import (
	"github.com/golox-lang/golox/lexer"
)

// Parser represents the parser state: the token slice under examination,
// the cursor into it, and the errors recorded so far.
type Parser struct {
	Tokens  []lexer.Token // Token stream from the lexer, trivia included
	Current int           // Index of the next token to examine

	// Collect parsing errors instead of panicking. Synchronization lets a
	// single parse surface every statement's first fault.
	Errors []*ParseError
}

// NewParser creates a Parser over the given token slice. The slice is
// expected to end with an EOF token, as produced by lexer.ConsumeTokens.
func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{
		Tokens: tokens,
		Errors: make([]*ParseError, 0),
	}
}

// addError records a parse error. The parser collects errors and recovers
// rather than stopping at the first fault.
func (par *Parser) addError(err *ParseError) {
	par.Errors = append(par.Errors, err)
}

// HasErrors returns true if any parse error was recorded.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns all parse errors collected during parsing.
func (par *Parser) GetErrors() []*ParseError {
	return par.Errors
}

// FirstError returns the first recorded parse error, or nil. This is the
// error the driver reports; synchronization only exists to avoid cascades.
func (par *Parser) FirstError() *ParseError {
	if len(par.Errors) == 0 {
		return nil
	}
	return par.Errors[0]
}

// IsAtEnd reports whether the whole token stream has been consumed (only
// the EOF sentinel remains). Expression-mode callers use it to reject
// input with trailing tokens.
func (par *Parser) IsAtEnd() bool {
	return par.isAtEnd()
}

// Parse is the program-mode entry point: it parses declarations until EOF,
// building a RootNode. On a syntax fault it records the error, discards
// tokens to the next statement boundary, and continues, so one pass
// reports the first fault of every broken statement while still producing
// an AST for the healthy ones.
func (par *Parser) Parse() *RootNode {
	root := &RootNode{Statements: make([]StatementNode, 0)}

	for {
		par.skipTrivia()
		if par.isAtEnd() {
			break
		}
		stmt, err := par.parseDeclaration()
		if err != nil {
			par.addError(err)
			par.synchronize()
			continue
		}
		root.Statements = append(root.Statements, stmt)
	}

	return root
}

// ParseExpression is the expression-mode entry point used by the `parse`
// and `evaluate` driver modes: it parses exactly one expression.
func (par *Parser) ParseExpression() (ExpressionNode, *ParseError) {
	expr, err := par.parseExpression()
	if err != nil {
		par.addError(err)
		return nil, err
	}
	return expr, nil
}
