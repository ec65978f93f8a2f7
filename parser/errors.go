/*
File    : golox/parser/errors.go
*/
package parser

import "github.com/golox-lang/golox/lexer"

// ParseError describes a syntax fault anchored to the offending token.
// The token's line number is what the driver reports in the
// "[line N] Error: <message>" frame.
type ParseError struct {
	Token   lexer.Token // The token the parser choked on
	Message string      // Human-readable description of the fault
}

// NewParseError creates a ParseError for the given token and message.
func NewParseError(token lexer.Token, message string) *ParseError {
	return &ParseError{Token: token, Message: message}
}

// Error returns the fault's message.
func (e *ParseError) Error() string {
	return e.Message
}

// Line returns the line number of the offending token.
func (e *ParseError) Line() int {
	return e.Token.Line
}
