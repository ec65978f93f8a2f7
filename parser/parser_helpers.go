/*
File    : golox/parser/parser_helpers.go
*/
package parser

import "github.com/golox-lang/golox/lexer"

// skipTrivia advances the cursor past whitespace, tab, newline, and
// comment tokens. Every lookahead helper calls it first, which is what
// makes trivia transparent to the grammar.
func (par *Parser) skipTrivia() {
	for par.Current < len(par.Tokens) && par.Tokens[par.Current].IsTrivia() {
		par.Current++
	}
}

// peek returns the token under the cursor without consuming it. Past the
// end of the slice it returns the final token, which is the EOF sentinel.
func (par *Parser) peek() lexer.Token {
	if par.Current >= len(par.Tokens) {
		return par.Tokens[len(par.Tokens)-1]
	}
	return par.Tokens[par.Current]
}

// previous returns the most recently consumed token. Only valid after at
// least one advance.
func (par *Parser) previous() lexer.Token {
	return par.Tokens[par.Current-1]
}

// advance skips trivia, consumes one token, and returns it.
func (par *Parser) advance() lexer.Token {
	par.skipTrivia()
	if !par.isAtEnd() {
		par.Current++
	}
	return par.previous()
}

// check reports whether the next non-trivia token has the given type.
// Payload-carrying types (IDENTIFIER, STRING, NUMBER) match by tag alone.
func (par *Parser) check(tokenType lexer.TokenType) bool {
	par.skipTrivia()
	if par.isAtEnd() {
		return false
	}
	return par.peek().Type == tokenType
}

// matched consumes the next non-trivia token if it has one of the given
// types, reporting whether it did. The consumed token is then available
// through previous().
func (par *Parser) matched(tokenTypes ...lexer.TokenType) bool {
	for _, tt := range tokenTypes {
		if par.check(tt) {
			par.advance()
			return true
		}
	}
	return false
}

// consume expects the next non-trivia token to have the given type and
// consumes it, returning the token. A mismatch produces a ParseError with
// the caller's message; running into EOF produces "Unexpected end of
// input." instead.
func (par *Parser) consume(tokenType lexer.TokenType, message string) (lexer.Token, *ParseError) {
	par.skipTrivia()
	if par.isAtEnd() {
		return lexer.Token{}, NewParseError(par.peek(), "Unexpected end of input.")
	}
	if par.check(tokenType) {
		return par.advance(), nil
	}
	return lexer.Token{}, NewParseError(par.peek(), message)
}

// isAtEnd reports whether the next non-trivia token is the EOF sentinel.
func (par *Parser) isAtEnd() bool {
	par.skipTrivia()
	return par.peek().Type == lexer.EOF_TYPE
}

// synchronize implements panic-mode recovery: after a syntax fault it
// discards tokens until the most recently consumed token was a ';' or the
// next token begins a statement (class, fun, var, for, if, while, print,
// return). Parsing then resumes at a plausible declaration boundary, which
// prevents one fault from cascading into spurious follow-on errors.
func (par *Parser) synchronize() {
	if par.isAtEnd() {
		return
	}

	// Track the last consumed token directly: isAtEnd skips trivia, after
	// which previous() would return a whitespace or newline token.
	last := par.advance()

	for !par.isAtEnd() {
		if last.Type == lexer.SEMICOLON {
			return
		}

		switch par.peek().Type {
		case lexer.CLASS_KEY, lexer.FUN_KEY, lexer.VAR_KEY, lexer.FOR_KEY,
			lexer.IF_KEY, lexer.WHILE_KEY, lexer.PRINT_KEY, lexer.RETURN_KEY:
			return
		}

		last = par.advance()
	}
}
