/*
File    : golox/parser/parser_statements.go
*/
package parser

import "github.com/golox-lang/golox/lexer"

// parseDeclaration parses one declaration:
//
//	declaration := varDecl | statement
func (par *Parser) parseDeclaration() (StatementNode, *ParseError) {
	if par.matched(lexer.VAR_KEY) {
		return par.parseVarDeclaration()
	}
	return par.parseStatement()
}

// parseVarDeclaration parses a variable declaration after the 'var'
// keyword has been consumed:
//
//	varDecl := "var" IDENT ( "=" expression )? ";"
//
// The initializer is optional; a declaration without one binds nil at
// execution time.
func (par *Parser) parseVarDeclaration() (StatementNode, *ParseError) {
	name, err := par.consume(lexer.IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer ExpressionNode
	if par.matched(lexer.EQUAL) {
		initializer, err = par.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := par.consume(lexer.SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &DeclarativeStatementNode{Name: name, Initializer: initializer}, nil
}

// parseStatement parses one statement:
//
//	statement := printStmt | block | exprStmt
func (par *Parser) parseStatement() (StatementNode, *ParseError) {
	if par.matched(lexer.PRINT_KEY) {
		return par.parsePrintStatement()
	}
	if par.matched(lexer.LEFT_BRACE) {
		return par.parseBlockStatement()
	}
	return par.parseExpressionStatement()
}

// parsePrintStatement parses the rest of a print statement after the
// 'print' keyword has been consumed:
//
//	printStmt := "print" expression ";"
func (par *Parser) parsePrintStatement() (StatementNode, *ParseError) {
	value, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	if par.isAtEnd() {
		return nil, NewParseError(par.peek(), "Unexpected end of input after print statement.")
	}
	if _, err := par.consume(lexer.SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &PrintStatementNode{Expr: value}, nil
}

// parseBlockStatement parses the rest of a block after the '{' has been
// consumed:
//
//	block := "{" declaration* "}"
func (par *Parser) parseBlockStatement() (StatementNode, *ParseError) {
	statements := make([]StatementNode, 0)

	for !par.check(lexer.RIGHT_BRACE) && !par.isAtEnd() {
		stmt, err := par.parseDeclaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	if _, err := par.consume(lexer.RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return &BlockStatementNode{Statements: statements}, nil
}

// parseExpressionStatement parses an expression evaluated for its side
// effects:
//
//	exprStmt := expression ";"
func (par *Parser) parseExpressionStatement() (StatementNode, *ParseError) {
	expr, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := par.consume(lexer.SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ExpressionStatementNode{Expr: expr}, nil
}
