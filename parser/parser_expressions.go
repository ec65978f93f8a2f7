/*
File    : golox/parser/parser_expressions.go
*/
package parser

import "github.com/golox-lang/golox/lexer"

// parseExpression parses an expression at the lowest precedence level:
//
//	expression := assignment
func (par *Parser) parseExpression() (ExpressionNode, *ParseError) {
	return par.parseAssignment()
}

// parseAssignment parses a (right-associative) assignment:
//
//	assignment := equality ( "=" assignment )?
//
// The left-hand side is parsed as an ordinary expression first; if an '='
// follows, the LHS must turn out to be a variable reference, which is
// rewritten into an assignment node. Any other LHS reports "Invalid
// assignment target." at the '=' token.
func (par *Parser) parseAssignment() (ExpressionNode, *ParseError) {
	expr, err := par.parseEquality()
	if err != nil {
		return nil, err
	}

	if par.matched(lexer.EQUAL) {
		equals := par.previous()
		value, err := par.parseAssignment()
		if err != nil {
			return nil, err
		}
		if ident, ok := expr.(*IdentifierExpressionNode); ok {
			return &AssignmentExpressionNode{Name: ident.Token, Value: value}, nil
		}
		return nil, NewParseError(equals, "Invalid assignment target.")
	}

	return expr, nil
}

// parseEquality parses equality comparisons:
//
//	equality := comparison ( ("=="|"!=") comparison )*
func (par *Parser) parseEquality() (ExpressionNode, *ParseError) {
	expr, err := par.parseComparison()
	if err != nil {
		return nil, err
	}

	for par.matched(lexer.EQUAL_EQUAL, lexer.BANG_EQUAL) {
		operator := par.previous()
		right, err := par.parseComparison()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpressionNode{Operator: operator, Left: expr, Right: right}
	}

	return expr, nil
}

// parseComparison parses ordering comparisons:
//
//	comparison := term ( (">"|">="|"<"|"<=") term )*
func (par *Parser) parseComparison() (ExpressionNode, *ParseError) {
	expr, err := par.parseTerm()
	if err != nil {
		return nil, err
	}

	for par.matched(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		operator := par.previous()
		right, err := par.parseTerm()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpressionNode{Operator: operator, Left: expr, Right: right}
	}

	return expr, nil
}

// parseTerm parses additive expressions:
//
//	term := factor ( ("+"|"-") factor )*
func (par *Parser) parseTerm() (ExpressionNode, *ParseError) {
	expr, err := par.parseFactor()
	if err != nil {
		return nil, err
	}

	for par.matched(lexer.PLUS, lexer.MINUS) {
		operator := par.previous()
		right, err := par.parseFactor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpressionNode{Operator: operator, Left: expr, Right: right}
	}

	return expr, nil
}

// parseFactor parses multiplicative expressions:
//
//	factor := unary ( ("*"|"/") unary )*
func (par *Parser) parseFactor() (ExpressionNode, *ParseError) {
	expr, err := par.parseUnary()
	if err != nil {
		return nil, err
	}

	for par.matched(lexer.STAR, lexer.SLASH) {
		operator := par.previous()
		right, err := par.parseUnary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpressionNode{Operator: operator, Left: expr, Right: right}
	}

	return expr, nil
}

// parseUnary parses prefix operators, which nest:
//
//	unary := ("!"|"-") unary | primary
func (par *Parser) parseUnary() (ExpressionNode, *ParseError) {
	if par.matched(lexer.BANG, lexer.MINUS) {
		operator := par.previous()
		right, err := par.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpressionNode{Operator: operator, Right: right}, nil
	}
	return par.parsePrimary()
}

// parsePrimary parses the atoms of the grammar:
//
//	primary := "true" | "false" | "nil"
//	         | NUMBER | STRING | IDENT
//	         | "(" expression ")"
func (par *Parser) parsePrimary() (ExpressionNode, *ParseError) {
	if par.matched(lexer.TRUE_KEY) {
		return &BooleanLiteralExpressionNode{Token: par.previous(), Value: true}, nil
	}
	if par.matched(lexer.FALSE_KEY) {
		return &BooleanLiteralExpressionNode{Token: par.previous(), Value: false}, nil
	}
	if par.matched(lexer.NIL_KEY) {
		return &NilLiteralExpressionNode{Token: par.previous()}, nil
	}
	if par.matched(lexer.NUMBER) {
		token := par.previous()
		return &NumberLiteralExpressionNode{Token: token, Value: token.Number}, nil
	}
	if par.matched(lexer.STRING) {
		token := par.previous()
		return &StringLiteralExpressionNode{Token: token, Value: token.Text}, nil
	}
	if par.matched(lexer.IDENTIFIER) {
		return &IdentifierExpressionNode{Token: par.previous()}, nil
	}
	if par.matched(lexer.LEFT_PAREN) {
		paren := par.previous()
		expr, err := par.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := par.consume(lexer.RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &GroupingExpressionNode{Token: paren, Expr: expr}, nil
	}

	return nil, NewParseError(par.peek(), "Expect expression.")
}
