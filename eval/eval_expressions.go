/*
File    : golox/eval/eval_expressions.go
*/
package eval

import (
	"github.com/golox-lang/golox/lexer"
	"github.com/golox-lang/golox/parser"
	"github.com/golox-lang/golox/values"
)

// Evaluate computes the value of an expression against the current scope.
// Runtime faults carry the line of the operator or name token they are
// anchored to, not the line of an operand.
func (e *Evaluator) Evaluate(expr parser.ExpressionNode) (values.Value, *RuntimeError) {
	switch n := expr.(type) {
	case *parser.NumberLiteralExpressionNode:
		return &values.Number{Value: n.Value}, nil
	case *parser.StringLiteralExpressionNode:
		return &values.String{Value: n.Value}, nil
	case *parser.BooleanLiteralExpressionNode:
		return &values.Boolean{Value: n.Value}, nil
	case *parser.NilLiteralExpressionNode:
		return &values.Nil{}, nil
	case *parser.GroupingExpressionNode:
		return e.Evaluate(n.Expr)
	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(n)
	case *parser.BinaryExpressionNode:
		return e.evalBinaryExpression(n)
	case *parser.IdentifierExpressionNode:
		return e.evalIdentifierExpression(n)
	case *parser.AssignmentExpressionNode:
		return e.evalAssignmentExpression(n)
	}
	return nil, NewRuntimeError(0, "Unknown expression.")
}

// evalUnaryExpression evaluates '!' and '-'. Negation requires a number;
// logical NOT inverts truthiness and cannot fail.
func (e *Evaluator) evalUnaryExpression(n *parser.UnaryExpressionNode) (values.Value, *RuntimeError) {
	right, err := e.Evaluate(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Operator.Type {
	case lexer.MINUS:
		number, ok := right.(*values.Number)
		if !ok {
			return nil, NewRuntimeError(n.Operator.Line, "Operand must be a number")
		}
		return &values.Number{Value: -number.Value}, nil
	case lexer.BANG:
		return &values.Boolean{Value: !values.IsTruthy(right)}, nil
	}
	return nil, NewRuntimeError(n.Operator.Line, "Unknown unary operator.")
}

// evalBinaryExpression evaluates arithmetic, ordering, and equality.
// Both operands are evaluated (left first) before the operator is applied.
// Arithmetic and ordering require two numbers; '+' alternatively accepts
// two strings and concatenates. Division by zero follows IEEE 754 and
// yields infinity or NaN rather than an error. Equality is total: values
// of different variants are simply unequal.
func (e *Evaluator) evalBinaryExpression(n *parser.BinaryExpressionNode) (values.Value, *RuntimeError) {
	left, err := e.Evaluate(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Evaluate(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Operator.Type {
	case lexer.EQUAL_EQUAL:
		return &values.Boolean{Value: values.Equals(left, right)}, nil
	case lexer.BANG_EQUAL:
		return &values.Boolean{Value: !values.Equals(left, right)}, nil
	case lexer.PLUS:
		if l, r, ok := numberPair(left, right); ok {
			return &values.Number{Value: l + r}, nil
		}
		if l, r, ok := stringPair(left, right); ok {
			return &values.String{Value: l + r}, nil
		}
		return nil, NewRuntimeError(n.Operator.Line, "Operands must be two numbers or two strings.")
	}

	l, r, ok := numberPair(left, right)
	if !ok {
		return nil, NewRuntimeError(n.Operator.Line, "Operands must be numbers.")
	}

	switch n.Operator.Type {
	case lexer.MINUS:
		return &values.Number{Value: l - r}, nil
	case lexer.STAR:
		return &values.Number{Value: l * r}, nil
	case lexer.SLASH:
		return &values.Number{Value: l / r}, nil
	case lexer.GREATER:
		return &values.Boolean{Value: l > r}, nil
	case lexer.GREATER_EQUAL:
		return &values.Boolean{Value: l >= r}, nil
	case lexer.LESS:
		return &values.Boolean{Value: l < r}, nil
	case lexer.LESS_EQUAL:
		return &values.Boolean{Value: l <= r}, nil
	}
	return nil, NewRuntimeError(n.Operator.Line, "Unknown binary operator.")
}

// evalIdentifierExpression resolves a variable read through the scope
// chain, innermost first.
func (e *Evaluator) evalIdentifierExpression(n *parser.IdentifierExpressionNode) (values.Value, *RuntimeError) {
	value, ok := e.Scp.LookUp(n.Name())
	if !ok {
		return nil, NewRuntimeError(n.Token.Line, "Undefined variable %q.", n.Name())
	}
	return value, nil
}

// evalAssignmentExpression evaluates the right-hand side first, then
// assigns through the scope chain. Assignment never creates a binding:
// an unbound name is a runtime error at the name token's line. The
// assigned value is returned so chained assignment composes.
func (e *Evaluator) evalAssignmentExpression(n *parser.AssignmentExpressionNode) (values.Value, *RuntimeError) {
	value, err := e.Evaluate(n.Value)
	if err != nil {
		return nil, err
	}
	if !e.Scp.Assign(n.Name.Text, value) {
		return nil, NewRuntimeError(n.Name.Line, "Undefined variable %q.", n.Name.Text)
	}
	return value, nil
}

// numberPair extracts both operands as numbers, reporting whether both
// are.
func numberPair(left, right values.Value) (float64, float64, bool) {
	l, lok := left.(*values.Number)
	r, rok := right.(*values.Number)
	if !lok || !rok {
		return 0, 0, false
	}
	return l.Value, r.Value, true
}

// stringPair extracts both operands as strings, reporting whether both
// are.
func stringPair(left, right values.Value) (string, string, bool) {
	l, lok := left.(*values.String)
	r, rok := right.(*values.String)
	if !lok || !rok {
		return "", "", false
	}
	return l.Value, r.Value, true
}
