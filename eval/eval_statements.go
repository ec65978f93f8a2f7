/*
File    : golox/eval/eval_statements.go
*/
package eval

import (
	"fmt"

	"github.com/golox-lang/golox/parser"
	"github.com/golox-lang/golox/scope"
	"github.com/golox-lang/golox/values"
)

// execute runs a single statement against the current scope.
func (e *Evaluator) execute(stmt parser.StatementNode) *RuntimeError {
	switch n := stmt.(type) {
	case *parser.ExpressionStatementNode:
		return e.evalExpressionStatement(n)
	case *parser.PrintStatementNode:
		return e.evalPrintStatement(n)
	case *parser.DeclarativeStatementNode:
		return e.evalDeclarativeStatement(n)
	case *parser.BlockStatementNode:
		return e.evalBlockStatement(n)
	default:
		// Bare expressions parsed in program position execute as
		// expression statements.
		if expr, ok := stmt.(parser.ExpressionNode); ok {
			_, err := e.Evaluate(expr)
			return err
		}
	}
	return nil
}

// evalExpressionStatement evaluates the expression and discards the value;
// only its side effects (assignments) remain observable.
func (e *Evaluator) evalExpressionStatement(n *parser.ExpressionStatementNode) *RuntimeError {
	_, err := e.Evaluate(n.Expr)
	return err
}

// evalPrintStatement evaluates the expression and writes its display form
// followed by a newline to the evaluator's writer.
func (e *Evaluator) evalPrintStatement(n *parser.PrintStatementNode) *RuntimeError {
	value, err := e.Evaluate(n.Expr)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.Writer, "%s\n", value.ToString())
	return nil
}

// evalDeclarativeStatement handles `var` declarations: the initializer is
// evaluated first (nil when absent), then the name is bound in the CURRENT
// scope, shadowing any outer binding of the same name. The binding is not
// observable until the initializer has completed, so `var a = a;` inside a
// block reads the outer a.
func (e *Evaluator) evalDeclarativeStatement(n *parser.DeclarativeStatementNode) *RuntimeError {
	var value values.Value = &values.Nil{}
	if n.Initializer != nil {
		evaluated, err := e.Evaluate(n.Initializer)
		if err != nil {
			return err
		}
		value = evaluated
	}
	e.Scp.Bind(n.Name.Text, value)
	return nil
}

// evalBlockStatement executes the block's statements inside a fresh child
// scope. The previous scope is restored on every exit path, including
// error unwind, so a failing statement inside a block cannot leak the
// block's bindings into the enclosing scope.
func (e *Evaluator) evalBlockStatement(n *parser.BlockStatementNode) *RuntimeError {
	previous := e.Scp
	e.Scp = scope.NewScope(previous)
	defer func() { e.Scp = previous }()

	for _, stmt := range n.Statements {
		if err := e.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}
