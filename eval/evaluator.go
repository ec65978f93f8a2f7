/*
File    : golox/eval/evaluator.go
*/

// Package eval implements the tree-walking evaluator for the Lox language.
// It walks the parser's AST directly (type switches, no visitor), holding
// the current scope chain and an output writer for print statements.
// Execution is strictly single-threaded and synchronous: each statement
// completes before the next begins, and the first runtime error stops the
// program.
package eval

import (
	"io"
	"os"

	"github.com/golox-lang/golox/parser"
	"github.com/golox-lang/golox/scope"
)

// Evaluator holds the state for executing Lox programs: the current scope
// for variable bindings and the writer that print statements target.
type Evaluator struct {
	Scp    *scope.Scope // Current scope for variable bindings and lexical scoping
	Writer io.Writer    // Output writer for print statements (default: os.Stdout)
}

// NewEvaluator creates an Evaluator with a fresh global scope writing to
// standard output.
//
// Example usage:
//
//	ev := NewEvaluator()
//	if rerr := ev.Run(root); rerr != nil { ... }
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Scp:    scope.NewScope(nil),
		Writer: os.Stdout,
	}
}

// SetWriter redirects print-statement output to any io.Writer. Tests use
// this to capture output; the REPL server uses it to write to the client
// connection.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// Run executes a parsed program statement by statement, stopping at the
// first runtime error. Variable state persists on the evaluator across
// calls, which is what makes the REPL's session state work.
func (e *Evaluator) Run(root *parser.RootNode) *RuntimeError {
	for _, stmt := range root.Statements {
		if err := e.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}
