/*
File    : golox/eval/evaluator_test.go
*/
package eval

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golox-lang/golox/lexer"
	"github.com/golox-lang/golox/parser"
	"github.com/golox-lang/golox/values"
)

// evalExpr evaluates a source expression in a fresh environment.
func evalExpr(t *testing.T, src string) (values.Value, *RuntimeError) {
	t.Helper()
	lex := lexer.NewLexer(src)
	tokens, lexErrors := lex.ConsumeTokens()
	assert.Empty(t, lexErrors, "test input %q must lex cleanly", src)

	par := parser.NewParser(tokens)
	expr, perr := par.ParseExpression()
	assert.Nil(t, perr, "test input %q must parse", src)

	return NewEvaluator().Evaluate(expr)
}

// runProgram executes a source program and returns the captured print
// output and the runtime error, if any.
func runProgram(t *testing.T, src string) (string, *RuntimeError) {
	t.Helper()
	lex := lexer.NewLexer(src)
	tokens, lexErrors := lex.ConsumeTokens()
	assert.Empty(t, lexErrors, "test input %q must lex cleanly", src)

	par := parser.NewParser(tokens)
	root := par.Parse()
	assert.False(t, par.HasErrors(), "test input %q must parse, got %v", src, par.Errors)

	var buf bytes.Buffer
	evaluator := NewEvaluator()
	evaluator.SetWriter(&buf)
	rerr := evaluator.Run(root)
	return buf.String(), rerr
}

// represents a test case mapping an expression to its display form
type TestEvalCase struct {
	Input    string
	Expected string
}

// TestEvaluator_Expressions tests arithmetic, comparison, equality,
// truthiness, and string operations through the display form.
func TestEvaluator_Expressions(t *testing.T) {

	tests := []TestEvalCase{
		// Arithmetic; computed numbers display without a trailing ".0"
		{`1 + 2`, `3`},
		{`2 * 3`, `6`},
		{`-3 * (1 + 2)`, `-9`},
		{`5 / 2`, `2.5`},
		{`10 - 4 - 3`, `3`},

		// Unary
		{`-5`, `-5`},
		{`!true`, `false`},
		{`!nil`, `true`},
		{`!!0`, `true`},
		{`!""`, `false`},

		// Comparison
		{`1 < 2`, `true`},
		{`2 <= 2`, `true`},
		{`3 > 4`, `false`},
		{`4 >= 4`, `true`},

		// Equality is total: cross-variant compares are just false
		{`1 == 1`, `true`},
		{`1 == "1"`, `false`},
		{`nil == nil`, `true`},
		{`nil == false`, `false`},
		{`"a" != "b"`, `true`},
		{`true == 1`, `false`},

		// String concatenation
		{`"foo" + "bar"`, `foobar`},
		{`"" + ""`, ``},

		// Literals
		{`nil`, `nil`},
		{`true`, `true`},
		{`"quote free"`, `quote free`},
		{`42`, `42`},
	}

	for _, test := range tests {
		value, rerr := evalExpr(t, test.Input)
		assert.Nil(t, rerr, "input %q must evaluate", test.Input)
		assert.Equal(t, test.Expected, value.ToString(), "input: %s", test.Input)
	}
}

// TestEvaluator_DivisionByZero verifies IEEE semantics: dividing by zero
// yields infinity (or NaN), never a runtime error.
func TestEvaluator_DivisionByZero(t *testing.T) {
	value, rerr := evalExpr(t, `1 / 0`)
	assert.Nil(t, rerr)
	assert.True(t, math.IsInf(value.(*values.Number).Value, 1))

	value, rerr = evalExpr(t, `-1 / 0`)
	assert.Nil(t, rerr)
	assert.True(t, math.IsInf(value.(*values.Number).Value, -1))

	value, rerr = evalExpr(t, `0 / 0`)
	assert.Nil(t, rerr)
	assert.True(t, math.IsNaN(value.(*values.Number).Value))
}

// represents a test case for runtime faults
type TestRuntimeErrorCase struct {
	Input           string
	ExpectedMessage string
	ExpectedLine    int
}

// TestEvaluator_RuntimeErrors tests fault messages and the operator line
// they anchor to.
func TestEvaluator_RuntimeErrors(t *testing.T) {

	tests := []TestRuntimeErrorCase{
		{`-"muffin"`, "Operand must be a number", 1},
		{`-nil`, "Operand must be a number", 1},
		{`"foo" + 1`, "Operands must be two numbers or two strings.", 1},
		{`1 + nil`, "Operands must be two numbers or two strings.", 1},
		{`true + false`, "Operands must be two numbers or two strings.", 1},
		{`"a" * "b"`, "Operands must be numbers.", 1},
		{`1 - "x"`, "Operands must be numbers.", 1},
		{`"a" < "b"`, "Operands must be numbers.", 1},
		{"1\n+\ntrue", "Operands must be two numbers or two strings.", 2},
		{`missing`, `Undefined variable "missing".`, 1},
	}

	for _, test := range tests {
		_, rerr := evalExpr(t, test.Input)
		assert.NotNil(t, rerr, "input %q must fail", test.Input)
		assert.Equal(t, test.ExpectedMessage, rerr.Message, "input: %s", test.Input)
		assert.Equal(t, test.ExpectedLine, rerr.Line, "input: %s", test.Input)
	}
}

// TestEvaluator_Programs tests statement execution through captured print
// output.
func TestEvaluator_Programs(t *testing.T) {

	tests := []TestEvalCase{
		// Declarations and reads
		{`var a = 1; print a;`, "1\n"},
		{`var a; print a;`, "nil\n"},
		{`var a = 1; var a = 2; print a;`, "2\n"},

		// Assignment yields the assigned value, so chains compose
		{`var a = 1; a = 5; print a;`, "5\n"},
		{`var a; var b; a = b = 3; print a; print b;`, "3\n3\n"},
		{`var a = 1; print a = 2;`, "2\n"},

		// Shadowing: the inner block sees its own a, the outer one is
		// untouched afterwards
		{`var a = 1; { var a = 2; print a; } print a;`, "2\n1\n"},
		{`var a = 1; { a = 2; } print a;`, "2\n"},
		{`var a = "outer"; { var a = "inner"; { print a; } } print a;`, "inner\nouter\n"},

		// Expression statements evaluate for effect only
		{`var a = 1; a + 1; print a;`, "1\n"},

		// Computed number display
		{`print 2 * 3;`, "6\n"},
		{`print 5 / 2;`, "2.5\n"},
		{`print "foo" + "bar";`, "foobar\n"},
	}

	for _, test := range tests {
		output, rerr := runProgram(t, test.Input)
		assert.Nil(t, rerr, "program %q must run", test.Input)
		assert.Equal(t, test.Expected, output, "program: %s", test.Input)
	}
}

// TestEvaluator_AssignmentIsNotDefinition verifies assigning an unbound
// name is a runtime error and creates no binding.
func TestEvaluator_AssignmentIsNotDefinition(t *testing.T) {
	output, rerr := runProgram(t, `x = 5;`)
	assert.NotNil(t, rerr)
	assert.Equal(t, `Undefined variable "x".`, rerr.Message)
	assert.Equal(t, 1, rerr.Line)
	assert.Empty(t, output)

	// No binding was created by the failed assignment
	_, rerr2 := runProgram(t, "x = 5;\nprint x;")
	assert.NotNil(t, rerr2)
	assert.Equal(t, 1, rerr2.Line)
}

// TestEvaluator_StopsAtFirstError verifies execution halts at the first
// failing statement: output before it is kept, nothing after it runs.
func TestEvaluator_StopsAtFirstError(t *testing.T) {
	src := "print 1;\nprint -\"x\";\nprint 2;"
	output, rerr := runProgram(t, src)
	assert.NotNil(t, rerr)
	assert.Equal(t, 2, rerr.Line)
	assert.Equal(t, "1\n", output)
}

// TestEvaluator_BlockRestoresScopeOnError verifies the scope swap is
// undone even when the block exits through an error, and the block's
// bindings are gone afterwards.
func TestEvaluator_BlockRestoresScopeOnError(t *testing.T) {
	lex := lexer.NewLexer(`var a = 1; { var a = 2; -"boom"; }`)
	tokens, _ := lex.ConsumeTokens()
	par := parser.NewParser(tokens)
	root := par.Parse()
	assert.False(t, par.HasErrors())

	evaluator := NewEvaluator()
	evaluator.SetWriter(&bytes.Buffer{})
	rerr := evaluator.Run(root)
	assert.NotNil(t, rerr)

	// The evaluator is back in the global scope with the outer binding
	value, ok := evaluator.Scp.LookUp("a")
	assert.True(t, ok)
	assert.Equal(t, float64(1), value.(*values.Number).Value)
	assert.Nil(t, evaluator.Scp.Parent)
}

// TestEvaluator_SessionStatePersists verifies variable state survives
// across Run calls on the same evaluator (the REPL relies on this).
func TestEvaluator_SessionStatePersists(t *testing.T) {
	evaluator := NewEvaluator()
	var buf bytes.Buffer
	evaluator.SetWriter(&buf)

	for _, src := range []string{`var a = 1;`, `a = a + 1;`, `print a;`} {
		lex := lexer.NewLexer(src)
		tokens, _ := lex.ConsumeTokens()
		par := parser.NewParser(tokens)
		root := par.Parse()
		assert.False(t, par.HasErrors())
		assert.Nil(t, evaluator.Run(root))
	}
	assert.Equal(t, "2\n", buf.String())
}

// TestEvaluator_Truthiness verifies !!v projects every value to its
// truthiness.
func TestEvaluator_Truthiness(t *testing.T) {
	tests := []TestEvalCase{
		{`!!nil`, `false`},
		{`!!false`, `false`},
		{`!!true`, `true`},
		{`!!0`, `true`},
		{`!!1`, `true`},
		{`!!""`, `true`},
		{`!!"x"`, `true`},
	}
	for _, test := range tests {
		value, rerr := evalExpr(t, test.Input)
		assert.Nil(t, rerr)
		assert.Equal(t, test.Expected, value.ToString(), "input: %s", test.Input)
	}
}
