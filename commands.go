/*
File    : golox/commands.go
*/
package main

import (
	"fmt"
	"io"

	"github.com/golox-lang/golox/eval"
	"github.com/golox-lang/golox/lexer"
	"github.com/golox-lang/golox/parser"
)

// Exit codes for the driver. Compile-time faults (lexical and syntactic)
// exit 65; runtime faults exit 70, following the sysexits convention.
const (
	exitOK           = 0
	exitCompileError = 65
	exitRuntimeError = 70
)

// reportError writes one diagnostic in the canonical frame:
//
//	[line N] Error: <message>
func reportError(errw io.Writer, line int, message string) {
	redColor.Fprintf(errw, "[line %d] Error: %s\n", line, message)
}

// runCommand dispatches one driver mode over the given source text and
// returns the process exit code. Output goes to out, diagnostics to errw;
// both are injected so tests can capture them.
func runCommand(mode string, src string, out, errw io.Writer) int {
	switch mode {
	case "tokenize":
		return runTokenize(src, out, errw)
	case "parse":
		return runParse(src, out, errw)
	case "evaluate":
		return runEvaluate(src, out, errw)
	case "run":
		return runRun(src, out, errw)
	}
	redColor.Fprintf(errw, "[USAGE ERROR] Unknown command: %s\n", mode)
	return 1
}

// runTokenize streams the lexer over the source, printing every non-trivia
// token (the EOF sentinel included) one per line. Lexical faults are
// reported as they are encountered; the lexer does not halt, so the valid
// tokens still print and every bad character is diagnosed in one pass.
func runTokenize(src string, out, errw io.Writer) int {
	lex := lexer.NewLexer(src)
	hadError := false

	for {
		token, lerr := lex.NextToken()
		if lerr != nil {
			reportError(errw, lerr.Line, lerr.Error())
			hadError = true
			continue
		}
		if token.IsTrivia() {
			continue
		}
		fmt.Fprintf(out, "%s\n", token.String())
		if token.Type == lexer.EOF_TYPE {
			break
		}
	}

	if hadError {
		return exitCompileError
	}
	return exitOK
}

// lexAll tokenizes the whole source for the parsing modes, reporting every
// lexical fault. Returns the tokens and whether lexing was clean.
func lexAll(src string, errw io.Writer) ([]lexer.Token, bool) {
	lex := lexer.NewLexer(src)
	tokens, lexErrors := lex.ConsumeTokens()
	for _, lerr := range lexErrors {
		reportError(errw, lerr.Line, lerr.Error())
	}
	return tokens, len(lexErrors) == 0
}

// runParse parses the source as a single expression and prints its
// prefix-parenthesized AST form.
func runParse(src string, out, errw io.Writer) int {
	tokens, ok := lexAll(src, errw)
	if !ok {
		return exitCompileError
	}

	par := parser.NewParser(tokens)
	expr, perr := par.ParseExpression()
	if perr != nil {
		reportError(errw, perr.Line(), perr.Error())
		return exitCompileError
	}

	printer := &parser.PrintVisitor{}
	fmt.Fprintf(out, "%s\n", printer.Print(expr))
	return exitOK
}

// runEvaluate parses the source as a single expression, evaluates it in a
// fresh environment, and prints the value's display form.
func runEvaluate(src string, out, errw io.Writer) int {
	tokens, ok := lexAll(src, errw)
	if !ok {
		return exitCompileError
	}

	par := parser.NewParser(tokens)
	expr, perr := par.ParseExpression()
	if perr != nil {
		reportError(errw, perr.Line(), perr.Error())
		return exitCompileError
	}

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(out)
	value, rerr := evaluator.Evaluate(expr)
	if rerr != nil {
		reportError(errw, rerr.Line, rerr.Message)
		return exitRuntimeError
	}

	fmt.Fprintf(out, "%s\n", value.ToString())
	return exitOK
}

// runRun executes the source as a full program. Parse faults surface the
// first recorded error (the parser synchronizes internally, so later
// statements were still checked); runtime faults stop execution at the
// first failing statement.
func runRun(src string, out, errw io.Writer) int {
	tokens, ok := lexAll(src, errw)
	if !ok {
		return exitCompileError
	}

	par := parser.NewParser(tokens)
	root := par.Parse()
	if par.HasErrors() {
		perr := par.FirstError()
		reportError(errw, perr.Line(), perr.Error())
		return exitCompileError
	}

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(out)
	if rerr := evaluator.Run(root); rerr != nil {
		reportError(errw, rerr.Line, rerr.Message)
		return exitRuntimeError
	}
	return exitOK
}
