/*
File    : golox/repl/repl.go

Package repl implements the Read-Eval-Print Loop (REPL) for the GoLox
interpreter. The REPL provides an interactive environment where users can:
- Enter Lox code line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and integrates with the lexer, parser, and evaluator to execute user input.
Variable state persists across lines: one evaluator lives for the whole
session.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/golox-lang/golox/eval"
	"github.com/golox-lang/golox/lexer"
	"github.com/golox-lang/golox/parser"
)

// Color definitions for REPL output:
// - blueColor: Decorative lines and separators
// - yellowColor: Expression results and version info
// - redColor: Error messages
// - greenColor: Banner
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance. It encapsulates the
// visual configuration of an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "lox >>> ")
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to GoLox!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop:
// 1. Displays the welcome banner
// 2. Sets up readline for line editing and history
// 3. Creates a session evaluator (variable state persists across lines)
// 4. Reads, executes, and reports until '.exit' or EOF (Ctrl+D)
func (r *Repl) Start(reader io.Reader, writer io.Writer) {

	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(reader),
		Stdout: writer,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or error occurred (e.g., Ctrl+D pressed)
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeLine(writer, line, evaluator)
	}
}

// executeLine runs one line of input against the session evaluator.
//
// The line is lexed and parsed as a program first. If that fails but the
// line has no ';', it is re-parsed as a bare expression and the resulting
// value is echoed in yellow, so `1 + 2` works without a trailing
// semicolon. All diagnostics print in red and return the user to the
// prompt; unlike file mode, the session continues after errors.
func (r *Repl) executeLine(writer io.Writer, line string, evaluator *eval.Evaluator) {
	lex := lexer.NewLexer(line)
	tokens, lexErrors := lex.ConsumeTokens()
	if len(lexErrors) > 0 {
		for _, lerr := range lexErrors {
			redColor.Fprintf(writer, "[line %d] Error: %s\n", lerr.Line, lerr.Error())
		}
		return
	}

	par := parser.NewParser(tokens)
	root := par.Parse()

	if par.HasErrors() {
		if !strings.Contains(line, ";") {
			if r.echoExpression(writer, tokens, evaluator) {
				return
			}
		}
		perr := par.FirstError()
		redColor.Fprintf(writer, "[line %d] Error: %s\n", perr.Line(), perr.Error())
		return
	}

	if rerr := evaluator.Run(root); rerr != nil {
		redColor.Fprintf(writer, "[line %d] Error: %s\n", rerr.Line, rerr.Message)
	}
}

// echoExpression tries the line as a single bare expression, printing its
// value on success. Reports whether the line was handled.
func (r *Repl) echoExpression(writer io.Writer, tokens []lexer.Token, evaluator *eval.Evaluator) bool {
	par := parser.NewParser(tokens)
	expr, perr := par.ParseExpression()
	if perr != nil || !par.IsAtEnd() {
		return false
	}
	value, rerr := evaluator.Evaluate(expr)
	if rerr != nil {
		redColor.Fprintf(writer, "[line %d] Error: %s\n", rerr.Line, rerr.Message)
		return true
	}
	yellowColor.Fprintf(writer, "%s\n", value.ToString())
	return true
}
