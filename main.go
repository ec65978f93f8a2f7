/*
File    : golox/main.go

Package main is the entry point for the GoLox interpreter.
It provides several modes of operation:
1. REPL Mode (default): Interactive Read-Eval-Print Loop for live coding
2. Subcommand Mode: tokenize / parse / evaluate / run over a source file
3. Server Mode: a TCP REPL server, one session per connection

The interpreter uses a lexer-parser-evaluator pipeline to process Lox code.
*/
package main

import (
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/pborman/getopt"

	"github.com/golox-lang/golox/repl"
)

// VERSION represents the current version of the GoLox interpreter
var VERSION = "v1.0.0"

// LICENSE specifies the software license (MIT License)
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "lox >>> "

// BANNER is the ASCII art logo displayed when starting the REPL
var BANNER = `
   ▄████  ▒█████   ██▓     ▒█████  ▒██   ██▒
  ██▒ ▀█▒▒██▒  ██▒▓██▒    ▒██▒  ██▒▒▒ █ █ ▒░
 ▒██░▄▄▄░▒██░  ██▒▒██░    ▒██░  ██▒░░  █   ░
 ░▓█  ██▓▒██   ██░▒██░    ▒██   ██░ ░ █ █ ▒
 ░▒▓███▀▒░ ████▓▒░░██████▒░ ████▓▒░▒██▒ ▒██▒
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for driver output:
// - redColor: Error messages and critical failures
// - yellowColor: Usage examples
// - cyanColor: Informational messages
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main is the entry point of the GoLox interpreter.
//
// Usage:
//
//	golox                      - Start in REPL (interactive) mode
//	golox tokenize <file>      - Print the token stream
//	golox parse <file>         - Parse one expression, print its AST form
//	golox evaluate <file>      - Evaluate one expression, print the value
//	golox run <file>           - Execute a program
//	golox server <port>        - Start a REPL server on the specified port
//	golox <file>               - Shorthand for `golox run <file>`
//	golox --help / --version
func main() {
	var help, version bool
	getopt.BoolVarLong(&help, "help", 'h', "display help")
	getopt.BoolVarLong(&version, "version", 'v', "display version information")
	getopt.SetParameters("[tokenize|parse|evaluate|run FILE | server PORT | FILE]")
	getopt.Parse()

	if help {
		showHelp()
		os.Exit(0)
	}
	if version {
		showVersion()
		os.Exit(0)
	}

	args := getopt.Args()
	if len(args) == 0 {
		// REPL mode: Start interactive interpreter
		repler := repl.NewRepl(BANNER, VERSION, LINE, LICENSE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
		return
	}

	switch args[0] {
	case "tokenize", "parse", "evaluate", "run":
		if len(args) < 2 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing file for %s mode. Usage: golox %s <file>\n", args[0], args[0])
			os.Exit(1)
		}
		os.Exit(runFile(args[0], args[1]))
	case "server":
		if len(args) < 2 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: golox server <port>\n")
			os.Exit(1)
		}
		startServer(args[1])
	default:
		// Bare file argument: run it as a program
		os.Exit(runFile("run", args[0]))
	}
}

// runFile reads a Lox source file and dispatches it to the given mode,
// returning the process exit code (0 success, 65 lex/parse fault, 70
// runtime fault, 1 file error).
func runFile(mode string, fileName string) int {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		return 1
	}
	return runCommand(mode, string(fileContent), os.Stdout, os.Stderr)
}

// showHelp displays the help information for the GoLox interpreter
func showHelp() {
	cyanColor.Println("GoLox - A Tree-Walking Lox Interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  golox                     Start interactive REPL mode")
	yellowColor.Println("  golox tokenize <file>     Print the token stream of a file")
	yellowColor.Println("  golox parse <file>        Parse one expression and print its AST")
	yellowColor.Println("  golox evaluate <file>     Evaluate one expression and print the value")
	yellowColor.Println("  golox run <file>          Execute a Lox program (.lox)")
	yellowColor.Println("  golox <path-to-file>      Shorthand for `golox run <file>`")
	yellowColor.Println("  golox server <port>       Start REPL server on specified port")
	yellowColor.Println("  golox --help              Display this help message")
	yellowColor.Println("  golox --version           Display version information")
	cyanColor.Println("")
	cyanColor.Println("EXIT CODES:")
	yellowColor.Println("  0   success")
	yellowColor.Println("  65  lexical or syntax error")
	yellowColor.Println("  70  runtime error")
	cyanColor.Println("")
	cyanColor.Println("EXAMPLES:")
	yellowColor.Println("  golox                     # Start REPL")
	yellowColor.Println("  golox run samples/scopes.lox")
	yellowColor.Println("  golox server 8080         # Start REPL server on port 8080")
}

// showVersion displays the version information for the GoLox interpreter
func showVersion() {
	cyanColor.Println("GoLox - A Tree-Walking Lox Interpreter")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
}

// startServer initializes and runs the GoLox REPL server. It listens on
// the specified port for incoming TCP connections; each connection is
// handled in its own goroutine with a dedicated REPL session.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("GoLox REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

// handleClient manages a single client connection for the REPL server,
// using the network connection as both the input reader and output writer.
func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, LINE, LICENSE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}
