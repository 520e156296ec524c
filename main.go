/*
File   : mica/main.go
Author : The Mica Authors

Package main is the entry point for the Mica interpreter. It provides:
1. File mode: execute a Mica script from the command line
2. REPL mode (--repl): interactive session with history
3. Token dump mode (--tokens): print a script's token stream

The interpreter uses a lexer-parser-evaluator pipeline: source text is read
as bytes, \r\n pairs are normalized to \n, the lexer produces a token stream
with synthetic block-structure tokens, the parser builds the AST, and the
evaluator executes it. Any error prints "Error: <message>" to stderr and
exits with code 1.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/micalang/mica/eval"
	"github.com/micalang/mica/lexer"
	"github.com/micalang/mica/parser"
	"github.com/micalang/mica/repl"
)

// VERSION is the current version of the Mica interpreter
const VERSION = "v0.5.0"

// PROMPT is the primary prompt shown in REPL mode
const PROMPT = "mica> "

// MORE is the continuation prompt shown while a block is being entered
const MORE = "....> "

// BANNER is the logo displayed when starting the REPL
const BANNER = `
  ╔╦╗╦╔═╗╔═╗
  ║║║║║  ╠═╣
  ╩ ╩╩╚═╝╩ ╩
`

// LINE is a separator line used for visual formatting in the REPL
const LINE = "------------------------------------------------------"

// redColor renders fatal errors on stderr; it degrades to plain bytes when
// stderr is not a terminal.
var redColor = color.New(color.FgRed)

// main dispatches on the command-line arguments:
//
//	mica <script>     - Execute the given Mica source file
//	mica --repl       - Start an interactive session
//	mica --tokens <f> - Print the token stream of a source file
//	mica --version    - Display version information
//	mica --help       - Display usage information
func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "--version":
		fmt.Printf("Mica %s\n", VERSION)
	case "--help":
		printUsage()
	case "--repl":
		startRepl()
	case "--tokens":
		if len(os.Args) < 3 {
			printUsage()
			os.Exit(1)
		}
		dumpTokens(os.Args[2])
	default:
		runFile(os.Args[1])
	}
}

// printUsage displays the CLI surface.
func printUsage() {
	fmt.Printf("Mica Programming Language %s\n", VERSION)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  mica <script.mica>     Run a Mica script")
	fmt.Println("  mica --repl            Start an interactive session")
	fmt.Println("  mica --tokens <file>   Print the token stream of a script")
	fmt.Println("  mica --version         Show version information")
	fmt.Println("  mica --help            Show this help message")
}

// runFile loads, parses, and executes a script. Any error from any pipeline
// stage is reported once on stderr and exits with code 1.
func runFile(filename string) {
	source, err := readSource(filename)
	if err != nil {
		fatal(err)
	}

	statements, err := parser.NewParser(source).Parse()
	if err != nil {
		fatal(err)
	}

	if err := eval.NewEvaluator().Execute(statements); err != nil {
		fatal(err)
	}
}

// dumpTokens prints a script's token stream one token per line, for
// debugging indentation and lexing issues.
func dumpTokens(filename string) {
	source, err := readSource(filename)
	if err != nil {
		fatal(err)
	}

	tokens, err := lexer.NewLexer(source).Tokenize()
	if err != nil {
		fatal(err)
	}
	for _, tok := range tokens {
		fmt.Printf("%-14s %-8q line=%d indent=%d\n", tok.Type, tok.Literal, tok.Line, tok.Indent)
	}
}

// startRepl launches the interactive session.
func startRepl() {
	repler := repl.NewRepl(BANNER, VERSION, LINE, PROMPT, MORE)
	if err := repler.Start(); err != nil {
		fatal(err)
	}
}

// readSource reads a script as bytes and normalizes \r\n line endings to \n.
// A lone \r outside a \r\n pair is preserved.
func readSource(filename string) (string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("Could not open file: %s", filename)
	}
	return strings.ReplaceAll(string(content), "\r\n", "\n"), nil
}

// fatal reports an error in the mandated format and exits with code 1.
func fatal(err error) {
	redColor.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}
