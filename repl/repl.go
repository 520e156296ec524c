/*
File   : mica/repl/repl.go
Author : The Mica Authors

Package repl implements the interactive mode of the Mica interpreter.
The REPL reads statements line by line, executes them against a persistent
evaluator, and prints errors in red. Because Mica is indentation-sensitive,
a line that opens a block (If, While, For, Func) switches the REPL into
continuation mode: further lines are accumulated verbatim and the whole
buffer is submitted when an empty line is entered.

Line editing and history come from the readline library.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/micalang/mica/eval"
	"github.com/micalang/mica/parser"
)

// Color definitions for REPL output
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// blockKeywords are the statement openers that switch the REPL into
// continuation mode.
var blockKeywords = []string{"If ", "While ", "For ", "Func "}

// Repl represents one interactive session and its presentation settings.
type Repl struct {
	Banner  string // Banner displayed at startup
	Version string // Version string of the interpreter
	Line    string // Separator line for visual formatting
	Prompt  string // Primary prompt (e.g. "mica> ")
	More    string // Continuation prompt shown inside a block (e.g. "....> ")
}

// NewRepl creates a REPL instance with the given presentation settings.
func NewRepl(banner string, version string, line string, prompt string, more string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt, More: more}
}

// PrintBannerInfo displays the welcome banner, version, and usage hints.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Mica "+r.Version)
	cyanColor.Fprintln(writer, "Block statements run after an empty line. Ctrl-D exits.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the interactive loop until end of input. Variables and function
// definitions persist across inputs through a single evaluator.
func (r *Repl) Start() error {
	rl, err := readline.New(r.Prompt)
	if err != nil {
		return fmt.Errorf("could not initialize line editor: %w", err)
	}
	defer rl.Close()

	r.PrintBannerInfo(rl.Stdout())

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(rl.Stdout())

	var buffer []string
	for {
		if len(buffer) > 0 {
			rl.SetPrompt(r.More)
		} else {
			rl.SetPrompt(r.Prompt)
		}

		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl-D, readline.ErrInterrupt on Ctrl-C
			if err == readline.ErrInterrupt {
				buffer = nil
				continue
			}
			return nil
		}

		if len(buffer) == 0 {
			if strings.TrimSpace(line) == "" {
				continue
			}
			buffer = append(buffer, line)
			if opensBlock(line) {
				continue
			}
		} else {
			if strings.TrimSpace(line) != "" {
				buffer = append(buffer, line)
				continue
			}
		}

		src := strings.Join(buffer, "\n") + "\n"
		buffer = nil
		r.run(evaluator, rl.Stdout(), src)
	}
}

// run parses and executes one submitted chunk, reporting any error in red.
func (r *Repl) run(evaluator *eval.Evaluator, writer io.Writer, src string) {
	statements, err := parser.NewParser(src).Parse()
	if err != nil {
		redColor.Fprintf(writer, "Error: %s\n", err)
		return
	}
	if err := evaluator.Execute(statements); err != nil {
		redColor.Fprintf(writer, "Error: %s\n", err)
	}
}

// opensBlock reports whether a line begins a block statement and therefore
// needs continuation lines before it can be parsed.
func opensBlock(line string) bool {
	trimmed := strings.TrimLeft(line, " ")
	for _, kw := range blockKeywords {
		if strings.HasPrefix(trimmed, kw) {
			return true
		}
	}
	return false
}
