/*
File   : mica/eval/evaluator.go
Author : The Mica Authors
*/

// Package eval implements the tree-walking interpreter for the Mica language.
// The evaluator executes the parser's AST directly against an in-memory
// environment: a scope chain for variables and a flat namespace for function
// definitions. Statement execution is result-typed: a Return travels upward
// as a distinguished ReturnValue result, not as a panic. Function calls run
// in a child scope so the caller's bindings are restored on every exit path.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/micalang/mica/objects"
	"github.com/micalang/mica/parser"
	"github.com/micalang/mica/scope"
)

// Evaluator holds the state for executing Mica AST nodes: the current scope,
// the function namespace, and the output writer Print goes to.
type Evaluator struct {
	Scp    *scope.Scope                   // Current scope for variable bindings
	Funcs  map[string]*parser.FuncDefNode // Function namespace, separate from variables
	Writer io.Writer                      // Destination for Print output (default: os.Stdout)
}

// NewEvaluator creates an Evaluator with a fresh global scope, an empty
// function namespace, and os.Stdout as the Print destination.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Scp:    scope.NewScope(nil),
		Funcs:  make(map[string]*parser.FuncDefNode),
		Writer: os.Stdout,
	}
}

// SetWriter redirects Print output to the given writer. Used by tests and by
// the REPL.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// Execute runs a sequence of top-level statements in source order. The first
// runtime error aborts execution. A Return surfacing at the top level is an
// error: there is no enclosing call site to land at.
func (e *Evaluator) Execute(statements []parser.StatementNode) error {
	for _, stmt := range statements {
		result, err := e.execStatement(stmt)
		if err != nil {
			return err
		}
		if result != nil {
			return fmt.Errorf("Return statement outside function")
		}
	}
	return nil
}

// execBlock executes the statements of one block in order. A ReturnValue
// produced by any statement stops the block immediately and is handed to the
// caller, unwinding toward the nearest call boundary.
func (e *Evaluator) execBlock(statements []parser.StatementNode) (objects.MicaObject, error) {
	for _, stmt := range statements {
		result, err := e.execStatement(stmt)
		if err != nil {
			return nil, err
		}
		if result != nil {
			return result, nil
		}
	}
	return nil, nil
}

// evalFuncCall invokes a user-defined function: exact arity, arguments
// evaluated left to right in the caller's scope, then the body run in a child
// scope holding the parameter bindings. The child scope shadows rather than
// mutates the caller's bindings, so discarding it on exit restores the
// caller's environment exactly; arrays mutated through shared handles stay
// mutated. Falling off the end of the body yields Number 0.
func (e *Evaluator) evalFuncCall(node *parser.FuncCallNode) (objects.MicaObject, error) {
	fn, ok := e.Funcs[node.Name]
	if !ok {
		return nil, fmt.Errorf("Undefined function: %s", node.Name)
	}
	if len(node.Args) != len(fn.Params) {
		return nil, fmt.Errorf("Function '%s' expects %d arguments", node.Name, len(fn.Params))
	}

	args := make([]objects.MicaObject, 0, len(node.Args))
	for _, argExpr := range node.Args {
		arg, err := e.evalExpression(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	callScope := scope.NewScope(e.Scp)
	for i, param := range fn.Params {
		callScope.Bind(param, args[i])
	}

	saved := e.Scp
	e.Scp = callScope
	defer func() { e.Scp = saved }()

	result, err := e.execBlock(fn.Body)
	if err != nil {
		return nil, err
	}
	if ret, ok := result.(*objects.ReturnValue); ok {
		return ret.Value, nil
	}
	return &objects.Number{Value: 0}, nil
}
